/*
Copyright © 2024 blacktop

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	clihander "github.com/apex/log/handlers/cli"
	colorscript "github.com/blacktop/go-colorscript"
	"github.com/spf13/cobra"
)

type options struct {
	verbose     bool
	configDir   string
	imagesDir   string
	random      bool
	name        string
	randomNames string
	width       int
	fit         bool
	alphaCutoff uint8
}

func init() {
	log.SetHandler(clihander.Default)
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "png-colorscripts",
		Short: "Print unicode images from PNGs located in a configurable directory",
		Args:  cobra.NoArgs,
		Example: `  png-colorscripts --random
  png-colorscripts --name pikachu
  png-colorscripts --random-name bulbasaur,charmander,squirtle`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !opts.random && opts.name == "" && opts.randomNames == "" {
				return cmd.Help()
			}
			return run(cmd.OutOrStdout(), opts, cmd.Flags().Changed("alpha-cutoff"))
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "V", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&opts.configDir, "config", colorscript.DefaultConfigDir(), "Config directory")
	rootCmd.PersistentFlags().StringVar(&opts.imagesDir, "dir", "", "Images directory (overrides config)")

	rootCmd.Flags().BoolVarP(&opts.random, "random", "r", false, "Print a random PNG from configured directory")
	rootCmd.Flags().StringVarP(&opts.name, "name", "n", "", "Print a PNG by name from configured directory; do not include file-type")
	rootCmd.Flags().StringVarP(&opts.randomNames, "random-name", "R", "", "Print a random PNG from a comma-separated list of names (e.g. 'image1,image_2,image-3')")
	rootCmd.Flags().IntVarP(&opts.width, "width", "W", 0, "Scale images wider than this many columns down to fit")
	rootCmd.Flags().BoolVar(&opts.fit, "fit", false, "Scale images wider than the terminal down to fit")
	rootCmd.Flags().Uint8Var(&opts.alphaCutoff, "alpha-cutoff", colorscript.AlphaCutoff, "Alpha value (0-255) at or above which a pixel is drawn")
	rootCmd.MarkFlagsMutuallyExclusive("random", "name", "random-name")
	rootCmd.MarkFlagsMutuallyExclusive("width", "fit")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if opts.verbose {
			log.SetLevel(log.DebugLevel)
		}
	}

	rootCmd.AddCommand(newListCmd(opts))

	return rootCmd
}

// loadCatalog runs first-time setup when needed and scans the images directory.
// A nil catalog with a nil error means setup just ran and there is nothing to show yet.
func loadCatalog(opts *options) (*colorscript.Config, *colorscript.Catalog, error) {
	cfg, created, err := colorscript.Bootstrap(opts.configDir)
	if err != nil {
		return nil, nil, err
	}
	if created {
		log.Info("Performing first-time set up ...")
		log.Infof("Please put some PNGs to print in %s then run again!", cfg.ImagesPath())
		return cfg, nil, nil
	}

	dir := cfg.ImagesPath()
	if opts.imagesDir != "" {
		dir = opts.imagesDir
	}
	log.WithField("dir", dir).Debug("Scanning images")

	catalog, err := colorscript.Scan(dir, cfg.Exts()...)
	if err != nil {
		return nil, nil, fmt.Errorf("%w; go put some there", err)
	}
	log.Debugf("Found %d images", catalog.Len())

	return cfg, catalog, nil
}

func run(w io.Writer, opts *options, cutoffSet bool) error {
	cfg, catalog, err := loadCatalog(opts)
	if err != nil || catalog == nil {
		return err
	}

	sel, err := selectImage(colorscript.NewSelector(catalog, nil), opts)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"name":   sel.Name,
		"path":   sel.Path,
		"width":  sel.Grid.Width,
		"height": sel.Grid.Height,
	}).Debug("Selected image")

	grid := sel.Grid
	if maxCols := targetWidth(opts); maxCols > 0 {
		grid = colorscript.FitGrid(grid, maxCols)
	}

	renderOpts := cfg.RenderOptions()
	if cutoffSet {
		renderOpts.AlphaCutoff = opts.alphaCutoff
	}

	return colorscript.Print(w, grid, renderOpts)
}

func selectImage(s *colorscript.Selector, opts *options) (*colorscript.Selection, error) {
	switch {
	case opts.random:
		return s.Random()
	case opts.name != "":
		return s.ByName(opts.name)
	default:
		return s.RandomFrom(colorscript.ParseNameList(opts.randomNames))
	}
}

func targetWidth(opts *options) int {
	if opts.width > 0 {
		return opts.width
	}
	if opts.fit {
		if width, ok := colorscript.TerminalWidth(); ok {
			return width
		}
		log.Debug("Could not detect terminal width; printing at full size")
	}
	return 0
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
