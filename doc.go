/*
Package colorscript renders images as colored text in true-color terminals using
Unicode half-block glyphs, and picks those images out of a configured directory.

Every terminal cell shows two vertically stacked pixels: the glyph (▀ or ▄) is
painted with the foreground color and the rest of the cell with the background
color. Pixels whose alpha is below the cutoff (128 by default) are left blank.

Basic Usage:

	grid, err := colorscript.DecodeFile("pikachu.png")
	if err != nil {
	    log.Fatal(err)
	}
	colorscript.Print(os.Stdout, grid, colorscript.DefaultRenderOptions())

Rendering without I/O:

	out := colorscript.Render(grid, colorscript.RenderOptions{AlphaCutoff: 200})
	for _, line := range out.Lines {
	    fmt.Println(line)
	}
	fmt.Print(sgr.Reset)

Picking images:

	cfg, created, err := colorscript.Bootstrap(colorscript.DefaultConfigDir())
	if err != nil || created {
	    return err
	}
	catalog, err := colorscript.Scan(cfg.ImagesPath(), cfg.Exts()...)
	if err != nil {
	    return err
	}
	sel, err := colorscript.NewSelector(catalog, nil).RandomFrom([]string{"bulbasaur", "mew"})
	if errors.Is(err, colorscript.ErrImageNotFound) {
	    // ...
	}

Render is a pure function of the grid; it can be called concurrently on
independent grids.
*/
package colorscript
