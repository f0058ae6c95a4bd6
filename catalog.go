package colorscript

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// DefaultExtensions lists the file types scanned when none are configured
var DefaultExtensions = []string{".png"}

// Catalog is the set of candidate images found in one directory, keyed by
// file name without its extension.
type Catalog struct {
	dir   string
	exts  []string
	paths map[string]string
	names []string
}

// Scan enumerates the images in dir whose extension is one of exts.
// When two files share a name, the one whose extension comes first in exts wins.
func Scan(dir string, exts ...string) (*Catalog, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	exts = normalizeExtensions(exts)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w in %s: %w", ErrNoCandidateImages, dir, err)
	}

	c := &Catalog{
		dir:   dir,
		exts:  exts,
		paths: make(map[string]string),
	}
	rank := make(map[string]int)

	for _, entry := range entries {
		if !isRegularFile(dir, entry) {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		idx := slices.Index(exts, ext)
		if idx < 0 {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if name == "" {
			continue
		}
		if prev, ok := rank[name]; ok && prev <= idx {
			continue
		}
		rank[name] = idx
		c.paths[name] = filepath.Join(dir, entry.Name())
	}

	if len(c.paths) == 0 {
		return nil, fmt.Errorf("%w in %s (looked for %s)", ErrNoCandidateImages, dir, strings.Join(exts, ", "))
	}

	c.names = make([]string, 0, len(c.paths))
	for name := range c.paths {
		c.names = append(c.names, name)
	}
	slices.Sort(c.names)

	return c, nil
}

// isRegularFile follows symlinks so linked images are picked up too
func isRegularFile(dir string, entry fs.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.Mode().IsRegular()
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if !slices.Contains(out, ext) {
			out = append(out, ext)
		}
	}
	return out
}

// Dir returns the scanned directory
func (c *Catalog) Dir() string {
	return c.dir
}

// Names returns the sorted image names
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}

// Len returns the number of images
func (c *Catalog) Len() int {
	return len(c.names)
}

// Lookup resolves a name to its file path. The name may include one of the
// scanned extensions.
func (c *Catalog) Lookup(name string) (string, error) {
	if path, ok := c.paths[name]; ok {
		return path, nil
	}
	ext := filepath.Ext(name)
	if ext != "" && slices.Contains(c.exts, strings.ToLower(ext)) {
		if path, ok := c.paths[strings.TrimSuffix(name, ext)]; ok {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %q in %s", ErrImageNotFound, name, c.dir)
}

// Load decodes the named image
func (c *Catalog) Load(name string) (*Grid, error) {
	_, g, err := c.load(name)
	return g, err
}

func (c *Catalog) load(name string) (string, *Grid, error) {
	path, err := c.Lookup(name)
	if err != nil {
		return "", nil, err
	}
	g, err := DecodeFile(path)
	if err != nil {
		return "", nil, err
	}
	return path, g, nil
}
