package colorscript

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"strings"
)

// Selection is a resolved and decoded image
type Selection struct {
	Name string
	Path string
	Grid *Grid
}

// Selector picks images out of a Catalog
type Selector struct {
	catalog *Catalog
	rng     *rand.Rand
}

// NewSelector creates a Selector over c. A nil src uses the runtime's random source.
func NewSelector(c *Catalog, src rand.Source) *Selector {
	s := &Selector{catalog: c}
	if src != nil {
		s.rng = rand.New(src)
	}
	return s
}

func (s *Selector) intN(n int) int {
	if s.rng != nil {
		return s.rng.IntN(n)
	}
	return rand.IntN(n)
}

// ByName resolves and decodes the named image
func (s *Selector) ByName(name string) (*Selection, error) {
	path, g, err := s.catalog.load(name)
	if err != nil {
		return nil, err
	}
	base := filepath.Base(path)
	return &Selection{Name: strings.TrimSuffix(base, filepath.Ext(base)), Path: path, Grid: g}, nil
}

// Random picks uniformly among every image in the catalog
func (s *Selector) Random() (*Selection, error) {
	names := s.catalog.names
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoCandidateImages, s.catalog.dir)
	}
	return s.ByName(names[s.intN(len(names))])
}

// RandomFrom picks uniformly among names. The picked name must exist in the catalog.
func (s *Selector) RandomFrom(names []string) (*Selection, error) {
	names = cleanNames(names)
	if len(names) == 0 {
		return nil, ErrNoNames
	}
	return s.ByName(names[s.intN(len(names))])
}

// ParseNameList splits a comma-separated list of image names
func ParseNameList(list string) []string {
	return cleanNames(strings.Split(list, ","))
}

func cleanNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}
