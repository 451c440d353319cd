// Package fixtures provides the literal example data rendered by the
// dashboard behind a Source interface, so a real data service can replace it
// without touching the views.
package fixtures

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Source supplies the data shown by the dashboard pages.
type Source interface {
	// Catalog returns every fixture table.
	Catalog(ctx context.Context) (*Catalog, error)
	// Products returns the marketplace listings of type t, or all listings if t is empty.
	Products(ctx context.Context, t ProductType) ([]Product, error)
}

// Default parses the embedded fixture set.
func Default() (*Catalog, error) {
	return Parse(defaultYAML)
}

// Load reads a fixture set from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixtures %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fixtures %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML fixture set.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("parsing fixtures: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the closed enumerations inside the catalog.
func (c *Catalog) Validate() error {
	for i, p := range c.Products {
		if !p.Type.Valid() {
			return fmt.Errorf("product %d (%s): invalid type %q", i, p.Title, p.Type)
		}
	}
	for i, l := range c.Locks {
		if !l.Status.Valid() {
			return fmt.Errorf("lock %d: invalid status %q", i, l.Status)
		}
	}
	return nil
}

// FilterProducts returns the products of type t, or all of them if t is empty.
func FilterProducts(products []Product, t ProductType) []Product {
	if t == "" {
		return products
	}
	var out []Product
	for _, p := range products {
		if p.Type == t {
			out = append(out, p)
		}
	}
	return out
}

// MemorySource serves a catalog held in memory.
type MemorySource struct {
	catalog *Catalog
}

// NewMemorySource wraps c.
func NewMemorySource(c *Catalog) *MemorySource {
	return &MemorySource{catalog: c}
}

func (s *MemorySource) Catalog(_ context.Context) (*Catalog, error) {
	return s.catalog, nil
}

func (s *MemorySource) Products(_ context.Context, t ProductType) ([]Product, error) {
	if t != "" && !t.Valid() {
		return nil, fmt.Errorf("unknown product type %q", t)
	}
	return FilterProducts(s.catalog.Products, t), nil
}
