package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var defaultData []byte

// DefaultCatalog parses the embedded catalog.
func DefaultCatalog() (Catalog, error) {
	return ParseCatalog(defaultData)
}

// ParseCatalog decodes a YAML catalog and rejects entries without an id or with a duplicate id.
func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("%w: %w", ErrCatalogParse, err)
	}

	seen := make(map[string]bool, len(c.Tools))
	for _, t := range c.Tools {
		if t.ID == "" || seen[t.ID] {
			return Catalog{}, fmt.Errorf("%w: tool id %q", ErrCatalogInvalid, t.ID)
		}
		seen[t.ID] = true
	}

	seen = make(map[string]bool, len(c.Courses))
	for _, co := range c.Courses {
		if co.ID == "" || seen[co.ID] {
			return Catalog{}, fmt.Errorf("%w: course id %q", ErrCatalogInvalid, co.ID)
		}
		seen[co.ID] = true
	}

	return c, nil
}
