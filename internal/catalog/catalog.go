// Package catalog holds the static reference data of the trip planner:
// regions (US states) and the activities available in each.
// The catalog is loaded once at startup and never mutated afterwards.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"

	"github.com/wayfarer/trip-planner/internal/domain"
)

//go:embed data/travel_locations.json
var embedded embed.FS

const embeddedFile = "data/travel_locations.json"

// Catalog is an immutable lookup from region name to activities.
// Region lookups are keyed by slug, so "New York", "new-york" and
// "NEW YORK" all resolve to the same region.
type Catalog struct {
	names   []string
	regions map[string][]domain.Activity
}

// New builds a Catalog from region name -> activities.
// Returns an error if two region names normalize to the same slug.
func New(data map[string][]domain.Activity) (*Catalog, error) {
	c := &Catalog{
		names:   make([]string, 0, len(data)),
		regions: make(map[string][]domain.Activity, len(data)),
	}
	for name, acts := range data {
		key := slug.Make(name)
		if key == "" {
			return nil, fmt.Errorf("catalog.New: region %q has an empty key", name)
		}
		if _, dup := c.regions[key]; dup {
			return nil, fmt.Errorf("catalog.New: region %q collides with another region", name)
		}
		c.regions[key] = slices.Clone(acts)
		c.names = append(c.names, name)
	}
	slices.Sort(c.names)
	return c, nil
}

// Load reads the catalog from path. An empty path loads the data file
// embedded in the binary. Files ending in .yaml or .yml are decoded as
// YAML, anything else as JSON.
func Load(path string) (*Catalog, error) {
	if path == "" {
		raw, err := embedded.ReadFile(embeddedFile)
		if err != nil {
			return nil, fmt.Errorf("catalog.Load: read embedded data: %w", err)
		}
		return Parse(raw, FormatJSON)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog.Load: %w", err)
	}
	return Parse(raw, formatFromPath(path))
}

// Format names a catalog file encoding.
type Format string

// Supported catalog encodings.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Parse decodes raw catalog data in the given format.
// The document is a mapping of region name to a list of activities.
func Parse(raw []byte, format Format) (*Catalog, error) {
	var data map[string][]domain.Activity
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(raw, &data)
	case FormatJSON:
		err = json.Unmarshal(raw, &data)
	default:
		return nil, fmt.Errorf("catalog.Parse: unsupported format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog.Parse: decode %s: %w", format, err)
	}
	return New(data)
}

// Regions returns every region name in ascending order.
func (c *Catalog) Regions() []string {
	return slices.Clone(c.names)
}

// Activities returns the activities of region, or an empty slice when the
// region is unknown. The returned slice is a copy.
func (c *Catalog) Activities(region string) []domain.Activity {
	acts := c.regions[slug.Make(region)]
	if len(acts) == 0 {
		return []domain.Activity{}
	}
	return slices.Clone(acts)
}

func formatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}
