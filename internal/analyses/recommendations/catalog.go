package recommendations

import (
	"fmt"
	"sort"
	"strings"
)

var defaultEntries = map[string][]string{
	Residential: {
		"Install energy-efficient LED bulbs",
		"Use smart thermostats",
		"Insulate your home to reduce heating costs",
		"Turn off appliances when not in use",
	},
	Commercial: {
		"Upgrade to energy-efficient HVAC systems",
		"Implement automated lighting control",
		"Conduct regular energy audits",
		"Use renewable energy sources like solar panels",
	},
}

// Catalog maps a building type to its fixed list of recommendations.
// A Catalog is never modified after construction and is safe for concurrent use.
type Catalog struct {
	entries map[string][]string
}

// DefaultCatalog returns the built-in residential/commercial catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultEntries)
	if err != nil {
		panic(err)
	}
	return c
}

// NewCatalog copies entries into a new Catalog. Every building type needs at
// least SampleSize distinct, non-empty recommendations.
func NewCatalog(entries map[string][]string) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no building types", ErrInvalidCatalog)
	}
	out := make(map[string][]string, len(entries))
	for buildingType, items := range entries {
		if strings.TrimSpace(buildingType) == "" {
			return nil, fmt.Errorf("%w: empty building type", ErrInvalidCatalog)
		}
		seen := make(map[string]bool, len(items))
		for _, item := range items {
			if strings.TrimSpace(item) == "" {
				return nil, fmt.Errorf("%w: empty recommendation for %q", ErrInvalidCatalog, buildingType)
			}
			if seen[item] {
				return nil, fmt.Errorf("%w: duplicate recommendation %q for %q", ErrInvalidCatalog, item, buildingType)
			}
			seen[item] = true
		}
		if len(items) < SampleSize {
			return nil, fmt.Errorf("%w: %q has %d recommendations, need at least %d", ErrInvalidCatalog, buildingType, len(items), SampleSize)
		}
		out[buildingType] = append([]string(nil), items...)
	}
	return &Catalog{entries: out}, nil
}

// Lookup returns a copy of the recommendations for buildingType.
func (c *Catalog) Lookup(buildingType string) ([]string, bool) {
	items, ok := c.entries[buildingType]
	if !ok {
		return nil, false
	}
	return append([]string(nil), items...), true
}

// Has reports whether buildingType is a catalog key.
func (c *Catalog) Has(buildingType string) bool {
	_, ok := c.entries[buildingType]
	return ok
}

// BuildingTypes returns the catalog keys in sorted order.
func (c *Catalog) BuildingTypes() []string {
	out := make([]string, 0, len(c.entries))
	for k := range c.entries {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
