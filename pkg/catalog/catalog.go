package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

const (
	// Other is the reserved option that activates a free-text field.
	Other = "Other"
	// LeadGeneration is the vertical category that requires lead verticals.
	LeadGeneration = "Lead Generation"
)

//go:embed catalog.toml
var embeddedCatalog []byte

// VerticalCategory is a selectable industry with its optional subcategories
type VerticalCategory struct {
	Name          string   `toml:"name"`
	Subcategories []string `toml:"subcategories"`
}

// Option is a single-choice value with its display label
type Option struct {
	Value string `toml:"value"`
	Label string `toml:"label"`
}

// Catalog lists every choice offered by the application form
type Catalog struct {
	VerticalCategories []VerticalCategory `toml:"vertical_categories"`
	LeadVerticals      []string           `toml:"lead_verticals"`
	Networks           []string           `toml:"networks"`
	SpendRanges        []Option           `toml:"spend_ranges"`
	MonthlySpend       []Option           `toml:"monthly_spend"`
	AverageRoas        []Option           `toml:"average_roas"`
	TeamSize           []Option           `toml:"team_size"`
	ProfitShare        []Option           `toml:"profit_share"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog embedded in the binary.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(embeddedCatalog)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Parse decodes a TOML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("error parsing catalog: %w", err)
	}
	if len(c.VerticalCategories) == 0 {
		return nil, fmt.Errorf("error parsing catalog: no vertical categories")
	}
	return &c, nil
}

// CategoryNames returns the vertical category names in display order.
func (c *Catalog) CategoryNames() []string {
	names := make([]string, 0, len(c.VerticalCategories))
	for _, vc := range c.VerticalCategories {
		names = append(names, vc.Name)
	}
	return names
}

// Subcategories returns the subcategories of the named category, nil if unknown.
func (c *Catalog) Subcategories(category string) []string {
	for _, vc := range c.VerticalCategories {
		if vc.Name == category {
			return vc.Subcategories
		}
	}
	return nil
}

// Label returns the display label for value, or value itself when it is not listed.
func Label(options []Option, value string) string {
	for _, o := range options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// Labels returns the display labels of options in order.
func Labels(options []Option) []string {
	labels := make([]string, 0, len(options))
	for _, o := range options {
		labels = append(labels, o.Label)
	}
	return labels
}

// ValueOf maps a display label back to its value.
func ValueOf(options []Option, label string) (string, bool) {
	for _, o := range options {
		if o.Label == label {
			return o.Value, true
		}
	}
	return "", false
}
