package catalog

import (
	_ "embed"
	"fmt"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

type catalogDoc struct {
	Plants []Plant `yaml:"plants"`
}

var defaultCatalog []Plant

func init() {
	plants, err := Parse(catalogYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	defaultCatalog = plants
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) ([]Plant, error) {
	var doc catalogDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog YAML: %w", err)
	}
	return doc.Plants, nil
}

// Default returns the built-in plant catalog. Callers must not mutate the
// returned slice; a copy is handed out to keep the templates immutable.
func Default() []Plant {
	out := make([]Plant, len(defaultCatalog))
	copy(out, defaultCatalog)
	return out
}

// ByID looks up a catalog entry.
func ByID(id string) (Plant, bool) {
	for _, p := range defaultCatalog {
		if p.ID == id {
			return p, true
		}
	}
	return Plant{}, false
}

var weeksRe = regexp.MustCompile(`\d+`)

// DefaultHarvestWeeks is used when a harvest-time string carries no number.
const DefaultHarvestWeeks = 8

// HarvestWeeks extracts the week count from a harvest-time description such
// as "4-6 weeks" (first number wins, so ranges resolve to their lower bound).
func HarvestWeeks(s string) int {
	m := weeksRe.FindString(s)
	if m == "" {
		return DefaultHarvestWeeks
	}
	n, err := strconv.Atoi(m)
	if err != nil || n < 1 {
		return DefaultHarvestWeeks
	}
	return n
}
