// Package rates holds the static base-rate card for the advertising
// network: a read-only mapping from category and duration code to a base
// price, loaded once at process start.
package rates

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed table.json
var defaultTableJSON []byte

// Fallback rates applied when a category is missing from the table
// entirely. Any other duration resolves to zero.
var fallbackRates = map[Duration]float64{
	Duration4W: 1000,
	Duration2W: 600,
}

// Table is the base price lookup keyed by category and duration.
type Table struct {
	prices map[string]map[Duration]float64
}

// DefaultTable returns the rate card embedded in the binary.
func DefaultTable() (*Table, error) {
	return parseTable(defaultTableJSON)
}

// LoadTable reads a rate card from a JSON file, allowing operators to
// override the embedded defaults.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rates: read table: %w", err)
	}
	return parseTable(data)
}

func parseTable(data []byte) (*Table, error) {
	var raw map[string]map[Duration]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("rates: parse table: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("rates: table is empty")
	}
	prices := make(map[string]map[Duration]float64, len(raw))
	for category, entries := range raw {
		key := NormalizeKey(category)
		prices[key] = make(map[Duration]float64, len(entries))
		for duration, price := range entries {
			prices[key][duration] = price
		}
	}
	return &Table{prices: prices}, nil
}

// BaseRate resolves the base price for a category/duration pair. Absence
// never raises: a missing category resolves through the fallback card
// (1000 for 4W, 600 for 2W, 0 otherwise) and a missing duration within a
// known category resolves to zero. The second return reports whether the
// category was present, so callers can flag probable data-entry typos.
func (t *Table) BaseRate(category Category, duration Duration) (price float64, known bool) {
	if t == nil {
		return fallbackRates[duration], false
	}
	entries, ok := t.prices[string(category)]
	if !ok {
		return fallbackRates[duration], false
	}
	return entries[duration], true
}

// Categories returns the category keys present in the table.
func (t *Table) Categories() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, 0, len(t.prices))
	for k := range t.prices {
		keys = append(keys, k)
	}
	return keys
}
