// Package mockdata ships the portal's seed datasets: the screen fleet,
// standard pricing rules and tenant contracts the in-memory repositories
// start from.
package mockdata

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/marquee-ooh/marquee/internal/campaign"
	"github.com/marquee-ooh/marquee/internal/contracts"
	"github.com/marquee-ooh/marquee/internal/inventory"
)

//go:embed fixtures/*.json
var fixtures embed.FS

// Screens returns the seed screen fleet.
func Screens() ([]inventory.Screen, error) {
	var screens []inventory.Screen
	if err := load("fixtures/screens.json", &screens); err != nil {
		return nil, err
	}
	return screens, nil
}

// PricingRules returns the seed slot pricing rules.
func PricingRules() ([]campaign.PricingRule, error) {
	var rules []campaign.PricingRule
	if err := load("fixtures/pricing_rules.json", &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// Contracts returns the seed tenant contracts.
func Contracts() ([]contracts.Contract, error) {
	var list []contracts.Contract
	if err := load("fixtures/contracts.json", &list); err != nil {
		return nil, err
	}
	return list, nil
}

func load(path string, target any) error {
	data, err := fixtures.ReadFile(path)
	if err != nil {
		return fmt.Errorf("mockdata: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("mockdata: parse %s: %w", path, err)
	}
	return nil
}
