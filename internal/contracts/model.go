// Package contracts models tenant-level pricing agreements that can
// supersede the standard rate rules for covered screens.
package contracts

import (
	"time"

	"github.com/google/uuid"

	"github.com/marquee-ooh/marquee/internal/shared"
)

// PricingType selects how a contract overrides segment pricing.
type PricingType string

const (
	// PricingFixed replaces the hourly price with the contract value.
	PricingFixed PricingType = "fixed"
	// PricingDiscount applies a percentage discount to the rule price.
	PricingDiscount PricingType = "discount"
)

// ContractStatus is the lifecycle state of a contract.
type ContractStatus string

const (
	ContractStatusDraft   ContractStatus = "draft"
	ContractStatusActive  ContractStatus = "active"
	ContractStatusExpired ContractStatus = "expired"
)

// Contract is a tenant agreement overriding standard pricing for a
// subset of screens within a date window.
type Contract struct {
	ID           uuid.UUID      `json:"id"`
	TenantName   string         `json:"tenant_name"`
	PricingType  PricingType    `json:"pricing_type"`
	PricingValue float64        `json:"pricing_value"`
	AllScreens   bool           `json:"all_screens"`
	ScreenIDs    []string       `json:"screen_ids,omitempty"`
	StartDate    time.Time      `json:"start_date"`
	EndDate      time.Time      `json:"end_date"`
	Status       ContractStatus `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
}

// CoversScreen reports whether the contract's screen subset includes the
// given screen.
func (c Contract) CoversScreen(screenID string) bool {
	if c.AllScreens {
		return true
	}
	for _, id := range c.ScreenIDs {
		if id == screenID {
			return true
		}
	}
	return false
}

// AppliesTo reports whether the contract governs a campaign for the
// tenant over the given date range: the contract must be active, belong
// to the tenant, and fully contain the campaign window.
func (c Contract) AppliesTo(tenant string, campaignStart, campaignEnd time.Time) bool {
	if c.Status != ContractStatusActive || c.TenantName != tenant {
		return false
	}
	return shared.RangeContains(c.StartDate, c.EndDate, campaignStart, campaignEnd)
}

// ResolveActive returns the contract governing the tenant's campaign, or
// nil when none applies. When several contracts match, the first one in
// stored order wins; the stored order is creation order, which keeps the
// tie-break deterministic.
func ResolveActive(list []Contract, tenant string, campaignStart, campaignEnd time.Time) *Contract {
	for i := range list {
		if list[i].AppliesTo(tenant, campaignStart, campaignEnd) {
			return &list[i]
		}
	}
	return nil
}
