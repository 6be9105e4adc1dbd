package quotation

import (
	"time"

	"github.com/google/uuid"

	"github.com/marquee-ooh/marquee/internal/rates"
)

// QuotationStatus is the lifecycle state of a quotation.
type QuotationStatus string

const (
	QuotationStatusDraft     QuotationStatus = "DRAFT"
	QuotationStatusFinalized QuotationStatus = "FINALIZED"
)

// SectionDOOH is the grouping tag that triggers the digital mix
// incentive. Section tags are free text; only this exact tag
// participates in pricing.
const SectionDOOH = "DOOH"

// LineItem is one bookable unit inside a quotation. Gross and Net are
// engine outputs and never user-editable.
type LineItem struct {
	ID       uuid.UUID      `json:"id"`
	Section  string         `json:"section"`
	Category rates.Category `json:"category"`
	Duration rates.Duration `json:"duration"`
	Qty      int            `json:"qty"`
	Gross    float64        `json:"gross"`
	Net      float64        `json:"net"`
}

// ManualDiscounts carries the two commercial overrides a salesperson can
// apply on top of the computed aggregate. A nil or zero field is "not
// set". PackageAmount fully replaces the aggregate net; OtherPercentage
// is a markdown applied after the replacement.
type ManualDiscounts struct {
	PackageAmount   *float64 `json:"package_amount,omitempty"`
	OtherPercentage *float64 `json:"other_percentage,omitempty"`
}

// Totals is the aggregate output of a quotation pricing run. Gross is
// never affected by manual overrides.
type Totals struct {
	Gross float64 `json:"gross"`
	Net   float64 `json:"net"`
}

// Quotation is an ordered sequence of line items plus manual overrides
// and client metadata. Totals are recomputed after every mutation.
type Quotation struct {
	ID         uuid.UUID       `json:"id"`
	ClientName string          `json:"client_name"`
	Agency     string          `json:"agency,omitempty"`
	Status     QuotationStatus `json:"status"`
	Items      []LineItem      `json:"items"`
	Discounts  ManualDiscounts `json:"discounts"`
	Totals     Totals          `json:"totals"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
