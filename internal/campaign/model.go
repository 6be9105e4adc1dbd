package campaign

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Segments is the fixed 24-slot hour-of-day vocabulary a booking can
// select from.
var Segments = buildSegments()

func buildSegments() []string {
	out := make([]string, 24)
	for h := 0; h < 24; h++ {
		out[h] = fmt.Sprintf("%02d:00", h)
	}
	return out
}

// ValidSegment reports whether the label belongs to the segment
// vocabulary.
func ValidSegment(label string) bool {
	for _, s := range Segments {
		if s == label {
			return true
		}
	}
	return false
}

// Booking reserves quantity units on a screen over an inclusive date
// range for a set of hour segments. Zero dates mean the booking follows
// the campaign's own range.
type Booking struct {
	ID        uuid.UUID `json:"id"`
	ScreenID  string    `json:"screen_id"`
	Quantity  int       `json:"quantity"`
	StartDate time.Time `json:"start_date,omitzero"`
	EndDate   time.Time `json:"end_date,omitzero"`
	Segments  []string  `json:"segments"`
}

// PricingRule sets the standard daily price for a screen's time slot.
// SlotTime carries the slot label, e.g. "18:00-22:00"; a rule matches a
// booking segment when the slot label starts with the segment's
// hour-of-day.
type PricingRule struct {
	ID          uuid.UUID `json:"id"`
	ScreenID    string    `json:"screen_id"`
	SlotTime    string    `json:"slot_time"`
	PricePerDay float64   `json:"price_per_day"`
}

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "DRAFT"
	CampaignStatusScheduled CampaignStatus = "SCHEDULED"
	CampaignStatusCompleted CampaignStatus = "COMPLETED"
)

// Campaign is a tenant's set of screen bookings over a date range.
type Campaign struct {
	ID         uuid.UUID      `json:"id"`
	Name       string         `json:"name"`
	TenantName string         `json:"tenant_name"`
	Status     CampaignStatus `json:"status"`
	StartDate  time.Time      `json:"start_date"`
	EndDate    time.Time      `json:"end_date"`
	Bookings   []Booking      `json:"bookings"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// Estimate is the output of a campaign pricing run.
type Estimate struct {
	TotalPrice       float64 `json:"total_price"`
	TotalImpressions int64   `json:"total_impressions"`
}
