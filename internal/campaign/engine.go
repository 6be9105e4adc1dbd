// Package campaign implements the campaign pricing engine: price and
// impression estimates for screen/time-segment bookings, honouring
// tenant contract overrides.
package campaign

import (
	"log/slog"
	"strings"
	"time"

	"github.com/marquee-ooh/marquee/internal/contracts"
	"github.com/marquee-ooh/marquee/internal/inventory"
	"github.com/marquee-ooh/marquee/internal/observability"
	"github.com/marquee-ooh/marquee/internal/shared"
)

// fallbackHourlyPrice applies when no pricing rule matches a segment.
const fallbackHourlyPrice = 50

// hoursPerRuleDay converts a rule's daily price into an hourly one; the
// standard slot a rule covers spans four hours.
const hoursPerRuleDay = 4

// Engine computes campaign price and impression estimates. Both
// computations are pure functions of their inputs and re-run from
// scratch on every call.
type Engine struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewEngine builds a campaign pricing engine. Logger and metrics may be
// nil.
func NewEngine(logger *slog.Logger, metrics *observability.Metrics) *Engine {
	return &Engine{logger: logger, metrics: metrics}
}

// Price computes the total estimated cost for the bookings over the
// campaign date range. The tenant's active contract, when one covers the
// campaign window, overrides standard pricing per segment: a fixed
// contract replaces the hourly price outright, a discount contract marks
// down the rule price. Malformed inputs degrade to zero contribution,
// never an error.
func (e *Engine) Price(bookings []Booking, campaignStart, campaignEnd time.Time, tenant string, contractList []contracts.Contract, rules []PricingRule) float64 {
	e.metrics.IncCampaignEstimate()

	active := contracts.ResolveActive(contractList, tenant, campaignStart, campaignEnd)

	var total float64
	for _, b := range bookings {
		days := bookingDays(b, campaignStart, campaignEnd)
		applies := active != nil && active.CoversScreen(b.ScreenID)

		for _, segment := range b.Segments {
			var pricePerHour float64
			if applies && active.PricingType == contracts.PricingFixed {
				pricePerHour = active.PricingValue
			} else {
				pricePerHour = ruleHourlyPrice(rules, b.ScreenID, segment)
				if applies && active.PricingType == contracts.PricingDiscount {
					pricePerHour *= 1 - active.PricingValue/100
				}
			}
			total += shared.Finite(pricePerHour * float64(days) * float64(b.Quantity))
		}
	}
	return shared.Finite(total)
}

// Impressions computes the total estimated impressions for the bookings.
// Each booking contributes its screen's daily audience rate weighted by
// the share of the day its segments cover; rounding happens once on the
// final sum, not per booking.
func (e *Engine) Impressions(bookings []Booking, campaignStart, campaignEnd time.Time, screens map[string]inventory.Screen) int64 {
	var total float64
	for _, b := range bookings {
		screen, ok := screens[b.ScreenID]
		if !ok {
			if e.logger != nil {
				e.logger.Warn("booking references unknown screen", slog.String("screen_id", b.ScreenID))
			}
			continue
		}
		days := bookingDays(b, campaignStart, campaignEnd)
		hourWeight := float64(len(b.Segments)) / 24
		total += shared.Finite(screen.DailyImpressions() * float64(days) * hourWeight * float64(b.Quantity))
	}
	return shared.RoundToInt(total)
}

// bookingDays is the inclusive day count of the booking's own range,
// falling back to the campaign range when the booking carries no dates.
func bookingDays(b Booking, campaignStart, campaignEnd time.Time) int {
	start, end := b.StartDate, b.EndDate
	if start.IsZero() || end.IsZero() {
		start, end = campaignStart, campaignEnd
	}
	return shared.InclusiveDays(start, end)
}

// ruleHourlyPrice resolves the standard hourly price for a screen
// segment: the matching rule's daily price divided by the slot's hour
// count, or the flat fallback when no rule matches.
func ruleHourlyPrice(rules []PricingRule, screenID, segment string) float64 {
	for _, rule := range rules {
		if rule.ScreenID == screenID && strings.HasPrefix(rule.SlotTime, segment) {
			return shared.Finite(rule.PricePerDay / hoursPerRuleDay)
		}
	}
	return fallbackHourlyPrice
}
