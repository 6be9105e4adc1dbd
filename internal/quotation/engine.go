// Package quotation implements the quotation pricing engine: per-item
// gross/net computation with tiered volume discounts, the digital mix
// incentive and manual commercial overrides.
package quotation

import (
	"log/slog"

	"github.com/marquee-ooh/marquee/internal/observability"
	"github.com/marquee-ooh/marquee/internal/rates"
	"github.com/marquee-ooh/marquee/internal/shared"
)

// Volume thresholds and the special signature rate tiers. The signature
// tier is evaluated once per quotation and applies uniformly to every
// qualifying item.
const (
	signatureTierHighQty = 15
	signatureTierMidQty  = 10

	residentialTierHighQty = 20
	residentialTierMidQty  = 10

	doohMixQty = 20
)

// signatureTier names a signature volume tier.
type signatureTier int

const (
	tierBase signatureTier = iota
	tierMid
	tierHigh
)

var signatureTierRates = map[signatureTier]map[rates.Duration]float64{
	tierHigh: {rates.Duration4W: 350, rates.Duration2W: 210},
	tierMid:  {rates.Duration4W: 400, rates.Duration2W: 240},
	tierBase: {rates.Duration4W: 600, rates.Duration2W: 360},
}

// Engine computes quotation prices against a rate table. It is a pure
// function of its inputs: every call recomputes everything from scratch.
type Engine struct {
	table   *rates.Table
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewEngine builds a quotation pricing engine. Logger and metrics may be
// nil.
func NewEngine(table *rates.Table, logger *slog.Logger, metrics *observability.Metrics) *Engine {
	return &Engine{table: table, logger: logger, metrics: metrics}
}

// isSignatureTierItem reports whether the item participates in the
// signature volume tier: Signature category with a 4W or 2W duration.
func isSignatureTierItem(item LineItem) bool {
	return item.Category == rates.CategorySignature &&
		(item.Duration == rates.Duration4W || item.Duration == rates.Duration2W)
}

// Calculate prices every item in the quotation and returns the aggregate
// totals. Items are annotated in place with their gross and net values.
//
// The discount stacking order is fixed: signature tier rate, then
// residential volume discount, then DOOH mix incentive, then the manual
// package replacement, then the manual percentage markdown. Each step is
// multiplicative on the current net, except the package amount which
// replaces the aggregate outright.
func (e *Engine) Calculate(items []LineItem, manual ManualDiscounts) Totals {
	e.metrics.IncQuoteRecompute()

	// Threshold sums are evaluated over the whole quotation before any
	// item is priced. The groups are not exclusive: a DOOH-section
	// residential item counts toward both.
	var totalSignatureQty, totalDoohQty, totalResidentialQty int
	for _, item := range items {
		if isSignatureTierItem(item) {
			totalSignatureQty += item.Qty
		}
		if item.Section == SectionDOOH {
			totalDoohQty += item.Qty
		}
		if item.Category == rates.CategoryResidential {
			totalResidentialQty += item.Qty
		}
	}

	tier := tierBase
	switch {
	case totalSignatureQty >= signatureTierHighQty:
		tier = tierHigh
	case totalSignatureQty >= signatureTierMidQty:
		tier = tierMid
	}

	var totals Totals
	for i := range items {
		item := &items[i]

		base, known := e.table.BaseRate(item.Category, item.Duration)
		if !known {
			e.flagUnknownCategory(string(item.Category))
		}
		gross := shared.Finite(base * float64(item.Qty))
		net := gross

		if isSignatureTierItem(*item) {
			net = shared.Finite(signatureTierRates[tier][item.Duration] * float64(item.Qty))
		}

		// Residential volume discount: the higher threshold wins,
		// the tiers never stack.
		if item.Category == rates.CategoryResidential {
			switch {
			case totalResidentialQty >= residentialTierHighQty:
				net *= 0.8
			case totalResidentialQty >= residentialTierMidQty:
				net *= 0.9
			}
		}

		// Digital mix incentive. Quotations that already qualify for a
		// signature volume tier are excluded so the two incentives
		// never combine.
		if item.Section == SectionDOOH && totalDoohQty >= doohMixQty && totalSignatureQty < signatureTierMidQty {
			net *= 0.75
		}

		item.Gross = gross
		item.Net = shared.Finite(net)
		totals.Gross += item.Gross
		totals.Net += item.Net
	}

	totals.Gross = shared.Finite(totals.Gross)
	totals.Net = shared.Finite(totals.Net)

	// Manual overrides, in order: the package amount replaces the
	// computed aggregate entirely, then the percentage markdown applies
	// to whatever net is current. Gross is never touched.
	if manual.PackageAmount != nil && *manual.PackageAmount != 0 {
		totals.Net = shared.Finite(*manual.PackageAmount)
	}
	if manual.OtherPercentage != nil && *manual.OtherPercentage != 0 {
		totals.Net = shared.Finite(totals.Net * (1 - *manual.OtherPercentage/100))
	}

	return totals
}

func (e *Engine) flagUnknownCategory(category string) {
	if e.logger != nil {
		e.logger.Warn("unknown category, pricing with fallback rates", slog.String("category", category))
	}
	e.metrics.IncRateFallback(category)
}
