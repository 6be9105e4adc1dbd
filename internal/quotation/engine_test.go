package quotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marquee-ooh/marquee/internal/observability"
	"github.com/marquee-ooh/marquee/internal/rates"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	table, err := rates.DefaultTable()
	require.NoError(t, err)
	return NewEngine(table, nil, observability.NewMetrics())
}

func item(section string, category rates.Category, duration rates.Duration, qty int) LineItem {
	return LineItem{Section: section, Category: category, Duration: duration, Qty: qty}
}

func TestCalculateEmptyQuotation(t *testing.T) {
	engine := newTestEngine(t)

	totals := engine.Calculate(nil, ManualDiscounts{})

	assert.Equal(t, 0.0, totals.Gross)
	assert.Equal(t, 0.0, totals.Net)
}

func TestCalculateSignatureTierBoundaries(t *testing.T) {
	engine := newTestEngine(t)

	cases := []struct {
		name    string
		qty     int
		netRate float64
	}{
		{"below mid tier", 9, 600},
		{"mid tier entry", 10, 400},
		{"mid tier top", 14, 400},
		{"high tier entry", 15, 350},
		{"high tier", 22, 350},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items := []LineItem{item("Billboards", rates.CategorySignature, rates.Duration4W, tc.qty)}
			totals := engine.Calculate(items, ManualDiscounts{})

			assert.InDelta(t, 600*float64(tc.qty), items[0].Gross, 1e-9)
			assert.InDelta(t, tc.netRate*float64(tc.qty), items[0].Net, 1e-9)
			assert.InDelta(t, items[0].Net, totals.Net, 1e-9)
		})
	}
}

func TestCalculateSignatureTierSumsAcrossItems(t *testing.T) {
	engine := newTestEngine(t)

	// 6 + 5 = 11 units puts the whole quotation in the mid tier.
	items := []LineItem{
		item("Billboards", rates.CategorySignature, rates.Duration4W, 6),
		item("Billboards", rates.CategorySignature, rates.Duration2W, 5),
	}
	totals := engine.Calculate(items, ManualDiscounts{})

	assert.InDelta(t, 400*6.0, items[0].Net, 1e-9)
	assert.InDelta(t, 240*5.0, items[1].Net, 1e-9)
	assert.InDelta(t, 400*6.0+240*5.0, totals.Net, 1e-9)
}

func TestCalculateSignatureShortDurationsExcludedFromTier(t *testing.T) {
	engine := newTestEngine(t)

	// A 1W signature item neither receives the tier rate nor counts
	// toward the tier threshold.
	items := []LineItem{
		item("Billboards", rates.CategorySignature, rates.Duration1W, 12),
		item("Billboards", rates.CategorySignature, rates.Duration4W, 2),
	}
	engine.Calculate(items, ManualDiscounts{})

	assert.InDelta(t, 200*12.0, items[0].Net, 1e-9) // base rate, no tier
	assert.InDelta(t, 600*2.0, items[1].Net, 1e-9)  // qty 2 stays below the mid tier
}

func TestCalculateResidentialVolumeTiers(t *testing.T) {
	engine := newTestEngine(t)

	cases := []struct {
		name   string
		qty    int
		factor float64
	}{
		{"below both tiers", 9, 1},
		{"ten percent tier", 10, 0.9},
		{"ten percent tier top", 19, 0.9},
		{"twenty percent tier", 20, 0.8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items := []LineItem{item("Residential", rates.CategoryResidential, rates.Duration2W, tc.qty)}
			totals := engine.Calculate(items, ManualDiscounts{})

			expected := 240 * float64(tc.qty) * tc.factor
			assert.InDelta(t, expected, items[0].Net, 1e-9)
			assert.InDelta(t, 240*float64(tc.qty), totals.Gross, 1e-9)
		})
	}
}

func TestCalculateDoohMixIncentive(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("applies with low signature volume", func(t *testing.T) {
		items := []LineItem{
			item(SectionDOOH, rates.CategoryDOOH, rates.Duration1W, 20),
			item("Billboards", rates.CategorySignature, rates.Duration2W, 5),
		}
		engine.Calculate(items, ManualDiscounts{})

		assert.InDelta(t, 280*20*0.75, items[0].Net, 1e-9)
	})

	t.Run("excluded once signature tier qualifies", func(t *testing.T) {
		items := []LineItem{
			item(SectionDOOH, rates.CategoryDOOH, rates.Duration1W, 20),
			item("Billboards", rates.CategorySignature, rates.Duration2W, 12),
		}
		engine.Calculate(items, ManualDiscounts{})

		assert.InDelta(t, 280*20.0, items[0].Net, 1e-9)
	})

	t.Run("needs twenty dooh units", func(t *testing.T) {
		items := []LineItem{
			item(SectionDOOH, rates.CategoryDOOH, rates.Duration1W, 19),
		}
		engine.Calculate(items, ManualDiscounts{})

		assert.InDelta(t, 280*19.0, items[0].Net, 1e-9)
	})
}

func TestCalculateDoohSectionTagIsExact(t *testing.T) {
	engine := newTestEngine(t)

	// Only the exact DOOH section tag participates in the incentive.
	items := []LineItem{
		item("dooh", rates.CategoryDOOH, rates.Duration1W, 20),
	}
	engine.Calculate(items, ManualDiscounts{})

	assert.InDelta(t, 280*20.0, items[0].Net, 1e-9)
}

func TestCalculateResidentialAndDoohStack(t *testing.T) {
	engine := newTestEngine(t)

	// A residential item inside the DOOH section belongs to both groups:
	// the residential tier applies first, the mix incentive multiplies
	// the already-discounted net.
	items := []LineItem{
		item(SectionDOOH, rates.CategoryResidential, rates.Duration2W, 20),
	}
	totals := engine.Calculate(items, ManualDiscounts{})

	expected := 240 * 20 * 0.8 * 0.75
	assert.InDelta(t, expected, items[0].Net, 1e-9)
	assert.InDelta(t, expected, totals.Net, 1e-9)
}

func TestCalculateZeroQuantity(t *testing.T) {
	engine := newTestEngine(t)

	items := []LineItem{
		item(SectionDOOH, rates.CategoryDOOH, rates.Duration1W, 0),
		item("Billboards", rates.CategorySignature, rates.Duration4W, 9),
	}
	totals := engine.Calculate(items, ManualDiscounts{})

	assert.Equal(t, 0.0, items[0].Gross)
	assert.Equal(t, 0.0, items[0].Net)
	// The zero-qty item contributes nothing to the threshold sums.
	assert.InDelta(t, 600*9.0, items[1].Net, 1e-9)
	assert.InDelta(t, 600*9.0, totals.Net, 1e-9)
}

func TestCalculateManualOverridePrecedence(t *testing.T) {
	engine := newTestEngine(t)

	pkg := 500.0
	pct := 10.0
	items := []LineItem{item("Billboards", rates.CategoryPremium, rates.Duration4W, 1)}

	t.Run("package replaces the aggregate", func(t *testing.T) {
		totals := engine.Calculate(items, ManualDiscounts{PackageAmount: &pkg})
		assert.InDelta(t, 500.0, totals.Net, 1e-9)
		assert.InDelta(t, 1200.0, totals.Gross, 1e-9)
	})

	t.Run("percentage applies after the package", func(t *testing.T) {
		totals := engine.Calculate(items, ManualDiscounts{PackageAmount: &pkg, OtherPercentage: &pct})
		assert.InDelta(t, 450.0, totals.Net, 1e-9)
		assert.InDelta(t, 1200.0, totals.Gross, 1e-9)
	})

	t.Run("percentage alone marks down the computed net", func(t *testing.T) {
		totals := engine.Calculate(items, ManualDiscounts{OtherPercentage: &pct})
		assert.InDelta(t, 1080.0, totals.Net, 1e-9)
	})

	t.Run("zero package means not set", func(t *testing.T) {
		zero := 0.0
		totals := engine.Calculate(items, ManualDiscounts{PackageAmount: &zero})
		assert.InDelta(t, 1200.0, totals.Net, 1e-9)
	})

	t.Run("item nets keep their computed values", func(t *testing.T) {
		engine.Calculate(items, ManualDiscounts{PackageAmount: &pkg})
		assert.InDelta(t, 1200.0, items[0].Net, 1e-9)
	})
}

func TestCalculateUnknownCategoryFallsBack(t *testing.T) {
	engine := newTestEngine(t)

	items := []LineItem{
		{Section: "Billboards", Category: rates.Category("led_wall"), Duration: rates.Duration4W, Qty: 2},
		{Section: "Billboards", Category: rates.Category("led_wall"), Duration: rates.Duration1D, Qty: 3},
	}
	totals := engine.Calculate(items, ManualDiscounts{})

	assert.InDelta(t, 2000.0, items[0].Gross, 1e-9)
	assert.Equal(t, 0.0, items[1].Gross)
	assert.InDelta(t, 2000.0, totals.Gross, 1e-9)
	assert.InDelta(t, totals.Gross, totals.Net, 1e-9)
}

func TestCalculateAnnotatesItemsInPlace(t *testing.T) {
	engine := newTestEngine(t)

	items := []LineItem{
		item("Billboards", rates.CategoryPremium, rates.Duration2W, 3),
	}
	engine.Calculate(items, ManualDiscounts{})

	assert.InDelta(t, 700*3.0, items[0].Gross, 1e-9)
	assert.InDelta(t, 700*3.0, items[0].Net, 1e-9)
}
