package mockdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marquee-ooh/marquee/internal/rates"
)

func TestScreensFixture(t *testing.T) {
	screens, err := Screens()
	require.NoError(t, err)
	require.NotEmpty(t, screens)

	table, err := rates.DefaultTable()
	require.NoError(t, err)

	for _, screen := range screens {
		assert.NotEmpty(t, screen.ID)
		assert.Greater(t, screen.Capacity, 0, "screen %s", screen.ID)
		assert.Greater(t, screen.Imp2Weeks, 0.0, "screen %s", screen.ID)
		_, known := table.BaseRate(screen.Category, rates.Duration4W)
		assert.True(t, known, "screen %s category %s not in rate card", screen.ID, screen.Category)
	}
}

func TestPricingRulesReferenceScreens(t *testing.T) {
	screens, err := Screens()
	require.NoError(t, err)
	ids := make(map[string]bool, len(screens))
	for _, s := range screens {
		ids[s.ID] = true
	}

	rules, err := PricingRules()
	require.NoError(t, err)
	require.NotEmpty(t, rules)
	for _, rule := range rules {
		assert.True(t, ids[rule.ScreenID], "rule %s references unknown screen %s", rule.ID, rule.ScreenID)
		assert.Greater(t, rule.PricePerDay, 0.0)
		assert.NotEmpty(t, rule.SlotTime)
	}
}

func TestContractsFixture(t *testing.T) {
	screens, err := Screens()
	require.NoError(t, err)
	ids := make(map[string]bool, len(screens))
	for _, s := range screens {
		ids[s.ID] = true
	}

	list, err := Contracts()
	require.NoError(t, err)
	require.NotEmpty(t, list)
	for _, c := range list {
		assert.NotEmpty(t, c.TenantName)
		assert.False(t, c.EndDate.Before(c.StartDate), "contract %s has inverted dates", c.ID)
		if !c.AllScreens {
			require.NotEmpty(t, c.ScreenIDs, "contract %s covers no screens", c.ID)
			for _, id := range c.ScreenIDs {
				assert.True(t, ids[id], "contract %s references unknown screen %s", c.ID, id)
			}
		}
	}
}
