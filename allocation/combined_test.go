package allocation_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hauswerk/billing-engine/allocation"
)

// =============================================================================
// COMBINED ALLOCATION TESTS
// =============================================================================

func TestAllocateCombined_MixedRules(t *testing.T) {
	// GIVEN: Three rules summing to 100%
	//   30% share portion 300      (shares apt-1:60, apt-2:40)
	//   45% consumption portion 450 (water apt-1:2, apt-2:1 in January)
	//   25% share portion 250
	// WHEN: Running the batch
	// THEN: Partials sum per apartment, no warnings
	//   apt-1: 180 + 300 + 150 = 630.00
	//   apt-2: 120 + 150 + 100 = 370.00

	m, engine := newFixture(t)
	addShare(t, m, "apt-1", "ct-share", "60")
	addShare(t, m, "apt-2", "ct-share", "40")
	addConsumption(t, m, "apt-1", "ct-water", date(2025, time.January, 10), "2")
	addConsumption(t, m, "apt-2", "ct-water", date(2025, time.January, 10), "1")

	period := january2025()
	rules := []allocation.CombinedRule{
		{CostTypeID: "ct-share", Percentage: dec("30"), CostPortion: dec("300")},
		{CostTypeID: "ct-water", Percentage: dec("45"), CostPortion: dec("450"), Period: &period},
		{CostTypeID: "ct-share", Percentage: dec("25"), CostPortion: dec("250")},
	}

	result, warnings, err := engine.AllocateCombined(context.Background(), rules)
	require.NoError(t, err)

	assert.Empty(t, warnings)
	assert.Len(t, result, 2)
	assertAmount(t, result, "apt-1", "630.00")
	assertAmount(t, result, "apt-2", "370.00")
	assert.Equal(t, "1000.00", result.Total().StringFixed(2))
}

func TestAllocateCombined_SkipsUnresolvableRule(t *testing.T) {
	// GIVEN: One valid share rule and one rule naming a missing cost type
	// WHEN: Running the batch
	// THEN: The bad rule is skipped with a warning, the good rule allocates

	m, engine := newFixture(t)
	addShare(t, m, "apt-1", "ct-share", "100")

	rules := []allocation.CombinedRule{
		{CostTypeID: "ct-share", Percentage: dec("60"), CostPortion: dec("600")},
		{CostTypeID: "ct-missing", Percentage: dec("40"), CostPortion: dec("400")},
	}

	result, warnings, err := engine.AllocateCombined(context.Background(), rules)
	require.NoError(t, err)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "ct-missing")
	assert.Contains(t, warnings[0], "skipped")
	assertAmount(t, result, "apt-1", "600.00")
}

func TestAllocateCombined_ConsumptionRuleWithoutPeriod(t *testing.T) {
	// A consumption rule without a period cannot run; it is skipped, not
	// a batch failure.
	m, engine := newFixture(t)
	addConsumption(t, m, "apt-1", "ct-water", date(2025, time.January, 10), "5")

	rules := []allocation.CombinedRule{
		{CostTypeID: "ct-water", Percentage: dec("100"), CostPortion: dec("500")},
	}

	result, warnings, err := engine.AllocateCombined(context.Background(), rules)
	require.NoError(t, err)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "billing period")
	assert.Empty(t, result)
}

func TestAllocateCombined_PersonDayRuleUnsupported(t *testing.T) {
	// Person-day cost types are not valid combined rule targets; such a
	// rule is skipped with a warning.
	_, engine := newFixture(t)

	rules := []allocation.CombinedRule{
		{CostTypeID: "ct-waste", Percentage: dec("100"), CostPortion: dec("500")},
	}

	result, warnings, err := engine.AllocateCombined(context.Background(), rules)
	require.NoError(t, err)

	require.Len(t, warnings, 1)
	assert.Empty(t, result)
}

func TestAllocateCombined_PercentageDriftWarning(t *testing.T) {
	// GIVEN: Rules summing to 75%
	// WHEN: Running the batch
	// THEN: The allocation proceeds but a drift warning is emitted

	m, engine := newFixture(t)
	addShare(t, m, "apt-1", "ct-share", "100")

	rules := []allocation.CombinedRule{
		{CostTypeID: "ct-share", Percentage: dec("30"), CostPortion: dec("300")},
		{CostTypeID: "ct-share", Percentage: dec("45"), CostPortion: dec("450")},
	}

	result, warnings, err := engine.AllocateCombined(context.Background(), rules)
	require.NoError(t, err)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "75")
	assertAmount(t, result, "apt-1", "750.00")
}

func TestAllocateCombined_SkippedRulePercentageStillCounts(t *testing.T) {
	// Percentages accumulate over all rules, skipped ones included, so a
	// batch that names 100% across its rules raises no drift warning even
	// when a rule fails to run.
	m, engine := newFixture(t)
	addShare(t, m, "apt-1", "ct-share", "100")

	rules := []allocation.CombinedRule{
		{CostTypeID: "ct-share", Percentage: dec("60"), CostPortion: dec("600")},
		{CostTypeID: "ct-missing", Percentage: dec("40"), CostPortion: dec("400")},
	}

	_, warnings, err := engine.AllocateCombined(context.Background(), rules)
	require.NoError(t, err)

	require.Len(t, warnings, 1, "only the skip warning, no drift warning")
	assert.Contains(t, warnings[0], "skipped")
}

func TestAllocateCombined_EmptyRules(t *testing.T) {
	_, engine := newFixture(t)

	result, warnings, err := engine.AllocateCombined(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.Empty(t, warnings)
}

func TestAllocateCombined_BoundaryPercentagesNoWarning(t *testing.T) {
	// Sums of exactly 99.99 and 100.01 are inside the tolerance.
	m, engine := newFixture(t)
	addShare(t, m, "apt-1", "ct-share", "100")

	for _, pct := range []string{"99.99", "100.01", "100"} {
		rules := []allocation.CombinedRule{
			{CostTypeID: "ct-share", Percentage: dec(pct), CostPortion: dec("100")},
		}
		_, warnings, err := engine.AllocateCombined(context.Background(), rules)
		require.NoError(t, err)
		assert.Empty(t, warnings, "pct=%s", pct)
	}
}
