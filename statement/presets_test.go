package statement_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hauswerk/billing-engine/allocation"
	"github.com/hauswerk/billing-engine/allocation/store"
	"github.com/hauswerk/billing-engine/statement"
)

// =============================================================================
// PRESET TESTS
// =============================================================================

func addInvoiceFor(t *testing.T, m *store.Memory, costTypeID, amount string) {
	t.Helper()
	_, err := m.AddInvoice(context.Background(), allocation.Invoice{
		Date:        date(2025, time.January, 5),
		Amount:      dec(amount),
		CostTypeID:  allocation.CostTypeID(costTypeID),
		PeriodStart: date(2025, time.January, 1),
		PeriodEnd:   date(2025, time.January, 31),
	})
	require.NoError(t, err)
}

func TestBuildPreset_Standard(t *testing.T) {
	// GIVEN: One invoiced cost type per policy
	// WHEN: Building the standard preset for January
	// THEN: One classic item per policy, funded by its invoice total,
	//       plus a trailing direct item

	m, assembler := newBillingFixture(t)
	addInvoiceFor(t, m, "ct-tax", "1200")
	addInvoiceFor(t, m, "ct-water", "400")
	addInvoiceFor(t, m, "ct-waste", "300")

	items, err := assembler.BuildPreset(context.Background(), statement.PresetStandard, january2025(), nil)
	require.NoError(t, err)

	require.Len(t, items, 4)
	assert.Equal(t, statement.ItemClassic, items[0].Kind)
	assert.Equal(t, allocation.CostTypeID("ct-tax"), items[0].CostTypeID)
	assert.Equal(t, "1200.00", items[0].TotalCost.StringFixed(2))

	assert.Equal(t, allocation.CostTypeID("ct-water"), items[1].CostTypeID)
	assert.Equal(t, "400.00", items[1].TotalCost.StringFixed(2))

	assert.Equal(t, allocation.CostTypeID("ct-waste"), items[2].CostTypeID)
	assert.Equal(t, "300.00", items[2].TotalCost.StringFixed(2))

	assert.Equal(t, statement.ItemDirect, items[3].Kind)
}

func TestBuildPreset_StandardOverSparseData(t *testing.T) {
	// Without any cost types beyond the fixture's, missing invoices mean
	// zero totals but the items still appear; the preset never errors on
	// thin data.
	_, assembler := newBillingFixture(t)

	items, err := assembler.BuildPreset(context.Background(), statement.PresetStandard, january2025(), nil)
	require.NoError(t, err)

	require.Len(t, items, 4)
	assert.Equal(t, "0.00", items[0].TotalCost.StringFixed(2))
}

func TestBuildPreset_Heating3070(t *testing.T) {
	// GIVEN: Invoices of 700 for heating and 300 for hot water
	// WHEN: Building the heating preset
	// THEN: One heating item over the combined 1000.00 at 30% hot water,
	//       plus the direct item

	m, assembler := newBillingFixture(t)
	addInvoiceFor(t, m, "ct-heating", "700")
	addInvoiceFor(t, m, "ct-hotwater", "300")

	items, err := assembler.BuildPreset(context.Background(), statement.PresetHeating3070, january2025(), nil)
	require.NoError(t, err)

	require.Len(t, items, 2)
	item := items[0]
	assert.Equal(t, statement.ItemHeating, item.Kind)
	assert.Equal(t, "1000.00", item.TotalCost.StringFixed(2))
	assert.Equal(t, "30", item.HotWaterPercentage.String())
	assert.Equal(t, allocation.CostTypeID("ct-heating"), item.HeatingCostTypeID)
	assert.Equal(t, allocation.CostTypeID("ct-hotwater"), item.HotWaterCostTypeID)
	assert.Equal(t, statement.ItemDirect, items[1].Kind)
}

func TestBuildPreset_Heating3070_NoInvoices(t *testing.T) {
	// A zero combined total yields no heating item, just the direct one.
	_, assembler := newBillingFixture(t)

	items, err := assembler.BuildPreset(context.Background(), statement.PresetHeating3070, january2025(), nil)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, statement.ItemDirect, items[0].Kind)
}

func TestBuildPreset_DirectOnly(t *testing.T) {
	_, assembler := newBillingFixture(t)

	items, err := assembler.BuildPreset(context.Background(), statement.PresetDirectOnly, january2025(), nil)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, statement.ItemDirect, items[0].Kind)
}

func TestBuildPreset_Unknown(t *testing.T) {
	_, assembler := newBillingFixture(t)

	_, err := assembler.BuildPreset(context.Background(), "bogus", january2025(), nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}
