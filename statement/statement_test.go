package statement_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hauswerk/billing-engine/allocation"
	"github.com/hauswerk/billing-engine/allocation/store"
	"github.com/hauswerk/billing-engine/statement"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(year int, month time.Month, day int) allocation.Date {
	return allocation.NewDate(year, month, day)
}

func january2025() allocation.Period {
	return allocation.NewPeriod(date(2025, time.January, 1), date(2025, time.January, 31))
}

// newBillingFixture sets up two apartments, a contract on apt-1, one
// cost type per policy, and the data each allocator needs.
func newBillingFixture(t *testing.T) (*store.Memory, *statement.Assembler) {
	t.Helper()
	m := store.NewMemory()
	ctx := context.Background()

	for _, apt := range []allocation.Apartment{
		{ID: "apt-1", Number: "1", SizeSQM: dec("60")},
		{ID: "apt-2", Number: "2", SizeSQM: dec("40")},
	} {
		_, err := m.AddApartment(ctx, apt)
		require.NoError(t, err)
	}

	_, err := m.AddContract(ctx, allocation.Contract{
		ID:          "c-1",
		TenantID:    "tenant-1",
		ApartmentID: "apt-1",
		Start:       date(2024, time.January, 1),
		RentAmount:  dec("800"),
	})
	require.NoError(t, err)

	for _, ct := range []allocation.CostType{
		{ID: "ct-tax", Name: "Property Tax", Unit: "m²", Policy: allocation.PolicyShare},
		{ID: "ct-water", Name: "Cold Water", Unit: "m³", Policy: allocation.PolicyConsumption},
		{ID: "ct-waste", Name: "Waste Disposal", Unit: "person-days", Policy: allocation.PolicyPersonDays},
		{ID: "ct-heating", Name: "Heating", Unit: "kWh", Policy: allocation.PolicyConsumption},
		{ID: "ct-hotwater", Name: "Hot Water", Unit: "m³", Policy: allocation.PolicyConsumption},
	} {
		_, err := m.AddCostType(ctx, ct)
		require.NoError(t, err)
	}

	// Shares: 60/40 by floor area.
	for _, s := range []allocation.ApartmentShare{
		{ApartmentID: "apt-1", CostTypeID: "ct-tax", Value: dec("60")},
		{ApartmentID: "apt-2", CostTypeID: "ct-tax", Value: dec("40")},
	} {
		_, err := m.AddShare(ctx, s)
		require.NoError(t, err)
	}

	// Water: 30/10 m³ in January.
	for _, rec := range []allocation.ConsumptionRecord{
		{ApartmentID: "apt-1", CostTypeID: "ct-water", Date: date(2025, time.January, 10), Value: dec("30")},
		{ApartmentID: "apt-2", CostTypeID: "ct-water", Date: date(2025, time.January, 10), Value: dec("10")},
	} {
		_, err := m.AddConsumption(ctx, rec)
		require.NoError(t, err)
	}

	// Occupancy: 2 vs 1 occupants for all of January.
	for _, op := range []allocation.OccupancyPeriod{
		{ApartmentID: "apt-1", Start: date(2025, time.January, 1), Occupants: 2},
		{ApartmentID: "apt-2", Start: date(2025, time.January, 1), Occupants: 1},
	} {
		_, err := m.AddOccupancy(ctx, op)
		require.NoError(t, err)
	}

	return m, statement.NewAssembler(m)
}

// =============================================================================
// CLASSIC ROW TESTS
// =============================================================================

func TestAssemble_ShareRow(t *testing.T) {
	// GIVEN: A share cost type with apt-1 holding 60 of 100
	// WHEN: Assembling a statement with a 1000.00 item
	// THEN: The row shows the cost type name, the apartment's key value,
	//       and a 600.00 share

	_, assembler := newBillingFixture(t)

	stmt, err := assembler.Assemble(context.Background(), "c-1", january2025(), []statement.CostItem{
		{Kind: statement.ItemClassic, CostTypeID: "ct-tax", TotalCost: dec("1000")},
	})
	require.NoError(t, err)

	require.Len(t, stmt.Rows, 1)
	row := stmt.Rows[0]
	assert.Equal(t, "Property Tax", row.Name)
	assert.Equal(t, "1000.00", row.TotalCost.StringFixed(2))
	assert.Equal(t, "Share (m²: 60)", row.KeyDescription)
	assert.Equal(t, "600.00", row.Share.StringFixed(2))
	assert.Empty(t, row.Error)
	assert.Equal(t, "600.00", stmt.GrandTotal.StringFixed(2))
}

func TestAssemble_ConsumptionRow(t *testing.T) {
	// apt-1 consumed 30 of 40 m³, so it carries 75% of the cost.
	_, assembler := newBillingFixture(t)

	stmt, err := assembler.Assemble(context.Background(), "c-1", january2025(), []statement.CostItem{
		{Kind: statement.ItemClassic, CostTypeID: "ct-water", TotalCost: dec("200")},
	})
	require.NoError(t, err)

	require.Len(t, stmt.Rows, 1)
	row := stmt.Rows[0]
	assert.Equal(t, "Cold Water", row.Name)
	assert.Equal(t, "Consumption (m³: 30)", row.KeyDescription)
	assert.Equal(t, "150.00", row.Share.StringFixed(2))
}

func TestAssemble_PersonDayRow(t *testing.T) {
	// 62 of 93 January person-days belong to apt-1.
	_, assembler := newBillingFixture(t)

	stmt, err := assembler.Assemble(context.Background(), "c-1", january2025(), []statement.CostItem{
		{Kind: statement.ItemClassic, CostTypeID: "ct-waste", TotalCost: dec("93")},
	})
	require.NoError(t, err)

	require.Len(t, stmt.Rows, 1)
	row := stmt.Rows[0]
	assert.Equal(t, "Waste Disposal", row.Name)
	assert.Equal(t, "Person-days: 62", row.KeyDescription)
	assert.Equal(t, "62.00", row.Share.StringFixed(2))
}

// =============================================================================
// HEATING AND DIRECT ROW TESTS
// =============================================================================

func TestAssemble_HeatingRow(t *testing.T) {
	m, assembler := newBillingFixture(t)
	ctx := context.Background()

	// Heating 60/40 kWh, hot water 50/50 m³.
	for _, rec := range []allocation.ConsumptionRecord{
		{ApartmentID: "apt-1", CostTypeID: "ct-heating", Date: date(2025, time.January, 10), Value: dec("60")},
		{ApartmentID: "apt-2", CostTypeID: "ct-heating", Date: date(2025, time.January, 10), Value: dec("40")},
		{ApartmentID: "apt-1", CostTypeID: "ct-hotwater", Date: date(2025, time.January, 10), Value: dec("50")},
		{ApartmentID: "apt-2", CostTypeID: "ct-hotwater", Date: date(2025, time.January, 10), Value: dec("50")},
	} {
		_, err := m.AddConsumption(ctx, rec)
		require.NoError(t, err)
	}

	stmt, err := assembler.Assemble(ctx, "c-1", january2025(), []statement.CostItem{
		{
			Kind:               statement.ItemHeating,
			TotalCost:          dec("1000"),
			HotWaterPercentage: dec("30"),
			HeatingCostTypeID:  "ct-heating",
			HotWaterCostTypeID: "ct-hotwater",
		},
	})
	require.NoError(t, err)

	require.Len(t, stmt.Rows, 1)
	row := stmt.Rows[0]
	assert.Equal(t, "Heating/hot water costs", row.Name)
	assert.Equal(t, "Heating/hot water split (30% | 70%) by consumption", row.KeyDescription)
	assert.Equal(t, "570.00", row.Share.StringFixed(2))
}

func TestAssemble_DirectRow(t *testing.T) {
	m, assembler := newBillingFixture(t)
	ctx := context.Background()

	cid := allocation.ContractID("c-1")
	_, err := m.AddInvoice(ctx, allocation.Invoice{
		Date:             date(2025, time.January, 5),
		Amount:           dec("75.50"),
		CostTypeID:       "ct-tax",
		PeriodStart:      date(2025, time.January, 1),
		PeriodEnd:        date(2025, time.January, 31),
		DirectContractID: &cid,
	})
	require.NoError(t, err)

	stmt, err := assembler.Assemble(ctx, "c-1", january2025(), []statement.CostItem{
		{Kind: statement.ItemDirect},
	})
	require.NoError(t, err)

	require.Len(t, stmt.Rows, 1)
	row := stmt.Rows[0]
	assert.Equal(t, "Directly allocated costs", row.Name)
	assert.Equal(t, "Direct (invoices in period)", row.KeyDescription)
	assert.Equal(t, "75.50", row.TotalCost.StringFixed(2))
	assert.Equal(t, "75.50", row.Share.StringFixed(2))
}

// =============================================================================
// DEGRADATION AND FAILURE TESTS
// =============================================================================

func TestAssemble_BadItemDegradesNotAborts(t *testing.T) {
	// GIVEN: A valid share item followed by an item naming a missing
	//        cost type
	// WHEN: Assembling
	// THEN: Both rows exist; the bad one carries an error marker and a
	//       zero share, and the grand total only reflects the good row

	_, assembler := newBillingFixture(t)

	stmt, err := assembler.Assemble(context.Background(), "c-1", january2025(), []statement.CostItem{
		{Kind: statement.ItemClassic, CostTypeID: "ct-tax", TotalCost: dec("1000")},
		{Kind: statement.ItemClassic, CostTypeID: "ct-gone", TotalCost: dec("500")},
	})
	require.NoError(t, err)

	require.Len(t, stmt.Rows, 2)
	assert.Empty(t, stmt.Rows[0].Error)
	assert.NotEmpty(t, stmt.Rows[1].Error)
	assert.Equal(t, "0.00", stmt.Rows[1].Share.StringFixed(2))
	assert.Equal(t, "600.00", stmt.GrandTotal.StringFixed(2))
}

func TestAssemble_UnknownContract(t *testing.T) {
	_, assembler := newBillingFixture(t)

	_, err := assembler.Assemble(context.Background(), "c-gone", january2025(), nil)
	assert.ErrorIs(t, err, allocation.ErrContractNotFound)
}

func TestAssemble_InvalidPeriod(t *testing.T) {
	_, assembler := newBillingFixture(t)

	backwards := allocation.NewPeriod(date(2025, time.January, 31), date(2025, time.January, 1))
	_, err := assembler.Assemble(context.Background(), "c-1", backwards, nil)
	assert.ErrorIs(t, err, allocation.ErrInvalidPeriod)
}

func TestAssemble_EmptyItems(t *testing.T) {
	_, assembler := newBillingFixture(t)

	stmt, err := assembler.Assemble(context.Background(), "c-1", january2025(), nil)
	require.NoError(t, err)

	assert.Empty(t, stmt.Rows)
	assert.Equal(t, "0.00", stmt.GrandTotal.StringFixed(2))
	assert.Equal(t, allocation.ApartmentID("apt-1"), stmt.ApartmentID)
}
