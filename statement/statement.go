/*
Package statement assembles tenant utility statements on top of the
allocation engine.

PURPOSE:
  For one contract and a billing period, run an ordered list of cost
  items through the appropriate allocators, extract the contract's
  apartment share from each result, and accumulate display rows plus a
  grand total. Rendering (PDF, HTML, currency formatting) is an external
  concern; this package emits plain data.

COST ITEM KINDS:
  classic  One cost type + total cost, dispatched by the type's policy
           tag (share / consumption / person_days).
  heating  A heating/hot-water split across two consumption cost types.
  direct   Direct invoice attribution for the contract's building.

DEGRADATION:
  A failing item never aborts the statement: its row carries a 0.00
  share and an error marker, and processing continues. A statement over
  a partially malformed item list is a best-effort preview, not an
  error.

SEE ALSO:
  - allocation: the engine this package drives
  - presets.go: building cost-item lists from invoices
*/
package statement

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hauswerk/billing-engine/allocation"
)

// =============================================================================
// COST ITEMS
// =============================================================================

type ItemKind string

const (
	ItemClassic ItemKind = "classic"
	ItemHeating ItemKind = "heating"
	ItemDirect  ItemKind = "direct"
)

/// CostItem is one line of a statement request. Fields are used per kind:
// classic reads CostTypeID and TotalCost; heating reads TotalCost,
// HotWaterPercentage and the two consumption cost types; direct needs
// nothing beyond the statement's contract and period.
type CostItem struct {
	Kind               ItemKind
	CostTypeID         allocation.CostTypeID
	TotalCost          decimal.Decimal
	HotWaterPercentage decimal.Decimal
	HeatingCostTypeID  allocation.CostTypeID
	HotWaterCostTypeID allocation.CostTypeID
}

// =============================================================================
// OUTPUT
// =============================================================================

// Row is one assembled statement line. KeyDescription summarizes the
// allocation denominator for display ("Consumption (kWh: 123.45)"); it
// carries no formatting beyond plain text. Error is non-empty when the
// item's computation failed and the row degraded to a zero share.
type Row struct {
	Name           string
	TotalCost      decimal.Decimal
	KeyDescription string
	Share          decimal.Decimal
	Error          string
}

// Statement is the assembled result for one contract and period.
type Statement struct {
	ContractID  allocation.ContractID
	ApartmentID allocation.ApartmentID
	Period      allocation.Period
	Rows        []Row
	GrandTotal  decimal.Decimal
}

// =============================================================================
// ASSEMBLER
// =============================================================================

// Assembler drives the allocation engine to build statements.
type Assembler struct {
	store  allocation.Store
	engine *allocation.Engine
}

func NewAssembler(store allocation.Store) *Assembler {
	return &Assembler{store: store, engine: allocation.NewEngine(store)}
}

// Assemble builds a statement for the contract over the period from an
// ordered list of cost items. Only an unresolvable contract or an
// invalid period fails the call; individual item failures degrade to
// zero-share rows with error markers.
func (a *Assembler) Assemble(ctx context.Context, contractID allocation.ContractID, period allocation.Period, items []CostItem) (*Statement, error) {
	if !period.Valid() {
		return nil, allocation.ErrInvalidPeriod
	}
	contract, err := a.store.ContractByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	apartmentID := contract.ApartmentID

	// Building scope for direct items comes from the contract's apartment
	// when resolvable; direct allocation runs unscoped otherwise.
	var buildingID *allocation.BuildingID
	if apartment, err := a.store.GetApartment(ctx, apartmentID); err == nil {
		buildingID = apartment.BuildingID
	}

	stmt := &Statement{
		ContractID:  contractID,
		ApartmentID: apartmentID,
		Period:      period,
		GrandTotal:  decimal.Zero.Round(2),
	}

	for _, item := range items {
		var row Row
		switch item.Kind {
		case ItemDirect:
			row = a.directRow(ctx, apartmentID, period, buildingID)
		case ItemHeating:
			row = a.heatingRow(ctx, apartmentID, period, item)
		default:
			row = a.classicRow(ctx, apartmentID, period, item)
		}
		stmt.Rows = append(stmt.Rows, row)
		stmt.GrandTotal = stmt.GrandTotal.Add(row.Share)
	}
	return stmt, nil
}

func (a *Assembler) directRow(ctx context.Context, apartmentID allocation.ApartmentID, period allocation.Period, buildingID *allocation.BuildingID) Row {
	row := Row{
		Name:           "Directly allocated costs",
		KeyDescription: "Direct (invoices in period)",
		Share:          decimal.Zero.Round(2),
	}
	alloc, err := a.engine.AllocateDirect(ctx, period, buildingID)
	if err != nil {
		row.Error = err.Error()
		return row
	}
	row.TotalCost = alloc.Total()
	row.Share = alloc.Get(apartmentID)
	return row
}

func (a *Assembler) heatingRow(ctx context.Context, apartmentID allocation.ApartmentID, period allocation.Period, item CostItem) Row {
	row := Row{
		Name:      "Heating/hot water costs",
		TotalCost: item.TotalCost,
		KeyDescription: fmt.Sprintf("Heating/hot water split (%s%% | %s%%) by consumption",
			item.HotWaterPercentage.Round(0), decimal.NewFromInt(100).Sub(item.HotWaterPercentage).Round(0)),
		Share: decimal.Zero.Round(2),
	}
	alloc, err := a.engine.AllocateHeating(ctx, item.TotalCost, item.HotWaterPercentage,
		item.HeatingCostTypeID, item.HotWaterCostTypeID, period)
	if err != nil {
		row.Error = err.Error()
		return row
	}
	row.Share = alloc.Get(apartmentID)
	return row
}

func (a *Assembler) classicRow(ctx context.Context, apartmentID allocation.ApartmentID, period allocation.Period, item CostItem) Row {
	row := Row{
		Name:      "Cost type " + string(item.CostTypeID),
		TotalCost: item.TotalCost,
		Share:     decimal.Zero.Round(2),
	}

	costType, err := a.store.GetCostType(ctx, item.CostTypeID)
	if err != nil {
		row.Error = err.Error()
		return row
	}
	row.Name = costType.Name

	var alloc allocation.AllocationResult
	switch costType.Policy {
	case allocation.PolicyShare:
		alloc, err = a.engine.AllocateByShare(ctx, item.CostTypeID, item.TotalCost)
		if err == nil {
			row.KeyDescription = a.shareKeyDescription(ctx, costType, apartmentID)
		}
	case allocation.PolicyConsumption:
		alloc, err = a.engine.AllocateByConsumption(ctx, item.CostTypeID, item.TotalCost, period)
		if err == nil {
			row.KeyDescription = a.consumptionKeyDescription(ctx, costType, apartmentID, period)
		}
	case allocation.PolicyPersonDays:
		alloc, err = a.engine.AllocateByPersonDays(ctx, item.TotalCost, period)
		if err == nil {
			row.KeyDescription = a.personDayKeyDescription(ctx, apartmentID, period)
		}
	default:
		err = &allocation.PolicyMismatchError{CostTypeID: item.CostTypeID, Want: allocation.PolicyShare, Got: costType.Policy}
	}
	if err != nil {
		row.Error = err.Error()
		return row
	}

	row.Share = alloc.Get(apartmentID)
	return row
}

// =============================================================================
// KEY DESCRIPTIONS - Denominator summaries for display only
// =============================================================================

func (a *Assembler) shareKeyDescription(ctx context.Context, costType *allocation.CostType, apartmentID allocation.ApartmentID) string {
	shares, err := a.store.SharesFor(ctx, costType.ID)
	if err == nil {
		for _, s := range shares {
			if s.ApartmentID == apartmentID {
				return fmt.Sprintf("Share (%s: %s)", costType.Unit, s.Value)
			}
		}
	}
	return fmt.Sprintf("Share (%s: N/A)", costType.Unit)
}

func (a *Assembler) consumptionKeyDescription(ctx context.Context, costType *allocation.CostType, apartmentID allocation.ApartmentID, period allocation.Period) string {
	sum, err := a.store.SumConsumptionFor(ctx, costType.ID, apartmentID, period)
	if err != nil {
		sum = decimal.Zero
	}
	return fmt.Sprintf("Consumption (%s: %s)", costType.Unit, sum.Round(2))
}

func (a *Assembler) personDayKeyDescription(ctx context.Context, apartmentID allocation.ApartmentID, period allocation.Period) string {
	days, err := a.engine.PersonDays(ctx, apartmentID, period)
	if err != nil {
		days = 0
	}
	return fmt.Sprintf("Person-days: %d", days)
}
