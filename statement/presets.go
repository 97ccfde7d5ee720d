package statement

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hauswerk/billing-engine/allocation"
)

// =============================================================================
// PRESETS - Canned cost-item lists derived from recorded invoices
// =============================================================================

const (
	// PresetStandard picks one cost type per policy (the first share
	// type, a water-ish consumption type, the first person-day type),
	// each funded by its in-period invoice total, plus direct costs.
	PresetStandard = "standard"

	// PresetHeating3070 builds a single heating item at 30% hot water
	// from the first "heating"/"hot water" consumption types, plus
	// direct costs.
	PresetHeating3070 = "heating_30_70"

	// PresetDirectOnly bills nothing but directly attributed invoices.
	PresetDirectOnly = "direct_only"
)

var thirtyPercent = decimal.NewFromInt(30)

// BuildPreset translates a preset name into a concrete cost-item list
// for the period. Cost types that do not exist are silently left out;
// a preset over an empty database yields just its direct item (or an
// empty list). Unknown preset names are an error.
func (a *Assembler) BuildPreset(ctx context.Context, preset string, period allocation.Period, buildingID *allocation.BuildingID) ([]CostItem, error) {
	switch preset {
	case PresetStandard:
		return a.standardItems(ctx, period, buildingID)
	case PresetHeating3070:
		return a.heatingItems(ctx, period, buildingID)
	case PresetDirectOnly:
		return []CostItem{{Kind: ItemDirect}}, nil
	default:
		return nil, fmt.Errorf("unknown preset %q", preset)
	}
}

func (a *Assembler) standardItems(ctx context.Context, period allocation.Period, buildingID *allocation.BuildingID) ([]CostItem, error) {
	var items []CostItem

	if share, err := a.firstCostType(ctx, allocation.PolicyShare, ""); err != nil {
		return nil, err
	} else if share != nil {
		total, err := a.store.SumInvoiceAmounts(ctx, share.ID, period, buildingID)
		if err != nil {
			return nil, err
		}
		items = append(items, CostItem{Kind: ItemClassic, CostTypeID: share.ID, TotalCost: total})
	}

	if water, err := a.firstCostType(ctx, allocation.PolicyConsumption, "water"); err != nil {
		return nil, err
	} else if water != nil {
		total, err := a.store.SumInvoiceAmounts(ctx, water.ID, period, buildingID)
		if err != nil {
			return nil, err
		}
		items = append(items, CostItem{Kind: ItemClassic, CostTypeID: water.ID, TotalCost: total})
	}

	if personDays, err := a.firstCostType(ctx, allocation.PolicyPersonDays, ""); err != nil {
		return nil, err
	} else if personDays != nil {
		total, err := a.store.SumInvoiceAmounts(ctx, personDays.ID, period, buildingID)
		if err != nil {
			return nil, err
		}
		items = append(items, CostItem{Kind: ItemClassic, CostTypeID: personDays.ID, TotalCost: total})
	}

	return append(items, CostItem{Kind: ItemDirect}), nil
}

func (a *Assembler) heatingItems(ctx context.Context, period allocation.Period, buildingID *allocation.BuildingID) ([]CostItem, error) {
	var items []CostItem

	heating, err := a.firstCostType(ctx, allocation.PolicyConsumption, "heat")
	if err != nil {
		return nil, err
	}
	hotWater, err := a.firstCostType(ctx, allocation.PolicyConsumption, "hot water")
	if err != nil {
		return nil, err
	}

	if heating != nil && hotWater != nil {
		heatingTotal, err := a.store.SumInvoiceAmounts(ctx, heating.ID, period, buildingID)
		if err != nil {
			return nil, err
		}
		hotWaterTotal, err := a.store.SumInvoiceAmounts(ctx, hotWater.ID, period, buildingID)
		if err != nil {
			return nil, err
		}
		total := heatingTotal.Add(hotWaterTotal)
		if total.IsPositive() {
			items = append(items, CostItem{
				Kind:               ItemHeating,
				TotalCost:          total,
				HotWaterPercentage: thirtyPercent,
				HeatingCostTypeID:  heating.ID,
				HotWaterCostTypeID: hotWater.ID,
			})
		}
	}

	return append(items, CostItem{Kind: ItemDirect}), nil
}

// firstCostType returns the first cost type with the tag whose name
// contains the given fragment (case-insensitive), or the first overall
// when the fragment is empty. Nil without error when nothing matches.
func (a *Assembler) firstCostType(ctx context.Context, tag allocation.PolicyTag, nameFragment string) (*allocation.CostType, error) {
	costTypes, err := a.store.ListCostTypes(ctx, tag)
	if err != nil {
		return nil, err
	}
	for i := range costTypes {
		if nameFragment == "" || strings.Contains(strings.ToLower(costTypes[i].Name), nameFragment) {
			return &costTypes[i], nil
		}
	}
	return nil, nil
}
