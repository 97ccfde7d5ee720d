package allocation

import (
	"context"

	"github.com/shopspring/decimal"
)

// =============================================================================
// HEATING ALLOCATION - Two-key consumption split (hot water | heating)
// =============================================================================

// AllocateHeating splits totalCost into a hot-water fraction and a
// heating fraction by hotWaterPercentage, allocates each fraction by
// consumption against its own cost type, and sums the two per-apartment
// results.
//
// The heating part is computed by subtraction (total - hot water part),
// so the two parts sum to totalCost exactly for any percentage. A side
// with no data, a missing cost type, or a policy mismatch contributes
// zero to every apartment present on the other side.
func (e *Engine) AllocateHeating(ctx context.Context, totalCost, hotWaterPercentage decimal.Decimal, heatingCostTypeID, hotWaterCostTypeID CostTypeID, period Period) (AllocationResult, error) {
	hotWaterCost := totalCost.Mul(hotWaterPercentage).Div(hundred)
	heatingCost := totalCost.Sub(hotWaterCost)

	hotWater, err := e.AllocateByConsumption(ctx, hotWaterCostTypeID, hotWaterCost, period)
	if err != nil {
		if !IsSkippable(err) {
			return AllocationResult{}, err
		}
		hotWater = AllocationResult{}
	}
	heating, err := e.AllocateByConsumption(ctx, heatingCostTypeID, heatingCost, period)
	if err != nil {
		if !IsSkippable(err) {
			return AllocationResult{}, err
		}
		heating = AllocationResult{}
	}

	result := make(AllocationResult, len(hotWater)+len(heating))
	for apartmentID := range hotWater {
		result[apartmentID] = round2(hotWater.Get(apartmentID).Add(heating.Get(apartmentID)))
	}
	for apartmentID := range heating {
		if _, done := result[apartmentID]; !done {
			result[apartmentID] = round2(hotWater.Get(apartmentID).Add(heating.Get(apartmentID)))
		}
	}
	return result, nil
}

// HeatingSplit returns the exact (hotWaterCost, heatingCost) pair used
// by AllocateHeating. Exposed for statement descriptions.
func HeatingSplit(totalCost, hotWaterPercentage decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	hotWaterCost := totalCost.Mul(hotWaterPercentage).Div(hundred)
	return hotWaterCost, totalCost.Sub(hotWaterCost)
}
