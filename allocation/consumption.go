package allocation

import (
	"context"

	"github.com/shopspring/decimal"
)

// =============================================================================
// CONSUMPTION ALLOCATION - Proportional to metered in-period consumption
// =============================================================================

// AllocateByConsumption distributes totalCost across apartments in
// proportion to their summed metered consumption within the period
// (inclusive on both ends).
//
// Only apartments with at least one in-period consumption record appear
// in the result: absence of records is distinct from an explicit zero.
// Apartments whose in-period records sum to zero or less map to 0.00.
// If the grand total over positive consumers is not positive, every
// recorded participant maps to 0.00. A missing cost type or one whose
// policy is not "consumption" yields an empty result and a sentinel
// error.
func (e *Engine) AllocateByConsumption(ctx context.Context, costTypeID CostTypeID, totalCost decimal.Decimal, period Period) (AllocationResult, error) {
	costType, err := e.store.GetCostType(ctx, costTypeID)
	if err != nil {
		return AllocationResult{}, err
	}
	if costType.Policy != PolicyConsumption {
		return AllocationResult{}, &PolicyMismatchError{CostTypeID: costTypeID, Want: PolicyConsumption, Got: costType.Policy}
	}
	if !period.Valid() {
		return AllocationResult{}, ErrInvalidPeriod
	}

	sums, err := e.store.SumConsumption(ctx, costTypeID, period)
	if err != nil {
		return AllocationResult{}, err
	}

	grandTotal := decimal.Zero
	for _, v := range sums {
		if v.IsPositive() {
			grandTotal = grandTotal.Add(v)
		}
	}

	result := make(AllocationResult, len(sums))
	for apartmentID, v := range sums {
		if grandTotal.IsPositive() && v.IsPositive() {
			result[apartmentID] = proportion(v, grandTotal, totalCost)
		} else {
			result[apartmentID] = decimal.Zero.Round(2)
		}
	}
	return result, nil
}
