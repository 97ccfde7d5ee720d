package allocation

import (
	"context"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SHARE ALLOCATION - Proportional to static allocation key values
// =============================================================================

// AllocateByShare distributes totalCost across apartments in proportion
// to the static share value (e.g. floor area) recorded per apartment for
// the cost type.
//
// Every apartment holding a share row for the cost type appears in the
// result, including apartments whose value is zero or negative (mapped
// to 0.00). If the summed share is not positive, every participant maps
// to 0.00. A missing cost type or one whose policy is not "share"
// yields an empty result and a sentinel error.
func (e *Engine) AllocateByShare(ctx context.Context, costTypeID CostTypeID, totalCost decimal.Decimal) (AllocationResult, error) {
	costType, err := e.store.GetCostType(ctx, costTypeID)
	if err != nil {
		return AllocationResult{}, err
	}
	if costType.Policy != PolicyShare {
		return AllocationResult{}, &PolicyMismatchError{CostTypeID: costTypeID, Want: PolicyShare, Got: costType.Policy}
	}

	shares, err := e.store.SharesFor(ctx, costTypeID)
	if err != nil {
		return AllocationResult{}, err
	}

	totalShare := decimal.Zero
	for _, s := range shares {
		totalShare = totalShare.Add(s.Value)
	}

	result := make(AllocationResult, len(shares))
	for _, s := range shares {
		if totalShare.IsPositive() && s.Value.IsPositive() {
			result[s.ApartmentID] = proportion(s.Value, totalShare, totalCost)
		} else {
			result[s.ApartmentID] = decimal.Zero.Round(2)
		}
	}
	return result, nil
}
