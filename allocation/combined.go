package allocation

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// COMBINED ALLOCATION - Heterogeneous percentage-weighted rule sets
// =============================================================================

// CombinedRule names one portion of a combined cost: a cost type, the
// percentage of the overall cost it represents (consistency check only),
// and the monetary portion to allocate. Consumption-tagged rules must
// carry a billing period; share-tagged rules ignore it.
type CombinedRule struct {
	CostTypeID  CostTypeID
	Percentage  decimal.Decimal
	CostPortion decimal.Decimal
	Period      *Period
}

// Percentage drift outside [99.99, 100.01] triggers a warning.
var (
	percentageLow  = decimal.RequireFromString("99.99")
	percentageHigh = decimal.RequireFromString("100.01")
)

// AllocateCombined runs a list of heterogeneous rules and sums their
// partial allocations into one per-apartment total.
//
// Each rule is dispatched by its cost type's policy tag: share rules go
// through AllocateByShare, consumption rules through
// AllocateByConsumption. A rule that cannot be resolved (missing cost
// type, unsupported policy, consumption rule without a period, failed
// sub-allocation) is skipped with a warning; the batch never aborts.
// Percentages are accumulated across all rules, including skipped ones,
// and a drift outside [99.99, 100.01] produces a warning only - the
// computation proceeds with whatever rules succeeded.
//
// Apartments absent from a partial allocation contribute zero to that
// rule. Final per-apartment totals are rounded to 2 decimals. An empty
// rule list yields an empty result.
func (e *Engine) AllocateCombined(ctx context.Context, rules []CombinedRule) (AllocationResult, []string, error) {
	result := make(AllocationResult)
	var warnings []string
	percentageTotal := decimal.Zero

	for i, rule := range rules {
		percentageTotal = percentageTotal.Add(rule.Percentage)

		partial, err := e.allocateRule(ctx, rule)
		if err != nil {
			if !IsSkippable(err) {
				// Store failure, not a malformed rule.
				return AllocationResult{}, warnings, err
			}
			warnings = append(warnings, fmt.Sprintf("rule %d (cost type %s) skipped: %v", i, rule.CostTypeID, err))
			continue
		}

		for apartmentID, amount := range partial {
			result[apartmentID] = result.Get(apartmentID).Add(amount)
		}
	}

	if len(rules) > 0 && (percentageTotal.LessThan(percentageLow) || percentageTotal.GreaterThan(percentageHigh)) {
		warnings = append(warnings, fmt.Sprintf("rule percentages sum to %s, expected 100", percentageTotal))
	}

	for apartmentID, amount := range result {
		result[apartmentID] = round2(amount)
	}
	return result, warnings, nil
}

// allocateRule dispatches one rule by policy tag.
func (e *Engine) allocateRule(ctx context.Context, rule CombinedRule) (AllocationResult, error) {
	costType, err := e.store.GetCostType(ctx, rule.CostTypeID)
	if err != nil {
		return nil, err
	}

	switch costType.Policy {
	case PolicyShare:
		return e.AllocateByShare(ctx, rule.CostTypeID, rule.CostPortion)
	case PolicyConsumption:
		if rule.Period == nil {
			return nil, ErrMissingPeriod
		}
		return e.AllocateByConsumption(ctx, rule.CostTypeID, rule.CostPortion, *rule.Period)
	default:
		return nil, &PolicyMismatchError{CostTypeID: rule.CostTypeID, Want: PolicyShare, Got: costType.Policy}
	}
}
