package allocation

import (
	"context"
)

// =============================================================================
// DIRECT ALLOCATION - Invoice amounts charged wholly to one apartment
// =============================================================================

// AllocateDirect attributes invoice amounts directly to the apartment of
// the contract they reference, bypassing proportional allocation. Only
// invoices whose service period overlaps the billing period qualify;
// buildingID, when non-nil, additionally scopes the invoices to one
// building.
//
// Multiple qualifying invoices for the same apartment accumulate before
// rounding: amounts are summed at full precision and rounded to cents
// once per apartment. Apartments with no qualifying invoice are absent
// from the result. Invoices whose contract cannot be resolved are
// skipped.
func (e *Engine) AllocateDirect(ctx context.Context, period Period, buildingID *BuildingID) (AllocationResult, error) {
	invoices, err := e.store.DirectInvoices(ctx, period, buildingID)
	if err != nil {
		return AllocationResult{}, err
	}

	result := make(AllocationResult)
	for _, inv := range invoices {
		if inv.DirectContractID == nil {
			continue
		}
		contract, err := e.store.ContractByID(ctx, *inv.DirectContractID)
		if err != nil {
			if IsNotFound(err) {
				continue
			}
			return AllocationResult{}, err
		}
		result[contract.ApartmentID] = result.Get(contract.ApartmentID).Add(inv.Amount)
	}

	for apartmentID, amount := range result {
		result[apartmentID] = round2(amount)
	}
	return result, nil
}
