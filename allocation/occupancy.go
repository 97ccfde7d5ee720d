package allocation

import (
	"context"

	"github.com/shopspring/decimal"
)

// =============================================================================
// PERSON DAYS - Occupant-day calculation and building-wide allocation
// =============================================================================

// PersonDays sums occupant-days for one apartment across all occupancy
// intervals overlapping the billing period. One occupant present for one
// day counts as one person-day; day counting is inclusive on both ends
// and open-ended occupancies are clipped to the period end. Returns 0
// when the apartment has no overlapping occupancy.
func (e *Engine) PersonDays(ctx context.Context, apartmentID ApartmentID, period Period) (int, error) {
	periods, err := e.store.OccupancyPeriodsFor(ctx, apartmentID, period)
	if err != nil {
		return 0, err
	}
	days := 0
	for _, op := range periods {
		days += period.OverlapDays(op.Start, op.End) * op.Occupants
	}
	return days, nil
}

// AllocateByPersonDays distributes totalCost across ALL apartments in
// proportion to their occupant-days within the period. The denominator
// is building-wide: unlike consumption allocation, every known
// apartment appears in the result, with 0.00 for apartments without
// occupancy. If no apartment has occupant-days, every apartment maps to
// 0.00.
func (e *Engine) AllocateByPersonDays(ctx context.Context, totalCost decimal.Decimal, period Period) (AllocationResult, error) {
	apartments, err := e.store.ListApartments(ctx)
	if err != nil {
		return AllocationResult{}, err
	}

	days := make(map[ApartmentID]int, len(apartments))
	totalDays := 0
	for _, apt := range apartments {
		d, err := e.PersonDays(ctx, apt.ID, period)
		if err != nil {
			return AllocationResult{}, err
		}
		days[apt.ID] = d
		totalDays += d
	}

	result := make(AllocationResult, len(apartments))
	for _, apt := range apartments {
		d := days[apt.ID]
		if totalDays > 0 && d > 0 {
			result[apt.ID] = proportion(decimal.NewFromInt(int64(d)), decimal.NewFromInt(int64(totalDays)), totalCost)
		} else {
			result[apt.ID] = decimal.Zero.Round(2)
		}
	}
	return result, nil
}
