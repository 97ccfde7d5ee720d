/*
store.go - Read-only data-store interface for the engine

PURPOSE:
  Defines the interface between the allocation algorithms and whatever
  holds the master and consumption data. The engine only ever reads:
  aggregated sums, grouped aggregates, and entity lookups. Persistence,
  schema, and write paths are the store's concern, not the engine's.

KEY QUERIES:
  GetCostType:         policy-tag resolution (every allocator starts here)
  SumConsumption:      per-apartment consumption totals in a period
  SharesFor:           static allocation key values for a cost type
  OccupancyPeriodsFor: occupancy intervals overlapping a period
  DirectInvoices:      invoices bound to a contract, overlapping a period
  SumInvoiceAmounts:   invoice totals per cost type (statement inputs)

SNAPSHOT SEMANTICS:
  Each allocator call is a self-contained computation over whatever the
  store returns. Consistency across concurrent statement runs is the
  store's responsibility (read snapshots); the engine performs no
  mutation and holds no state between calls.

IMPLEMENTATIONS:
  - store/sqlite: production SQLite store
  - allocation/store: in-memory store for tests and development

SEE ALSO:
  - engine.go: Engine holding a Store
  - errors.go: sentinel errors store implementations must return
*/
package allocation

import (
	"context"

	"github.com/shopspring/decimal"
)

// Store is the engine's read-only data collaborator.
//
// Lookup methods return ErrCostTypeNotFound / ErrContractNotFound /
// ErrApartmentNotFound when the entity does not exist, so that callers
// can distinguish "missing" from store failure with errors.Is.
type Store interface {
	// GetCostType resolves a cost type and its policy tag.
	GetCostType(ctx context.Context, id CostTypeID) (*CostType, error)

	// ListCostTypes returns cost types with the given policy tag,
	// ordered by name. An empty tag returns all cost types.
	ListCostTypes(ctx context.Context, tag PolicyTag) ([]CostType, error)

	// GetApartment resolves a single apartment.
	GetApartment(ctx context.Context, id ApartmentID) (*Apartment, error)

	// ListApartments returns every known apartment, ordered by number.
	ListApartments(ctx context.Context) ([]Apartment, error)

	// SharesFor returns all allocation key values recorded for a cost type.
	SharesFor(ctx context.Context, costTypeID CostTypeID) ([]ApartmentShare, error)

	// SumConsumption groups consumption records for a cost type whose date
	// falls within the period (inclusive) and sums their values per
	// apartment. Apartments without any in-period record are absent from
	// the map.
	SumConsumption(ctx context.Context, costTypeID CostTypeID, period Period) (map[ApartmentID]decimal.Decimal, error)

	// SumConsumptionFor sums one apartment's in-period consumption for a
	// cost type. Returns zero when there are no records.
	SumConsumptionFor(ctx context.Context, costTypeID CostTypeID, apartmentID ApartmentID, period Period) (decimal.Decimal, error)

	// OccupancyPeriodsFor returns the apartment's occupancy intervals that
	// overlap the period (ongoing intervals included).
	OccupancyPeriodsFor(ctx context.Context, apartmentID ApartmentID, period Period) ([]OccupancyPeriod, error)

	// DirectInvoices returns invoices carrying a direct contract reference
	// whose service period overlaps the given period, optionally scoped to
	// a building.
	DirectInvoices(ctx context.Context, period Period, buildingID *BuildingID) ([]Invoice, error)

	// SumInvoiceAmounts totals invoice amounts for a cost type whose
	// service period overlaps the given period, optionally scoped to a
	// building. Direct and non-direct invoices both count.
	SumInvoiceAmounts(ctx context.Context, costTypeID CostTypeID, period Period, buildingID *BuildingID) (decimal.Decimal, error)

	// ContractByID resolves a contract (for direct attribution and
	// statement scoping).
	ContractByID(ctx context.Context, id ContractID) (*Contract, error)
}
