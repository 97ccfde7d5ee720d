/*
Package allocation provides the core cost allocation engine.

PURPOSE:
  This package contains the types and algorithms that apportion a total
  operating cost for a building (utilities, taxes, maintenance) among
  apartments for a billing period. Four allocation policies are supported:
  static shares (e.g. floor area), metered consumption, occupant-days,
  and a heating-specific two-key split. Direct invoice attribution and
  the combination of heterogeneous rules complete the engine.

KEY CONCEPTS IN THIS FILE (types.go):
  - AllocationResult: the universal output shape {apartment -> amount}
  - PolicyTag: the closed discriminator selecting an allocation algorithm
  - Entities: Apartment, Tenant, Contract, CostType, ApartmentShare,
    ConsumptionRecord, OccupancyPeriod, Invoice
  - Typed IDs: prevent mixing apartment/contract/cost-type identifiers

DESIGN PRINCIPLES:
  1. Read-only: the engine queries data, it never writes
  2. Precision: uses decimal.Decimal to avoid floating-point drift in money
  3. Determinism: identical inputs produce bit-identical monetary results
  4. Degradation: configuration problems yield empty results plus sentinel
     errors, never panics; zero denominators yield zero-filled results

USAGE:
  engine := allocation.NewEngine(store)
  result, err := engine.AllocateByShare(ctx, costTypeID, total)
  amount := result.Get(apartmentID) // zero if absent

SEE ALSO:
  - period.go: date and billing-period arithmetic
  - store.go: the read-only data-store collaborator interface
  - engine.go: Engine construction and shared proportional math
*/
package allocation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// IDENTIFIERS
// =============================================================================

type ApartmentID string
type TenantID string
type ContractID string
type CostTypeID string
type BuildingID string
type InvoiceID string

// =============================================================================
// POLICY TAG - Closed discriminator for allocation algorithms
// =============================================================================

// PolicyTag selects which allocation algorithm applies to a cost type.
// The set is closed: share, consumption, person_days.
type PolicyTag string

const (
	PolicyShare       PolicyTag = "share"
	PolicyConsumption PolicyTag = "consumption"
	PolicyPersonDays  PolicyTag = "person_days"
)

// Valid reports whether the tag is one of the known policies.
func (p PolicyTag) Valid() bool {
	switch p {
	case PolicyShare, PolicyConsumption, PolicyPersonDays:
		return true
	}
	return false
}

// UnmarshalText rejects unknown tags instead of silently defaulting.
func (p *PolicyTag) UnmarshalText(text []byte) error {
	tag := PolicyTag(text)
	if !tag.Valid() {
		return fmt.Errorf("unknown policy tag %q", text)
	}
	*p = tag
	return nil
}

func (p PolicyTag) MarshalText() ([]byte, error) { return []byte(p), nil }

// =============================================================================
// ENTITIES - Read-only inputs to the engine
// =============================================================================

type Apartment struct {
	ID         ApartmentID
	Number     string
	Address    string
	SizeSQM    decimal.Decimal
	BuildingID *BuildingID
}

type Tenant struct {
	ID          TenantID
	Name        string
	ContactInfo string
}

// Contract links a tenant to an apartment over a date range.
// End is nil for open-ended contracts.
type Contract struct {
	ID          ContractID
	TenantID    TenantID
	ApartmentID ApartmentID
	Start       Date
	End         *Date
	RentAmount  decimal.Decimal
}

type CostType struct {
	ID     CostTypeID
	Name   string
	Unit   string // e.g. "m²", "kWh", "m³"
	Policy PolicyTag
}

// ApartmentShare is a static allocation key value, unique per
// (apartment, cost type) pair. E.g. floor area in m².
type ApartmentShare struct {
	ApartmentID ApartmentID
	CostTypeID  CostTypeID
	Value       decimal.Decimal
}

// ConsumptionRecord is one metered reading attributed to a date.
type ConsumptionRecord struct {
	ID          string
	ApartmentID ApartmentID
	CostTypeID  CostTypeID
	Date        Date
	Value       decimal.Decimal
	Source      string // e.g. "manual", "csv_import"
}

// OccupancyPeriod records how many occupants lived in an apartment
// over an interval. End is nil while the occupancy is ongoing.
// Invariant: End, if present, is strictly after Start; Occupants > 0.
type OccupancyPeriod struct {
	ID          string
	ApartmentID ApartmentID
	Start       Date
	End         *Date
	Occupants   int
}

// Invoice is a supplier invoice for a cost type over a service period.
// When DirectContractID is set the invoice bypasses proportional
// allocation and is charged wholly to that contract's apartment.
type Invoice struct {
	ID               InvoiceID
	Number           string
	Date             Date
	Amount           decimal.Decimal
	CostTypeID       CostTypeID
	PeriodStart      Date
	PeriodEnd        Date
	DirectContractID *ContractID
	BuildingID       *BuildingID
}

// =============================================================================
// ALLOCATION RESULT - The engine's universal output shape
// =============================================================================

// AllocationResult maps apartment ids to monetary amounts rounded to
// 2 decimal places. Coverage differs per allocator: share and person-day
// allocation include zero-valued participants, consumption allocation
// omits apartments without in-period records entirely.
type AllocationResult map[ApartmentID]decimal.Decimal

// Get returns the apartment's amount, or zero if the apartment is absent.
func (r AllocationResult) Get(id ApartmentID) decimal.Decimal {
	if v, ok := r[id]; ok {
		return v
	}
	return decimal.Zero
}

// Total sums all allocated amounts.
func (r AllocationResult) Total() decimal.Decimal {
	total := decimal.Zero
	for _, v := range r {
		total = total.Add(v)
	}
	return total
}
