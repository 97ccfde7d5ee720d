// Package store provides an in-memory Store implementation for tests
// and development.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hauswerk/billing-engine/allocation"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu          sync.RWMutex
	apartments  map[allocation.ApartmentID]allocation.Apartment
	tenants     map[allocation.TenantID]allocation.Tenant
	contracts   map[allocation.ContractID]allocation.Contract
	costTypes   map[allocation.CostTypeID]allocation.CostType
	shares      []allocation.ApartmentShare
	consumption []allocation.ConsumptionRecord
	occupancy   []allocation.OccupancyPeriod
	invoices    []allocation.Invoice
}

func NewMemory() *Memory {
	return &Memory{
		apartments: make(map[allocation.ApartmentID]allocation.Apartment),
		tenants:    make(map[allocation.TenantID]allocation.Tenant),
		contracts:  make(map[allocation.ContractID]allocation.Contract),
		costTypes:  make(map[allocation.CostTypeID]allocation.CostType),
	}
}

// =============================================================================
// WRITES - Fixture and API-facing setters
// =============================================================================

// AddApartment stores an apartment, generating an id when absent.
func (m *Memory) AddApartment(_ context.Context, apt allocation.Apartment) (allocation.Apartment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if apt.ID == "" {
		apt.ID = allocation.ApartmentID(uuid.NewString())
	}
	m.apartments[apt.ID] = apt
	return apt, nil
}

func (m *Memory) AddTenant(_ context.Context, t allocation.Tenant) (allocation.Tenant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.ID == "" {
		t.ID = allocation.TenantID(uuid.NewString())
	}
	m.tenants[t.ID] = t
	return t, nil
}

func (m *Memory) AddContract(_ context.Context, c allocation.Contract) (allocation.Contract, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID == "" {
		c.ID = allocation.ContractID(uuid.NewString())
	}
	m.contracts[c.ID] = c
	return c, nil
}

func (m *Memory) AddCostType(_ context.Context, ct allocation.CostType) (allocation.CostType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ct.ID == "" {
		ct.ID = allocation.CostTypeID(uuid.NewString())
	}
	m.costTypes[ct.ID] = ct
	return ct, nil
}

// AddShare upserts the (apartment, cost type) share value: the pair is
// unique, a second write replaces the first.
func (m *Memory) AddShare(_ context.Context, share allocation.ApartmentShare) (allocation.ApartmentShare, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.shares {
		if existing.ApartmentID == share.ApartmentID && existing.CostTypeID == share.CostTypeID {
			m.shares[i] = share
			return share, nil
		}
	}
	m.shares = append(m.shares, share)
	return share, nil
}

func (m *Memory) AddConsumption(_ context.Context, rec allocation.ConsumptionRecord) (allocation.ConsumptionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	m.consumption = append(m.consumption, rec)
	return rec, nil
}

func (m *Memory) AddOccupancy(_ context.Context, op allocation.OccupancyPeriod) (allocation.OccupancyPeriod, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if op.ID == "" {
		op.ID = uuid.NewString()
	}
	m.occupancy = append(m.occupancy, op)
	return op, nil
}

func (m *Memory) AddInvoice(_ context.Context, inv allocation.Invoice) (allocation.Invoice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if inv.ID == "" {
		inv.ID = allocation.InvoiceID(uuid.NewString())
	}
	m.invoices = append(m.invoices, inv)
	return inv, nil
}

// =============================================================================
// READS - allocation.Store implementation
// =============================================================================

func (m *Memory) GetCostType(_ context.Context, id allocation.CostTypeID) (*allocation.CostType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ct, ok := m.costTypes[id]
	if !ok {
		return nil, allocation.ErrCostTypeNotFound
	}
	return &ct, nil
}

func (m *Memory) ListCostTypes(_ context.Context, tag allocation.PolicyTag) ([]allocation.CostType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []allocation.CostType
	for _, ct := range m.costTypes {
		if tag == "" || ct.Policy == tag {
			result = append(result, ct)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *Memory) GetApartment(_ context.Context, id allocation.ApartmentID) (*allocation.Apartment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	apt, ok := m.apartments[id]
	if !ok {
		return nil, allocation.ErrApartmentNotFound
	}
	return &apt, nil
}

func (m *Memory) ListApartments(_ context.Context) ([]allocation.Apartment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]allocation.Apartment, 0, len(m.apartments))
	for _, apt := range m.apartments {
		result = append(result, apt)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Number < result[j].Number })
	return result, nil
}

func (m *Memory) ListTenants(_ context.Context) ([]allocation.Tenant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]allocation.Tenant, 0, len(m.tenants))
	for _, t := range m.tenants {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *Memory) ListContracts(_ context.Context) ([]allocation.Contract, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]allocation.Contract, 0, len(m.contracts))
	for _, c := range m.contracts {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *Memory) ListInvoices(_ context.Context) ([]allocation.Invoice, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]allocation.Invoice, len(m.invoices))
	copy(result, m.invoices)
	return result, nil
}

func (m *Memory) SharesFor(_ context.Context, costTypeID allocation.CostTypeID) ([]allocation.ApartmentShare, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []allocation.ApartmentShare
	for _, s := range m.shares {
		if s.CostTypeID == costTypeID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (m *Memory) SumConsumption(_ context.Context, costTypeID allocation.CostTypeID, period allocation.Period) (map[allocation.ApartmentID]decimal.Decimal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sums := make(map[allocation.ApartmentID]decimal.Decimal)
	for _, rec := range m.consumption {
		if rec.CostTypeID != costTypeID || !period.Contains(rec.Date) {
			continue
		}
		sums[rec.ApartmentID] = sums[rec.ApartmentID].Add(rec.Value)
	}
	return sums, nil
}

func (m *Memory) SumConsumptionFor(ctx context.Context, costTypeID allocation.CostTypeID, apartmentID allocation.ApartmentID, period allocation.Period) (decimal.Decimal, error) {
	sums, err := m.SumConsumption(ctx, costTypeID, period)
	if err != nil {
		return decimal.Zero, err
	}
	return sums[apartmentID], nil
}

func (m *Memory) OccupancyPeriodsFor(_ context.Context, apartmentID allocation.ApartmentID, period allocation.Period) ([]allocation.OccupancyPeriod, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []allocation.OccupancyPeriod
	for _, op := range m.occupancy {
		if op.ApartmentID == apartmentID && period.Overlaps(op.Start, op.End) {
			result = append(result, op)
		}
	}
	return result, nil
}

func (m *Memory) DirectInvoices(_ context.Context, period allocation.Period, buildingID *allocation.BuildingID) ([]allocation.Invoice, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []allocation.Invoice
	for _, inv := range m.invoices {
		if inv.DirectContractID == nil {
			continue
		}
		if inv.PeriodStart.After(period.End) || inv.PeriodEnd.Before(period.Start) {
			continue
		}
		if buildingID != nil && (inv.BuildingID == nil || *inv.BuildingID != *buildingID) {
			continue
		}
		result = append(result, inv)
	}
	return result, nil
}

func (m *Memory) SumInvoiceAmounts(_ context.Context, costTypeID allocation.CostTypeID, period allocation.Period, buildingID *allocation.BuildingID) (decimal.Decimal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := decimal.Zero
	for _, inv := range m.invoices {
		if inv.CostTypeID != costTypeID {
			continue
		}
		if inv.PeriodStart.After(period.End) || inv.PeriodEnd.Before(period.Start) {
			continue
		}
		if buildingID != nil && (inv.BuildingID == nil || *inv.BuildingID != *buildingID) {
			continue
		}
		total = total.Add(inv.Amount)
	}
	return total, nil
}

func (m *Memory) ContractByID(_ context.Context, id allocation.ContractID) (*allocation.Contract, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.contracts[id]
	if !ok {
		return nil, allocation.ErrContractNotFound
	}
	return &c, nil
}
