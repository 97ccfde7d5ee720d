/*
Package sqlite provides a SQLite-backed implementation of the storage
interfaces.

PURPOSE:
  Implements allocation.Store (the engine's read-only queries) plus the
  write operations the HTTP API needs for master data. In production
  the same patterns apply to PostgreSQL - only minor SQL dialect
  differences.

KEY TABLES:
  apartments           Master data, optional building scope
  tenants              Tenant records
  contracts            Tenant-to-apartment links over a date range
  cost_types           Name, unit, policy tag
  apartment_shares     Static allocation key values (unique per pair)
  consumption_records  Metered readings with date and source tag
  occupancy_periods    Occupant counts over (possibly open) intervals
  invoices             Supplier invoices, optionally direct-allocated

MONEY AND DATES:
  Monetary and metered values are stored as TEXT and aggregated in Go
  with decimal.Decimal; SQLite's floating SUM would reintroduce the
  drift the engine exists to avoid. Dates are stored as "YYYY-MM-DD"
  TEXT, which compares correctly as strings.

WAL MODE:
  The database is opened with WAL for better read concurrency; the
  engine only reads, so writers never block statement generation.

USAGE:
  store, err := sqlite.New("./data/billing.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()
  engine := allocation.NewEngine(store)

SEE ALSO:
  - allocation/store.go: interface definitions
  - allocation/store/memory.go: in-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/hauswerk/billing-engine/allocation"
)

// Store implements allocation.Store and the API write surface.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a SQLite store at the given path. Use ":memory:" for an
// in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS apartments (
		id TEXT PRIMARY KEY,
		number TEXT NOT NULL UNIQUE,
		address TEXT,
		size_sqm TEXT NOT NULL DEFAULT '0',
		building_id TEXT
	);

	CREATE TABLE IF NOT EXISTS tenants (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		contact_info TEXT
	);

	CREATE TABLE IF NOT EXISTS contracts (
		id TEXT PRIMARY KEY,
		tenant_id TEXT NOT NULL REFERENCES tenants(id),
		apartment_id TEXT NOT NULL REFERENCES apartments(id),
		start_date TEXT NOT NULL,
		end_date TEXT,
		rent_amount TEXT NOT NULL DEFAULT '0',
		CHECK (end_date IS NULL OR end_date > start_date)
	);

	CREATE TABLE IF NOT EXISTS cost_types (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		unit TEXT NOT NULL,
		policy TEXT NOT NULL CHECK (policy IN ('share','consumption','person_days'))
	);

	CREATE TABLE IF NOT EXISTS apartment_shares (
		apartment_id TEXT NOT NULL REFERENCES apartments(id),
		cost_type_id TEXT NOT NULL REFERENCES cost_types(id),
		value TEXT NOT NULL,
		PRIMARY KEY (apartment_id, cost_type_id)
	);

	CREATE TABLE IF NOT EXISTS consumption_records (
		id TEXT PRIMARY KEY,
		apartment_id TEXT NOT NULL REFERENCES apartments(id),
		cost_type_id TEXT NOT NULL REFERENCES cost_types(id),
		date TEXT NOT NULL,
		value TEXT NOT NULL,
		source TEXT NOT NULL DEFAULT 'manual'
	);

	CREATE TABLE IF NOT EXISTS occupancy_periods (
		id TEXT PRIMARY KEY,
		apartment_id TEXT NOT NULL REFERENCES apartments(id),
		start_date TEXT NOT NULL,
		end_date TEXT,
		occupants INTEGER NOT NULL CHECK (occupants > 0),
		CHECK (end_date IS NULL OR end_date > start_date)
	);

	CREATE TABLE IF NOT EXISTS invoices (
		id TEXT PRIMARY KEY,
		number TEXT,
		date TEXT NOT NULL,
		amount TEXT NOT NULL,
		cost_type_id TEXT NOT NULL REFERENCES cost_types(id),
		period_start TEXT NOT NULL,
		period_end TEXT NOT NULL,
		direct_contract_id TEXT REFERENCES contracts(id),
		building_id TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_consumption_type_date
		ON consumption_records(cost_type_id, date);
	CREATE INDEX IF NOT EXISTS idx_occupancy_apartment
		ON occupancy_periods(apartment_id, start_date);
	CREATE INDEX IF NOT EXISTS idx_invoices_type_period
		ON invoices(cost_type_id, period_start, period_end);
	CREATE INDEX IF NOT EXISTS idx_invoices_direct
		ON invoices(direct_contract_id) WHERE direct_contract_id IS NOT NULL;
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// HELPERS
// =============================================================================

type rowScanner interface {
	Scan(dest ...any) error
}

func nullableDate(d *allocation.Date) any {
	if d == nil {
		return nil
	}
	return d.String()
}

func scanDate(s string) (allocation.Date, error) {
	return allocation.ParseDate(s)
}

func scanNullableDate(ns sql.NullString) (*allocation.Date, error) {
	if !ns.Valid {
		return nil, nil
	}
	d, err := allocation.ParseDate(ns.String)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func scanDecimal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// =============================================================================
// WRITES
// =============================================================================

func (s *Store) AddApartment(ctx context.Context, apt allocation.Apartment) (allocation.Apartment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if apt.ID == "" {
		apt.ID = allocation.ApartmentID(uuid.NewString())
	}
	var buildingID any
	if apt.BuildingID != nil {
		buildingID = string(*apt.BuildingID)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO apartments (id, number, address, size_sqm, building_id) VALUES (?, ?, ?, ?, ?)`,
		string(apt.ID), apt.Number, apt.Address, apt.SizeSQM.String(), buildingID)
	return apt, err
}

func (s *Store) AddTenant(ctx context.Context, t allocation.Tenant) (allocation.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.ID == "" {
		t.ID = allocation.TenantID(uuid.NewString())
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tenants (id, name, contact_info) VALUES (?, ?, ?)`,
		string(t.ID), t.Name, t.ContactInfo)
	return t, err
}

func (s *Store) AddContract(ctx context.Context, c allocation.Contract) (allocation.Contract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		c.ID = allocation.ContractID(uuid.NewString())
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contracts (id, tenant_id, apartment_id, start_date, end_date, rent_amount)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		string(c.ID), string(c.TenantID), string(c.ApartmentID),
		c.Start.String(), nullableDate(c.End), c.RentAmount.String())
	return c, err
}

func (s *Store) AddCostType(ctx context.Context, ct allocation.CostType) (allocation.CostType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ct.ID == "" {
		ct.ID = allocation.CostTypeID(uuid.NewString())
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO cost_types (id, name, unit, policy) VALUES (?, ?, ?, ?)`,
		string(ct.ID), ct.Name, ct.Unit, string(ct.Policy))
	return ct, err
}

// AddShare upserts the unique (apartment, cost type) pair.
func (s *Store) AddShare(ctx context.Context, share allocation.ApartmentShare) (allocation.ApartmentShare, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO apartment_shares (apartment_id, cost_type_id, value) VALUES (?, ?, ?)
		 ON CONFLICT (apartment_id, cost_type_id) DO UPDATE SET value = excluded.value`,
		string(share.ApartmentID), string(share.CostTypeID), share.Value.String())
	return share, err
}

func (s *Store) AddConsumption(ctx context.Context, rec allocation.ConsumptionRecord) (allocation.ConsumptionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Source == "" {
		rec.Source = "manual"
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO consumption_records (id, apartment_id, cost_type_id, date, value, source)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, string(rec.ApartmentID), string(rec.CostTypeID),
		rec.Date.String(), rec.Value.String(), rec.Source)
	return rec, err
}

func (s *Store) AddOccupancy(ctx context.Context, op allocation.OccupancyPeriod) (allocation.OccupancyPeriod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if op.ID == "" {
		op.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO occupancy_periods (id, apartment_id, start_date, end_date, occupants)
		 VALUES (?, ?, ?, ?, ?)`,
		op.ID, string(op.ApartmentID), op.Start.String(), nullableDate(op.End), op.Occupants)
	return op, err
}

func (s *Store) AddInvoice(ctx context.Context, inv allocation.Invoice) (allocation.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if inv.ID == "" {
		inv.ID = allocation.InvoiceID(uuid.NewString())
	}
	var contractID, buildingID any
	if inv.DirectContractID != nil {
		contractID = string(*inv.DirectContractID)
	}
	if inv.BuildingID != nil {
		buildingID = string(*inv.BuildingID)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO invoices (id, number, date, amount, cost_type_id, period_start, period_end, direct_contract_id, building_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(inv.ID), inv.Number, inv.Date.String(), inv.Amount.String(),
		string(inv.CostTypeID), inv.PeriodStart.String(), inv.PeriodEnd.String(),
		contractID, buildingID)
	return inv, err
}

// =============================================================================
// READS - allocation.Store implementation
// =============================================================================

func (s *Store) GetCostType(ctx context.Context, id allocation.CostTypeID) (*allocation.CostType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ct allocation.CostType
	var policy string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, unit, policy FROM cost_types WHERE id = ?`, string(id)).
		Scan(&ct.ID, &ct.Name, &ct.Unit, &policy)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, allocation.ErrCostTypeNotFound
	}
	if err != nil {
		return nil, err
	}
	ct.Policy = allocation.PolicyTag(policy)
	return &ct, nil
}

func (s *Store) ListCostTypes(ctx context.Context, tag allocation.PolicyTag) ([]allocation.CostType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	query := `SELECT id, name, unit, policy FROM cost_types ORDER BY name`
	args := []any{}
	if tag != "" {
		query = `SELECT id, name, unit, policy FROM cost_types WHERE policy = ? ORDER BY name`
		args = append(args, string(tag))
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []allocation.CostType
	for rows.Next() {
		var ct allocation.CostType
		var policy string
		if err := rows.Scan(&ct.ID, &ct.Name, &ct.Unit, &policy); err != nil {
			return nil, err
		}
		ct.Policy = allocation.PolicyTag(policy)
		result = append(result, ct)
	}
	return result, rows.Err()
}

func (s *Store) GetApartment(ctx context.Context, id allocation.ApartmentID) (*allocation.Apartment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	apt, err := scanApartment(s.db.QueryRowContext(ctx,
		`SELECT id, number, address, size_sqm, building_id FROM apartments WHERE id = ?`, string(id)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, allocation.ErrApartmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return apt, nil
}

func (s *Store) ListApartments(ctx context.Context) ([]allocation.Apartment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, number, address, size_sqm, building_id FROM apartments ORDER BY number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []allocation.Apartment
	for rows.Next() {
		apt, err := scanApartment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *apt)
	}
	return result, rows.Err()
}

func (s *Store) ListTenants(ctx context.Context) ([]allocation.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, contact_info FROM tenants ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []allocation.Tenant
	for rows.Next() {
		var t allocation.Tenant
		var contact sql.NullString
		if err := rows.Scan(&t.ID, &t.Name, &contact); err != nil {
			return nil, err
		}
		t.ContactInfo = contact.String
		result = append(result, t)
	}
	return result, rows.Err()
}

func (s *Store) ListContracts(ctx context.Context) ([]allocation.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, tenant_id, apartment_id, start_date, end_date, rent_amount
		 FROM contracts ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []allocation.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	return result, rows.Err()
}

func (s *Store) ListInvoices(ctx context.Context) ([]allocation.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, number, date, amount, cost_type_id, period_start, period_end, direct_contract_id, building_id
		 FROM invoices ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInvoices(rows)
}

func (s *Store) SharesFor(ctx context.Context, costTypeID allocation.CostTypeID) ([]allocation.ApartmentShare, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, err := s.db.QueryContext(ctx,
		`SELECT apartment_id, cost_type_id, value FROM apartment_shares
		 WHERE cost_type_id = ? ORDER BY apartment_id`, string(costTypeID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []allocation.ApartmentShare
	for rows.Next() {
		var share allocation.ApartmentShare
		var value string
		if err := rows.Scan(&share.ApartmentID, &share.CostTypeID, &value); err != nil {
			return nil, err
		}
		if share.Value, err = scanDecimal(value); err != nil {
			return nil, err
		}
		result = append(result, share)
	}
	return result, rows.Err()
}

// SumConsumption aggregates in Go with decimal.Decimal: values are
// stored as TEXT and never summed by SQLite's floating arithmetic.
func (s *Store) SumConsumption(ctx context.Context, costTypeID allocation.CostTypeID, period allocation.Period) (map[allocation.ApartmentID]decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, err := s.db.QueryContext(ctx,
		`SELECT apartment_id, value FROM consumption_records
		 WHERE cost_type_id = ? AND date >= ? AND date <= ?`,
		string(costTypeID), period.Start.String(), period.End.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sums := make(map[allocation.ApartmentID]decimal.Decimal)
	for rows.Next() {
		var apartmentID allocation.ApartmentID
		var value string
		if err := rows.Scan(&apartmentID, &value); err != nil {
			return nil, err
		}
		v, err := scanDecimal(value)
		if err != nil {
			return nil, err
		}
		sums[apartmentID] = sums[apartmentID].Add(v)
	}
	return sums, rows.Err()
}

func (s *Store) SumConsumptionFor(ctx context.Context, costTypeID allocation.CostTypeID, apartmentID allocation.ApartmentID, period allocation.Period) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, err := s.db.QueryContext(ctx,
		`SELECT value FROM consumption_records
		 WHERE cost_type_id = ? AND apartment_id = ? AND date >= ? AND date <= ?`,
		string(costTypeID), string(apartmentID), period.Start.String(), period.End.String())
	if err != nil {
		return decimal.Zero, err
	}
	defer rows.Close()

	total := decimal.Zero
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return decimal.Zero, err
		}
		v, err := scanDecimal(value)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(v)
	}
	return total, rows.Err()
}

func (s *Store) OccupancyPeriodsFor(ctx context.Context, apartmentID allocation.ApartmentID, period allocation.Period) ([]allocation.OccupancyPeriod, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, apartment_id, start_date, end_date, occupants FROM occupancy_periods
		 WHERE apartment_id = ? AND start_date <= ? AND (end_date IS NULL OR end_date >= ?)`,
		string(apartmentID), period.End.String(), period.Start.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []allocation.OccupancyPeriod
	for rows.Next() {
		var op allocation.OccupancyPeriod
		var start string
		var end sql.NullString
		if err := rows.Scan(&op.ID, &op.ApartmentID, &start, &end, &op.Occupants); err != nil {
			return nil, err
		}
		if op.Start, err = scanDate(start); err != nil {
			return nil, err
		}
		if op.End, err = scanNullableDate(end); err != nil {
			return nil, err
		}
		result = append(result, op)
	}
	return result, rows.Err()
}

func (s *Store) DirectInvoices(ctx context.Context, period allocation.Period, buildingID *allocation.BuildingID) ([]allocation.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	query := `SELECT id, number, date, amount, cost_type_id, period_start, period_end, direct_contract_id, building_id
		 FROM invoices
		 WHERE direct_contract_id IS NOT NULL AND period_start <= ? AND period_end >= ?`
	args := []any{period.End.String(), period.Start.String()}
	if buildingID != nil {
		query += ` AND building_id = ?`
		args = append(args, string(*buildingID))
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInvoices(rows)
}

func (s *Store) SumInvoiceAmounts(ctx context.Context, costTypeID allocation.CostTypeID, period allocation.Period, buildingID *allocation.BuildingID) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	query := `SELECT amount FROM invoices
		 WHERE cost_type_id = ? AND period_start <= ? AND period_end >= ?`
	args := []any{string(costTypeID), period.End.String(), period.Start.String()}
	if buildingID != nil {
		query += ` AND building_id = ?`
		args = append(args, string(*buildingID))
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return decimal.Zero, err
	}
	defer rows.Close()

	total := decimal.Zero
	for rows.Next() {
		var amount string
		if err := rows.Scan(&amount); err != nil {
			return decimal.Zero, err
		}
		v, err := scanDecimal(amount)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(v)
	}
	return total, rows.Err()
}

func (s *Store) ContractByID(ctx context.Context, id allocation.ContractID) (*allocation.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, err := scanContract(s.db.QueryRowContext(ctx,
		`SELECT id, tenant_id, apartment_id, start_date, end_date, rent_amount
		 FROM contracts WHERE id = ?`, string(id)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, allocation.ErrContractNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// =============================================================================
// SCAN HELPERS
// =============================================================================

func scanApartment(row rowScanner) (*allocation.Apartment, error) {
	var apt allocation.Apartment
	var address, sizeSQM, buildingID sql.NullString
	if err := row.Scan(&apt.ID, &apt.Number, &address, &sizeSQM, &buildingID); err != nil {
		return nil, err
	}
	apt.Address = address.String
	if sizeSQM.Valid {
		size, err := scanDecimal(sizeSQM.String)
		if err != nil {
			return nil, err
		}
		apt.SizeSQM = size
	}
	if buildingID.Valid {
		id := allocation.BuildingID(buildingID.String)
		apt.BuildingID = &id
	}
	return &apt, nil
}

func scanContract(row rowScanner) (*allocation.Contract, error) {
	var c allocation.Contract
	var start, rent string
	var end sql.NullString
	if err := row.Scan(&c.ID, &c.TenantID, &c.ApartmentID, &start, &end, &rent); err != nil {
		return nil, err
	}
	var err error
	if c.Start, err = scanDate(start); err != nil {
		return nil, err
	}
	if c.End, err = scanNullableDate(end); err != nil {
		return nil, err
	}
	if c.RentAmount, err = scanDecimal(rent); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanInvoices(rows *sql.Rows) ([]allocation.Invoice, error) {
	var result []allocation.Invoice
	for rows.Next() {
		var inv allocation.Invoice
		var number, contractID, buildingID sql.NullString
		var date, amount, periodStart, periodEnd string
		if err := rows.Scan(&inv.ID, &number, &date, &amount, &inv.CostTypeID,
			&periodStart, &periodEnd, &contractID, &buildingID); err != nil {
			return nil, err
		}
		inv.Number = number.String
		var err error
		if inv.Date, err = scanDate(date); err != nil {
			return nil, err
		}
		if inv.Amount, err = scanDecimal(amount); err != nil {
			return nil, err
		}
		if inv.PeriodStart, err = scanDate(periodStart); err != nil {
			return nil, err
		}
		if inv.PeriodEnd, err = scanDate(periodEnd); err != nil {
			return nil, err
		}
		if contractID.Valid {
			id := allocation.ContractID(contractID.String)
			inv.DirectContractID = &id
		}
		if buildingID.Valid {
			id := allocation.BuildingID(buildingID.String)
			inv.BuildingID = &id
		}
		result = append(result, inv)
	}
	return result, rows.Err()
}
