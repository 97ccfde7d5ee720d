/*
handlers_test.go - Unit tests for API handlers

Tests for:
- Master data creation and validation responses
- Allocation endpoints end to end over the in-memory store
- Statement preview, presets included
*/
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hauswerk/billing-engine/allocation"
	"github.com/hauswerk/billing-engine/allocation/store"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func newTestServer(t *testing.T) (*store.Memory, *httptest.Server) {
	t.Helper()
	m := store.NewMemory()
	srv := httptest.NewServer(NewRouter(NewHandler(m), nil))
	t.Cleanup(srv.Close)
	return m, srv
}

func postJSON(t *testing.T, srv *httptest.Server, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(into))
}

func seedAllocationData(t *testing.T, m *store.Memory) {
	t.Helper()
	ctx := context.Background()

	for _, apt := range []allocation.Apartment{
		{ID: "apt-1", Number: "1", SizeSQM: decimal.RequireFromString("60")},
		{ID: "apt-2", Number: "2", SizeSQM: decimal.RequireFromString("40")},
	} {
		_, err := m.AddApartment(ctx, apt)
		require.NoError(t, err)
	}

	_, err := m.AddCostType(ctx, allocation.CostType{
		ID: "ct-tax", Name: "Property Tax", Unit: "m²", Policy: allocation.PolicyShare,
	})
	require.NoError(t, err)

	for _, s := range []allocation.ApartmentShare{
		{ApartmentID: "apt-1", CostTypeID: "ct-tax", Value: decimal.RequireFromString("60")},
		{ApartmentID: "apt-2", CostTypeID: "ct-tax", Value: decimal.RequireFromString("40")},
	} {
		_, err := m.AddShare(ctx, s)
		require.NoError(t, err)
	}
}

// =============================================================================
// MASTER DATA TESTS
// =============================================================================

func TestCreateApartment_Success(t *testing.T) {
	_, srv := newTestServer(t)

	resp := postJSON(t, srv, "/api/apartments", CreateApartmentRequest{
		Number: "3a", Address: "Hauptstr. 5", SizeSQM: "72.5",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var dto ApartmentDTO
	decodeJSON(t, resp, &dto)
	assert.NotEmpty(t, dto.ID)
	assert.Equal(t, "3a", dto.Number)
	assert.Equal(t, "72.5", dto.SizeSQM)
}

func TestCreateApartment_MissingNumber(t *testing.T) {
	_, srv := newTestServer(t)

	resp := postJSON(t, srv, "/api/apartments", CreateApartmentRequest{SizeSQM: "50"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp ErrorResponse
	decodeJSON(t, resp, &errResp)
	assert.Contains(t, errResp.Error, "number")
}

func TestCreateCostType_RejectsUnknownPolicy(t *testing.T) {
	_, srv := newTestServer(t)

	resp := postJSON(t, srv, "/api/cost-types", CreateCostTypeRequest{
		Name: "Mystery", Policy: "by_mood",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateContract_RejectsEndBeforeStart(t *testing.T) {
	_, srv := newTestServer(t)

	resp := postJSON(t, srv, "/api/contracts", CreateContractRequest{
		TenantID: "t-1", ApartmentID: "apt-1",
		StartDate: "2025-06-01", EndDate: "2025-01-01", RentAmount: "800",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListApartments_Empty(t *testing.T) {
	_, srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/apartments")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var dtos []ApartmentDTO
	decodeJSON(t, resp, &dtos)
	assert.Empty(t, dtos)
}

func TestListShares_ByCostType(t *testing.T) {
	m, srv := newTestServer(t)
	seedAllocationData(t, m)

	resp, err := http.Get(srv.URL + "/api/shares?cost_type_id=ct-tax")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var dtos []ShareDTO
	decodeJSON(t, resp, &dtos)
	assert.Len(t, dtos, 2)
}

func TestSumConsumption_RequiresCostType(t *testing.T) {
	_, srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/consumption?period_start=2025-01-01&period_end=2025-01-31")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// =============================================================================
// ALLOCATION ENDPOINT TESTS
// =============================================================================

func TestAllocateShare_Endpoint(t *testing.T) {
	// GIVEN: Shares 60/40 over one cost type
	// WHEN: POSTing a 1000.00 share allocation
	// THEN: The response carries per-apartment money strings and a total

	m, srv := newTestServer(t)
	seedAllocationData(t, m)

	resp := postJSON(t, srv, "/api/allocations/share", ShareAllocationRequest{
		CostTypeID: "ct-tax", TotalCost: "1000",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out AllocationResponse
	decodeJSON(t, resp, &out)
	assert.Equal(t, "600.00", out.Allocation["apt-1"])
	assert.Equal(t, "400.00", out.Allocation["apt-2"])
	assert.Equal(t, "1000.00", out.Total)
	assert.Empty(t, out.Warnings)
}

func TestAllocateShare_UnknownCostTypeDegrades(t *testing.T) {
	// A missing cost type is a configuration problem, not a server
	// failure: 200 with an empty allocation and a warning.
	m, srv := newTestServer(t)
	seedAllocationData(t, m)

	resp := postJSON(t, srv, "/api/allocations/share", ShareAllocationRequest{
		CostTypeID: "ct-gone", TotalCost: "1000",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out AllocationResponse
	decodeJSON(t, resp, &out)
	assert.Empty(t, out.Allocation)
	require.Len(t, out.Warnings, 1)
}

func TestAllocateConsumption_BadPeriod(t *testing.T) {
	m, srv := newTestServer(t)
	seedAllocationData(t, m)

	resp := postJSON(t, srv, "/api/allocations/consumption", ConsumptionAllocationRequest{
		CostTypeID: "ct-tax", TotalCost: "100",
		PeriodStart: "2025-01-31", PeriodEnd: "2025-01-01",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAllocateCombined_Endpoint(t *testing.T) {
	m, srv := newTestServer(t)
	seedAllocationData(t, m)

	resp := postJSON(t, srv, "/api/allocations/combined", CombinedAllocationRequest{
		Rules: []CombinedRuleDTO{
			{CostTypeID: "ct-tax", Percentage: "60", CostPortion: "600"},
			{CostTypeID: "ct-gone", Percentage: "40", CostPortion: "400"},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out AllocationResponse
	decodeJSON(t, resp, &out)
	assert.Equal(t, "360.00", out.Allocation["apt-1"])
	assert.Equal(t, "240.00", out.Allocation["apt-2"])
	require.Len(t, out.Warnings, 1)
	assert.Contains(t, out.Warnings[0], "skipped")
}

// =============================================================================
// STATEMENT PREVIEW TESTS
// =============================================================================

func TestPreviewStatement_Explicit(t *testing.T) {
	m, srv := newTestServer(t)
	seedAllocationData(t, m)

	_, err := m.AddContract(context.Background(), allocation.Contract{
		ID: "c-1", TenantID: "t-1", ApartmentID: "apt-1",
		Start:      allocation.NewDate(2024, time.January, 1),
		RentAmount: decimal.RequireFromString("800"),
	})
	require.NoError(t, err)

	resp := postJSON(t, srv, "/api/statements/preview", StatementRequest{
		ContractID:  "c-1",
		PeriodStart: "2025-01-01",
		PeriodEnd:   "2025-01-31",
		Items: []CostItemDTO{
			{Kind: "classic", CostTypeID: "ct-tax", TotalCost: "1000"},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stmt StatementDTO
	decodeJSON(t, resp, &stmt)
	assert.Equal(t, "c-1", stmt.ContractID)
	assert.Equal(t, "apt-1", stmt.ApartmentID)
	require.Len(t, stmt.Rows, 1)
	assert.Equal(t, "Property Tax", stmt.Rows[0].Name)
	assert.Equal(t, "600.00", stmt.Rows[0].Share)
	assert.Equal(t, "600.00", stmt.GrandTotal)
}

func TestPreviewStatement_UnknownContract(t *testing.T) {
	m, srv := newTestServer(t)
	seedAllocationData(t, m)

	resp := postJSON(t, srv, "/api/statements/preview", StatementRequest{
		ContractID:  "c-gone",
		PeriodStart: "2025-01-01",
		PeriodEnd:   "2025-01-31",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPreviewStatement_Preset(t *testing.T) {
	m, srv := newTestServer(t)
	seedAllocationData(t, m)

	_, err := m.AddContract(context.Background(), allocation.Contract{
		ID: "c-1", TenantID: "t-1", ApartmentID: "apt-1",
		Start:      allocation.NewDate(2024, time.January, 1),
		RentAmount: decimal.RequireFromString("800"),
	})
	require.NoError(t, err)

	resp := postJSON(t, srv, "/api/statements/preview", StatementRequest{
		ContractID:  "c-1",
		PeriodStart: "2025-01-01",
		PeriodEnd:   "2025-01-31",
		Preset:      "direct_only",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stmt StatementDTO
	decodeJSON(t, resp, &stmt)
	require.Len(t, stmt.Rows, 1)
	assert.Equal(t, "Directly allocated costs", stmt.Rows[0].Name)
}
