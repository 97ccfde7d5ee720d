/*
handlers.go - HTTP handler implementations

PURPOSE:
  Implements the REST endpoints: master data creation and listing,
  direct allocator invocations, and statement preview. Handlers parse
  and validate DTOs, call into the engine/assembler, and translate
  results back to JSON.

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Resource not found
  - 500: Internal errors
  Allocation-level degradation (skipped rules, percentage drift) is NOT
  an HTTP error; it travels in the "warnings" field of a 200 response.

SECURITY NOTE:
  Currently NO authentication or authorization. All endpoints are public.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hauswerk/billing-engine/allocation"
	"github.com/hauswerk/billing-engine/statement"
)

// =============================================================================
// STORE - Read queries for the engine plus the API write surface
// =============================================================================

// Store is what the API needs from persistence: everything the engine
// reads, plus creation and listing of master data. Implemented by
// store/sqlite.Store and allocation/store.Memory.
type Store interface {
	allocation.Store

	AddApartment(ctx context.Context, apt allocation.Apartment) (allocation.Apartment, error)
	AddTenant(ctx context.Context, t allocation.Tenant) (allocation.Tenant, error)
	AddContract(ctx context.Context, c allocation.Contract) (allocation.Contract, error)
	AddCostType(ctx context.Context, ct allocation.CostType) (allocation.CostType, error)
	AddShare(ctx context.Context, share allocation.ApartmentShare) (allocation.ApartmentShare, error)
	AddConsumption(ctx context.Context, rec allocation.ConsumptionRecord) (allocation.ConsumptionRecord, error)
	AddOccupancy(ctx context.Context, op allocation.OccupancyPeriod) (allocation.OccupancyPeriod, error)
	AddInvoice(ctx context.Context, inv allocation.Invoice) (allocation.Invoice, error)

	ListTenants(ctx context.Context) ([]allocation.Tenant, error)
	ListContracts(ctx context.Context) ([]allocation.Contract, error)
	ListInvoices(ctx context.Context) ([]allocation.Invoice, error)
}

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store     Store
	Engine    *allocation.Engine
	Assembler *statement.Assembler
}

// NewHandler creates a new handler with the given store.
func NewHandler(store Store) *Handler {
	return &Handler{
		Store:     store,
		Engine:    allocation.NewEngine(store),
		Assembler: statement.NewAssembler(store),
	}
}

// =============================================================================
// MASTER DATA HANDLERS
// =============================================================================

func (h *Handler) ListApartments(w http.ResponseWriter, r *http.Request) {
	apartments, err := h.Store.ListApartments(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list apartments", err)
		return
	}
	dtos := make([]ApartmentDTO, 0, len(apartments))
	for _, apt := range apartments {
		dtos = append(dtos, toApartmentDTO(apt))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateApartment(w http.ResponseWriter, r *http.Request) {
	var req CreateApartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Number == "" {
		writeError(w, http.StatusBadRequest, "number is required", nil)
		return
	}
	size, err := parseDecimal(req.SizeSQM)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid size_sqm", err)
		return
	}
	apt := allocation.Apartment{Number: req.Number, Address: req.Address, SizeSQM: size}
	if req.BuildingID != "" {
		id := allocation.BuildingID(req.BuildingID)
		apt.BuildingID = &id
	}
	apt, err = h.Store.AddApartment(r.Context(), apt)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create apartment", err)
		return
	}
	writeJSON(w, http.StatusCreated, toApartmentDTO(apt))
}

func (h *Handler) ListTenants(w http.ResponseWriter, r *http.Request) {
	tenants, err := h.Store.ListTenants(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list tenants", err)
		return
	}
	dtos := make([]TenantDTO, 0, len(tenants))
	for _, t := range tenants {
		dtos = append(dtos, TenantDTO{ID: string(t.ID), Name: t.Name, ContactInfo: t.ContactInfo})
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateTenant(w http.ResponseWriter, r *http.Request) {
	var req CreateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required", nil)
		return
	}
	t, err := h.Store.AddTenant(r.Context(), allocation.Tenant{Name: req.Name, ContactInfo: req.ContactInfo})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create tenant", err)
		return
	}
	writeJSON(w, http.StatusCreated, TenantDTO{ID: string(t.ID), Name: t.Name, ContactInfo: t.ContactInfo})
}

func (h *Handler) ListContracts(w http.ResponseWriter, r *http.Request) {
	contracts, err := h.Store.ListContracts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list contracts", err)
		return
	}
	dtos := make([]ContractDTO, 0, len(contracts))
	for _, c := range contracts {
		dtos = append(dtos, toContractDTO(c))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateContract(w http.ResponseWriter, r *http.Request) {
	var req CreateContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	start, err := allocation.ParseDate(req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid start_date", err)
		return
	}
	var end *allocation.Date
	if req.EndDate != "" {
		d, err := allocation.ParseDate(req.EndDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid end_date", err)
			return
		}
		if !d.After(start) {
			writeError(w, http.StatusBadRequest, "end_date must be after start_date", nil)
			return
		}
		end = &d
	}
	rent, err := parseDecimal(req.RentAmount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rent_amount", err)
		return
	}
	c, err := h.Store.AddContract(r.Context(), allocation.Contract{
		TenantID:    allocation.TenantID(req.TenantID),
		ApartmentID: allocation.ApartmentID(req.ApartmentID),
		Start:       start,
		End:         end,
		RentAmount:  rent,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create contract", err)
		return
	}
	writeJSON(w, http.StatusCreated, toContractDTO(c))
}

func (h *Handler) ListCostTypes(w http.ResponseWriter, r *http.Request) {
	tag := allocation.PolicyTag(r.URL.Query().Get("policy"))
	if tag != "" && !tag.Valid() {
		writeError(w, http.StatusBadRequest, "unknown policy tag", nil)
		return
	}
	costTypes, err := h.Store.ListCostTypes(r.Context(), tag)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list cost types", err)
		return
	}
	dtos := make([]CostTypeDTO, 0, len(costTypes))
	for _, ct := range costTypes {
		dtos = append(dtos, CostTypeDTO{ID: string(ct.ID), Name: ct.Name, Unit: ct.Unit, Policy: string(ct.Policy)})
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateCostType(w http.ResponseWriter, r *http.Request) {
	var req CreateCostTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	tag := allocation.PolicyTag(req.Policy)
	if req.Name == "" || !tag.Valid() {
		writeError(w, http.StatusBadRequest, "name and a valid policy (share|consumption|person_days) are required", nil)
		return
	}
	ct, err := h.Store.AddCostType(r.Context(), allocation.CostType{Name: req.Name, Unit: req.Unit, Policy: tag})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create cost type", err)
		return
	}
	writeJSON(w, http.StatusCreated, CostTypeDTO{ID: string(ct.ID), Name: ct.Name, Unit: ct.Unit, Policy: string(ct.Policy)})
}

// ListShares returns the share values recorded for one cost type,
// selected with ?cost_type_id=.
func (h *Handler) ListShares(w http.ResponseWriter, r *http.Request) {
	costTypeID := r.URL.Query().Get("cost_type_id")
	if costTypeID == "" {
		writeError(w, http.StatusBadRequest, "cost_type_id query parameter is required", nil)
		return
	}
	shares, err := h.Store.SharesFor(r.Context(), allocation.CostTypeID(costTypeID))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list shares", err)
		return
	}
	dtos := make([]ShareDTO, 0, len(shares))
	for _, s := range shares {
		dtos = append(dtos, ShareDTO{
			ApartmentID: string(s.ApartmentID),
			CostTypeID:  string(s.CostTypeID),
			Value:       s.Value.String(),
		})
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateShare(w http.ResponseWriter, r *http.Request) {
	var req ShareDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	value, err := parseDecimal(req.Value)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid value", err)
		return
	}
	share, err := h.Store.AddShare(r.Context(), allocation.ApartmentShare{
		ApartmentID: allocation.ApartmentID(req.ApartmentID),
		CostTypeID:  allocation.CostTypeID(req.CostTypeID),
		Value:       value,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to record share", err)
		return
	}
	writeJSON(w, http.StatusCreated, ShareDTO{
		ApartmentID: string(share.ApartmentID),
		CostTypeID:  string(share.CostTypeID),
		Value:       share.Value.String(),
	})
}

// SumConsumption returns per-apartment consumption totals for one cost
// type over a period, selected with ?cost_type_id=&period_start=&period_end=.
func (h *Handler) SumConsumption(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	costTypeID := q.Get("cost_type_id")
	if costTypeID == "" {
		writeError(w, http.StatusBadRequest, "cost_type_id query parameter is required", nil)
		return
	}
	period, err := parsePeriod(q.Get("period_start"), q.Get("period_end"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err)
		return
	}
	sums, err := h.Store.SumConsumption(r.Context(), allocation.CostTypeID(costTypeID), period)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to sum consumption", err)
		return
	}
	out := make(map[string]string, len(sums))
	for apartmentID, v := range sums {
		out[string(apartmentID)] = v.String()
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) CreateConsumption(w http.ResponseWriter, r *http.Request) {
	var req ConsumptionDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	date, err := allocation.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date", err)
		return
	}
	value, err := parseDecimal(req.Value)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid value", err)
		return
	}
	rec, err := h.Store.AddConsumption(r.Context(), allocation.ConsumptionRecord{
		ApartmentID: allocation.ApartmentID(req.ApartmentID),
		CostTypeID:  allocation.CostTypeID(req.CostTypeID),
		Date:        date,
		Value:       value,
		Source:      req.Source,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to record consumption", err)
		return
	}
	req.ID = rec.ID
	req.Source = rec.Source
	writeJSON(w, http.StatusCreated, req)
}

// ListOccupancy returns an apartment's occupancy intervals overlapping
// a period, selected with ?apartment_id=&period_start=&period_end=.
func (h *Handler) ListOccupancy(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	apartmentID := q.Get("apartment_id")
	if apartmentID == "" {
		writeError(w, http.StatusBadRequest, "apartment_id query parameter is required", nil)
		return
	}
	period, err := parsePeriod(q.Get("period_start"), q.Get("period_end"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err)
		return
	}
	periods, err := h.Store.OccupancyPeriodsFor(r.Context(), allocation.ApartmentID(apartmentID), period)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list occupancy", err)
		return
	}
	dtos := make([]OccupancyDTO, 0, len(periods))
	for _, op := range periods {
		dto := OccupancyDTO{
			ID:          op.ID,
			ApartmentID: string(op.ApartmentID),
			StartDate:   op.Start.String(),
			Occupants:   op.Occupants,
		}
		if op.End != nil {
			dto.EndDate = op.End.String()
		}
		dtos = append(dtos, dto)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateOccupancy(w http.ResponseWriter, r *http.Request) {
	var req OccupancyDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	start, err := allocation.ParseDate(req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid start_date", err)
		return
	}
	var end *allocation.Date
	if req.EndDate != "" {
		d, err := allocation.ParseDate(req.EndDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid end_date", err)
			return
		}
		if !d.After(start) {
			writeError(w, http.StatusBadRequest, "end_date must be after start_date", nil)
			return
		}
		end = &d
	}
	if req.Occupants <= 0 {
		writeError(w, http.StatusBadRequest, "occupants must be positive", nil)
		return
	}
	op, err := h.Store.AddOccupancy(r.Context(), allocation.OccupancyPeriod{
		ApartmentID: allocation.ApartmentID(req.ApartmentID),
		Start:       start,
		End:         end,
		Occupants:   req.Occupants,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to record occupancy", err)
		return
	}
	req.ID = op.ID
	writeJSON(w, http.StatusCreated, req)
}

func (h *Handler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.Store.ListInvoices(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list invoices", err)
		return
	}
	dtos := make([]InvoiceDTO, 0, len(invoices))
	for _, inv := range invoices {
		dtos = append(dtos, toInvoiceDTO(inv))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req InvoiceDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	date, err := allocation.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date", err)
		return
	}
	amount, err := parseDecimal(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount", err)
		return
	}
	periodStart, err := allocation.ParseDate(req.PeriodStart)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period_start", err)
		return
	}
	periodEnd, err := allocation.ParseDate(req.PeriodEnd)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period_end", err)
		return
	}
	inv := allocation.Invoice{
		Number:      req.Number,
		Date:        date,
		Amount:      amount,
		CostTypeID:  allocation.CostTypeID(req.CostTypeID),
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	}
	if req.DirectContractID != "" {
		id := allocation.ContractID(req.DirectContractID)
		inv.DirectContractID = &id
	}
	if req.BuildingID != "" {
		id := allocation.BuildingID(req.BuildingID)
		inv.BuildingID = &id
	}
	inv, err = h.Store.AddInvoice(r.Context(), inv)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to record invoice", err)
		return
	}
	writeJSON(w, http.StatusCreated, toInvoiceDTO(inv))
}

// =============================================================================
// ALLOCATION HANDLERS
// =============================================================================

func (h *Handler) AllocateShare(w http.ResponseWriter, r *http.Request) {
	var req ShareAllocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	totalCost, err := parseDecimal(req.TotalCost)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid total_cost", err)
		return
	}
	result, err := h.Engine.AllocateByShare(r.Context(), allocation.CostTypeID(req.CostTypeID), totalCost)
	h.writeAllocation(w, result, err)
}

func (h *Handler) AllocateConsumption(w http.ResponseWriter, r *http.Request) {
	var req ConsumptionAllocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	totalCost, err := parseDecimal(req.TotalCost)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid total_cost", err)
		return
	}
	period, err := parsePeriod(req.PeriodStart, req.PeriodEnd)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err)
		return
	}
	result, err := h.Engine.AllocateByConsumption(r.Context(), allocation.CostTypeID(req.CostTypeID), totalCost, period)
	h.writeAllocation(w, result, err)
}

func (h *Handler) AllocatePersonDays(w http.ResponseWriter, r *http.Request) {
	var req PersonDayAllocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	totalCost, err := parseDecimal(req.TotalCost)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid total_cost", err)
		return
	}
	period, err := parsePeriod(req.PeriodStart, req.PeriodEnd)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err)
		return
	}
	result, err := h.Engine.AllocateByPersonDays(r.Context(), totalCost, period)
	h.writeAllocation(w, result, err)
}

func (h *Handler) AllocateHeating(w http.ResponseWriter, r *http.Request) {
	var req HeatingAllocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	totalCost, err := parseDecimal(req.TotalCost)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid total_cost", err)
		return
	}
	percentage, err := parseDecimal(req.HotWaterPercentage)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid hot_water_percentage", err)
		return
	}
	period, err := parsePeriod(req.PeriodStart, req.PeriodEnd)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err)
		return
	}
	result, err := h.Engine.AllocateHeating(r.Context(), totalCost, percentage,
		allocation.CostTypeID(req.HeatingCostTypeID), allocation.CostTypeID(req.HotWaterCostTypeID), period)
	h.writeAllocation(w, result, err)
}

func (h *Handler) AllocateDirect(w http.ResponseWriter, r *http.Request) {
	var req DirectAllocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	period, err := parsePeriod(req.PeriodStart, req.PeriodEnd)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err)
		return
	}
	var buildingID *allocation.BuildingID
	if req.BuildingID != "" {
		id := allocation.BuildingID(req.BuildingID)
		buildingID = &id
	}
	result, err := h.Engine.AllocateDirect(r.Context(), period, buildingID)
	h.writeAllocation(w, result, err)
}

func (h *Handler) AllocateCombined(w http.ResponseWriter, r *http.Request) {
	var req CombinedAllocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	rules := make([]allocation.CombinedRule, 0, len(req.Rules))
	for _, dto := range req.Rules {
		percentage, err := parseDecimal(dto.Percentage)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid percentage", err)
			return
		}
		portion, err := parseDecimal(dto.CostPortion)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid cost_portion", err)
			return
		}
		rule := allocation.CombinedRule{
			CostTypeID:  allocation.CostTypeID(dto.CostTypeID),
			Percentage:  percentage,
			CostPortion: portion,
		}
		if dto.PeriodStart != "" && dto.PeriodEnd != "" {
			period, err := parsePeriod(dto.PeriodStart, dto.PeriodEnd)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid rule period", err)
				return
			}
			rule.Period = &period
		}
		rules = append(rules, rule)
	}
	result, warnings, err := h.Engine.AllocateCombined(r.Context(), rules)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "combined allocation failed", err)
		return
	}
	writeJSON(w, http.StatusOK, toAllocationResponse(result, warnings))
}

// writeAllocation maps engine outcomes to HTTP: configuration
// mismatches surface as a 200 with an empty allocation and a warning,
// store failures as 500.
func (h *Handler) writeAllocation(w http.ResponseWriter, result allocation.AllocationResult, err error) {
	if err != nil {
		if allocation.IsSkippable(err) {
			writeJSON(w, http.StatusOK, toAllocationResponse(allocation.AllocationResult{}, []string{err.Error()}))
			return
		}
		writeError(w, http.StatusInternalServerError, "allocation failed", err)
		return
	}
	writeJSON(w, http.StatusOK, toAllocationResponse(result, nil))
}

// =============================================================================
// STATEMENT HANDLER
// =============================================================================

func (h *Handler) PreviewStatement(w http.ResponseWriter, r *http.Request) {
	var req StatementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	period, err := parsePeriod(req.PeriodStart, req.PeriodEnd)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err)
		return
	}
	contractID := allocation.ContractID(req.ContractID)

	items, err := h.statementItems(r.Context(), req, period, contractID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cost items", err)
		return
	}

	stmt, err := h.Assembler.Assemble(r.Context(), contractID, period, items)
	if err != nil {
		status := http.StatusInternalServerError
		if allocation.IsNotFound(err) {
			status = http.StatusNotFound
		}
		writeError(w, status, "failed to assemble statement", err)
		return
	}
	writeJSON(w, http.StatusOK, toStatementDTO(stmt))
}

// statementItems resolves the request's preset or explicit item list.
func (h *Handler) statementItems(ctx context.Context, req StatementRequest, period allocation.Period, contractID allocation.ContractID) ([]statement.CostItem, error) {
	if req.Preset != "" {
		var buildingID *allocation.BuildingID
		if contract, err := h.Store.ContractByID(ctx, contractID); err == nil {
			if apartment, err := h.Store.GetApartment(ctx, contract.ApartmentID); err == nil {
				buildingID = apartment.BuildingID
			}
		}
		return h.Assembler.BuildPreset(ctx, req.Preset, period, buildingID)
	}

	items := make([]statement.CostItem, 0, len(req.Items))
	for _, dto := range req.Items {
		item := statement.CostItem{
			Kind:               statement.ItemKind(dto.Kind),
			CostTypeID:         allocation.CostTypeID(dto.CostTypeID),
			HeatingCostTypeID:  allocation.CostTypeID(dto.HeatingCostTypeID),
			HotWaterCostTypeID: allocation.CostTypeID(dto.HotWaterCostTypeID),
		}
		if item.Kind == "" {
			item.Kind = statement.ItemClassic
		}
		totalCost, err := parseDecimal(dto.TotalCost)
		if err != nil {
			return nil, err
		}
		item.TotalCost = totalCost
		percentage, err := parseDecimal(dto.HotWaterPercentage)
		if err != nil {
			return nil, err
		}
		item.HotWaterPercentage = percentage
		items = append(items, item)
	}
	return items, nil
}

// =============================================================================
// HELPERS
// =============================================================================

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func parsePeriod(start, end string) (allocation.Period, error) {
	s, err := allocation.ParseDate(start)
	if err != nil {
		return allocation.Period{}, err
	}
	e, err := allocation.ParseDate(end)
	if err != nil {
		return allocation.Period{}, err
	}
	p := allocation.NewPeriod(s, e)
	if !p.Valid() {
		return allocation.Period{}, allocation.ErrInvalidPeriod
	}
	return p, nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
