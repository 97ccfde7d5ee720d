/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract. Dates travel
  as "YYYY-MM-DD" strings, money as decimal strings - no floats cross
  the wire.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"github.com/shopspring/decimal"

	"github.com/hauswerk/billing-engine/allocation"
	"github.com/hauswerk/billing-engine/statement"
)

// =============================================================================
// MASTER DATA
// =============================================================================

type ApartmentDTO struct {
	ID         string `json:"id"`
	Number     string `json:"number"`
	Address    string `json:"address,omitempty"`
	SizeSQM    string `json:"size_sqm"`
	BuildingID string `json:"building_id,omitempty"`
}

type CreateApartmentRequest struct {
	Number     string `json:"number"`
	Address    string `json:"address"`
	SizeSQM    string `json:"size_sqm"`
	BuildingID string `json:"building_id"`
}

type TenantDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info,omitempty"`
}

type CreateTenantRequest struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
}

type ContractDTO struct {
	ID          string `json:"id"`
	TenantID    string `json:"tenant_id"`
	ApartmentID string `json:"apartment_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	RentAmount  string `json:"rent_amount"`
}

type CreateContractRequest struct {
	TenantID    string `json:"tenant_id"`
	ApartmentID string `json:"apartment_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	RentAmount  string `json:"rent_amount"`
}

type CostTypeDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Unit   string `json:"unit"`
	Policy string `json:"policy"`
}

type CreateCostTypeRequest struct {
	Name   string `json:"name"`
	Unit   string `json:"unit"`
	Policy string `json:"policy"`
}

type ShareDTO struct {
	ApartmentID string `json:"apartment_id"`
	CostTypeID  string `json:"cost_type_id"`
	Value       string `json:"value"`
}

type ConsumptionDTO struct {
	ID          string `json:"id,omitempty"`
	ApartmentID string `json:"apartment_id"`
	CostTypeID  string `json:"cost_type_id"`
	Date        string `json:"date"`
	Value       string `json:"value"`
	Source      string `json:"source,omitempty"`
}

type OccupancyDTO struct {
	ID          string `json:"id,omitempty"`
	ApartmentID string `json:"apartment_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	Occupants   int    `json:"occupants"`
}

type InvoiceDTO struct {
	ID               string `json:"id,omitempty"`
	Number           string `json:"number,omitempty"`
	Date             string `json:"date"`
	Amount           string `json:"amount"`
	CostTypeID       string `json:"cost_type_id"`
	PeriodStart      string `json:"period_start"`
	PeriodEnd        string `json:"period_end"`
	DirectContractID string `json:"direct_contract_id,omitempty"`
	BuildingID       string `json:"building_id,omitempty"`
}

// =============================================================================
// ALLOCATION REQUESTS
// =============================================================================

type ShareAllocationRequest struct {
	CostTypeID string `json:"cost_type_id"`
	TotalCost  string `json:"total_cost"`
}

type ConsumptionAllocationRequest struct {
	CostTypeID  string `json:"cost_type_id"`
	TotalCost   string `json:"total_cost"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
}

type PersonDayAllocationRequest struct {
	TotalCost   string `json:"total_cost"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
}

type HeatingAllocationRequest struct {
	TotalCost          string `json:"total_cost"`
	HotWaterPercentage string `json:"hot_water_percentage"`
	HeatingCostTypeID  string `json:"heating_cost_type_id"`
	HotWaterCostTypeID string `json:"hot_water_cost_type_id"`
	PeriodStart        string `json:"period_start"`
	PeriodEnd          string `json:"period_end"`
}

type DirectAllocationRequest struct {
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	BuildingID  string `json:"building_id"`
}

type CombinedRuleDTO struct {
	CostTypeID  string `json:"cost_type_id"`
	Percentage  string `json:"percentage"`
	CostPortion string `json:"cost_portion"`
	PeriodStart string `json:"period_start,omitempty"`
	PeriodEnd   string `json:"period_end,omitempty"`
}

type CombinedAllocationRequest struct {
	Rules []CombinedRuleDTO `json:"rules"`
}

// AllocationResponse carries a computed allocation plus any warnings.
type AllocationResponse struct {
	Allocation map[string]string `json:"allocation"`
	Total      string            `json:"total"`
	Warnings   []string          `json:"warnings,omitempty"`
}

// =============================================================================
// STATEMENTS
// =============================================================================

type CostItemDTO struct {
	Kind               string `json:"kind"`
	CostTypeID         string `json:"cost_type_id,omitempty"`
	TotalCost          string `json:"total_cost,omitempty"`
	HotWaterPercentage string `json:"hot_water_percentage,omitempty"`
	HeatingCostTypeID  string `json:"heating_cost_type_id,omitempty"`
	HotWaterCostTypeID string `json:"hot_water_cost_type_id,omitempty"`
}

type StatementRequest struct {
	ContractID  string        `json:"contract_id"`
	PeriodStart string        `json:"period_start"`
	PeriodEnd   string        `json:"period_end"`
	Preset      string        `json:"preset,omitempty"`
	Items       []CostItemDTO `json:"items,omitempty"`
}

type StatementRowDTO struct {
	Name           string `json:"name"`
	TotalCost      string `json:"total_cost"`
	KeyDescription string `json:"key_description"`
	Share          string `json:"share"`
	Error          string `json:"error,omitempty"`
}

type StatementDTO struct {
	ContractID  string            `json:"contract_id"`
	ApartmentID string            `json:"apartment_id"`
	PeriodStart string            `json:"period_start"`
	PeriodEnd   string            `json:"period_end"`
	Rows        []StatementRowDTO `json:"rows"`
	GrandTotal  string            `json:"grand_total"`
}

// =============================================================================
// CONVERTERS
// =============================================================================

func toApartmentDTO(apt allocation.Apartment) ApartmentDTO {
	dto := ApartmentDTO{
		ID:      string(apt.ID),
		Number:  apt.Number,
		Address: apt.Address,
		SizeSQM: apt.SizeSQM.String(),
	}
	if apt.BuildingID != nil {
		dto.BuildingID = string(*apt.BuildingID)
	}
	return dto
}

func toContractDTO(c allocation.Contract) ContractDTO {
	dto := ContractDTO{
		ID:          string(c.ID),
		TenantID:    string(c.TenantID),
		ApartmentID: string(c.ApartmentID),
		StartDate:   c.Start.String(),
		RentAmount:  c.RentAmount.String(),
	}
	if c.End != nil {
		dto.EndDate = c.End.String()
	}
	return dto
}

func toInvoiceDTO(inv allocation.Invoice) InvoiceDTO {
	dto := InvoiceDTO{
		ID:          string(inv.ID),
		Number:      inv.Number,
		Date:        inv.Date.String(),
		Amount:      inv.Amount.String(),
		CostTypeID:  string(inv.CostTypeID),
		PeriodStart: inv.PeriodStart.String(),
		PeriodEnd:   inv.PeriodEnd.String(),
	}
	if inv.DirectContractID != nil {
		dto.DirectContractID = string(*inv.DirectContractID)
	}
	if inv.BuildingID != nil {
		dto.BuildingID = string(*inv.BuildingID)
	}
	return dto
}

func toAllocationResponse(result allocation.AllocationResult, warnings []string) AllocationResponse {
	resp := AllocationResponse{
		Allocation: make(map[string]string, len(result)),
		Total:      result.Total().StringFixed(2),
		Warnings:   warnings,
	}
	for apartmentID, amount := range result {
		resp.Allocation[string(apartmentID)] = amount.StringFixed(2)
	}
	return resp
}

func toStatementDTO(stmt *statement.Statement) StatementDTO {
	dto := StatementDTO{
		ContractID:  string(stmt.ContractID),
		ApartmentID: string(stmt.ApartmentID),
		PeriodStart: stmt.Period.Start.String(),
		PeriodEnd:   stmt.Period.End.String(),
		GrandTotal:  stmt.GrandTotal.StringFixed(2),
	}
	for _, row := range stmt.Rows {
		dto.Rows = append(dto.Rows, StatementRowDTO{
			Name:           row.Name,
			TotalCost:      row.TotalCost.StringFixed(2),
			KeyDescription: row.KeyDescription,
			Share:          row.Share.StringFixed(2),
			Error:          row.Error,
		})
	}
	return dto
}

func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
