package dto

import (
	"time"

	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/payment"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/shift"
	"github.com/shopspring/decimal"
)

// OpenShiftRequest representa los datos para abrir un turno
type OpenShiftRequest struct {
	InitialCash decimal.Decimal `json:"initial_cash"`
}

// CloseShiftRequest representa los datos para cerrar un turno. El conteo
// debe incluir al menos el efectivo; los métodos sin conteo valen cero
type CloseShiftRequest struct {
	Counted map[string]decimal.Decimal `json:"counted" binding:"required"`
}

// ShiftResponse representa la estructura de respuesta para un turno
type ShiftResponse struct {
	ID          string           `json:"id"`
	BranchID    string           `json:"branch_id"`
	UserID      string           `json:"user_id"`
	Date        string           `json:"date"`
	StartTime   time.Time        `json:"start_time"`
	InitialCash decimal.Decimal  `json:"initial_cash"`
	Status      string           `json:"status"`
	FinalCash   *decimal.Decimal `json:"final_cash,omitempty"`
	EndTime     *time.Time       `json:"end_time,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// ShiftListResponse representa la respuesta de listado de turnos
type ShiftListResponse struct {
	Shifts     []ShiftResponse `json:"shifts"`
	TotalCount int             `json:"total_count"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

// SummaryResponse representa el resumen conciliado de un turno: acumulados
// por método de pago y saldo esperado por método
type SummaryResponse struct {
	SalesByMethod         map[string]decimal.Decimal `json:"sales_by_method"`
	ExpensesByMethod      map[string]decimal.Decimal `json:"expenses_by_method"`
	PurchasesByMethod     map[string]decimal.Decimal `json:"purchases_by_method"`
	ExpectedByMethod      map[string]decimal.Decimal `json:"expected_by_method"`
	TotalSales            decimal.Decimal            `json:"total_sales"`
	TotalExpenses         decimal.Decimal            `json:"total_expenses"`
	TotalPurchases        decimal.Decimal            `json:"total_purchases"`
	CompletedAppointments int                        `json:"completed_appointments"`
	DirectSales           int                        `json:"direct_sales"`
}

// CashCutResponse representa la estructura de respuesta para un corte de caja
type CashCutResponse struct {
	ID                string                     `json:"id"`
	ShiftID           string                     `json:"shift_id"`
	BranchID          string                     `json:"branch_id"`
	Date              string                     `json:"date"`
	UserID            string                     `json:"user_id"`
	InitialCash       decimal.Decimal            `json:"initial_cash"`
	FinalCash         decimal.Decimal            `json:"final_cash"`
	ExpectedCash      decimal.Decimal            `json:"expected_cash"`
	Difference        decimal.Decimal            `json:"difference"`
	SalesByMethod     map[string]decimal.Decimal `json:"sales_by_method"`
	TotalSales        decimal.Decimal            `json:"total_sales"`
	TotalExpenses     decimal.Decimal            `json:"total_expenses"`
	AppointmentsCount int                        `json:"appointments_count"`
	DirectSalesCount  int                        `json:"direct_sales_count"`
	CreatedAt         time.Time                  `json:"created_at"`
}

// CashCutListResponse representa la respuesta de listado de cortes
type CashCutListResponse struct {
	Cuts       []CashCutResponse `json:"cuts"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// ToCountedMap convierte el conteo de la petición al modelo de dominio
func ToCountedMap(counted map[string]decimal.Decimal) map[payment.Method]decimal.Decimal {
	result := make(map[payment.Method]decimal.Decimal, len(counted))
	for m, v := range counted {
		result[payment.Method(m)] = v
	}
	return result
}

// ToShiftResponse convierte un modelo de dominio en una respuesta DTO
func ToShiftResponse(s *shift.Shift) ShiftResponse {
	return ShiftResponse{
		ID:          s.ID,
		BranchID:    s.BranchID,
		UserID:      s.UserID,
		Date:        s.Date,
		StartTime:   s.StartTime,
		InitialCash: s.InitialCash,
		Status:      string(s.Status),
		FinalCash:   s.FinalCash,
		EndTime:     s.EndTime,
		CreatedAt:   s.CreatedAt,
	}
}

// ToShiftListResponse convierte una lista de turnos al formato de respuesta
func ToShiftListResponse(shifts []*shift.Shift, totalCount, page, pageSize int) ShiftListResponse {
	response := ShiftListResponse{
		Shifts:     make([]ShiftResponse, len(shifts)),
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}

	for i, s := range shifts {
		response.Shifts[i] = ToShiftResponse(s)
	}

	return response
}

// methodMap convierte un mapa indexado por método al formato de respuesta
func methodMap(m map[payment.Method]decimal.Decimal) map[string]decimal.Decimal {
	result := make(map[string]decimal.Decimal, len(m))
	for k, v := range m {
		result[string(k)] = v
	}
	return result
}

// ToSummaryResponse convierte un resumen conciliado en una respuesta DTO
func ToSummaryResponse(s shift.Summary) SummaryResponse {
	return SummaryResponse{
		SalesByMethod:         methodMap(s.SalesByMethod),
		ExpensesByMethod:      methodMap(s.ExpensesByMethod),
		PurchasesByMethod:     methodMap(s.PurchasesByMethod),
		ExpectedByMethod:      methodMap(s.ExpectedByMethod),
		TotalSales:            s.TotalSales,
		TotalExpenses:         s.TotalExpenses,
		TotalPurchases:        s.TotalPurchases,
		CompletedAppointments: s.CompletedAppointments,
		DirectSales:           s.DirectSales,
	}
}

// ToCashCutResponse convierte un corte de caja en una respuesta DTO
func ToCashCutResponse(cut *shift.CashCut) CashCutResponse {
	return CashCutResponse{
		ID:                cut.ID,
		ShiftID:           cut.ShiftID,
		BranchID:          cut.BranchID,
		Date:              cut.Date,
		UserID:            cut.UserID,
		InitialCash:       cut.InitialCash,
		FinalCash:         cut.FinalCash,
		ExpectedCash:      cut.ExpectedCash,
		Difference:        cut.Difference,
		SalesByMethod:     methodMap(cut.SalesByMethod),
		TotalSales:        cut.TotalSales,
		TotalExpenses:     cut.TotalExpenses,
		AppointmentsCount: cut.AppointmentsCount,
		DirectSalesCount:  cut.DirectSalesCount,
		CreatedAt:         cut.CreatedAt,
	}
}

// ToCashCutListResponse convierte una lista de cortes al formato de respuesta
func ToCashCutListResponse(cuts []*shift.CashCut, totalCount, page, pageSize int) CashCutListResponse {
	response := CashCutListResponse{
		Cuts:       make([]CashCutResponse, len(cuts)),
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}

	for i, cut := range cuts {
		response.Cuts[i] = ToCashCutResponse(cut)
	}

	return response
}
