package dto

import (
	"github.com/shopspring/decimal"
)

// DailyReportResponse representa el resumen del día de una sucursal:
// totales por método de pago de ventas, gastos y compras recibidas
type DailyReportResponse struct {
	BranchID              string                     `json:"branch_id"`
	Date                  string                     `json:"date"`
	SalesByMethod         map[string]decimal.Decimal `json:"sales_by_method"`
	ExpensesByMethod      map[string]decimal.Decimal `json:"expenses_by_method"`
	PurchasesByMethod     map[string]decimal.Decimal `json:"purchases_by_method"`
	TotalSales            decimal.Decimal            `json:"total_sales"`
	TotalExpenses         decimal.Decimal            `json:"total_expenses"`
	TotalPurchases        decimal.Decimal            `json:"total_purchases"`
	NetAmount             decimal.Decimal            `json:"net_amount"`
	CompletedAppointments int                        `json:"completed_appointments"`
	DirectSales           int                        `json:"direct_sales"`
}
