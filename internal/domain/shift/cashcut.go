package shift

import (
	"time"

	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/payment"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CashCut representa el corte de caja: el registro de conciliación que se
// produce al cerrar un turno o al auditar después un turno pendiente.
// Se crea una sola vez por turno y nunca se modifica
type CashCut struct {
	ID                string                             `json:"id"`
	ShiftID           string                             `json:"shift_id"`
	BranchID          string                             `json:"branch_id"`
	Date              string                             `json:"date"`
	UserID            string                             `json:"user_id"`
	InitialCash       decimal.Decimal                    `json:"initial_cash"`
	FinalCash         decimal.Decimal                    `json:"final_cash"`
	ExpectedCash      decimal.Decimal                    `json:"expected_cash"`
	Difference        decimal.Decimal                    `json:"difference"`
	SalesByMethod     map[payment.Method]decimal.Decimal `json:"sales_by_method"`
	TotalSales        decimal.Decimal                    `json:"total_sales"`
	TotalExpenses     decimal.Decimal                    `json:"total_expenses"`
	AppointmentsCount int                                `json:"appointments_count"`
	DirectSalesCount  int                                `json:"direct_sales_count"`
	CreatedAt         time.Time                          `json:"created_at"`
}

// NewCashCut arma el registro del corte a partir del turno y del resumen
// conciliado
func NewCashCut(
	s *Shift,
	finalCash, expectedCash, difference decimal.Decimal,
	salesByMethod map[payment.Method]decimal.Decimal,
	totalSales, totalExpenses decimal.Decimal,
	appointmentsCount, directSalesCount int,
) *CashCut {
	return &CashCut{
		ID:                uuid.New().String(),
		ShiftID:           s.ID,
		BranchID:          s.BranchID,
		Date:              s.Date,
		UserID:            s.UserID,
		InitialCash:       s.InitialCash,
		FinalCash:         finalCash,
		ExpectedCash:      expectedCash,
		Difference:        difference,
		SalesByMethod:     salesByMethod,
		TotalSales:        totalSales,
		TotalExpenses:     totalExpenses,
		AppointmentsCount: appointmentsCount,
		DirectSalesCount:  directSalesCount,
		CreatedAt:         time.Now(),
	}
}
