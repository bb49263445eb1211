package controller

import (
	"net/http"
	"time"

	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/api/dto"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/appointment"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/expense"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/payment"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/purchase"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/sale"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/shift"
	branchpkg "github.com/DiegoUniline/salon-sync-sub000/pkg/branch"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ReportController sirve el resumen diario del dashboard. Reutiliza la
// misma acumulación por método de pago que la conciliación de turnos
type ReportController struct {
	saleRepository        sale.Repository
	expenseRepository     expense.Repository
	purchaseRepository    purchase.Repository
	appointmentRepository appointment.Repository
	reconciler            shift.Reconciler
}

// NewReportController crea una nueva instancia de ReportController
func NewReportController(
	saleRepository sale.Repository,
	expenseRepository expense.Repository,
	purchaseRepository purchase.Repository,
	appointmentRepository appointment.Repository,
) *ReportController {
	return &ReportController{
		saleRepository:        saleRepository,
		expenseRepository:     expenseRepository,
		purchaseRepository:    purchaseRepository,
		appointmentRepository: appointmentRepository,
		reconciler:            shift.Reconciler{},
	}
}

// toMethodMap convierte un mapa indexado por método al formato de respuesta
func toMethodMap(m map[payment.Method]decimal.Decimal) map[string]decimal.Decimal {
	result := make(map[string]decimal.Decimal, len(m))
	for k, v := range m {
		result[string(k)] = v
	}
	return result
}

// Daily retorna el resumen del día de la sucursal
// @Summary Resumen diario
// @Description Retorna los totales del día por método de pago: ventas, gastos y compras recibidas, con el neto del día
// @Tags reports
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param branch-id header string true "ID de la sucursal"
// @Param date query string false "Día calendario (YYYY-MM-DD); por defecto hoy"
// @Success 200 {object} dto.DailyReportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/daily [get]
func (c *ReportController) Daily(ctx *gin.Context) {
	branchID := branchpkg.GetBranchID(ctx)
	if branchID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Branch ID no encontrado", ""))
		return
	}

	date := ctx.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	var movements []shift.MoneyMovement

	sales, err := c.saleRepository.ListByBranchAndDate(ctx, branchID, date)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al listar ventas", err.Error()))
		return
	}
	for _, v := range sales {
		expanded, err := c.reconciler.ExpandSale(shift.SaleInput{
			Date:        v.Date,
			BranchID:    v.BranchID,
			Total:       v.Total,
			Method:      v.Method,
			SubPayments: v.SubPayments,
		})
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al descomponer ventas", err.Error()))
			return
		}
		movements = append(movements, expanded...)
	}

	expenses, err := c.expenseRepository.ListByBranchAndDate(ctx, branchID, date)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al listar gastos", err.Error()))
		return
	}
	for _, e := range expenses {
		movements = append(movements, shift.MovementFromExpense(shift.ExpenseInput{
			Date:     e.Date,
			BranchID: e.BranchID,
			Amount:   e.Amount,
			Method:   e.Method,
		}))
	}

	purchases, err := c.purchaseRepository.ListByBranchAndDate(ctx, branchID, date)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al listar compras", err.Error()))
		return
	}
	for _, p := range purchases {
		movements = append(movements, shift.MovementFromPurchase(shift.PurchaseInput{
			Date:     p.Date,
			BranchID: p.BranchID,
			Amount:   p.Total,
			Method:   p.Method,
		}))
	}

	completed, err := c.appointmentRepository.CountCompletedByBranchAndDate(ctx, branchID, date)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al contar citas", err.Error()))
		return
	}

	direct, err := c.saleRepository.CountDirectByBranchAndDate(ctx, branchID, date)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al contar ventas directas", err.Error()))
		return
	}

	// El reporte no tiene fondo de caja: se concilia sobre un turno
	// sintético con fondo cero
	blank := &shift.Shift{BranchID: branchID, Date: date, InitialCash: decimal.Zero}
	summary := c.reconciler.ComputeSummary(blank, movements, completed, direct)

	ctx.JSON(http.StatusOK, dto.DailyReportResponse{
		BranchID:              branchID,
		Date:                  date,
		SalesByMethod:         toMethodMap(summary.SalesByMethod),
		ExpensesByMethod:      toMethodMap(summary.ExpensesByMethod),
		PurchasesByMethod:     toMethodMap(summary.PurchasesByMethod),
		TotalSales:            summary.TotalSales,
		TotalExpenses:         summary.TotalExpenses,
		TotalPurchases:        summary.TotalPurchases,
		NetAmount:             summary.TotalSales.Sub(summary.TotalExpenses).Sub(summary.TotalPurchases),
		CompletedAppointments: summary.CompletedAppointments,
		DirectSales:           summary.DirectSales,
	})
}
