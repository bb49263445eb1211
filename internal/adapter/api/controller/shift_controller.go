package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/api/dto"
	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/repository"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/appointment"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/expense"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/purchase"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/sale"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/shift"
	"github.com/DiegoUniline/salon-sync-sub000/pkg/auth"
	branchpkg "github.com/DiegoUniline/salon-sync-sub000/pkg/branch"
	"github.com/DiegoUniline/salon-sync-sub000/pkg/logger"
	"github.com/gin-gonic/gin"
)

// ShiftController gestiona las peticiones de turnos y cortes de caja
type ShiftController struct {
	shiftRepository       shift.Repository
	cashCutRepository     shift.CashCutRepository
	saleRepository        sale.Repository
	expenseRepository     expense.Repository
	purchaseRepository    purchase.Repository
	appointmentRepository appointment.Repository
	reconciler            shift.Reconciler
	logger                logger.Logger
}

// NewShiftController crea una nueva instancia de ShiftController
func NewShiftController(
	shiftRepository shift.Repository,
	cashCutRepository shift.CashCutRepository,
	saleRepository sale.Repository,
	expenseRepository expense.Repository,
	purchaseRepository purchase.Repository,
	appointmentRepository appointment.Repository,
	logger logger.Logger,
) *ShiftController {
	return &ShiftController{
		shiftRepository:       shiftRepository,
		cashCutRepository:     cashCutRepository,
		saleRepository:        saleRepository,
		expenseRepository:     expenseRepository,
		purchaseRepository:    purchaseRepository,
		appointmentRepository: appointmentRepository,
		reconciler:            shift.Reconciler{},
		logger:                logger,
	}
}

// buildSummary recalcula el resumen conciliado del turno a partir de los
// movimientos del día: ventas (las mixtas descompuestas en sub-pagos),
// gastos y compras recibidas de la sucursal en el día del turno
func (c *ShiftController) buildSummary(ctx *gin.Context, s *shift.Shift) (shift.Summary, error) {
	var movements []shift.MoneyMovement

	sales, err := c.saleRepository.ListByBranchAndDate(ctx, s.BranchID, s.Date)
	if err != nil {
		return shift.Summary{}, err
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
			return shift.Summary{}, err
		}
		movements = append(movements, expanded...)
	}

	expenses, err := c.expenseRepository.ListByBranchAndDate(ctx, s.BranchID, s.Date)
	if err != nil {
		return shift.Summary{}, err
	}
	for _, e := range expenses {
		movements = append(movements, shift.MovementFromExpense(shift.ExpenseInput{
			Date:     e.Date,
			BranchID: e.BranchID,
			Amount:   e.Amount,
			Method:   e.Method,
		}))
	}

	purchases, err := c.purchaseRepository.ListByBranchAndDate(ctx, s.BranchID, s.Date)
	if err != nil {
		return shift.Summary{}, err
	}
	for _, p := range purchases {
		movements = append(movements, shift.MovementFromPurchase(shift.PurchaseInput{
			Date:     p.Date,
			BranchID: p.BranchID,
			Amount:   p.Total,
			Method:   p.Method,
		}))
	}

	completed, err := c.appointmentRepository.CountCompletedByBranchAndDate(ctx, s.BranchID, s.Date)
	if err != nil {
		return shift.Summary{}, err
	}

	direct, err := c.saleRepository.CountDirectByBranchAndDate(ctx, s.BranchID, s.Date)
	if err != nil {
		return shift.Summary{}, err
	}

	return c.reconciler.ComputeSummary(s, movements, completed, direct), nil
}

// Open abre un nuevo turno en la sucursal
// @Summary Abre un turno
// @Description Abre un turno con el fondo de caja inicial. Una sucursal admite a lo más un turno abierto
// @Tags shifts
// @Accept json
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param branch-id header string true "ID de la sucursal"
// @Param shift body dto.OpenShiftRequest true "Fondo de caja inicial"
// @Success 201 {object} dto.ShiftResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /shifts [post]
func (c *ShiftController) Open(ctx *gin.Context) {
	var request dto.OpenShiftRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Petición inválida", err.Error()))
		return
	}

	branchID := branchpkg.GetBranchID(ctx)
	if branchID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Branch ID no encontrado", ""))
		return
	}

	userID := auth.CurrentUserID(ctx)
	if userID == "" {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Usuario no autenticado", ""))
		return
	}

	date := time.Now().Format("2006-01-02")

	s, err := shift.NewShift(branchID, userID, date, request.InitialCash)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Datos inválidos", err.Error()))
		return
	}

	if err := c.shiftRepository.Create(ctx, s); err != nil {
		if errors.Is(err, repository.ErrShiftOpenExists) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "La sucursal ya tiene un turno abierto", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al abrir turno", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToShiftResponse(s))
}

// GetActive retorna el turno abierto de la sucursal
// @Summary Turno activo
// @Description Retorna el turno abierto de la sucursal, si existe
// @Tags shifts
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param branch-id header string true "ID de la sucursal"
// @Success 200 {object} dto.ShiftResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /shifts/active [get]
func (c *ShiftController) GetActive(ctx *gin.Context) {
	branchID := branchpkg.GetBranchID(ctx)
	if branchID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Branch ID no encontrado", ""))
		return
	}

	s, err := c.shiftRepository.FindOpenByBranch(ctx, branchID)
	if err != nil {
		if errors.Is(err, repository.ErrShiftNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "No hay turno abierto", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al buscar turno", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToShiftResponse(s))
}

// GetByID busca un turno por su ID
// @Summary Busca un turno por ID
// @Description Retorna los datos de un turno
// @Tags shifts
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID del turno"
// @Success 200 {object} dto.ShiftResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /shifts/{id} [get]
func (c *ShiftController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	s, err := c.shiftRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrShiftNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Turno no encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al buscar turno", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToShiftResponse(s))
}

// List lista los turnos de la sucursal
// @Summary Lista los turnos
// @Description Retorna una lista paginada de turnos de la sucursal
// @Tags shifts
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param branch-id header string true "ID de la sucursal"
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Tamaño de página" default(10)
// @Success 200 {object} dto.ShiftListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /shifts [get]
func (c *ShiftController) List(ctx *gin.Context) {
	branchID := branchpkg.GetBranchID(ctx)
	if branchID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Branch ID no encontrado", ""))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	offset := (pagination.Page - 1) * pagination.PageSize

	shifts, err := c.shiftRepository.ListByBranch(ctx, branchID, pagination.PageSize, offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al listar turnos", err.Error()))
		return
	}

	totalCount, err := c.shiftRepository.CountByBranch(ctx, branchID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al contar turnos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToShiftListResponse(shifts, totalCount, pagination.Page, pagination.PageSize))
}

// Summary retorna el resumen conciliado del turno sin cerrarlo
// @Summary Resumen del turno
// @Description Recalcula el resumen del turno: acumulados por método de pago y saldo esperado. No modifica el turno
// @Tags shifts
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID del turno"
// @Success 200 {object} dto.SummaryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /shifts/{id}/summary [get]
func (c *ShiftController) Summary(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	s, err := c.shiftRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrShiftNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Turno no encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al buscar turno", err.Error()))
		return
	}

	summary, err := c.buildSummary(ctx, s)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al conciliar turno", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// Close cierra el turno y produce su corte de caja
// @Summary Cierra un turno
// @Description Cierra el turno con el conteo por método de pago y genera el corte de caja. El conteo debe incluir el efectivo. Un turno cerrado no se puede volver a cerrar
// @Tags shifts
// @Accept json
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID del turno"
// @Param close body dto.CloseShiftRequest true "Conteo por método de pago"
// @Success 200 {object} dto.CashCutResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /shifts/{id}/close [post]
func (c *ShiftController) Close(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	var request dto.CloseShiftRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Petición inválida", err.Error()))
		return
	}

	s, err := c.shiftRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrShiftNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Turno no encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al buscar turno", err.Error()))
		return
	}

	summary, err := c.buildSummary(ctx, s)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al conciliar turno", err.Error()))
		return
	}

	cut, err := c.reconciler.CloseShift(s, summary, dto.ToCountedMap(request.Counted))
	if err != nil {
		switch {
		case errors.Is(err, shift.ErrShiftAlreadyClosed):
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "El turno ya está cerrado", ""))
		case errors.Is(err, shift.ErrCashCountRequired):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "El conteo debe incluir el efectivo", ""))
		default:
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al cerrar turno", err.Error()))
		}
		return
	}

	// El UPDATE condicionado al estado abierto resuelve la carrera de dos
	// cierres concurrentes: solo uno gana y produce corte
	if err := c.shiftRepository.Close(ctx, s); err != nil {
		switch {
		case errors.Is(err, shift.ErrShiftAlreadyClosed):
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "El turno ya está cerrado", ""))
		case errors.Is(err, repository.ErrShiftNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Turno no encontrado", ""))
		default:
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al cerrar turno", err.Error()))
		}
		return
	}

	if err := c.cashCutRepository.Create(ctx, cut); err != nil {
		if errors.Is(err, repository.ErrCashCutDuplicate) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "El turno ya tiene corte", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al registrar corte", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCashCutResponse(cut))
}

// ListPendingCut lista los turnos cerrados sin corte
// @Summary Turnos pendientes de corte
// @Description Retorna los turnos cerrados de la sucursal que aún no tienen corte de caja
// @Tags shifts
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param branch-id header string true "ID de la sucursal"
// @Success 200 {array} dto.ShiftResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /shifts/pending-cut [get]
func (c *ShiftController) ListPendingCut(ctx *gin.Context) {
	branchID := branchpkg.GetBranchID(ctx)
	if branchID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Branch ID no encontrado", ""))
		return
	}

	shifts, err := c.shiftRepository.ListPendingCut(ctx, branchID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al listar turnos pendientes", err.Error()))
		return
	}

	responses := make([]dto.ShiftResponse, len(shifts))
	for i, s := range shifts {
		responses[i] = dto.ToShiftResponse(s)
	}

	ctx.JSON(http.StatusOK, responses)
}

// CreateCut genera el corte de un turno cerrado que quedó pendiente
// @Summary Genera un corte pendiente
// @Description Genera el corte de caja de un turno ya cerrado que no lo tiene. Usa el mismo cálculo que el cierre
// @Tags shifts
// @Accept json
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID del turno"
// @Param close body dto.CloseShiftRequest true "Conteo por método de pago"
// @Success 201 {object} dto.CashCutResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /shifts/{id}/cut [post]
func (c *ShiftController) CreateCut(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	var request dto.CloseShiftRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Petición inválida", err.Error()))
		return
	}

	s, err := c.shiftRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrShiftNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Turno no encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al buscar turno", err.Error()))
		return
	}

	exists, err := c.cashCutRepository.ExistsForShift(ctx, s.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al verificar corte", err.Error()))
		return
	}
	if exists {
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "El turno ya tiene corte", ""))
		return
	}

	summary, err := c.buildSummary(ctx, s)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al conciliar turno", err.Error()))
		return
	}

	cut, err := c.reconciler.BuildCut(s, summary, dto.ToCountedMap(request.Counted))
	if err != nil {
		switch {
		case errors.Is(err, shift.ErrShiftNotClosed):
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "El turno sigue abierto", ""))
		case errors.Is(err, shift.ErrCashCountRequired):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "El conteo debe incluir el efectivo", ""))
		default:
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al generar corte", err.Error()))
		}
		return
	}

	if err := c.cashCutRepository.Create(ctx, cut); err != nil {
		if errors.Is(err, repository.ErrCashCutDuplicate) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "El turno ya tiene corte", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al registrar corte", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCashCutResponse(cut))
}

// GetCut retorna el corte de un turno
// @Summary Corte de un turno
// @Description Retorna el corte de caja de un turno, si existe
// @Tags shifts
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID del turno"
// @Success 200 {object} dto.CashCutResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /shifts/{id}/cut [get]
func (c *ShiftController) GetCut(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	cut, err := c.cashCutRepository.FindByShiftID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCashCutNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Corte no encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al buscar corte", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCashCutResponse(cut))
}

// ListCuts lista los cortes de la sucursal
// @Summary Lista los cortes
// @Description Retorna una lista paginada de cortes de caja de la sucursal
// @Tags shifts
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param branch-id header string true "ID de la sucursal"
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Tamaño de página" default(10)
// @Success 200 {object} dto.CashCutListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /cash-cuts [get]
func (c *ShiftController) ListCuts(ctx *gin.Context) {
	branchID := branchpkg.GetBranchID(ctx)
	if branchID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Branch ID no encontrado", ""))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	offset := (pagination.Page - 1) * pagination.PageSize

	cuts, err := c.cashCutRepository.ListByBranch(ctx, branchID, pagination.PageSize, offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al listar cortes", err.Error()))
		return
	}

	totalCount, err := c.cashCutRepository.CountByBranch(ctx, branchID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al contar cortes", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCashCutListResponse(cuts, totalCount, pagination.Page, pagination.PageSize))
}
