package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/api/dto"
	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/repository"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/expense"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/payment"
	"github.com/DiegoUniline/salon-sync-sub000/pkg/auth"
	branchpkg "github.com/DiegoUniline/salon-sync-sub000/pkg/branch"
	"github.com/gin-gonic/gin"
)

// ExpenseController gestiona las peticiones relacionadas con gastos
type ExpenseController struct {
	expenseRepository expense.Repository
}

// NewExpenseController crea una nueva instancia de ExpenseController
func NewExpenseController(expenseRepository expense.Repository) *ExpenseController {
	return &ExpenseController{
		expenseRepository: expenseRepository,
	}
}

// Create registra un nuevo gasto
// @Summary Registra un nuevo gasto
// @Description Registra un gasto operativo del día para la sucursal
// @Tags expenses
// @Accept json
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param branch-id header string true "ID de la sucursal"
// @Param expense body dto.ExpenseRequest true "Datos del gasto"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expenses [post]
func (c *ExpenseController) Create(ctx *gin.Context) {
	var request dto.ExpenseRequest
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

	e, err := expense.NewExpense(branchID, userID, date, request.Concept, request.Category, request.Amount, payment.Method(request.Method))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Datos inválidos", err.Error()))
		return
	}

	if err := c.expenseRepository.Create(ctx, e); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al registrar gasto", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(e))
}

// GetByID busca un gasto por su ID
// @Summary Busca un gasto por ID
// @Description Retorna los datos de un gasto
// @Tags expenses
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID del gasto"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expenses/{id} [get]
func (c *ExpenseController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	e, err := c.expenseRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Gasto no encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al buscar gasto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(e))
}

// List lista los gastos de la sucursal
// @Summary Lista los gastos
// @Description Retorna los gastos de la sucursal. Con el parámetro date filtra por día
// @Tags expenses
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param branch-id header string true "ID de la sucursal"
// @Param date query string false "Día calendario (YYYY-MM-DD)"
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Tamaño de página" default(10)
// @Success 200 {object} dto.ExpenseListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expenses [get]
func (c *ExpenseController) List(ctx *gin.Context) {
	branchID := branchpkg.GetBranchID(ctx)
	if branchID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Branch ID no encontrado", ""))
		return
	}

	if date := ctx.Query("date"); date != "" {
		expenses, err := c.expenseRepository.ListByBranchAndDate(ctx, branchID, date)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al listar gastos", err.Error()))
			return
		}

		ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(expenses, len(expenses), 1, len(expenses)))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	offset := (pagination.Page - 1) * pagination.PageSize

	expenses, err := c.expenseRepository.ListByBranch(ctx, branchID, pagination.PageSize, offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al listar gastos", err.Error()))
		return
	}

	totalCount, err := c.expenseRepository.CountByBranch(ctx, branchID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al contar gastos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(expenses, totalCount, pagination.Page, pagination.PageSize))
}

// Delete elimina un gasto
// @Summary Elimina un gasto
// @Description Elimina un gasto registrado por error
// @Tags expenses
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID del gasto"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expenses/{id} [delete]
func (c *ExpenseController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	if err := c.expenseRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Gasto no encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al eliminar gasto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Gasto eliminado", nil))
}
