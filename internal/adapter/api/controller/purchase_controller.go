package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/api/dto"
	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/repository"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/catalog"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/payment"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/purchase"
	"github.com/DiegoUniline/salon-sync-sub000/pkg/auth"
	branchpkg "github.com/DiegoUniline/salon-sync-sub000/pkg/branch"
	"github.com/DiegoUniline/salon-sync-sub000/pkg/logger"
	"github.com/gin-gonic/gin"
)

// PurchaseController gestiona las peticiones relacionadas con compras
type PurchaseController struct {
	purchaseRepository purchase.Repository
	productRepository  catalog.ProductRepository
	logger             logger.Logger
}

// NewPurchaseController crea una nueva instancia de PurchaseController
func NewPurchaseController(purchaseRepository purchase.Repository, productRepository catalog.ProductRepository, logger logger.Logger) *PurchaseController {
	return &PurchaseController{
		purchaseRepository: purchaseRepository,
		productRepository:  productRepository,
		logger:             logger,
	}
}

// Create registra una nueva compra pendiente de recibir
// @Summary Registra una nueva compra
// @Description Registra una compra a proveedor en estado pendiente. Las existencias se ajustan al recibirla
// @Tags purchases
// @Accept json
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param branch-id header string true "ID de la sucursal"
// @Param purchase body dto.PurchaseRequest true "Datos de la compra"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /purchases [post]
func (c *PurchaseController) Create(ctx *gin.Context) {
	var request dto.PurchaseRequest
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

	items := make([]purchase.Item, 0, len(request.Items))
	for _, req := range request.Items {
		p, err := c.productRepository.FindByID(ctx, req.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Producto no encontrado", req.ProductID))
				return
			}
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al buscar producto", err.Error()))
			return
		}

		items = append(items, purchase.NewItem(p.ID, p.Name, req.Quantity, req.UnitCost))
	}

	date := time.Now().Format("2006-01-02")

	p, err := purchase.NewPurchase(branchID, userID, request.Supplier, date, items, payment.Method(request.Method))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Datos inválidos", err.Error()))
		return
	}

	if err := c.purchaseRepository.Create(ctx, p); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al registrar compra", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPurchaseResponse(p))
}

// GetByID busca una compra por su ID
// @Summary Busca una compra por ID
// @Description Retorna los datos de una compra con sus líneas
// @Tags purchases
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID de la compra"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /purchases/{id} [get]
func (c *PurchaseController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	p, err := c.purchaseRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPurchaseNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Compra no encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al buscar compra", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseResponse(p))
}

// List lista las compras de la sucursal
// @Summary Lista las compras
// @Description Retorna una lista paginada de compras de la sucursal
// @Tags purchases
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param branch-id header string true "ID de la sucursal"
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Tamaño de página" default(10)
// @Success 200 {object} dto.PurchaseListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /purchases [get]
func (c *PurchaseController) List(ctx *gin.Context) {
	branchID := branchpkg.GetBranchID(ctx)
	if branchID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Branch ID no encontrado", ""))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	offset := (pagination.Page - 1) * pagination.PageSize

	purchases, err := c.purchaseRepository.ListByBranch(ctx, branchID, pagination.PageSize, offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al listar compras", err.Error()))
		return
	}

	totalCount, err := c.purchaseRepository.CountByBranch(ctx, branchID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al contar compras", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseListResponse(purchases, totalCount, pagination.Page, pagination.PageSize))
}

// Receive marca una compra como recibida y ajusta existencias
// @Summary Recibe una compra
// @Description Marca una compra pendiente como recibida y suma las cantidades a las existencias de cada producto. Las compras recibidas alimentan la conciliación del turno
// @Tags purchases
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID de la compra"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /purchases/{id}/receive [patch]
func (c *PurchaseController) Receive(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	p, err := c.purchaseRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPurchaseNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Compra no encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al buscar compra", err.Error()))
		return
	}

	if err := p.Receive(); err != nil {
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "No se puede recibir la compra", err.Error()))
		return
	}

	if err := c.purchaseRepository.UpdateStatus(ctx, p); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al actualizar compra", err.Error()))
		return
	}

	// Lo recibido entra a las existencias; un fallo aquí no revierte la
	// recepción, solo se registra
	for _, item := range p.Items {
		if err := c.productRepository.AdjustStock(ctx, item.ProductID, item.Quantity); err != nil {
			c.logger.Error("error al ajustar existencias", "product_id", item.ProductID, "error", err)
		}
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseResponse(p))
}

// Cancel cancela una compra pendiente
// @Summary Cancela una compra
// @Description Cancela una compra que sigue pendiente de recibir
// @Tags purchases
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID de la compra"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /purchases/{id}/cancel [patch]
func (c *PurchaseController) Cancel(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	p, err := c.purchaseRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPurchaseNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Compra no encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al buscar compra", err.Error()))
		return
	}

	if err := p.Cancel(); err != nil {
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "No se puede cancelar la compra", err.Error()))
		return
	}

	if err := c.purchaseRepository.UpdateStatus(ctx, p); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al actualizar compra", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseResponse(p))
}
