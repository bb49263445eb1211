package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/api/dto"
	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/repository"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/catalog"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/customer"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/payment"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/sale"
	"github.com/DiegoUniline/salon-sync-sub000/pkg/auth"
	branchpkg "github.com/DiegoUniline/salon-sync-sub000/pkg/branch"
	"github.com/DiegoUniline/salon-sync-sub000/pkg/logger"
	"github.com/gin-gonic/gin"
)

// SaleController gestiona las peticiones relacionadas con ventas
type SaleController struct {
	saleRepository     sale.Repository
	serviceRepository  catalog.ServiceRepository
	productRepository  catalog.ProductRepository
	customerRepository customer.Repository
	logger             logger.Logger
}

// NewSaleController crea una nueva instancia de SaleController
func NewSaleController(saleRepository sale.Repository, serviceRepository catalog.ServiceRepository, productRepository catalog.ProductRepository, customerRepository customer.Repository, logger logger.Logger) *SaleController {
	return &SaleController{
		saleRepository:     saleRepository,
		serviceRepository:  serviceRepository,
		productRepository:  productRepository,
		customerRepository: customerRepository,
		logger:             logger,
	}
}

// buildItems congela las líneas de la venta a partir del catálogo vigente
func (c *SaleController) buildItems(ctx *gin.Context, requests []dto.SaleItemRequest) ([]sale.Item, error) {
	items := make([]sale.Item, 0, len(requests))
	for _, req := range requests {
		quantity := req.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		switch sale.ItemKind(req.Kind) {
		case sale.ItemService:
			svc, err := c.serviceRepository.FindByID(ctx, req.ReferenceID)
			if err != nil {
				return nil, err
			}
			items = append(items, sale.NewItem(sale.ItemService, svc.ID, svc.Name, svc.Price, quantity))
		case sale.ItemProduct:
			p, err := c.productRepository.FindByID(ctx, req.ReferenceID)
			if err != nil {
				return nil, err
			}
			items = append(items, sale.NewItem(sale.ItemProduct, p.ID, p.Name, p.Price, quantity))
		default:
			return nil, errors.New("tipo de línea inválido: " + req.Kind)
		}
	}
	return items, nil
}

// Create registra una nueva venta
// @Summary Registra una nueva venta
// @Description Registra una venta de mostrador o el cobro de una cita. Con método mixto los sub-pagos deben sumar el total. Descuenta existencias de los productos vendidos
// @Tags sales
// @Accept json
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param branch-id header string true "ID de la sucursal"
// @Param sale body dto.SaleRequest true "Datos de la venta"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var request dto.SaleRequest
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

	items, err := c.buildItems(ctx, request.Items)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) || errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Servicio o producto no encontrado", ""))
			return
		}
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Error al armar las líneas de la venta", err.Error()))
		return
	}

	date := time.Now().Format("2006-01-02")

	s, err := sale.NewSale(branchID, userID, request.CustomerID, request.AppointmentID, date, items, payment.Method(request.Method), dto.ToSubPayments(request.SubPayments))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Datos inválidos", err.Error()))
		return
	}

	if err := c.saleRepository.Create(ctx, s); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al registrar venta", err.Error()))
		return
	}

	// Los productos vendidos descuentan existencias; un fallo aquí no
	// revierte la venta, solo se registra
	for _, item := range s.Items {
		if item.Kind != sale.ItemProduct {
			continue
		}
		if err := c.productRepository.AdjustStock(ctx, item.ReferenceID, -item.Quantity); err != nil {
			c.logger.Error("error al descontar existencias", "product_id", item.ReferenceID, "error", err)
		}
	}

	if s.CustomerID != "" {
		c.registerVisit(ctx, s.CustomerID)
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(s))
}

// registerVisit actualiza la última visita del cliente. El fallo no
// interrumpe la venta
func (c *SaleController) registerVisit(ctx *gin.Context, customerID string) {
	cust, err := c.customerRepository.FindByID(ctx, customerID)
	if err != nil {
		c.logger.Error("error al buscar cliente", "customer_id", customerID, "error", err)
		return
	}

	cust.RegisterVisit(time.Now())
	if err := c.customerRepository.Update(ctx, cust); err != nil {
		c.logger.Error("error al registrar visita", "customer_id", customerID, "error", err)
	}
}

// GetByID busca una venta por su ID
// @Summary Busca una venta por ID
// @Description Retorna los datos de una venta con sus líneas y sub-pagos
// @Tags sales
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID de la venta"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [get]
func (c *SaleController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	s, err := c.saleRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Venta no encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al buscar venta", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(s))
}

// List lista las ventas de la sucursal
// @Summary Lista las ventas
// @Description Retorna las ventas de la sucursal. Con el parámetro date filtra por día
// @Tags sales
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param branch-id header string true "ID de la sucursal"
// @Param date query string false "Día calendario (YYYY-MM-DD)"
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Tamaño de página" default(10)
// @Success 200 {object} dto.SaleListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	branchID := branchpkg.GetBranchID(ctx)
	if branchID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Branch ID no encontrado", ""))
		return
	}

	if date := ctx.Query("date"); date != "" {
		sales, err := c.saleRepository.ListByBranchAndDate(ctx, branchID, date)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al listar ventas", err.Error()))
			return
		}

		ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales, len(sales), 1, len(sales)))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	offset := (pagination.Page - 1) * pagination.PageSize

	sales, err := c.saleRepository.ListByBranch(ctx, branchID, pagination.PageSize, offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al listar ventas", err.Error()))
		return
	}

	totalCount, err := c.saleRepository.CountByBranch(ctx, branchID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al contar ventas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales, totalCount, pagination.Page, pagination.PageSize))
}
