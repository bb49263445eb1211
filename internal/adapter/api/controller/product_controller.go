package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/api/dto"
	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/repository"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/catalog"
	tenantpkg "github.com/DiegoUniline/salon-sync-sub000/pkg/tenant"
	"github.com/gin-gonic/gin"
)

// ProductController gestiona las peticiones del catálogo de productos
type ProductController struct {
	productRepository catalog.ProductRepository
}

// NewProductController crea una nueva instancia de ProductController
func NewProductController(productRepository catalog.ProductRepository) *ProductController {
	return &ProductController{
		productRepository: productRepository,
	}
}

// Create crea un nuevo producto
// @Summary Crea un nuevo producto
// @Description Registra un producto de venta con su precio, costo y existencias
// @Tags products
// @Accept json
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param product body dto.ProductRequest true "Datos del producto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var request dto.ProductRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Petición inválida", err.Error()))
		return
	}

	tenantID := tenantpkg.GetTenantID(ctx)
	if tenantID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Tenant ID no encontrado", ""))
		return
	}

	p, err := catalog.NewProduct(tenantID, request.Name, request.SKU, request.Category, request.Price, request.Cost, request.Stock, request.MinStock)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Datos inválidos", err.Error()))
		return
	}

	if err := c.productRepository.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrProductDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Ya existe un producto con el mismo SKU", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al crear producto", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(p))
}

// GetByID busca un producto por su ID
// @Summary Busca un producto por ID
// @Description Retorna los datos de un producto
// @Tags products
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID del producto"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	p, err := c.productRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Producto no encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al buscar producto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// List lista los productos del tenant con paginación
// @Summary Lista los productos
// @Description Retorna una lista paginada de productos
// @Tags products
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Tamaño de página" default(10)
// @Success 200 {object} dto.ProductListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	tenantID := tenantpkg.GetTenantID(ctx)
	if tenantID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Tenant ID no encontrado", ""))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	offset := (pagination.Page - 1) * pagination.PageSize

	products, err := c.productRepository.ListByTenant(ctx, tenantID, pagination.PageSize, offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al listar productos", err.Error()))
		return
	}

	totalCount, err := c.productRepository.CountByTenant(ctx, tenantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al contar productos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products, totalCount, pagination.Page, pagination.PageSize))
}

// Candidates retorna los productos activos como candidatos del editor de líneas
// @Summary Candidatos de productos
// @Description Retorna los productos activos en el formato de candidatos para las columnas de búsqueda
// @Tags products
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Success 200 {array} dto.CandidateResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/candidates [get]
func (c *ProductController) Candidates(ctx *gin.Context) {
	tenantID := tenantpkg.GetTenantID(ctx)
	if tenantID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Tenant ID no encontrado", ""))
		return
	}

	products, err := c.productRepository.ListActive(ctx, tenantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al listar productos activos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductCandidates(products))
}

// Update actualiza un producto
// @Summary Actualiza un producto
// @Description Actualiza los datos de un producto existente
// @Tags products
// @Accept json
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID del producto"
// @Param product body dto.ProductRequest true "Datos del producto"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	var request dto.ProductRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Petición inválida", err.Error()))
		return
	}

	p, err := c.productRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Producto no encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al buscar producto", err.Error()))
		return
	}

	// Las existencias no se editan aquí; se mueven con ventas, compras
	// recibidas y ajustes explícitos
	if err := p.Update(request.Name, request.SKU, request.Category, request.Price, request.Cost, request.MinStock); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Datos inválidos", err.Error()))
		return
	}
	if request.Active != nil {
		p.Active = *request.Active
	}

	if err := c.productRepository.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrProductDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Ya existe un producto con el mismo SKU", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al actualizar producto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// AdjustStock ajusta las existencias de un producto
// @Summary Ajusta existencias
// @Description Suma el delta indicado a las existencias. Puede quedar negativo;
// el inventario se corrige después
// @Tags products
// @Accept json
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID del producto"
// @Param adjustment body dto.StockAdjustmentRequest true "Delta del ajuste"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id}/stock [patch]
func (c *ProductController) AdjustStock(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	var request dto.StockAdjustmentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Petición inválida", err.Error()))
		return
	}

	if err := c.productRepository.AdjustStock(ctx, id, request.Delta); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Producto no encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al ajustar existencias", err.Error()))
		return
	}

	p, err := c.productRepository.FindByID(ctx, id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al buscar producto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// Delete elimina un producto
// @Summary Elimina un producto
// @Description Elimina un producto del catálogo
// @Tags products
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID del producto"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	if err := c.productRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Producto no encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al eliminar producto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Producto eliminado", nil))
}
