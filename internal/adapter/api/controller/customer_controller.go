package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/api/dto"
	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/repository"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/customer"
	tenantpkg "github.com/DiegoUniline/salon-sync-sub000/pkg/tenant"
	"github.com/gin-gonic/gin"
)

// CustomerController gestiona las peticiones relacionadas con clientes
type CustomerController struct {
	customerRepository customer.Repository
}

// NewCustomerController crea una nueva instancia de CustomerController
func NewCustomerController(customerRepository customer.Repository) *CustomerController {
	return &CustomerController{
		customerRepository: customerRepository,
	}
}

// Create crea un nuevo cliente
// @Summary Crea un nuevo cliente
// @Description Registra un cliente del salón con sus datos de contacto y notas
// @Tags customers
// @Accept json
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param customer body dto.CustomerRequest true "Datos del cliente"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [post]
func (c *CustomerController) Create(ctx *gin.Context) {
	var request dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Petición inválida", err.Error()))
		return
	}

	tenantID := tenantpkg.GetTenantID(ctx)
	if tenantID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Tenant ID no encontrado", ""))
		return
	}

	cust, err := customer.NewCustomer(tenantID, request.BranchID, request.Name, request.Phone, request.Email, request.BirthDate, request.Notes)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Datos inválidos", err.Error()))
		return
	}

	if err := c.customerRepository.Create(ctx, cust); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al crear cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCustomerResponse(cust))
}

// GetByID busca un cliente por su ID
// @Summary Busca un cliente por ID
// @Description Retorna los datos de un cliente
// @Tags customers
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID del cliente"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id} [get]
func (c *CustomerController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	cust, err := c.customerRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente no encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al buscar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(cust))
}

// List lista los clientes del tenant con paginación
// @Summary Lista los clientes
// @Description Retorna una lista paginada de clientes del tenant
// @Tags customers
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Tamaño de página" default(10)
// @Success 200 {object} dto.CustomerListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [get]
func (c *CustomerController) List(ctx *gin.Context) {
	tenantID := tenantpkg.GetTenantID(ctx)
	if tenantID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Tenant ID no encontrado", ""))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	offset := (pagination.Page - 1) * pagination.PageSize

	customers, err := c.customerRepository.ListByTenant(ctx, tenantID, pagination.PageSize, offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al listar clientes", err.Error()))
		return
	}

	totalCount, err := c.customerRepository.CountByTenant(ctx, tenantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al contar clientes", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerListResponse(customers, totalCount, pagination.Page, pagination.PageSize))
}

// Search busca clientes por nombre o teléfono
// @Summary Busca clientes
// @Description Busca clientes por coincidencia parcial de nombre o teléfono
// @Tags customers
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param q query string true "Texto a buscar"
// @Param limit query int false "Máximo de resultados" default(20)
// @Success 200 {array} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/search [get]
func (c *CustomerController) Search(ctx *gin.Context) {
	tenantID := tenantpkg.GetTenantID(ctx)
	if tenantID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Tenant ID no encontrado", ""))
		return
	}

	query := ctx.Query("q")
	if query == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "El parámetro 'q' es obligatorio", ""))
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	customers, err := c.customerRepository.SearchByNameOrPhone(ctx, tenantID, query, limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al buscar clientes", err.Error()))
		return
	}

	results := make([]dto.CustomerResponse, len(customers))
	for i, cust := range customers {
		results[i] = dto.ToCustomerResponse(cust)
	}

	ctx.JSON(http.StatusOK, results)
}

// Update actualiza un cliente
// @Summary Actualiza un cliente
// @Description Actualiza los datos de un cliente existente
// @Tags customers
// @Accept json
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID del cliente"
// @Param customer body dto.CustomerRequest true "Datos del cliente"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id} [put]
func (c *CustomerController) Update(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	var request dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Petición inválida", err.Error()))
		return
	}

	cust, err := c.customerRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente no encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al buscar cliente", err.Error()))
		return
	}

	cust.Name = request.Name
	cust.Phone = request.Phone
	cust.Email = request.Email
	cust.BirthDate = request.BirthDate
	cust.Notes = request.Notes

	if err := c.customerRepository.Update(ctx, cust); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al actualizar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(cust))
}

// Delete elimina un cliente
// @Summary Elimina un cliente
// @Description Elimina un cliente del tenant
// @Tags customers
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID del cliente"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id} [delete]
func (c *CustomerController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	if err := c.customerRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente no encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al eliminar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Cliente eliminado", nil))
}
