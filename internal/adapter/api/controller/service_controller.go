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

// ServiceController gestiona las peticiones del catálogo de servicios
type ServiceController struct {
	serviceRepository catalog.ServiceRepository
}

// NewServiceController crea una nueva instancia de ServiceController
func NewServiceController(serviceRepository catalog.ServiceRepository) *ServiceController {
	return &ServiceController{
		serviceRepository: serviceRepository,
	}
}

// Create crea un nuevo servicio
// @Summary Crea un nuevo servicio
// @Description Registra un servicio del catálogo con su duración y precio
// @Tags services
// @Accept json
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param service body dto.ServiceRequest true "Datos del servicio"
// @Success 201 {object} dto.ServiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /services [post]
func (c *ServiceController) Create(ctx *gin.Context) {
	var request dto.ServiceRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Petición inválida", err.Error()))
		return
	}

	tenantID := tenantpkg.GetTenantID(ctx)
	if tenantID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Tenant ID no encontrado", ""))
		return
	}

	s, err := catalog.NewService(tenantID, request.Name, request.Category, request.Duration, request.Price)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Datos inválidos", err.Error()))
		return
	}

	if err := c.serviceRepository.Create(ctx, s); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al crear servicio", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToServiceResponse(s))
}

// GetByID busca un servicio por su ID
// @Summary Busca un servicio por ID
// @Description Retorna los datos de un servicio del catálogo
// @Tags services
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID del servicio"
// @Success 200 {object} dto.ServiceResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /services/{id} [get]
func (c *ServiceController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	s, err := c.serviceRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Servicio no encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al buscar servicio", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToServiceResponse(s))
}

// List lista los servicios del tenant con paginación
// @Summary Lista los servicios
// @Description Retorna una lista paginada de servicios del catálogo
// @Tags services
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Tamaño de página" default(10)
// @Success 200 {object} dto.ServiceListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /services [get]
func (c *ServiceController) List(ctx *gin.Context) {
	tenantID := tenantpkg.GetTenantID(ctx)
	if tenantID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Tenant ID no encontrado", ""))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	offset := (pagination.Page - 1) * pagination.PageSize

	services, err := c.serviceRepository.ListByTenant(ctx, tenantID, pagination.PageSize, offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al listar servicios", err.Error()))
		return
	}

	totalCount, err := c.serviceRepository.CountByTenant(ctx, tenantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al contar servicios", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToServiceListResponse(services, totalCount, pagination.Page, pagination.PageSize))
}

// Candidates retorna los servicios activos como candidatos del editor de líneas
// @Summary Candidatos de servicios
// @Description Retorna los servicios activos en el formato de candidatos para las columnas de búsqueda
// @Tags services
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Success 200 {array} dto.CandidateResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /services/candidates [get]
func (c *ServiceController) Candidates(ctx *gin.Context) {
	tenantID := tenantpkg.GetTenantID(ctx)
	if tenantID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Tenant ID no encontrado", ""))
		return
	}

	services, err := c.serviceRepository.ListActive(ctx, tenantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al listar servicios activos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToServiceCandidates(services))
}

// Update actualiza un servicio
// @Summary Actualiza un servicio
// @Description Actualiza los datos de un servicio del catálogo. Las citas ya
// agendadas conservan el precio y la duración congelados
// @Tags services
// @Accept json
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID del servicio"
// @Param service body dto.ServiceRequest true "Datos del servicio"
// @Success 200 {object} dto.ServiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /services/{id} [put]
func (c *ServiceController) Update(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	var request dto.ServiceRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Petición inválida", err.Error()))
		return
	}

	s, err := c.serviceRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Servicio no encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al buscar servicio", err.Error()))
		return
	}

	if err := s.Update(request.Name, request.Category, request.Duration, request.Price); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Datos inválidos", err.Error()))
		return
	}
	if request.Active != nil {
		s.Active = *request.Active
	}

	if err := c.serviceRepository.Update(ctx, s); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al actualizar servicio", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToServiceResponse(s))
}

// Delete elimina un servicio
// @Summary Elimina un servicio
// @Description Elimina un servicio del catálogo
// @Tags services
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID del servicio"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /services/{id} [delete]
func (c *ServiceController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	if err := c.serviceRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Servicio no encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al eliminar servicio", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Servicio eliminado", nil))
}
