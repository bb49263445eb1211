package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/api/dto"
	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/repository"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/tenant"
	"github.com/DiegoUniline/salon-sync-sub000/internal/infrastructure/database"
	"github.com/DiegoUniline/salon-sync-sub000/pkg/logger"
	"github.com/gin-gonic/gin"
)

// TenantController gestiona las peticiones relacionadas con tenants
type TenantController struct {
	tenantRepository tenant.Repository
	logger           logger.Logger
}

// NewTenantController crea una nueva instancia de TenantController
func NewTenantController(tenantRepository tenant.Repository, logger logger.Logger) *TenantController {
	return &TenantController{
		tenantRepository: tenantRepository,
		logger:           logger,
	}
}

// Create crea un nuevo tenant
// @Summary Crea un nuevo tenant
// @Description Registra una cadena de salones nueva, junto con su schema de datos
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant body dto.TenantRequest true "Datos del tenant"
// @Success 201 {object} dto.TenantResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tenants [post]
func (c *TenantController) Create(ctx *gin.Context) {
	var request dto.TenantRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Petición inválida", err.Error()))
		return
	}

	t, err := tenant.NewTenant(request.Name, request.Document, request.Email, request.Phone, request.PlanType, request.MaxBranches)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Datos inválidos", err.Error()))
		return
	}

	if err := c.tenantRepository.Create(ctx, t); err != nil {
		if errors.Is(err, repository.ErrTenantDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Ya existe un tenant con el mismo documento", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al crear tenant", err.Error()))
		return
	}

	// Aplicar las migraciones sobre el schema recién creado
	if err := database.RunTenantMigrations(t.Schema); err != nil {
		c.logger.Error("error al migrar el schema del tenant", "tenant_id", t.ID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al preparar el schema del tenant", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTenantResponse(t))
}

// GetByID busca un tenant por su ID
// @Summary Busca un tenant por ID
// @Description Retorna los datos de un tenant
// @Tags tenants
// @Produce json
// @Param id path string true "ID del tenant"
// @Success 200 {object} dto.TenantResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tenants/{id} [get]
func (c *TenantController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	t, err := c.tenantRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Tenant no encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al buscar tenant", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTenantResponse(t))
}

// List lista los tenants con paginación
// @Summary Lista los tenants
// @Description Retorna una lista paginada de tenants
// @Tags tenants
// @Produce json
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Tamaño de página" default(10)
// @Success 200 {object} dto.TenantListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tenants [get]
func (c *TenantController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	offset := (pagination.Page - 1) * pagination.PageSize

	tenants, err := c.tenantRepository.List(ctx, pagination.PageSize, offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al listar tenants", err.Error()))
		return
	}

	totalCount, err := c.tenantRepository.Count(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al contar tenants", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTenantListResponse(tenants, totalCount, pagination.Page, pagination.PageSize))
}

// Update actualiza un tenant
// @Summary Actualiza un tenant
// @Description Actualiza los datos de un tenant existente
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path string true "ID del tenant"
// @Param tenant body dto.TenantRequest true "Datos del tenant"
// @Success 200 {object} dto.TenantResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tenants/{id} [put]
func (c *TenantController) Update(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	var request dto.TenantRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Petición inválida", err.Error()))
		return
	}

	t, err := c.tenantRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Tenant no encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al buscar tenant", err.Error()))
		return
	}

	t.Name = request.Name
	t.Email = request.Email
	t.Phone = request.Phone
	if request.PlanType != "" {
		t.PlanType = request.PlanType
	}
	if request.MaxBranches > 0 {
		t.MaxBranches = request.MaxBranches
	}

	if err := c.tenantRepository.Update(ctx, t); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al actualizar tenant", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTenantResponse(t))
}

// UpdateStatus cambia el estado de un tenant
// @Summary Cambia el estado de un tenant
// @Description Activa, inactiva o bloquea un tenant
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path string true "ID del tenant"
// @Param status query string true "Nuevo estado"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tenants/{id}/status [patch]
func (c *TenantController) UpdateStatus(ctx *gin.Context) {
	id := ctx.Param("id")
	status := ctx.Query("status")
	if id == "" || status == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID y estado son obligatorios", ""))
		return
	}

	if err := c.tenantRepository.UpdateStatus(ctx, id, tenant.Status(status)); err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Tenant no encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al actualizar estado", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Estado actualizado", nil))
}

// Delete elimina un tenant
// @Summary Elimina un tenant
// @Description Elimina un tenant del sistema
// @Tags tenants
// @Produce json
// @Param id path string true "ID del tenant"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tenants/{id} [delete]
func (c *TenantController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	if err := c.tenantRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Tenant no encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al eliminar tenant", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Tenant eliminado", nil))
}
