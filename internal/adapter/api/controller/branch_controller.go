package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/api/dto"
	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/repository"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/branch"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/tenant"
	tenantpkg "github.com/DiegoUniline/salon-sync-sub000/pkg/tenant"
	"github.com/gin-gonic/gin"
)

// BranchController gestiona las peticiones relacionadas con sucursales
type BranchController struct {
	branchRepository branch.Repository
	tenantRepository tenant.Repository
}

// NewBranchController crea una nueva instancia de BranchController
func NewBranchController(branchRepository branch.Repository, tenantRepository tenant.Repository) *BranchController {
	return &BranchController{
		branchRepository: branchRepository,
		tenantRepository: tenantRepository,
	}
}

// Create crea una nueva sucursal
// @Summary Crea una nueva sucursal
// @Description Registra una sucursal del tenant, respetando el límite del plan
// @Tags branches
// @Accept json
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param branch body dto.BranchRequest true "Datos de la sucursal"
// @Success 201 {object} dto.BranchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /branches [post]
func (c *BranchController) Create(ctx *gin.Context) {
	var request dto.BranchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Petición inválida", err.Error()))
		return
	}

	tenantID := tenantpkg.GetTenantID(ctx)
	if tenantID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Tenant ID no encontrado", ""))
		return
	}

	// Verificar el límite de sucursales del plan
	t, err := c.tenantRepository.FindByID(ctx, tenantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al buscar tenant", err.Error()))
		return
	}

	count, err := c.branchRepository.CountByTenant(ctx, tenantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al contar sucursales", err.Error()))
		return
	}

	if count >= t.MaxBranches {
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Límite de sucursales alcanzado", "El plan del tenant no admite más sucursales"))
		return
	}

	b, err := branch.NewBranch(tenantID, request.Name, request.Code, request.Address, request.City, request.Phone, request.Email, request.IsMain)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Datos inválidos", err.Error()))
		return
	}

	if err := c.branchRepository.Create(ctx, b); err != nil {
		if errors.Is(err, repository.ErrBranchDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Ya existe una sucursal con el mismo código", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al crear sucursal", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBranchResponse(b))
}

// GetByID busca una sucursal por su ID
// @Summary Busca una sucursal por ID
// @Description Retorna los datos de una sucursal del tenant
// @Tags branches
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID de la sucursal"
// @Success 200 {object} dto.BranchResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /branches/{id} [get]
func (c *BranchController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	tenantID := tenantpkg.GetTenantID(ctx)
	if tenantID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Tenant ID no encontrado", ""))
		return
	}

	b, err := c.branchRepository.FindByTenantAndID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrBranchNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Sucursal no encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al buscar sucursal", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBranchResponse(b))
}

// List lista las sucursales del tenant con paginación
// @Summary Lista las sucursales
// @Description Retorna una lista paginada de sucursales del tenant
// @Tags branches
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Tamaño de página" default(10)
// @Success 200 {object} dto.BranchListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /branches [get]
func (c *BranchController) List(ctx *gin.Context) {
	tenantID := tenantpkg.GetTenantID(ctx)
	if tenantID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Tenant ID no encontrado", ""))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	offset := (pagination.Page - 1) * pagination.PageSize

	branches, err := c.branchRepository.ListByTenant(ctx, tenantID, pagination.PageSize, offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al listar sucursales", err.Error()))
		return
	}

	totalCount, err := c.branchRepository.CountByTenant(ctx, tenantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al contar sucursales", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBranchListResponse(branches, totalCount, pagination.Page, pagination.PageSize))
}

// Update actualiza una sucursal
// @Summary Actualiza una sucursal
// @Description Actualiza los datos de una sucursal existente
// @Tags branches
// @Accept json
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID de la sucursal"
// @Param branch body dto.BranchRequest true "Datos de la sucursal"
// @Success 200 {object} dto.BranchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /branches/{id} [put]
func (c *BranchController) Update(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	var request dto.BranchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Petición inválida", err.Error()))
		return
	}

	tenantID := tenantpkg.GetTenantID(ctx)
	if tenantID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Tenant ID no encontrado", ""))
		return
	}

	b, err := c.branchRepository.FindByTenantAndID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrBranchNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Sucursal no encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al buscar sucursal", err.Error()))
		return
	}

	b.Name = request.Name
	b.Code = request.Code
	b.Address = request.Address
	b.City = request.City
	b.Phone = request.Phone
	b.Email = request.Email
	b.IsMain = request.IsMain

	if err := c.branchRepository.Update(ctx, b); err != nil {
		if errors.Is(err, repository.ErrBranchDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Ya existe una sucursal con el mismo código", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al actualizar sucursal", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBranchResponse(b))
}

// UpdateStatus cambia el estado de una sucursal
// @Summary Cambia el estado de una sucursal
// @Description Activa o inactiva una sucursal
// @Tags branches
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID de la sucursal"
// @Param status query string true "Nuevo estado"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /branches/{id}/status [patch]
func (c *BranchController) UpdateStatus(ctx *gin.Context) {
	id := ctx.Param("id")
	status := ctx.Query("status")
	if id == "" || status == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID y estado son obligatorios", ""))
		return
	}

	if err := c.branchRepository.UpdateStatus(ctx, id, branch.Status(status)); err != nil {
		if errors.Is(err, repository.ErrBranchNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Sucursal no encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al actualizar estado", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Estado actualizado", nil))
}

// Delete elimina una sucursal
// @Summary Elimina una sucursal
// @Description Elimina una sucursal del tenant
// @Tags branches
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID de la sucursal"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /branches/{id} [delete]
func (c *BranchController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	if err := c.branchRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBranchNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Sucursal no encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al eliminar sucursal", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Sucursal eliminada", nil))
}
