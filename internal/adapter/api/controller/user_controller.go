package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/api/dto"
	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/repository"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/user"
	tenantpkg "github.com/DiegoUniline/salon-sync-sub000/pkg/tenant"
	"github.com/gin-gonic/gin"
)

// UserController gestiona las peticiones relacionadas con usuarios
type UserController struct {
	userRepository user.Repository
}

// NewUserController crea una nueva instancia de UserController
func NewUserController(userRepository user.Repository) *UserController {
	return &UserController{
		userRepository: userRepository,
	}
}

// Create crea un nuevo usuario
// @Summary Crea un nuevo usuario
// @Description Registra un usuario del tenant con su rol y sucursal
// @Tags users
// @Accept json
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param user body dto.UserRequest true "Datos del usuario"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users [post]
func (c *UserController) Create(ctx *gin.Context) {
	var request dto.UserRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Petición inválida", err.Error()))
		return
	}

	tenantID := tenantpkg.GetTenantID(ctx)
	if tenantID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Tenant ID no encontrado", ""))
		return
	}

	exists, err := c.userRepository.ExistsByEmail(ctx, tenantID, request.Email)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al verificar email", err.Error()))
		return
	}
	if exists {
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Ya existe un usuario con el mismo email", ""))
		return
	}

	u, err := user.NewUser(tenantID, request.BranchID, request.Name, request.Email, request.Password, user.Role(request.Role))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Datos inválidos", err.Error()))
		return
	}

	if err := c.userRepository.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrUserDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Ya existe un usuario con el mismo email", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al crear usuario", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUserResponse(u))
}

// GetByID busca un usuario por su ID
// @Summary Busca un usuario por ID
// @Description Retorna los datos de un usuario
// @Tags users
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID del usuario"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{id} [get]
func (c *UserController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	u, err := c.userRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Usuario no encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al buscar usuario", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}

// List lista los usuarios del tenant con paginación
// @Summary Lista los usuarios
// @Description Retorna una lista paginada de usuarios del tenant
// @Tags users
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Tamaño de página" default(10)
// @Success 200 {object} dto.UserListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users [get]
func (c *UserController) List(ctx *gin.Context) {
	tenantID := tenantpkg.GetTenantID(ctx)
	if tenantID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Tenant ID no encontrado", ""))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	offset := (pagination.Page - 1) * pagination.PageSize

	users, err := c.userRepository.ListByTenant(ctx, tenantID, pagination.PageSize, offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al listar usuarios", err.Error()))
		return
	}

	totalCount, err := c.userRepository.CountByTenant(ctx, tenantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al contar usuarios", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserListResponse(users, totalCount, pagination.Page, pagination.PageSize))
}

// Update actualiza un usuario
// @Summary Actualiza un usuario
// @Description Actualiza los datos de un usuario existente, sin tocar la contraseña
// @Tags users
// @Accept json
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID del usuario"
// @Param user body dto.UserUpdateRequest true "Datos del usuario"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{id} [put]
func (c *UserController) Update(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	var request dto.UserUpdateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Petición inválida", err.Error()))
		return
	}

	u, err := c.userRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Usuario no encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al buscar usuario", err.Error()))
		return
	}

	u.BranchID = request.BranchID
	u.Name = request.Name
	u.Email = request.Email
	u.Role = user.Role(request.Role)

	if err := c.userRepository.Update(ctx, u); err != nil {
		if errors.Is(err, repository.ErrUserDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Ya existe un usuario con el mismo email", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al actualizar usuario", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}

// UpdateStatus cambia el estado de un usuario
// @Summary Cambia el estado de un usuario
// @Description Activa, inactiva o bloquea un usuario
// @Tags users
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID del usuario"
// @Param status query string true "Nuevo estado"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{id}/status [patch]
func (c *UserController) UpdateStatus(ctx *gin.Context) {
	id := ctx.Param("id")
	status := ctx.Query("status")
	if id == "" || status == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID y estado son obligatorios", ""))
		return
	}

	if err := c.userRepository.UpdateStatus(ctx, id, user.Status(status)); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Usuario no encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al actualizar estado", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Estado actualizado", nil))
}

// Delete elimina un usuario
// @Summary Elimina un usuario
// @Description Elimina un usuario del tenant
// @Tags users
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID del usuario"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{id} [delete]
func (c *UserController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	if err := c.userRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Usuario no encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al eliminar usuario", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Usuario eliminado", nil))
}
