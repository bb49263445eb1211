package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/api/dto"
	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/repository"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/user"
	"github.com/DiegoUniline/salon-sync-sub000/pkg/auth"
	"github.com/DiegoUniline/salon-sync-sub000/pkg/logger"
	"github.com/gin-gonic/gin"
)

// AuthController gestiona las peticiones de autenticación
type AuthController struct {
	userRepository user.Repository
	jwtService     *auth.JWTService
	logger         logger.Logger
}

// NewAuthController crea una nueva instancia de AuthController
func NewAuthController(userRepository user.Repository, jwtService *auth.JWTService, logger logger.Logger) *AuthController {
	return &AuthController{
		userRepository: userRepository,
		jwtService:     jwtService,
		logger:         logger,
	}
}

// Login autentica un usuario y retorna un token JWT
// @Summary Autentica un usuario
// @Description Verifica las credenciales del usuario y retorna un token JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credenciales de acceso"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Petición inválida", err.Error()))
		return
	}

	// Buscar el usuario por email
	u, err := c.userRepository.FindByEmail(ctx, request.TenantID, request.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciales inválidas", "Email o contraseña incorrectos"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al autenticar usuario", err.Error()))
		return
	}

	// Verificar que el usuario esté activo
	if !u.IsActive() {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "Usuario inactivo", "La cuenta está desactivada o bloqueada"))
		return
	}

	// Verificar la contraseña
	if !u.CheckPassword(request.Password) {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciales inválidas", "Email o contraseña incorrectos"))
		return
	}

	token, err := c.jwtService.GenerateToken(u)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al generar token", err.Error()))
		return
	}

	// Registrar el último inicio de sesión; un fallo aquí no impide el login
	if err := c.userRepository.UpdateLastLogin(ctx, u.ID); err != nil {
		c.logger.Error("error al registrar último inicio de sesión", "user_id", u.ID, "error", err)
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		User:        dto.ToUserResponse(u),
		AccessToken: token,
		ExpiresAt:   time.Now().Add(c.jwtService.Expiration()),
	})
}

// RefreshToken renueva un token JWT vigente
// @Summary Renueva un token JWT
// @Description Emite un nuevo token a partir de uno bien formado y aún vigente
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest true "Token a renovar"
// @Success 200 {object} dto.RefreshTokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/refresh [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var request dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Petición inválida", err.Error()))
		return
	}

	token, err := c.jwtService.RefreshToken(request.RefreshToken)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Token inválido", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.RefreshTokenResponse{
		AccessToken: token,
		ExpiresAt:   time.Now().Add(c.jwtService.Expiration()),
	})
}

// Me retorna el usuario autenticado
// @Summary Retorna el usuario autenticado
// @Description Retorna los datos del usuario dueño del token
// @Tags auth
// @Produce json
// @Param Authorization header string true "Token JWT"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	userID := auth.CurrentUserID(ctx)
	if userID == "" {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "No autenticado", ""))
		return
	}

	u, err := c.userRepository.FindByID(ctx, userID)
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
