package auth

import (
	"errors"
	"os"
	"time"

	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/user"
	"github.com/golang-jwt/jwt/v5"
)

// Errores específicos
var (
	ErrInvalidToken  = errors.New("token inválido")
	ErrExpiredToken  = errors.New("token expirado")
	ErrInvalidClaims = errors.New("claims inválidas")
	ErrMissingJWTKey = errors.New("clave secreta JWT no configurada")
)

// JWTClaims representa las claims personalizadas del token JWT
type JWTClaims struct {
	UserID   string `json:"user_id"`
	TenantID string `json:"tenant_id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	BranchID string `json:"branch_id,omitempty"`
	jwt.RegisteredClaims
}

// JWTService implementa los servicios de tokens JWT
type JWTService struct {
	secretKey  []byte
	expiration time.Duration
}

// NewJWTService crea una nueva instancia de JWTService
func NewJWTService() (*JWTService, error) {
	secretKey := os.Getenv("JWT_SECRET_KEY")
	if secretKey == "" {
		return nil, ErrMissingJWTKey
	}

	// Duración por defecto de 24 horas si no se configura
	expirationStr := os.Getenv("JWT_EXPIRATION_HOURS")
	expiration := 24 * time.Hour
	if expirationStr != "" {
		expirationHours, err := time.ParseDuration(expirationStr + "h")
		if err == nil {
			expiration = expirationHours
		}
	}

	return &JWTService{
		secretKey:  []byte(secretKey),
		expiration: expiration,
	}, nil
}

// Expiration retorna la duración configurada de los tokens
func (s *JWTService) Expiration() time.Duration {
	return s.expiration
}

// GenerateToken genera un token JWT para el usuario
func (s *JWTService) GenerateToken(u *user.User) (string, error) {
	expirationTime := time.Now().Add(s.expiration)

	claims := JWTClaims{
		UserID:   u.ID,
		TenantID: u.TenantID,
		Email:    u.Email,
		Name:     u.Name,
		Role:     string(u.Role),
		BranchID: u.BranchID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "salon-sync-api",
			Subject:   u.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken valida un token JWT y retorna las claims si es válido
func (s *JWTService) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verificar el método de firma
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}

// RefreshToken renueva un token JWT
func (s *JWTService) RefreshToken(tokenString string) (string, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		// Solo se renueva un token bien formado y aún vigente
		return "", err
	}

	expirationTime := time.Now().Add(s.expiration)
	claims.ExpiresAt = jwt.NewNumericDate(expirationTime)
	claims.IssuedAt = jwt.NewNumericDate(time.Now())
	claims.NotBefore = jwt.NewNumericDate(time.Now())

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	newTokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", err
	}

	return newTokenString, nil
}
