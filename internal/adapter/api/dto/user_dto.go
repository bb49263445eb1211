package dto

import (
	"time"

	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/user"
)

// UserRequest representa la estructura de datos para crear un usuario
type UserRequest struct {
	BranchID string `json:"branch_id"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
}

// UserUpdateRequest representa la estructura de datos para actualizar un usuario
type UserUpdateRequest struct {
	BranchID string `json:"branch_id"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role" binding:"required"`
}

// UserResponse representa la estructura de respuesta para un usuario
type UserResponse struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	BranchID    string    `json:"branch_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Status      string    `json:"status"`
	LastLoginAt time.Time `json:"last_login_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserListResponse representa la respuesta de listado de usuarios
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	TotalCount int            `json:"total_count"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// ToUserResponse convierte un modelo de dominio en una respuesta DTO
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		TenantID:    u.TenantID,
		BranchID:    u.BranchID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        string(u.Role),
		Status:      string(u.Status),
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// ToUserListResponse convierte una lista de usuarios al formato de respuesta
func ToUserListResponse(users []*user.User, totalCount, page, pageSize int) UserListResponse {
	response := UserListResponse{
		Users:      make([]UserResponse, len(users)),
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}

	for i, u := range users {
		response.Users[i] = ToUserResponse(u)
	}

	return response
}
