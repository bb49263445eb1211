package dto

import (
	"time"

	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/expense"
	"github.com/shopspring/decimal"
)

// ExpenseRequest representa la estructura de datos para registrar un gasto
type ExpenseRequest struct {
	Concept  string          `json:"concept" binding:"required"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Method   string          `json:"method" binding:"required"`
}

// ExpenseResponse representa la estructura de respuesta para un gasto
type ExpenseResponse struct {
	ID        string          `json:"id"`
	BranchID  string          `json:"branch_id"`
	UserID    string          `json:"user_id"`
	Date      string          `json:"date"`
	Concept   string          `json:"concept"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	CreatedAt time.Time       `json:"created_at"`
}

// ExpenseListResponse representa la respuesta de listado de gastos
type ExpenseListResponse struct {
	Expenses   []ExpenseResponse `json:"expenses"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// ToExpenseResponse convierte un modelo de dominio en una respuesta DTO
func ToExpenseResponse(e *expense.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:        e.ID,
		BranchID:  e.BranchID,
		UserID:    e.UserID,
		Date:      e.Date,
		Concept:   e.Concept,
		Category:  e.Category,
		Amount:    e.Amount,
		Method:    string(e.Method),
		CreatedAt: e.CreatedAt,
	}
}

// ToExpenseListResponse convierte una lista de gastos al formato de respuesta
func ToExpenseListResponse(expenses []*expense.Expense, totalCount, page, pageSize int) ExpenseListResponse {
	response := ExpenseListResponse{
		Expenses:   make([]ExpenseResponse, len(expenses)),
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}

	for i, e := range expenses {
		response.Expenses[i] = ToExpenseResponse(e)
	}

	return response
}
