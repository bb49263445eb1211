package expense

import (
	"errors"
	"time"

	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/payment"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyBranchID = errors.New("ID de la sucursal no puede ser vacío")
	ErrEmptyUserID   = errors.New("ID del usuario no puede ser vacío")
	ErrEmptyDate     = errors.New("fecha del gasto no puede ser vacía")
	ErrEmptyConcept  = errors.New("concepto del gasto no puede ser vacío")
	ErrInvalidMethod = errors.New("método de pago inválido")
)

// Expense representa un gasto operativo de la sucursal
type Expense struct {
	ID        string          `json:"id"`
	BranchID  string          `json:"branch_id"`
	UserID    string          `json:"user_id"`
	Date      string          `json:"date"` // Día calendario, formato YYYY-MM-DD
	Concept   string          `json:"concept"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Method    payment.Method  `json:"method"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewExpense crea un nuevo gasto
func NewExpense(branchID, userID, date, concept, category string, amount decimal.Decimal, method payment.Method) (*Expense, error) {
	if branchID == "" {
		return nil, ErrEmptyBranchID
	}

	if userID == "" {
		return nil, ErrEmptyUserID
	}

	if date == "" {
		return nil, ErrEmptyDate
	}

	if concept == "" {
		return nil, ErrEmptyConcept
	}

	if !method.IsValid() {
		return nil, ErrInvalidMethod
	}

	return &Expense{
		ID:        uuid.New().String(),
		BranchID:  branchID,
		UserID:    userID,
		Date:      date,
		Concept:   concept,
		Category:  category,
		Amount:    amount,
		Method:    method,
		CreatedAt: time.Now(),
	}, nil
}
