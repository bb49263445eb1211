package purchase

import (
	"errors"
	"time"

	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/payment"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyBranchID    = errors.New("ID de la sucursal no puede ser vacío")
	ErrEmptyUserID      = errors.New("ID del usuario no puede ser vacío")
	ErrEmptyDate        = errors.New("fecha de la compra no puede ser vacía")
	ErrEmptySupplier    = errors.New("proveedor no puede ser vacío")
	ErrNoItems          = errors.New("la compra requiere al menos una línea")
	ErrInvalidMethod    = errors.New("método de pago inválido")
	ErrAlreadyReceived  = errors.New("la compra ya fue recibida")
	ErrAlreadyCancelled = errors.New("la compra ya fue cancelada")
)

// Status representa el estado de la compra
type Status string

const (
	StatusPending   Status = "pendiente"
	StatusReceived  Status = "recibida"
	StatusCancelled Status = "cancelada"
)

// Item representa una línea de la compra
type Item struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Purchase representa una compra de insumos o productos a un proveedor
type Purchase struct {
	ID         string          `json:"id"`
	BranchID   string          `json:"branch_id"`
	UserID     string          `json:"user_id"`
	Supplier   string          `json:"supplier"`
	Date       string          `json:"date"` // Día calendario, formato YYYY-MM-DD
	Status     Status          `json:"status"`
	Items      []Item          `json:"items"`
	Total      decimal.Decimal `json:"total"`
	Method     payment.Method  `json:"method"`
	ReceivedAt *time.Time      `json:"received_at,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// NewPurchase crea una nueva compra pendiente de recibir
func NewPurchase(branchID, userID, supplier, date string, items []Item, method payment.Method) (*Purchase, error) {
	if branchID == "" {
		return nil, ErrEmptyBranchID
	}

	if userID == "" {
		return nil, ErrEmptyUserID
	}

	if supplier == "" {
		return nil, ErrEmptySupplier
	}

	if date == "" {
		return nil, ErrEmptyDate
	}

	if len(items) == 0 {
		return nil, ErrNoItems
	}

	if !method.IsValid() {
		return nil, ErrInvalidMethod
	}

	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal)
	}

	now := time.Now()
	return &Purchase{
		ID:        uuid.New().String(),
		BranchID:  branchID,
		UserID:    userID,
		Supplier:  supplier,
		Date:      date,
		Status:    StatusPending,
		Items:     items,
		Total:     total,
		Method:    method,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// NewItem arma una línea de compra con el subtotal calculado
func NewItem(productID, name string, quantity int, unitCost decimal.Decimal) Item {
	return Item{
		ID:        uuid.New().String(),
		ProductID: productID,
		Name:      name,
		Quantity:  quantity,
		UnitCost:  unitCost,
		Subtotal:  unitCost.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// Receive marca la compra como recibida. El llamador es responsable de
// ajustar las existencias de los productos
func (p *Purchase) Receive() error {
	switch p.Status {
	case StatusReceived:
		return ErrAlreadyReceived
	case StatusCancelled:
		return ErrAlreadyCancelled
	}

	now := time.Now()
	p.Status = StatusReceived
	p.ReceivedAt = &now
	p.UpdatedAt = now
	return nil
}

// Cancel cancela una compra pendiente
func (p *Purchase) Cancel() error {
	switch p.Status {
	case StatusReceived:
		return ErrAlreadyReceived
	case StatusCancelled:
		return ErrAlreadyCancelled
	}

	p.Status = StatusCancelled
	p.UpdatedAt = time.Now()
	return nil
}
