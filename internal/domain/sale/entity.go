package sale

import (
	"errors"
	"time"

	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/payment"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyBranchID        = errors.New("ID de la sucursal no puede ser vacío")
	ErrEmptyUserID          = errors.New("ID del usuario no puede ser vacío")
	ErrEmptyDate            = errors.New("fecha de la venta no puede ser vacía")
	ErrNoItems              = errors.New("la venta requiere al menos una línea")
	ErrInvalidMethod        = errors.New("método de pago inválido")
	ErrMissingSubPayments   = errors.New("una venta mixta requiere sub-pagos")
	ErrSubPaymentsMismatch  = errors.New("los sub-pagos no suman el total de la venta")
	ErrUnexpectedSubPayment = errors.New("una venta con método único no lleva sub-pagos")
)

// ItemKind representa el tipo de línea de la venta
type ItemKind string

const (
	ItemService ItemKind = "servicio"
	ItemProduct ItemKind = "producto"
)

// Item representa una línea de la venta. Nombre y precio se congelan al
// momento de vender
type Item struct {
	ID          string          `json:"id"`
	Kind        ItemKind        `json:"kind"`
	ReferenceID string          `json:"reference_id"` // ID del servicio o producto
	Name        string          `json:"name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// Sale representa una venta de mostrador o el cobro de una cita
type Sale struct {
	ID            string               `json:"id"`
	BranchID      string               `json:"branch_id"`
	UserID        string               `json:"user_id"`
	CustomerID    string               `json:"customer_id,omitempty"`
	AppointmentID string               `json:"appointment_id,omitempty"` // Vacío en venta directa
	Date          string               `json:"date"`                     // Día calendario, formato YYYY-MM-DD
	Items         []Item               `json:"items"`
	Total         decimal.Decimal      `json:"total"`
	Method        payment.Method       `json:"method"`
	SubPayments   []payment.SubPayment `json:"sub_payments,omitempty"` // Solo con método mixto
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// NewSale crea una nueva venta. Con método mixto los sub-pagos deben
// venir y sumar el total (la misma validación que hacía el diálogo de
// cobro); con método único no se aceptan sub-pagos
func NewSale(branchID, userID, customerID, appointmentID, date string, items []Item, method payment.Method, subPayments []payment.SubPayment) (*Sale, error) {
	if branchID == "" {
		return nil, ErrEmptyBranchID
	}

	if userID == "" {
		return nil, ErrEmptyUserID
	}

	if date == "" {
		return nil, ErrEmptyDate
	}

	if len(items) == 0 {
		return nil, ErrNoItems
	}

	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal)
	}

	switch {
	case method == payment.MethodMixed:
		if len(subPayments) == 0 {
			return nil, ErrMissingSubPayments
		}
		sum := decimal.Zero
		for _, sp := range subPayments {
			if !sp.Method.IsValid() {
				return nil, ErrInvalidMethod
			}
			sum = sum.Add(sp.Amount)
		}
		if !sum.Equal(total) {
			return nil, ErrSubPaymentsMismatch
		}
	case method.IsValid():
		if len(subPayments) > 0 {
			return nil, ErrUnexpectedSubPayment
		}
	default:
		return nil, ErrInvalidMethod
	}

	now := time.Now()
	return &Sale{
		ID:            uuid.New().String(),
		BranchID:      branchID,
		UserID:        userID,
		CustomerID:    customerID,
		AppointmentID: appointmentID,
		Date:          date,
		Items:         items,
		Total:         total,
		Method:        method,
		SubPayments:   subPayments,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// NewItem arma una línea de venta con el subtotal calculado
func NewItem(kind ItemKind, referenceID, name string, unitPrice decimal.Decimal, quantity int) Item {
	return Item{
		ID:          uuid.New().String(),
		Kind:        kind,
		ReferenceID: referenceID,
		Name:        name,
		UnitPrice:   unitPrice,
		Quantity:    quantity,
		Subtotal:    unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// IsDirect indica si la venta es de mostrador (sin cita asociada)
func (s *Sale) IsDirect() bool {
	return s.AppointmentID == ""
}
