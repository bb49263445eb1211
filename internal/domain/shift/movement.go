package shift

import (
	"errors"

	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/payment"
	"github.com/shopspring/decimal"
)

var (
	ErrMixedPaymentMismatch = errors.New("los sub-pagos no suman el total de la venta")
	ErrMissingSubPayments   = errors.New("una venta mixta requiere sub-pagos")
)

// Direction representa el sentido de un movimiento de dinero
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// Kind representa el origen de un movimiento de dinero
type Kind string

const (
	KindSale     Kind = "venta"
	KindExpense  Kind = "gasto"
	KindPurchase Kind = "compra"
)

// MoneyMovement abstrae una venta, un gasto o una compra para efectos de
// conciliación. Las ventas entran (in); gastos y compras salen (out)
type MoneyMovement struct {
	Date      string
	BranchID  string
	Amount    decimal.Decimal
	Method    payment.Method
	Direction Direction
	Kind      Kind
}

// SaleInput es la proyección mínima de una venta que necesita la
// conciliación: total, método y sub-pagos si el pago fue mixto
type SaleInput struct {
	Date        string
	BranchID    string
	Total       decimal.Decimal
	Method      payment.Method
	SubPayments []payment.SubPayment
}

// ExpenseInput es la proyección mínima de un gasto
type ExpenseInput struct {
	Date     string
	BranchID string
	Amount   decimal.Decimal
	Method   payment.Method
}

// PurchaseInput es la proyección mínima de una compra pagada
type PurchaseInput struct {
	Date     string
	BranchID string
	Amount   decimal.Decimal
	Method   payment.Method
}

// MovementFromExpense convierte un gasto en un movimiento de salida
func MovementFromExpense(e ExpenseInput) MoneyMovement {
	return MoneyMovement{
		Date:      e.Date,
		BranchID:  e.BranchID,
		Amount:    e.Amount,
		Method:    e.Method,
		Direction: DirectionOut,
		Kind:      KindExpense,
	}
}

// MovementFromPurchase convierte una compra en un movimiento de salida
func MovementFromPurchase(p PurchaseInput) MoneyMovement {
	return MoneyMovement{
		Date:      p.Date,
		BranchID:  p.BranchID,
		Amount:    p.Amount,
		Method:    p.Method,
		Direction: DirectionOut,
		Kind:      KindPurchase,
	}
}
