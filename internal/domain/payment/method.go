package payment

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidMethod = errors.New("método de pago inválido")
)

// Method representa un método de pago
type Method string

// Constantes para Method
const (
	MethodCash     Method = "efectivo"
	MethodCard     Method = "tarjeta"
	MethodTransfer Method = "transferencia"
	// MethodMixed solo aplica a nivel de venta; al conciliar se descompone
	// en sub-pagos por método
	MethodMixed Method = "mixto"
)

// Methods retorna el conjunto cerrado de métodos usados en la conciliación
func Methods() []Method {
	return []Method{MethodCash, MethodCard, MethodTransfer}
}

// IsValid verifica si el método pertenece al conjunto cerrado
func (m Method) IsValid() bool {
	switch m {
	case MethodCash, MethodCard, MethodTransfer:
		return true
	}
	return false
}

// SubPayment representa un sub-pago de una venta con pago mixto
type SubPayment struct {
	Method Method          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}
