package shift

import (
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/payment"
	"github.com/shopspring/decimal"
)

// Summary es el resumen derivado de un turno: acumulados por método de
// pago y saldo esperado por método. No se persiste; se recalcula a partir
// de los movimientos del día del turno
type Summary struct {
	SalesByMethod     map[payment.Method]decimal.Decimal `json:"sales_by_method"`
	ExpensesByMethod  map[payment.Method]decimal.Decimal `json:"expenses_by_method"`
	PurchasesByMethod map[payment.Method]decimal.Decimal `json:"purchases_by_method"`
	ExpectedByMethod  map[payment.Method]decimal.Decimal `json:"expected_by_method"`
	TotalSales        decimal.Decimal                    `json:"total_sales"`
	TotalExpenses     decimal.Decimal                    `json:"total_expenses"`
	TotalPurchases    decimal.Decimal                    `json:"total_purchases"`
	CompletedAppointments int                            `json:"completed_appointments"`
	DirectSales           int                            `json:"direct_sales"`
}

// UsedMethods retorna los métodos con actividad distinta de cero. El
// efectivo siempre se incluye, aunque no haya tenido actividad, porque el
// fondo inicial del turno vive ahí
func (s Summary) UsedMethods() []payment.Method {
	var used []payment.Method
	for _, m := range payment.Methods() {
		if m == payment.MethodCash {
			used = append(used, m)
			continue
		}
		if !s.SalesByMethod[m].IsZero() || !s.ExpensesByMethod[m].IsZero() || !s.PurchasesByMethod[m].IsZero() {
			used = append(used, m)
		}
	}
	return used
}

// Reconciler implementa el cálculo de conciliación de turnos (cortes de
// caja). Una sola implementación sirve tanto al cierre inmediato como a la
// generación posterior de cortes pendientes
type Reconciler struct {
	// StrictMixedTotals hace que ExpandSale verifique que los sub-pagos de
	// una venta mixta sumen exactamente el total de la venta. Apagado por
	// defecto: se confía en la validación hecha al crear la venta
	StrictMixedTotals bool
}

// ExpandSale convierte una venta en sus movimientos de entrada. Una venta
// mixta se descompone en un movimiento por sub-pago
func (r Reconciler) ExpandSale(s SaleInput) ([]MoneyMovement, error) {
	if s.Method != payment.MethodMixed {
		return []MoneyMovement{{
			Date:      s.Date,
			BranchID:  s.BranchID,
			Amount:    s.Total,
			Method:    s.Method,
			Direction: DirectionIn,
			Kind:      KindSale,
		}}, nil
	}

	if len(s.SubPayments) == 0 {
		return nil, ErrMissingSubPayments
	}

	movements := make([]MoneyMovement, 0, len(s.SubPayments))
	sum := decimal.Zero
	for _, sp := range s.SubPayments {
		sum = sum.Add(sp.Amount)
		movements = append(movements, MoneyMovement{
			Date:      s.Date,
			BranchID:  s.BranchID,
			Amount:    sp.Amount,
			Method:    sp.Method,
			Direction: DirectionIn,
			Kind:      KindSale,
		})
	}

	if r.StrictMixedTotals && !sum.Equal(s.Total) {
		return nil, ErrMixedPaymentMismatch
	}

	return movements, nil
}

// ComputeSummary acumula los movimientos del día del turno por método de
// pago y calcula el saldo esperado por método. Los movimientos deben venir
// ya filtrados por sucursal y por el día calendario del turno (igualdad
// exacta del campo fecha). Es una función pura: mismas entradas, mismo
// resultado. Los montos ausentes valen cero y los montos negativos pasan
// sin rechazarse
func (r Reconciler) ComputeSummary(s *Shift, movements []MoneyMovement, completedAppointments, directSales int) Summary {
	summary := Summary{
		SalesByMethod:         zeroByMethod(),
		ExpensesByMethod:      zeroByMethod(),
		PurchasesByMethod:     zeroByMethod(),
		ExpectedByMethod:      zeroByMethod(),
		TotalSales:            decimal.Zero,
		TotalExpenses:         decimal.Zero,
		TotalPurchases:        decimal.Zero,
		CompletedAppointments: completedAppointments,
		DirectSales:           directSales,
	}

	for _, mv := range movements {
		switch {
		case mv.Direction == DirectionIn:
			summary.SalesByMethod[mv.Method] = summary.SalesByMethod[mv.Method].Add(mv.Amount)
			summary.TotalSales = summary.TotalSales.Add(mv.Amount)
		case mv.Kind == KindPurchase:
			summary.PurchasesByMethod[mv.Method] = summary.PurchasesByMethod[mv.Method].Add(mv.Amount)
			summary.TotalPurchases = summary.TotalPurchases.Add(mv.Amount)
		default:
			summary.ExpensesByMethod[mv.Method] = summary.ExpensesByMethod[mv.Method].Add(mv.Amount)
			summary.TotalExpenses = summary.TotalExpenses.Add(mv.Amount)
		}
	}

	// esperado[efectivo] = fondo inicial + ventas - gastos - compras;
	// tarjeta y transferencia no llevan fondo inicial
	for _, m := range payment.Methods() {
		expected := summary.SalesByMethod[m].
			Sub(summary.ExpensesByMethod[m]).
			Sub(summary.PurchasesByMethod[m])
		if m == payment.MethodCash {
			expected = expected.Add(s.InitialCash)
		}
		summary.ExpectedByMethod[m] = expected
	}

	return summary
}

// CloseShift cierra el turno y produce el corte de caja. Falla con
// ErrShiftAlreadyClosed si el turno ya estaba cerrado y con
// ErrCashCountRequired si el conteo no incluye efectivo
func (r Reconciler) CloseShift(s *Shift, summary Summary, counted map[payment.Method]decimal.Decimal) (*CashCut, error) {
	if !s.IsOpen() {
		return nil, ErrShiftAlreadyClosed
	}

	countedCash, ok := counted[payment.MethodCash]
	if !ok {
		return nil, ErrCashCountRequired
	}

	cut := r.buildCut(s, summary, counted)

	if err := s.MarkClosed(countedCash); err != nil {
		return nil, err
	}

	return cut, nil
}

// BuildCut genera el corte de un turno ya cerrado (corte pendiente). Usa
// exactamente el mismo cálculo que CloseShift, solo que sin la transición
// de estado del turno
func (r Reconciler) BuildCut(s *Shift, summary Summary, counted map[payment.Method]decimal.Decimal) (*CashCut, error) {
	if s.IsOpen() {
		return nil, ErrShiftNotClosed
	}

	if _, ok := counted[payment.MethodCash]; !ok {
		return nil, ErrCashCountRequired
	}

	return r.buildCut(s, summary, counted), nil
}

// buildCut calcula la diferencia firmada (contado - esperado) sumada sobre
// los métodos con actividad, y arma el registro inmutable del corte
func (r Reconciler) buildCut(s *Shift, summary Summary, counted map[payment.Method]decimal.Decimal) *CashCut {
	difference := decimal.Zero
	for _, m := range summary.UsedMethods() {
		difference = difference.Add(counted[m].Sub(summary.ExpectedByMethod[m]))
	}

	salesSnapshot := make(map[payment.Method]decimal.Decimal, len(summary.SalesByMethod))
	for m, v := range summary.SalesByMethod {
		salesSnapshot[m] = v
	}

	return NewCashCut(
		s,
		counted[payment.MethodCash],
		summary.ExpectedByMethod[payment.MethodCash],
		difference,
		salesSnapshot,
		summary.TotalSales,
		summary.TotalExpenses,
		summary.CompletedAppointments,
		summary.DirectSales,
	)
}

func zeroByMethod() map[payment.Method]decimal.Decimal {
	byMethod := make(map[payment.Method]decimal.Decimal, 3)
	for _, m := range payment.Methods() {
		byMethod[m] = decimal.Zero
	}
	return byMethod
}
