package shift

import (
	"testing"

	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/payment"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShift(t *testing.T, initialCash string) *Shift {
	t.Helper()
	s, err := NewShift("branch-1", "user-1", "2026-08-29", decimal.RequireFromString(initialCash))
	require.NoError(t, err)
	return s
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeSummaryEmptyDay(t *testing.T) {
	r := Reconciler{}
	s := newTestShift(t, "2000")

	summary := r.ComputeSummary(s, nil, 0, 0)

	assert.True(t, summary.ExpectedByMethod[payment.MethodCash].Equal(dec("2000")),
		"sin actividad, el esperado en efectivo es el fondo inicial")
	assert.True(t, summary.ExpectedByMethod[payment.MethodCard].IsZero())
	assert.True(t, summary.ExpectedByMethod[payment.MethodTransfer].IsZero())
	assert.True(t, summary.TotalSales.IsZero())
	assert.True(t, summary.TotalExpenses.IsZero())
	assert.True(t, summary.TotalPurchases.IsZero())
}

func TestComputeSummaryMixedSaleAndExpense(t *testing.T) {
	// Ejemplo de referencia: fondo 2000, venta de 800 mitad efectivo y
	// mitad tarjeta, gasto de 150 en efectivo
	r := Reconciler{}
	s := newTestShift(t, "2000")

	saleMovs, err := r.ExpandSale(SaleInput{
		Date:     s.Date,
		BranchID: s.BranchID,
		Total:    dec("800"),
		Method:   payment.MethodMixed,
		SubPayments: []payment.SubPayment{
			{Method: payment.MethodCash, Amount: dec("400")},
			{Method: payment.MethodCard, Amount: dec("400")},
		},
	})
	require.NoError(t, err)
	require.Len(t, saleMovs, 2)

	movements := append(saleMovs, MovementFromExpense(ExpenseInput{
		Date:     s.Date,
		BranchID: s.BranchID,
		Amount:   dec("150"),
		Method:   payment.MethodCash,
	}))

	summary := r.ComputeSummary(s, movements, 1, 0)

	assert.True(t, summary.SalesByMethod[payment.MethodCash].Equal(dec("400")))
	assert.True(t, summary.SalesByMethod[payment.MethodCard].Equal(dec("400")))
	assert.True(t, summary.SalesByMethod[payment.MethodTransfer].IsZero())
	assert.True(t, summary.ExpensesByMethod[payment.MethodCash].Equal(dec("150")))
	assert.True(t, summary.ExpectedByMethod[payment.MethodCash].Equal(dec("2250")))
	assert.True(t, summary.ExpectedByMethod[payment.MethodCard].Equal(dec("400")))
	assert.True(t, summary.ExpectedByMethod[payment.MethodTransfer].IsZero())
	assert.True(t, summary.TotalSales.Equal(dec("800")))
}

func TestComputeSummaryIsPure(t *testing.T) {
	r := Reconciler{}
	s := newTestShift(t, "500")
	movements := []MoneyMovement{
		{Date: s.Date, BranchID: s.BranchID, Amount: dec("120.50"), Method: payment.MethodCash, Direction: DirectionIn, Kind: KindSale},
		{Date: s.Date, BranchID: s.BranchID, Amount: dec("30.25"), Method: payment.MethodCash, Direction: DirectionOut, Kind: KindExpense},
	}

	first := r.ComputeSummary(s, movements, 2, 1)
	second := r.ComputeSummary(s, movements, 2, 1)

	assert.Equal(t, first, second)
}

func TestComputeSummaryPurchasesReduceExpected(t *testing.T) {
	r := Reconciler{}
	s := newTestShift(t, "1000")
	movements := []MoneyMovement{
		MovementFromPurchase(PurchaseInput{Date: s.Date, BranchID: s.BranchID, Amount: dec("250"), Method: payment.MethodCash}),
		MovementFromPurchase(PurchaseInput{Date: s.Date, BranchID: s.BranchID, Amount: dec("100"), Method: payment.MethodTransfer}),
	}

	summary := r.ComputeSummary(s, movements, 0, 0)

	assert.True(t, summary.ExpectedByMethod[payment.MethodCash].Equal(dec("750")))
	assert.True(t, summary.ExpectedByMethod[payment.MethodTransfer].Equal(dec("-100")))
	assert.True(t, summary.TotalPurchases.Equal(dec("350")))
}

func TestExpandSaleSingleMethod(t *testing.T) {
	r := Reconciler{}

	movs, err := r.ExpandSale(SaleInput{
		Date:     "2026-08-29",
		BranchID: "branch-1",
		Total:    dec("300"),
		Method:   payment.MethodCard,
	})

	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, payment.MethodCard, movs[0].Method)
	assert.Equal(t, DirectionIn, movs[0].Direction)
	assert.True(t, movs[0].Amount.Equal(dec("300")))
}

func TestExpandSaleMixedWithoutSubPayments(t *testing.T) {
	r := Reconciler{}

	_, err := r.ExpandSale(SaleInput{
		Date:     "2026-08-29",
		BranchID: "branch-1",
		Total:    dec("300"),
		Method:   payment.MethodMixed,
	})

	assert.ErrorIs(t, err, ErrMissingSubPayments)
}

func TestExpandSaleStrictMismatch(t *testing.T) {
	strict := Reconciler{StrictMixedTotals: true}
	lenient := Reconciler{}

	input := SaleInput{
		Date:     "2026-08-29",
		BranchID: "branch-1",
		Total:    dec("500"),
		Method:   payment.MethodMixed,
		SubPayments: []payment.SubPayment{
			{Method: payment.MethodCash, Amount: dec("200")},
			{Method: payment.MethodCard, Amount: dec("250")},
		},
	}

	_, err := strict.ExpandSale(input)
	assert.ErrorIs(t, err, ErrMixedPaymentMismatch)

	// en modo laxo se confía en la validación hecha al crear la venta
	movs, err := lenient.ExpandSale(input)
	require.NoError(t, err)
	assert.Len(t, movs, 2)
}

func TestCloseShiftNoDifference(t *testing.T) {
	r := Reconciler{}
	s := newTestShift(t, "2000")

	movements := []MoneyMovement{
		{Date: s.Date, BranchID: s.BranchID, Amount: dec("400"), Method: payment.MethodCash, Direction: DirectionIn, Kind: KindSale},
		{Date: s.Date, BranchID: s.BranchID, Amount: dec("400"), Method: payment.MethodCard, Direction: DirectionIn, Kind: KindSale},
		{Date: s.Date, BranchID: s.BranchID, Amount: dec("150"), Method: payment.MethodCash, Direction: DirectionOut, Kind: KindExpense},
	}
	summary := r.ComputeSummary(s, movements, 1, 1)

	cut, err := r.CloseShift(s, summary, map[payment.Method]decimal.Decimal{
		payment.MethodCash: dec("2250"),
		payment.MethodCard: dec("400"),
	})

	require.NoError(t, err)
	assert.True(t, cut.Difference.IsZero())
	assert.True(t, cut.ExpectedCash.Equal(dec("2250")))
	assert.True(t, cut.FinalCash.Equal(dec("2250")))
	assert.Equal(t, StatusClosed, s.Status)
	require.NotNil(t, s.FinalCash)
	assert.True(t, s.FinalCash.Equal(dec("2250")))
}

func TestCloseShiftCashShortage(t *testing.T) {
	r := Reconciler{}
	s := newTestShift(t, "2000")

	movements := []MoneyMovement{
		{Date: s.Date, BranchID: s.BranchID, Amount: dec("400"), Method: payment.MethodCash, Direction: DirectionIn, Kind: KindSale},
		{Date: s.Date, BranchID: s.BranchID, Amount: dec("400"), Method: payment.MethodCard, Direction: DirectionIn, Kind: KindSale},
		{Date: s.Date, BranchID: s.BranchID, Amount: dec("150"), Method: payment.MethodCash, Direction: DirectionOut, Kind: KindExpense},
	}
	summary := r.ComputeSummary(s, movements, 0, 0)

	cut, err := r.CloseShift(s, summary, map[payment.Method]decimal.Decimal{
		payment.MethodCash: dec("2200"),
		payment.MethodCard: dec("400"),
	})

	require.NoError(t, err)
	assert.True(t, cut.Difference.Equal(dec("-50")), "faltante de 50 en efectivo")
}

func TestCloseShiftRequiresCashCount(t *testing.T) {
	r := Reconciler{}
	s := newTestShift(t, "1000")
	summary := r.ComputeSummary(s, nil, 0, 0)

	_, err := r.CloseShift(s, summary, map[payment.Method]decimal.Decimal{
		payment.MethodCard: dec("100"),
	})

	assert.ErrorIs(t, err, ErrCashCountRequired)
	assert.Equal(t, StatusOpen, s.Status, "un cierre rechazado no debe mutar el turno")
}

func TestCloseShiftTwiceFails(t *testing.T) {
	r := Reconciler{}
	s := newTestShift(t, "1000")
	summary := r.ComputeSummary(s, nil, 0, 0)
	counted := map[payment.Method]decimal.Decimal{payment.MethodCash: dec("1000")}

	_, err := r.CloseShift(s, summary, counted)
	require.NoError(t, err)

	_, err = r.CloseShift(s, summary, counted)
	assert.ErrorIs(t, err, ErrShiftAlreadyClosed)
}

func TestCloseShiftIgnoresUnusedMethods(t *testing.T) {
	// La diferencia se suma solo sobre los métodos con actividad (más el
	// efectivo); un conteo en un método sin movimientos no cuenta
	r := Reconciler{}
	s := newTestShift(t, "500")
	summary := r.ComputeSummary(s, nil, 0, 0)

	cut, err := r.CloseShift(s, summary, map[payment.Method]decimal.Decimal{
		payment.MethodCash:     dec("500"),
		payment.MethodTransfer: dec("999"),
	})

	require.NoError(t, err)
	assert.True(t, cut.Difference.IsZero())
}

func TestBuildCutForPendingShift(t *testing.T) {
	r := Reconciler{}
	s := newTestShift(t, "800")
	require.NoError(t, s.MarkClosed(dec("950")))

	movements := []MoneyMovement{
		{Date: s.Date, BranchID: s.BranchID, Amount: dec("200"), Method: payment.MethodCash, Direction: DirectionIn, Kind: KindSale},
	}
	summary := r.ComputeSummary(s, movements, 3, 2)

	cut, err := r.BuildCut(s, summary, map[payment.Method]decimal.Decimal{
		payment.MethodCash: dec("950"),
	})

	require.NoError(t, err)
	assert.True(t, cut.Difference.Equal(dec("-50")), "esperado 1000, contado 950")
	assert.Equal(t, 3, cut.AppointmentsCount)
	assert.Equal(t, 2, cut.DirectSalesCount)
	assert.Equal(t, s.ID, cut.ShiftID)
}

func TestBuildCutRequiresClosedShift(t *testing.T) {
	r := Reconciler{}
	s := newTestShift(t, "800")
	summary := r.ComputeSummary(s, nil, 0, 0)

	_, err := r.BuildCut(s, summary, map[payment.Method]decimal.Decimal{
		payment.MethodCash: dec("800"),
	})

	assert.ErrorIs(t, err, ErrShiftNotClosed)
}

func TestUsedMethodsAlwaysIncludesCash(t *testing.T) {
	summary := Summary{
		SalesByMethod:     zeroByMethod(),
		ExpensesByMethod:  zeroByMethod(),
		PurchasesByMethod: zeroByMethod(),
		ExpectedByMethod:  zeroByMethod(),
	}

	assert.Equal(t, []payment.Method{payment.MethodCash}, summary.UsedMethods())

	summary.SalesByMethod[payment.MethodTransfer] = dec("10")
	assert.Equal(t, []payment.Method{payment.MethodCash, payment.MethodTransfer}, summary.UsedMethods())
}
