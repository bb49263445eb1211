package sale

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/payment"
)

func testItems() []Item {
	return []Item{
		NewItem(ItemService, "svc-1", "Corte de cabello", decimal.RequireFromString("250"), 1),
		NewItem(ItemProduct, "prod-1", "Shampoo", decimal.RequireFromString("120"), 2),
	}
}

func TestNewSaleValidation(t *testing.T) {
	items := testItems()

	_, err := NewSale("", "user-1", "", "", "2026-08-29", items, payment.MethodCash, nil)
	assert.ErrorIs(t, err, ErrEmptyBranchID)

	_, err = NewSale("branch-1", "", "", "", "2026-08-29", items, payment.MethodCash, nil)
	assert.ErrorIs(t, err, ErrEmptyUserID)

	_, err = NewSale("branch-1", "user-1", "", "", "", items, payment.MethodCash, nil)
	assert.ErrorIs(t, err, ErrEmptyDate)

	_, err = NewSale("branch-1", "user-1", "", "", "2026-08-29", nil, payment.MethodCash, nil)
	assert.ErrorIs(t, err, ErrNoItems)

	_, err = NewSale("branch-1", "user-1", "", "", "2026-08-29", items, payment.Method("cheque"), nil)
	assert.ErrorIs(t, err, ErrInvalidMethod)
}

func TestNewSaleTotalFromItems(t *testing.T) {
	s, err := NewSale("branch-1", "user-1", "cust-1", "", "2026-08-29", testItems(), payment.MethodCard, nil)
	require.NoError(t, err)

	// 250 + 120*2
	assert.True(t, s.Total.Equal(decimal.RequireFromString("490")))
	assert.True(t, s.IsDirect())
	assert.NotEmpty(t, s.ID)
}

func TestNewSaleMixed(t *testing.T) {
	items := testItems()

	// Sin sub-pagos
	_, err := NewSale("branch-1", "user-1", "", "", "2026-08-29", items, payment.MethodMixed, nil)
	assert.ErrorIs(t, err, ErrMissingSubPayments)

	// Sub-pagos que no suman el total
	subPayments := []payment.SubPayment{
		{Method: payment.MethodCash, Amount: decimal.RequireFromString("200")},
		{Method: payment.MethodCard, Amount: decimal.RequireFromString("100")},
	}
	_, err = NewSale("branch-1", "user-1", "", "", "2026-08-29", items, payment.MethodMixed, subPayments)
	assert.ErrorIs(t, err, ErrSubPaymentsMismatch)

	// Sub-pago con método fuera del conjunto cerrado
	badMethod := []payment.SubPayment{
		{Method: payment.MethodMixed, Amount: decimal.RequireFromString("490")},
	}
	_, err = NewSale("branch-1", "user-1", "", "", "2026-08-29", items, payment.MethodMixed, badMethod)
	assert.ErrorIs(t, err, ErrInvalidMethod)

	// Sub-pagos correctos
	subPayments = []payment.SubPayment{
		{Method: payment.MethodCash, Amount: decimal.RequireFromString("300")},
		{Method: payment.MethodTransfer, Amount: decimal.RequireFromString("190")},
	}
	s, err := NewSale("branch-1", "user-1", "", "", "2026-08-29", items, payment.MethodMixed, subPayments)
	require.NoError(t, err)
	assert.Equal(t, payment.MethodMixed, s.Method)
	assert.Len(t, s.SubPayments, 2)
}

func TestNewSaleSingleMethodRejectsSubPayments(t *testing.T) {
	subPayments := []payment.SubPayment{
		{Method: payment.MethodCash, Amount: decimal.RequireFromString("490")},
	}
	_, err := NewSale("branch-1", "user-1", "", "", "2026-08-29", testItems(), payment.MethodCash, subPayments)
	assert.ErrorIs(t, err, ErrUnexpectedSubPayment)
}

func TestNewItemSubtotal(t *testing.T) {
	it := NewItem(ItemProduct, "prod-1", "Tinte", decimal.RequireFromString("350.50"), 3)
	assert.True(t, it.Subtotal.Equal(decimal.RequireFromString("1051.50")))
	assert.Equal(t, ItemProduct, it.Kind)
	assert.NotEmpty(t, it.ID)
}

func TestIsDirect(t *testing.T) {
	s, err := NewSale("branch-1", "user-1", "cust-1", "appt-1", "2026-08-29", testItems(), payment.MethodCash, nil)
	require.NoError(t, err)
	assert.False(t, s.IsDirect())
}
