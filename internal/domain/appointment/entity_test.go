package appointment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems() []Item {
	return []Item{
		NewItem("svc-1", "Corte de cabello", 30, decimal.RequireFromString("250"), 1),
		NewItem("svc-2", "Manicure", 45, decimal.RequireFromString("180"), 2),
	}
}

func TestNewAppointmentValidation(t *testing.T) {
	items := testItems()

	_, err := NewAppointment("", "cust-1", "user-1", "2026-08-29", "10:00", "", items)
	assert.ErrorIs(t, err, ErrEmptyBranchID)

	_, err = NewAppointment("branch-1", "", "user-1", "2026-08-29", "10:00", "", items)
	assert.ErrorIs(t, err, ErrEmptyCustomerID)

	_, err = NewAppointment("branch-1", "cust-1", "", "2026-08-29", "10:00", "", items)
	assert.ErrorIs(t, err, ErrEmptyStylistID)

	_, err = NewAppointment("branch-1", "cust-1", "user-1", "", "10:00", "", items)
	assert.ErrorIs(t, err, ErrEmptyDate)

	_, err = NewAppointment("branch-1", "cust-1", "user-1", "2026-08-29", "10:00", "", nil)
	assert.ErrorIs(t, err, ErrNoItems)

	a, err := NewAppointment("branch-1", "cust-1", "user-1", "2026-08-29", "10:00", "", items)
	require.NoError(t, err)
	assert.Equal(t, StatusScheduled, a.Status)
	// 250 + 180*2
	assert.True(t, a.Total.Equal(decimal.RequireFromString("610")))
}

func TestReplaceItemsRecalculatesTotal(t *testing.T) {
	a, err := NewAppointment("branch-1", "cust-1", "user-1", "2026-08-29", "10:00", "", testItems())
	require.NoError(t, err)

	a.ReplaceItems([]Item{
		NewItem("svc-3", "Peinado", 60, decimal.RequireFromString("400"), 1),
	})
	assert.Len(t, a.Items, 1)
	assert.True(t, a.Total.Equal(decimal.RequireFromString("400")))
}

func TestAppointmentLifecycle(t *testing.T) {
	a, err := NewAppointment("branch-1", "cust-1", "user-1", "2026-08-29", "10:00", "", testItems())
	require.NoError(t, err)

	require.NoError(t, a.Start())
	assert.Equal(t, StatusInProgress, a.Status)

	// No se puede iniciar dos veces
	assert.ErrorIs(t, a.Start(), ErrInvalidStatusChange)

	require.NoError(t, a.Complete())
	assert.Equal(t, StatusCompleted, a.Status)
	require.NotNil(t, a.CompletedAt)

	assert.ErrorIs(t, a.Complete(), ErrAlreadyCompleted)
	assert.ErrorIs(t, a.Cancel(), ErrCancelCompleted)
	assert.ErrorIs(t, a.Reschedule("2026-08-30", "11:00"), ErrAlreadyCompleted)
}

func TestCompleteWithoutStart(t *testing.T) {
	// Completar directo desde agendada es válido: el recepcionista no
	// siempre marca el inicio
	a, err := NewAppointment("branch-1", "cust-1", "user-1", "2026-08-29", "10:00", "", testItems())
	require.NoError(t, err)

	require.NoError(t, a.Complete())
	assert.Equal(t, StatusCompleted, a.Status)
}

func TestCancel(t *testing.T) {
	a, err := NewAppointment("branch-1", "cust-1", "user-1", "2026-08-29", "10:00", "", testItems())
	require.NoError(t, err)

	require.NoError(t, a.Cancel())
	assert.Equal(t, StatusCancelled, a.Status)

	// Una cita cancelada no se completa
	assert.ErrorIs(t, a.Complete(), ErrInvalidStatusChange)
}

func TestReschedule(t *testing.T) {
	a, err := NewAppointment("branch-1", "cust-1", "user-1", "2026-08-29", "10:00", "", testItems())
	require.NoError(t, err)

	assert.ErrorIs(t, a.Reschedule("", "11:00"), ErrEmptyDate)

	require.NoError(t, a.Reschedule("2026-08-30", "16:30"))
	assert.Equal(t, "2026-08-30", a.Date)
	assert.Equal(t, "16:30", a.StartTime)
}
