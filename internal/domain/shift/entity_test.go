package shift

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShiftValidation(t *testing.T) {
	_, err := NewShift("", "user-1", "2026-08-29", decimal.Zero)
	assert.ErrorIs(t, err, ErrEmptyBranchID)

	_, err = NewShift("branch-1", "", "2026-08-29", decimal.Zero)
	assert.ErrorIs(t, err, ErrEmptyUserID)

	_, err = NewShift("branch-1", "user-1", "", decimal.Zero)
	assert.ErrorIs(t, err, ErrEmptyDate)

	s, err := NewShift("branch-1", "user-1", "2026-08-29", decimal.RequireFromString("1500"))
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, StatusOpen, s.Status)
	assert.True(t, s.IsOpen())
	assert.Nil(t, s.FinalCash)
	assert.Nil(t, s.EndTime)
}

func TestMarkClosed(t *testing.T) {
	s, err := NewShift("branch-1", "user-1", "2026-08-29", decimal.RequireFromString("1500"))
	require.NoError(t, err)

	require.NoError(t, s.MarkClosed(decimal.RequireFromString("1800")))
	assert.Equal(t, StatusClosed, s.Status)
	require.NotNil(t, s.FinalCash)
	assert.True(t, s.FinalCash.Equal(decimal.RequireFromString("1800")))
	require.NotNil(t, s.EndTime)

	err = s.MarkClosed(decimal.Zero)
	assert.ErrorIs(t, err, ErrShiftAlreadyClosed)
}
