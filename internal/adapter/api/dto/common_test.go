package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPagination(t *testing.T) {
	p := GetPagination(0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PageSize)

	p = GetPagination(-3, -5)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PageSize)

	p = GetPagination(4, 250)
	assert.Equal(t, 4, p.Page)
	assert.Equal(t, 100, p.PageSize)

	p = GetPagination(2, 25)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 25, p.PageSize)
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 1, calculateTotalPages(0, 10))
	assert.Equal(t, 1, calculateTotalPages(10, 10))
	assert.Equal(t, 2, calculateTotalPages(11, 10))
	assert.Equal(t, 5, calculateTotalPages(41, 10))
	assert.Equal(t, 0, calculateTotalPages(50, 0))
}
