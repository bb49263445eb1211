package lineeditor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serviceColumns() []ColumnSpec {
	return []ColumnSpec{
		{Key: "servicio", Kind: KindSearch, Candidates: []Candidate{
			{ID: "svc-1", Label: "Shampoo Profesional", SubLabel: "Lavado"},
			{ID: "svc-2", Label: "Gel", SubLabel: "Peinado"},
		}},
		{Key: "cantidad", Kind: KindNumber, Min: 1, Step: 1},
		{Key: "subtotal", Kind: KindNumber, ReadOnly: true},
	}
}

func TestAddRowDefaultsAndFocus(t *testing.T) {
	c := NewController(serviceColumns())

	rowID := c.AddRow()

	require.Len(t, c.Rows(), 1)
	row := c.Rows()[0]
	assert.Equal(t, rowID, row.ID)
	assert.Equal(t, "", row.Values["servicio"])
	assert.Equal(t, float64(0), row.Values["cantidad"])
	assert.Equal(t, float64(0), row.Values["subtotal"])

	require.NotNil(t, c.Cursor())
	assert.Equal(t, rowID, c.Cursor().RowID)
	assert.Equal(t, "servicio", c.Cursor().ColumnKey)
}

func TestUpdateCellCoercion(t *testing.T) {
	c := NewController(serviceColumns())
	rowID := c.AddRow()

	require.NoError(t, c.UpdateCell(rowID, "cantidad", "3.5"))
	assert.Equal(t, 3.5, c.Rows()[0].Values["cantidad"])

	// un valor no parseable vale 0, no error
	require.NoError(t, c.UpdateCell(rowID, "cantidad", "abc"))
	assert.Equal(t, float64(0), c.Rows()[0].Values["cantidad"])

	// Min/Max son restricciones del widget, no se validan al escribir
	require.NoError(t, c.UpdateCell(rowID, "cantidad", "-5"))
	assert.Equal(t, float64(-5), c.Rows()[0].Values["cantidad"])

	assert.ErrorIs(t, c.UpdateCell("nope", "cantidad", "1"), ErrRowNotFound)
	assert.ErrorIs(t, c.UpdateCell(rowID, "nope", "1"), ErrColumnNotFound)
}

func TestTabAdvancesWithinRow(t *testing.T) {
	c := NewController(serviceColumns())
	rowID := c.AddRow()

	c.HandleKey(KeyTab)

	require.NotNil(t, c.Cursor())
	assert.Equal(t, rowID, c.Cursor().RowID)
	assert.Equal(t, "cantidad", c.Cursor().ColumnKey, "subtotal es de solo lectura y no entra al ciclo")
}

func TestTabOnLastCellOfLastRowAddsRow(t *testing.T) {
	c := NewController(serviceColumns())
	c.AddRow()
	c.Focus(c.Rows()[0].ID, "cantidad") // última columna editable

	c.HandleKey(KeyTab)

	require.Len(t, c.Rows(), 2, "Tab en la última celda editable de la última fila agrega exactamente una fila")
	require.NotNil(t, c.Cursor())
	assert.Equal(t, c.Rows()[1].ID, c.Cursor().RowID)
	assert.Equal(t, "servicio", c.Cursor().ColumnKey)
}

func TestTabOnLastCellOfMiddleRowMovesToNextRow(t *testing.T) {
	c := NewController(serviceColumns())
	first := c.AddRow()
	second := c.AddRow()
	c.Focus(first, "cantidad")

	c.HandleKey(KeyTab)

	require.Len(t, c.Rows(), 2)
	assert.Equal(t, second, c.Cursor().RowID)
	assert.Equal(t, "servicio", c.Cursor().ColumnKey)
}

func TestEnterMovesToSameColumnNextRow(t *testing.T) {
	c := NewController(serviceColumns())
	first := c.AddRow()
	second := c.AddRow()
	c.Focus(first, "cantidad")

	c.HandleKey(KeyEnter)

	assert.Equal(t, second, c.Cursor().RowID)
	assert.Equal(t, "cantidad", c.Cursor().ColumnKey)

	// sin fila siguiente, Enter agrega una
	c.Focus(second, "cantidad")
	c.HandleKey(KeyEnter)
	assert.Len(t, c.Rows(), 3)
}

func TestRemoveRow(t *testing.T) {
	c := NewController(serviceColumns())
	first := c.AddRow()
	second := c.AddRow()

	c.RemoveRow(first)

	require.Len(t, c.Rows(), 1)
	assert.Equal(t, second, c.Rows()[0].ID)

	// eliminar la última fila es válido: reponer una fila vacía es
	// responsabilidad del llamador
	c.RemoveRow(second)
	assert.Empty(t, c.Rows())
	assert.Nil(t, c.Cursor())
}
