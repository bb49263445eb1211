package lineeditor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterBySubstring(t *testing.T) {
	c := NewController(serviceColumns())
	rowID := c.AddRow()

	require.NoError(t, c.UpdateCell(rowID, "servicio", "sh"))

	filtered := c.FilteredCandidates()
	require.Len(t, filtered, 1)
	assert.Equal(t, "Shampoo Profesional", filtered[0].Label)
}

func TestFilterMatchesSubLabel(t *testing.T) {
	c := NewController(serviceColumns())
	rowID := c.AddRow()

	require.NoError(t, c.UpdateCell(rowID, "servicio", "peina"))

	filtered := c.FilteredCandidates()
	require.Len(t, filtered, 1)
	assert.Equal(t, "Gel", filtered[0].Label)
}

func TestEmptyQueryShowsAllCandidates(t *testing.T) {
	c := NewController(serviceColumns())
	c.AddRow()

	assert.True(t, c.DropdownOpen(), "foco en celda de búsqueda vacía abre el desplegable")
	assert.Len(t, c.FilteredCandidates(), 2)
}

func TestSelectCandidateRunsOnSelectAndAdvances(t *testing.T) {
	columns := serviceColumns()
	columns[0].OnSelect = func(rowID string, cand Candidate, set func(string, any)) {
		set("servicio", cand.Label)
		set("cantidad", float64(1))
		set("subtotal", float64(250))
	}
	c := NewController(columns)
	rowID := c.AddRow()

	require.NoError(t, c.SelectCandidate(rowID, "servicio", "svc-1"))

	row := c.Rows()[0]
	assert.Equal(t, "Shampoo Profesional", row.Values["servicio"])
	assert.Equal(t, float64(1), row.Values["cantidad"])
	assert.Equal(t, float64(250), row.Values["subtotal"])

	// el foco avanza igual que con Tab y el desplegable queda cerrado
	require.NotNil(t, c.Cursor())
	assert.Equal(t, "cantidad", c.Cursor().ColumnKey)
	assert.False(t, c.DropdownOpen())
	assert.Empty(t, c.Query())
}

func TestSelectStaleCandidate(t *testing.T) {
	c := NewController(serviceColumns())
	rowID := c.AddRow()

	err := c.SelectCandidate(rowID, "servicio", "svc-borrado")
	assert.ErrorIs(t, err, ErrInvalidCandidate)

	err = c.SelectCandidate(rowID, "cantidad", "svc-1")
	assert.ErrorIs(t, err, ErrNotSearchColumn)
}

func TestEnterWithDropdownOpenCommitsHighlighted(t *testing.T) {
	c := NewController(serviceColumns())
	rowID := c.AddRow()
	require.NoError(t, c.UpdateCell(rowID, "servicio", "e"))

	// "e" coincide con ambos candidatos; bajar el resaltado al segundo
	require.Len(t, c.FilteredCandidates(), 2)
	c.HandleKey(KeyArrowDown)
	assert.Equal(t, 1, c.Highlighted())

	c.HandleKey(KeyEnter)

	// Enter confirmó el candidato en lugar de bajar de fila
	require.Len(t, c.Rows(), 1)
	assert.Equal(t, "cantidad", c.Cursor().ColumnKey)
	assert.False(t, c.DropdownOpen())
}

func TestArrowHighlightClamped(t *testing.T) {
	c := NewController(serviceColumns())
	rowID := c.AddRow()
	require.NoError(t, c.UpdateCell(rowID, "servicio", "e"))

	c.HandleKey(KeyArrowUp)
	assert.Equal(t, 0, c.Highlighted(), "el resaltado no sube de 0")

	c.HandleKey(KeyArrowDown)
	c.HandleKey(KeyArrowDown)
	c.HandleKey(KeyArrowDown)
	assert.Equal(t, 1, c.Highlighted(), "el resaltado no pasa del último filtrado")
}

func TestEscapeDiscardsQueryKeepsValue(t *testing.T) {
	columns := serviceColumns()
	columns[0].OnSelect = func(rowID string, cand Candidate, set func(string, any)) {
		set("servicio", cand.Label)
	}
	c := NewController(columns)
	rowID := c.AddRow()
	require.NoError(t, c.SelectCandidate(rowID, "servicio", "svc-2"))

	// volver a la celda y empezar a filtrar
	c.Focus(rowID, "servicio")
	require.NoError(t, c.UpdateCell(rowID, "servicio", "sham"))
	require.True(t, c.DropdownOpen())

	c.HandleKey(KeyEscape)

	assert.False(t, c.DropdownOpen())
	assert.Empty(t, c.Query())
	assert.Equal(t, "Gel", c.Rows()[0].Values["servicio"], "el valor confirmado se conserva")
}

func TestPointerSelectBeatsBlur(t *testing.T) {
	columns := serviceColumns()
	columns[0].OnSelect = func(rowID string, cand Candidate, set func(string, any)) {
		set("servicio", cand.Label)
	}
	c := NewController(columns)
	rowID := c.AddRow()
	require.NoError(t, c.UpdateCell(rowID, "servicio", "gel"))

	// el mouse-down de selección se procesa antes del blur del campo
	require.NoError(t, c.PointerSelect(rowID, "servicio", "svc-2"))
	c.Blur()

	assert.Equal(t, "Gel", c.Rows()[0].Values["servicio"])
	require.NotNil(t, c.Cursor(), "el blur posterior a la selección no anula el avance de foco")
	assert.Equal(t, "cantidad", c.Cursor().ColumnKey)
}

func TestBlurWithoutSelectionClosesDropdown(t *testing.T) {
	c := NewController(serviceColumns())
	rowID := c.AddRow()
	require.NoError(t, c.UpdateCell(rowID, "servicio", "sh"))
	require.True(t, c.DropdownOpen())

	c.Blur()

	assert.False(t, c.DropdownOpen())
	assert.Empty(t, c.Query())
}
