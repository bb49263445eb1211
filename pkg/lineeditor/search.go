package lineeditor

import (
	"strings"
)

// DropdownOpen indica si el desplegable de la celda de búsqueda activa
// está abierto
func (c *Controller) DropdownOpen() bool {
	return c.dropdownOpen
}

// Query retorna el texto local de filtrado de la celda activa
func (c *Controller) Query() string {
	return c.query
}

// Highlighted retorna el índice resaltado dentro de la lista filtrada
func (c *Controller) Highlighted() int {
	return c.highlighted
}

// FilteredCandidates retorna los candidatos de la columna de búsqueda
// activa que coinciden con el texto local. El filtro es una búsqueda de
// subcadena sin distinguir mayúsculas sobre Label o SubLabel, síncrona y
// en memoria: la lista siempre viene precargada por el llamador
func (c *Controller) FilteredCandidates() []Candidate {
	if c.cursor == nil {
		return nil
	}
	col, err := c.findColumn(c.cursor.ColumnKey)
	if err != nil || col.Kind != KindSearch {
		return nil
	}

	if c.query == "" {
		return col.Candidates
	}

	needle := strings.ToLower(c.query)
	var matched []Candidate
	for _, cand := range col.Candidates {
		if strings.Contains(strings.ToLower(cand.Label), needle) ||
			strings.Contains(strings.ToLower(cand.SubLabel), needle) {
			matched = append(matched, cand)
		}
	}
	return matched
}

// SelectCandidate confirma un candidato en una columna de búsqueda:
// ejecuta el callback OnSelect de la columna (que puede escribir varias
// celdas derivadas), cierra el desplegable, descarta el texto local y
// avanza el foco igual que Tab. Un candidato que ya no está en la lista
// de la columna produce ErrInvalidCandidate
func (c *Controller) SelectCandidate(rowID, columnKey, candidateID string) error {
	if _, err := c.findRow(rowID); err != nil {
		return err
	}
	col, err := c.findColumn(columnKey)
	if err != nil {
		return err
	}
	if col.Kind != KindSearch {
		return ErrNotSearchColumn
	}

	var selected *Candidate
	for i := range col.Candidates {
		if col.Candidates[i].ID == candidateID {
			selected = &col.Candidates[i]
			break
		}
	}
	if selected == nil {
		return ErrInvalidCandidate
	}

	if col.OnSelect != nil {
		col.OnSelect(rowID, *selected, func(key string, value any) {
			c.SetValue(rowID, key, value)
		})
	}

	c.cursor = &Cursor{RowID: rowID, ColumnKey: columnKey}
	c.closeDropdown()
	c.moveNext()
	return nil
}

// PointerSelect confirma un candidato por clic/toque. Se procesa de forma
// síncrona antes de que llegue el blur del campo, y marca la selección
// para que ese blur no cierre nada que ya se cerró aquí
func (c *Controller) PointerSelect(rowID, columnKey, candidateID string) error {
	if err := c.SelectCandidate(rowID, columnKey, candidateID); err != nil {
		return err
	}
	c.selectedBeforeBlur = true
	return nil
}

// commitHighlighted confirma el candidato resaltado de la celda activa
func (c *Controller) commitHighlighted() {
	filtered := c.FilteredCandidates()
	if c.highlighted < 0 || c.highlighted >= len(filtered) {
		c.closeDropdown()
		return
	}
	cursor := *c.cursor
	_ = c.SelectCandidate(cursor.RowID, cursor.ColumnKey, filtered[c.highlighted].ID)
}
