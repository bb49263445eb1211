package lineeditor

import (
	"strconv"

	"github.com/google/uuid"
)

// Key representa una tecla de navegación del editor
type Key string

const (
	KeyTab       Key = "Tab"
	KeyEnter     Key = "Enter"
	KeyEscape    Key = "Escape"
	KeyArrowUp   Key = "ArrowUp"
	KeyArrowDown Key = "ArrowDown"
)

// Controller gestiona el estado del editor de líneas: qué celda tiene el
// foco, el filtrado incremental de las columnas de búsqueda y la
// navegación por teclado (Tab/Enter), incluyendo el alta automática de
// fila al tabular más allá de la última celda editable
type Controller struct {
	columns []ColumnSpec
	rows    []*Row
	cursor  *Cursor

	// estado de la celda de búsqueda activa
	query        string
	dropdownOpen bool
	highlighted  int

	// una selección por puntero procesada en el mismo despacho anula el
	// cierre por blur que la sigue
	selectedBeforeBlur bool
}

// NewController crea un editor con las columnas dadas y sin filas
func NewController(columns []ColumnSpec) *Controller {
	return &Controller{
		columns: columns,
	}
}

// Rows retorna las filas en orden
func (c *Controller) Rows() []*Row {
	return c.rows
}

// Cursor retorna la celda activa, o nil si no hay foco
func (c *Controller) Cursor() *Cursor {
	return c.cursor
}

// AddRow agrega una fila vacía al final y pone el foco en su primera
// columna editable. Siempre tiene éxito
func (c *Controller) AddRow() string {
	row := &Row{
		ID:     uuid.New().String(),
		Values: make(map[string]any, len(c.columns)),
	}
	for _, col := range c.columns {
		row.Values[col.Key] = col.defaultValue()
	}
	c.rows = append(c.rows, row)

	if first, ok := c.firstEditableColumn(); ok {
		c.Focus(row.ID, first.Key)
	}
	return row.ID
}

// RemoveRow elimina la fila. No protege contra eliminar la última fila:
// mantener una fila vacía de reserva es responsabilidad del llamador
func (c *Controller) RemoveRow(rowID string) {
	for i, row := range c.rows {
		if row.ID == rowID {
			c.rows = append(c.rows[:i], c.rows[i+1:]...)
			break
		}
	}
	if c.cursor != nil && c.cursor.RowID == rowID {
		c.cursor = nil
		c.closeDropdown()
	}
}

// UpdateCell escribe un valor crudo en la celda, coercionado según el tipo
// de columna. En columnas numéricas un valor no parseable vale 0; en
// columnas de texto pasa tal cual (Min/Max no se validan al escribir). En
// columnas de búsqueda el texto alimenta el filtro local en lugar de
// escribirse como valor confirmado
func (c *Controller) UpdateCell(rowID, columnKey string, raw string) error {
	row, err := c.findRow(rowID)
	if err != nil {
		return err
	}
	col, err := c.findColumn(columnKey)
	if err != nil {
		return err
	}

	switch col.Kind {
	case KindNumber:
		parsed, perr := strconv.ParseFloat(raw, 64)
		if perr != nil {
			parsed = 0
		}
		row.Values[columnKey] = parsed
	case KindSearch:
		c.cursor = &Cursor{RowID: rowID, ColumnKey: columnKey}
		c.query = raw
		c.dropdownOpen = true
		c.highlighted = 0
	default:
		row.Values[columnKey] = raw
	}
	return nil
}

// SetValue escribe un valor confirmado sin coerción. Lo usan los callbacks
// OnSelect para escribir celdas derivadas
func (c *Controller) SetValue(rowID, columnKey string, value any) {
	if row, err := c.findRow(rowID); err == nil {
		row.Values[columnKey] = value
	}
}

// Focus pone el foco en la celda indicada. En una columna de búsqueda con
// valor confirmado vacío se abre el desplegable de inmediato
func (c *Controller) Focus(rowID, columnKey string) {
	row, err := c.findRow(rowID)
	if err != nil {
		return
	}
	col, err := c.findColumn(columnKey)
	if err != nil {
		return
	}

	c.cursor = &Cursor{RowID: rowID, ColumnKey: columnKey}
	c.query = ""
	c.highlighted = 0
	c.dropdownOpen = col.Kind == KindSearch && row.Values[columnKey] == ""
}

// HandleKey procesa una tecla de navegación sobre la celda activa
func (c *Controller) HandleKey(key Key) {
	if c.cursor == nil {
		return
	}

	switch key {
	case KeyTab:
		c.moveNext()
	case KeyEnter:
		if c.dropdownOpen {
			// Enter con el desplegable abierto confirma el candidato
			// resaltado en lugar de bajar de fila
			c.commitHighlighted()
			return
		}
		c.moveDown()
	case KeyEscape:
		// cierra el desplegable y descarta el texto local; el valor
		// confirmado de la celda se conserva
		c.closeDropdown()
	case KeyArrowUp:
		if c.dropdownOpen && c.highlighted > 0 {
			c.highlighted--
		}
	case KeyArrowDown:
		if c.dropdownOpen {
			if max := len(c.FilteredCandidates()) - 1; c.highlighted < max {
				c.highlighted++
			}
		}
	}
}

// Blur cierra el desplegable al perder el foco, salvo que una selección
// por puntero ya se haya procesado en el mismo despacho
func (c *Controller) Blur() {
	if c.selectedBeforeBlur {
		c.selectedBeforeBlur = false
		return
	}
	c.closeDropdown()
}

// moveNext implementa la semántica de Tab: siguiente columna editable de
// la fila; primera columna de la fila siguiente al agotar la fila; alta de
// fila nueva al agotar la última fila
func (c *Controller) moveNext() {
	editable := c.editableColumns()
	if len(editable) == 0 {
		return
	}

	rowIdx := c.rowIndex(c.cursor.RowID)
	colIdx := c.editableIndex(editable, c.cursor.ColumnKey)
	if rowIdx < 0 || colIdx < 0 {
		return
	}

	if colIdx < len(editable)-1 {
		c.Focus(c.cursor.RowID, editable[colIdx+1].Key)
		return
	}

	if rowIdx < len(c.rows)-1 {
		c.Focus(c.rows[rowIdx+1].ID, editable[0].Key)
		return
	}

	c.AddRow()
}

// moveDown implementa la semántica de Enter: misma columna en la fila
// siguiente; alta de fila nueva si no hay siguiente
func (c *Controller) moveDown() {
	rowIdx := c.rowIndex(c.cursor.RowID)
	if rowIdx < 0 {
		return
	}

	if rowIdx < len(c.rows)-1 {
		c.Focus(c.rows[rowIdx+1].ID, c.cursor.ColumnKey)
		return
	}

	c.AddRow()
}

func (c *Controller) closeDropdown() {
	c.dropdownOpen = false
	c.query = ""
	c.highlighted = 0
}

func (c *Controller) editableColumns() []ColumnSpec {
	var editable []ColumnSpec
	for _, col := range c.columns {
		if col.Editable() {
			editable = append(editable, col)
		}
	}
	return editable
}

func (c *Controller) firstEditableColumn() (ColumnSpec, bool) {
	for _, col := range c.columns {
		if col.Editable() {
			return col, true
		}
	}
	return ColumnSpec{}, false
}

func (c *Controller) editableIndex(editable []ColumnSpec, key string) int {
	for i, col := range editable {
		if col.Key == key {
			return i
		}
	}
	return -1
}

func (c *Controller) rowIndex(rowID string) int {
	for i, row := range c.rows {
		if row.ID == rowID {
			return i
		}
	}
	return -1
}

func (c *Controller) findRow(rowID string) (*Row, error) {
	for _, row := range c.rows {
		if row.ID == rowID {
			return row, nil
		}
	}
	return nil, ErrRowNotFound
}

func (c *Controller) findColumn(key string) (ColumnSpec, error) {
	for _, col := range c.columns {
		if col.Key == key {
			return col, nil
		}
	}
	return ColumnSpec{}, ErrColumnNotFound
}
