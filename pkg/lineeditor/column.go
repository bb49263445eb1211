package lineeditor

import (
	"errors"
)

var (
	ErrRowNotFound      = errors.New("fila no encontrada")
	ErrColumnNotFound   = errors.New("columna no encontrada")
	ErrNotSearchColumn  = errors.New("la columna no es de tipo búsqueda")
	ErrInvalidCandidate = errors.New("el candidato seleccionado ya no existe")
)

// Kind representa el tipo de una columna del editor de líneas
type Kind string

const (
	KindText   Kind = "text"
	KindNumber Kind = "number"
	KindSearch Kind = "search"
	KindSelect Kind = "select"
)

// Candidate representa una opción de una columna de búsqueda: un servicio,
// un producto, etc., precargado por el llamador
type Candidate struct {
	ID       string
	Label    string
	SubLabel string
	Payload  any
}

// ColumnSpec describe una columna del editor. Es estática por instancia
// del editor
type ColumnSpec struct {
	Key      string
	Kind     Kind
	ReadOnly bool

	// Min, Max y Step solo aplican a columnas numéricas y son restricciones
	// de presentación del widget: no se validan al escribir
	Min  float64
	Max  float64
	Step float64

	// Candidates es la lista precargada para columnas de búsqueda
	Candidates []Candidate

	// OnSelect se invoca al confirmar un candidato y puede escribir varias
	// celdas derivadas (p. ej. un servicio escribe nombre, duración, precio
	// y subtotal) a través de set
	OnSelect func(rowID string, candidate Candidate, set func(columnKey string, value any))
}

// Editable indica si la columna participa en el ciclo de tabulación
func (c ColumnSpec) Editable() bool {
	return !c.ReadOnly
}

// defaultValue retorna el valor inicial de una celda según el tipo de
// columna: "" para texto/búsqueda/selección, 0 para numéricas
func (c ColumnSpec) defaultValue() any {
	if c.Kind == KindNumber {
		return float64(0)
	}
	return ""
}

// Row representa una fila editable. Vive solo durante la sesión de
// edición; no se persiste
type Row struct {
	ID     string
	Values map[string]any
}

// Cursor identifica la celda editable activa. Es estado transitorio de la
// interfaz, no parte de la fila
type Cursor struct {
	RowID     string
	ColumnKey string
}
