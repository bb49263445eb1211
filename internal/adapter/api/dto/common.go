package dto

// ErrorResponse representa la estructura de respuesta para errores
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse representa la estructura de respuesta para operaciones exitosas
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Pagination representa la estructura de paginación
type Pagination struct {
	Page     int
	PageSize int
}

// GetPagination retorna una estructura de paginación con valores por defecto
func GetPagination(page, pageSize int) Pagination {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 {
		pageSize = 10
	} else if pageSize > 100 {
		pageSize = 100
	}

	return Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

// NewErrorResponse crea una nueva respuesta de error
func NewErrorResponse(code int, message, details string) ErrorResponse {
	return ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewSuccessResponse crea una nueva respuesta de éxito
func NewSuccessResponse(message string, data interface{}) SuccessResponse {
	return SuccessResponse{
		Message: message,
		Data:    data,
	}
}

// calculateTotalPages calcula el total de páginas a partir del total de registros
func calculateTotalPages(totalCount, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}

	totalPages := (totalCount + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	return totalPages
}
