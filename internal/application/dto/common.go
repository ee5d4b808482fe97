package dto

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Number     int   `json:"number"`
	Size       int   `json:"size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// ErrorResponse cuerpo de error HTTP.
// EntityName y ErrorKey solo se envían en errores de validación de la entidad (ej. idexists).
type ErrorResponse struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	EntityName string `json:"entityName,omitempty"`
	ErrorKey   string `json:"errorKey,omitempty"`
}
