package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidArgument = errors.New("argumento inválido")
)

// AlertError error de negocio con la entidad afectada y una clave legible por máquina
// (idexists, idnull, idinvalid, idnotfound). Kind es uno de los sentinels de arriba.
type AlertError struct {
	Kind       error
	EntityName string
	ErrorKey   string
	Message    string
}

func (e *AlertError) Error() string {
	return e.Message
}

func (e *AlertError) Unwrap() error {
	return e.Kind
}

// NewBadRequestAlert construye un AlertError de tipo ErrInvalidArgument.
func NewBadRequestAlert(message, entityName, errorKey string) *AlertError {
	return &AlertError{Kind: ErrInvalidArgument, EntityName: entityName, ErrorKey: errorKey, Message: message}
}

// NewNotFoundAlert construye un AlertError de tipo ErrNotFound.
func NewNotFoundAlert(message, entityName, errorKey string) *AlertError {
	return &AlertError{Kind: ErrNotFound, EntityName: entityName, ErrorKey: errorKey, Message: message}
}
