package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrTenantMissing = errors.New("tenant no establecido en el contexto")
)

// ValidationError agrupa TODAS las violaciones de validación de una petición.
// Nunca se reporta solo la primera: el caller recibe la lista completa.
type ValidationError struct {
	Violations []string
}

// NewValidationError construye el error con la lista de violaciones.
func NewValidationError(violations []string) *ValidationError {
	return &ValidationError{Violations: violations}
}

func (e *ValidationError) Error() string {
	return "validación fallida: " + strings.Join(e.Violations, "; ")
}

// AsValidationError extrae un *ValidationError de una cadena de errores.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
