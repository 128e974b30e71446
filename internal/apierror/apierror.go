// Package apierror provides standardized error response structures for the API
// and the domain error kinds shared by the services. All errors returned to
// clients go through this package to ensure consistency and to prevent leaking
// internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"fmt"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// Validation wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// ── Domain error kinds ───────────────────────────────────────────────────────

// ErrNoEncontrado is returned when the primary record, or a non-blank
// foreign-key reference, does not resolve in the store. It is fatal to the
// operation: nothing is persisted. Handlers map it to 404.
var ErrNoEncontrado = errors.New("registro no encontrado")

// ErrSinStock is the repository-level signal that a conditional stock
// decrement matched no row (cantidad_disponible was already 0). Services wrap
// it into a SinStockError carrying the vehicle's description.
var ErrSinStock = errors.New("sin stock disponible")

// SinStockError is raised by venta create/update when the target vehicle has
// no available units. It is recoverable at the form boundary: the message is
// shown on the input form, the submitted data is preserved, and no record or
// stock mutation occurs. Handlers map it to 409.
type SinStockError struct {
	Marca  string
	Modelo string
}

func (e *SinStockError) Error() string {
	return fmt.Sprintf("No hay stock disponible para el vehículo: %s %s.", e.Marca, e.Modelo)
}
