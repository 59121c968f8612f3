package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = NewValidation("stock insuficiente para la operación")
)

// ValidationError es un error de validación con motivo legible para el usuario.
// Envuelve ErrInvalidInput, así errors.Is(err, ErrInvalidInput) sigue funcionando.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Unwrap permite tratar cualquier ValidationError como ErrInvalidInput.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidation crea un error de validación con el motivo dado.
func NewValidation(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

// NewValidationf crea un error de validación con motivo formateado.
func NewValidationf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reporta si err es (o envuelve) un error de validación.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
