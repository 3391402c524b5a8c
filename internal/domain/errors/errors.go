// Package errors defines the application error taxonomy: validation,
// not-found, auth and internal errors, each carrying the HTTP status and the
// Spanish user-facing message the frontend displays.
package errors

import (
	"net/http"

	"vigia/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int   // HTTP status code
	Message() string // User-facing error message
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode int
	message  string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, message string) *BaseError {
	return &BaseError{
		httpCode: httpCode,
		message:  message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// Message returns the user-facing error message
func (e *BaseError) Message() string {
	return e.message
}

// NewValidationError creates a 400 error with a custom message.
func NewValidationError(message string) *BaseError {
	return NewBaseError(http.StatusBadRequest, message)
}

// Predefined error types
var (
	// Ingestion and history
	ErrDatosFaltantes = NewBaseError(
		http.StatusBadRequest,
		"Faltan token o mensaje",
	)

	ErrPulseraNoEncontrada = NewBaseError(
		http.StatusNotFound,
		"Pulsera no encontrada",
	)

	// Bindings
	ErrTokenYaVinculado = NewBaseError(
		http.StatusBadRequest,
		"Este token ya está registrado o vinculado",
	)

	ErrVinculoNoEncontrado = NewBaseError(
		http.StatusNotFound,
		"Pulsera no encontrada o no pertenece al usuario",
	)

	// Accounts
	ErrCorreoRegistrado = NewBaseError(
		http.StatusBadRequest,
		"Correo ya registrado",
	)

	ErrUsuarioNoEncontrado = NewBaseError(
		http.StatusNotFound,
		"Usuario no encontrado",
	)

	ErrCredencialesInvalidas = NewBaseError(
		http.StatusUnauthorized,
		"Correo o contraseña incorrectos",
	)

	// Authentication middleware
	ErrTokenNoProporcionado = NewBaseError(
		http.StatusUnauthorized,
		"Token no proporcionado",
	)

	ErrTokenInvalido = NewBaseError(
		http.StatusUnauthorized,
		"Token inválido o expirado",
	)

	ErrAccesoDenegado = NewBaseError(
		http.StatusForbidden,
		"Acceso denegado",
	)

	// Caregiver devices
	ErrDispositivoNoEncontrado = NewBaseError(
		http.StatusNotFound,
		"Dispositivo no encontrado",
	)

	// Fallback
	ErrInterno = NewBaseError(
		http.StatusInternalServerError,
		"Error interno del servidor",
	)
)
