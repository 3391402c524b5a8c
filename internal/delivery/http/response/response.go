// Package response holds the wire envelopes the bracelet firmware and the
// caregiver frontend expect. Errors always arrive as {"error": ...} and
// informational results as {"mensaje": ...}.
package response

import (
	"github.com/labstack/echo/v4"
)

// ErrorBody is the error envelope.
type ErrorBody struct {
	Error string `json:"error"`
}

// MensajeBody is the envelope for informational results.
type MensajeBody struct {
	Mensaje string `json:"mensaje"`
}

// Error renders an error envelope with the given status.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorBody{Error: message})
}

// Mensaje renders an informational envelope with the given status.
func Mensaje(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MensajeBody{Mensaje: message})
}
