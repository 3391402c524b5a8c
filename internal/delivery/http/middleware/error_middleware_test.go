package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "vigia/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newErrorTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/sensor/alertas/PULSERA01", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestErrorMiddleware_DomainError(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext()

	m.HandleHTTPError(domainerrors.ErrPulseraNoEncontrada, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "Pulsera no encontrada"}`, rec.Body.String())
}

func TestErrorMiddleware_WrappedDomainError(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext()

	m.HandleHTTPError(errors.WithStack(domainerrors.ErrCredencialesInvalidas), c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error": "Correo o contraseña incorrectos"}`, rec.Body.String())
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext()

	m.HandleHTTPError(echo.NewHTTPError(http.StatusBadRequest, "campo requerido"), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "campo requerido"}`, rec.Body.String())
}

func TestErrorMiddleware_UnknownError(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext()

	m.HandleHTTPError(errors.New("database connection refused"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Error interno del servidor"}`, rec.Body.String())
	// Internals never leak into the response.
	assert.NotContains(t, rec.Body.String(), "database")
}
