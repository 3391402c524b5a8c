package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"vigia/internal/delivery/http/response"
	domainerrors "vigia/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Domain errors
// carry their own status and Spanish message; everything else collapses to a
// logged 500 with a generic message.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if jsonErr := response.Error(c, appErr.HTTPCode(), appErr.Message()); jsonErr != nil {
			m.logger.Error("Failed to write error response", slog.String("error", jsonErr.Error()))
		}

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if jsonErr := response.Error(c, httpErr.Code, fmt.Sprintf("%v", httpErr.Message)); jsonErr != nil {
			m.logger.Error("Failed to write error response", slog.String("error", jsonErr.Error()))
		}

		return
	}

	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	if jsonErr := response.Error(c, http.StatusInternalServerError, domainerrors.ErrInterno.Message()); jsonErr != nil {
		m.logger.Error("Failed to write error response", slog.String("error", jsonErr.Error()))
	}
}
