// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	domainerrors "vigia/internal/domain/errors"
	"vigia/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SensorHandler holds dependencies for the telemetry endpoints the bracelet
// firmware talks to.
type SensorHandler struct {
	uc     usecase.TelemetryUsecase
	logger *slog.Logger
}

// NewSensorHandler is the constructor for SensorHandler, injected by Fx.
func NewSensorHandler(uc usecase.TelemetryUsecase, logger *slog.Logger) *SensorHandler {
	return &SensorHandler{
		uc:     uc,
		logger: logger,
	}
}

// Ingest handles a telemetry reading posted by a bracelet. The firmware only
// checks for {"success": true}, anything else makes it retry.
func (h *SensorHandler) Ingest(c echo.Context) error {
	var input *usecase.IngestInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrDatosFaltantes
	}

	if err := h.uc.Ingest(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// GetAlertas returns the aggregated event history of a bracelet for the
// caregiver dashboard.
func (h *SensorHandler) GetAlertas(c echo.Context) error {
	token := c.Param("token")

	history, err := h.uc.GetBraceletHistory(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, history)
}
