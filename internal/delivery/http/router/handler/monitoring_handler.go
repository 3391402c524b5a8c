package handler

import (
	"log/slog"
	"net/http"

	"vigia/internal/delivery/http/middleware"
	"vigia/internal/delivery/http/response"
	domainerrors "vigia/internal/domain/errors"
	"vigia/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MonitoringHandler holds dependencies for caregiver binding handlers.
type MonitoringHandler struct {
	uc     usecase.MonitoringUsecase
	logger *slog.Logger
}

// NewMonitoringHandler is the constructor for MonitoringHandler, injected by Fx.
func NewMonitoringHandler(uc usecase.MonitoringUsecase, logger *slog.Logger) *MonitoringHandler {
	return &MonitoringHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterBinding links a bracelet token to the authenticated caregiver.
func (h *MonitoringHandler) RegisterBinding(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrTokenInvalido
	}

	var input *usecase.RegisterBindingInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.NewValidationError("Falta el token de la pulsera")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if _, err := h.uc.RegisterBinding(c.Request().Context(), userID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Mensaje(c, http.StatusCreated, "✅ Pulsera registrada exitosamente")
}

// GetBindings lists the bracelets the authenticated caregiver watches.
func (h *MonitoringHandler) GetBindings(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrTokenInvalido
	}

	bindings, err := h.uc.GetUserBindings(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, bindings)
}

// DeleteBinding unlinks a bracelet the caller owns.
func (h *MonitoringHandler) DeleteBinding(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrTokenInvalido
	}

	bindingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrVinculoNoEncontrado
	}

	if err := h.uc.DeleteBinding(c.Request().Context(), userID, bindingID); err != nil {
		return errors.WithStack(err)
	}

	return response.Mensaje(c, http.StatusOK, "🗑️ Pulsera eliminada correctamente")
}

// GetPairingQR renders the pairing QR code of a bracelet token as PNG.
func (h *MonitoringHandler) GetPairingQR(c echo.Context) error {
	png, err := h.uc.GeneratePairingQR(c.Request().Context(), c.Param("token"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
