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

// DeviceHandler holds dependencies for caregiver push device handlers.
type DeviceHandler struct {
	uc     usecase.DeviceUsecase
	logger *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler, injected by Fx.
func NewDeviceHandler(uc usecase.DeviceUsecase, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterDevice records a push token for the authenticated caregiver.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrTokenInvalido
	}

	var info *usecase.DeviceInfo
	if err := c.Bind(&info); err != nil {
		return domainerrors.NewValidationError("Datos del dispositivo inválidos")
	}
	if err := c.Validate(info); err != nil {
		return errors.WithStack(err)
	}

	device, err := h.uc.RegisterDevice(c.Request().Context(), userID, info)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, device)
}

// GetDevices lists the caller's registered devices.
func (h *DeviceHandler) GetDevices(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrTokenInvalido
	}

	devices, err := h.uc.GetUserDevices(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, devices)
}

// DeactivateDevice stops push delivery to a device the caller owns.
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrTokenInvalido
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrDispositivoNoEncontrado
	}

	if err := h.uc.DeactivateDevice(c.Request().Context(), userID, deviceID); err != nil {
		return errors.WithStack(err)
	}

	return response.Mensaje(c, http.StatusOK, "Dispositivo desactivado correctamente")
}
