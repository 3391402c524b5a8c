package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vigia/internal/domain/entity"
	domainerrors "vigia/internal/domain/errors"
	mockUsecase "vigia/internal/mocks/usecase"
	"vigia/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeviceHandler_RegisterDevice_Success(t *testing.T) {
	uc := mockUsecase.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(uc, newDiscardLogger())

	userID := uuid.New()
	device := &entity.CaregiverDevice{
		ID:       uuid.New(),
		UserID:   userID,
		FCMToken: "fcm-token-1",
		Platform: "android",
		IsActive: true,
	}

	body := `{"fcm_token":"fcm-token-1","platform":"android"}`
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/dispositivos", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	uc.EXPECT().
		RegisterDevice(mock.Anything, userID, mock.AnythingOfType("*usecase.DeviceInfo")).
		Run(func(_ context.Context, _ uuid.UUID, info *usecase.DeviceInfo) {
			assert.Equal(t, "fcm-token-1", info.FCMToken)
			assert.Equal(t, "android", info.Platform)
		}).
		Return(device, nil)

	err := h.RegisterDevice(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"fcm_token":"fcm-token-1"`)
}

func TestDeviceHandler_RegisterDevice_InvalidPlatform(t *testing.T) {
	uc := mockUsecase.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(uc, newDiscardLogger())

	body := `{"fcm_token":"fcm-token-1","platform":"windows"}`
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/dispositivos", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", uuid.New())

	err := h.RegisterDevice(c)
	assert.Error(t, err)
}

func TestDeviceHandler_GetDevices_Success(t *testing.T) {
	uc := mockUsecase.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(uc, newDiscardLogger())

	userID := uuid.New()
	devices := []*entity.CaregiverDevice{
		{ID: uuid.New(), UserID: userID, FCMToken: "fcm-token-1", IsActive: true},
	}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/dispositivos", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	uc.EXPECT().
		GetUserDevices(mock.Anything, userID).
		Return(devices, nil)

	err := h.GetDevices(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeviceHandler_DeactivateDevice_Success(t *testing.T) {
	uc := mockUsecase.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(uc, newDiscardLogger())

	userID := uuid.New()
	deviceID := uuid.New()

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodDelete, "/api/dispositivos/"+deviceID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(deviceID.String())
	c.Set("userID", userID)

	uc.EXPECT().
		DeactivateDevice(mock.Anything, userID, deviceID).
		Return(nil)

	err := h.DeactivateDevice(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dispositivo desactivado correctamente")
}

func TestDeviceHandler_DeactivateDevice_NotFound(t *testing.T) {
	uc := mockUsecase.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(uc, newDiscardLogger())

	userID := uuid.New()
	deviceID := uuid.New()

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodDelete, "/api/dispositivos/"+deviceID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(deviceID.String())
	c.Set("userID", userID)

	uc.EXPECT().
		DeactivateDevice(mock.Anything, userID, deviceID).
		Return(domainerrors.ErrDispositivoNoEncontrado)

	err := h.DeactivateDevice(c)
	assert.ErrorIs(t, err, domainerrors.ErrDispositivoNoEncontrado)
}
