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

func TestMonitoringHandler_RegisterBinding_Success(t *testing.T) {
	uc := mockUsecase.NewMockMonitoringUsecase(t)
	h := NewMonitoringHandler(uc, newDiscardLogger())

	userID := uuid.New()
	body := `{"token":"PULSERA01","nombre_pulsera":"Abuela Rosa"}`
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/monitoreo/registrar", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	uc.EXPECT().
		RegisterBinding(mock.Anything, userID, mock.AnythingOfType("*usecase.RegisterBindingInput")).
		Run(func(_ context.Context, _ uuid.UUID, input *usecase.RegisterBindingInput) {
			assert.Equal(t, "PULSERA01", input.Token)
			assert.Equal(t, "Abuela Rosa", input.NombrePulsera)
		}).
		Return(&entity.Binding{ID: uuid.New(), UserID: userID, Token: "PULSERA01"}, nil)

	err := h.RegisterBinding(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Pulsera registrada exitosamente")
}

func TestMonitoringHandler_RegisterBinding_AlreadyBound(t *testing.T) {
	uc := mockUsecase.NewMockMonitoringUsecase(t)
	h := NewMonitoringHandler(uc, newDiscardLogger())

	userID := uuid.New()
	body := `{"token":"PULSERA01"}`
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/monitoreo/registrar", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	uc.EXPECT().
		RegisterBinding(mock.Anything, userID, mock.AnythingOfType("*usecase.RegisterBindingInput")).
		Return(nil, domainerrors.ErrTokenYaVinculado)

	err := h.RegisterBinding(c)
	assert.ErrorIs(t, err, domainerrors.ErrTokenYaVinculado)
}

func TestMonitoringHandler_GetBindings_Success(t *testing.T) {
	uc := mockUsecase.NewMockMonitoringUsecase(t)
	h := NewMonitoringHandler(uc, newDiscardLogger())

	userID := uuid.New()
	bindings := []*entity.Binding{
		{ID: uuid.New(), UserID: userID, Token: "PULSERA01", NombrePulsera: "Abuela Rosa"},
	}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/monitoreo/mis-pulseras", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	uc.EXPECT().
		GetUserBindings(mock.Anything, userID).
		Return(bindings, nil)

	err := h.GetBindings(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"nombre_pulsera":"Abuela Rosa"`)
}

func TestMonitoringHandler_DeleteBinding_Success(t *testing.T) {
	uc := mockUsecase.NewMockMonitoringUsecase(t)
	h := NewMonitoringHandler(uc, newDiscardLogger())

	userID := uuid.New()
	bindingID := uuid.New()

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodDelete, "/api/monitoreo/"+bindingID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(bindingID.String())
	c.Set("userID", userID)

	uc.EXPECT().
		DeleteBinding(mock.Anything, userID, bindingID).
		Return(nil)

	err := h.DeleteBinding(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Pulsera eliminada correctamente")
}

func TestMonitoringHandler_DeleteBinding_MalformedID(t *testing.T) {
	uc := mockUsecase.NewMockMonitoringUsecase(t)
	h := NewMonitoringHandler(uc, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodDelete, "/api/monitoreo/no-es-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("no-es-uuid")
	c.Set("userID", uuid.New())

	err := h.DeleteBinding(c)
	assert.ErrorIs(t, err, domainerrors.ErrVinculoNoEncontrado)
}

func TestMonitoringHandler_GetPairingQR_Success(t *testing.T) {
	uc := mockUsecase.NewMockMonitoringUsecase(t)
	h := NewMonitoringHandler(uc, newDiscardLogger())

	png := []byte{0x89, 0x50, 0x4E, 0x47}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/monitoreo/qr/PULSERA01", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("token")
	c.SetParamValues("PULSERA01")

	uc.EXPECT().
		GeneratePairingQR(mock.Anything, "PULSERA01").
		Return(png, nil)

	err := h.GetPairingQR(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}
