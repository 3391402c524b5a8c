package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vigia/internal/delivery/http/validator"
	domainerrors "vigia/internal/domain/errors"
	mockUsecase "vigia/internal/mocks/usecase"
	"vigia/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSensorHandler_Ingest_Success(t *testing.T) {
	uc := mockUsecase.NewMockTelemetryUsecase(t)
	h := NewSensorHandler(uc, newDiscardLogger())

	body := `{"token":"PULSERA01","mensaje":"Movimiento normal","temperatura":36.5}`
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/sensor/data", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	uc.EXPECT().
		Ingest(mock.Anything, mock.AnythingOfType("*usecase.IngestInput")).
		Run(func(_ context.Context, input *usecase.IngestInput) {
			assert.Equal(t, "PULSERA01", input.Token)
			assert.Equal(t, "Movimiento normal", input.Mensaje)
			assert.Equal(t, 36.5, *input.Temperatura)
		}).
		Return(nil)

	err := h.Ingest(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": true}`, rec.Body.String())
}

func TestSensorHandler_Ingest_UsecaseError(t *testing.T) {
	uc := mockUsecase.NewMockTelemetryUsecase(t)
	h := NewSensorHandler(uc, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/sensor/data", strings.NewReader(`{"token":"PULSERA01"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	uc.EXPECT().
		Ingest(mock.Anything, mock.AnythingOfType("*usecase.IngestInput")).
		Return(domainerrors.ErrDatosFaltantes)

	err := h.Ingest(c)
	assert.ErrorIs(t, err, domainerrors.ErrDatosFaltantes)
}

func TestSensorHandler_GetAlertas_Success(t *testing.T) {
	uc := mockUsecase.NewMockTelemetryUsecase(t)
	h := NewSensorHandler(uc, newDiscardLogger())

	history := &usecase.BraceletHistory{
		Codigo:             "PULSERA01",
		Token:              "PULSERA01",
		MovimientosBruscos: 2,
		Historial: []*usecase.HistoryEntry{
			{ID: "1", Mensaje: "Movimiento brusco", Fecha: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)},
		},
		HistorialTemperatura: []*usecase.TemperaturePoint{},
		HistorialSensores:    []*usecase.MotionSample{},
	}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/sensor/alertas/PULSERA01", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("token")
	c.SetParamValues("PULSERA01")

	uc.EXPECT().
		GetBraceletHistory(mock.Anything, "PULSERA01").
		Return(history, nil)

	err := h.GetAlertas(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"movimientos_bruscos":2`)
	assert.Contains(t, rec.Body.String(), `"historialTemperatura"`)
}

func TestSensorHandler_GetAlertas_NotFound(t *testing.T) {
	uc := mockUsecase.NewMockTelemetryUsecase(t)
	h := NewSensorHandler(uc, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/sensor/alertas/DESCONOCIDA", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("token")
	c.SetParamValues("DESCONOCIDA")

	uc.EXPECT().
		GetBraceletHistory(mock.Anything, "DESCONOCIDA").
		Return(nil, domainerrors.ErrPulseraNoEncontrada)

	err := h.GetAlertas(c)
	assert.ErrorIs(t, err, domainerrors.ErrPulseraNoEncontrada)
}
