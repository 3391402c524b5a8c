package impl

import (
	"context"
	"testing"
	"time"

	"vigia/internal/domain/entity"
	domainerrors "vigia/internal/domain/errors"
	"vigia/internal/domain/repository"
	mockRepo "vigia/internal/mocks/repository"
	mockService "vigia/internal/mocks/service"
	mockUsecase "vigia/internal/mocks/usecase"
	"vigia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// telemetryServiceFixtures holds all test dependencies for telemetry service tests.
type telemetryServiceFixtures struct {
	service      usecase.TelemetryUsecase
	braceletRepo *mockRepo.MockBraceletRepository
	eventRepo    *mockRepo.MockEventRepository
	classifier   *mockService.MockFallClassifier
	alertUC      *mockUsecase.MockAlertUsecase
}

func createTestTelemetryService(t *testing.T) telemetryServiceFixtures {
	braceletRepo := mockRepo.NewMockBraceletRepository(t)
	eventRepo := mockRepo.NewMockEventRepository(t)
	classifier := mockService.NewMockFallClassifier(t)
	alertUC := mockUsecase.NewMockAlertUsecase(t)

	service := NewTelemetryService(TelemetryServiceParams{
		BraceletRepo: braceletRepo,
		EventRepo:    eventRepo,
		Classifier:   classifier,
		AlertUC:      alertUC,
		Metrics:      newTestMetrics(),
		Logger:       newDiscardLogger(),
	})

	return telemetryServiceFixtures{
		service:      service,
		braceletRepo: braceletRepo,
		eventRepo:    eventRepo,
		classifier:   classifier,
		alertUC:      alertUC,
	}
}

func TestTelemetryService_Ingest_Success(t *testing.T) {
	fx := createTestTelemetryService(t)

	ctx := context.Background()
	bracelet := &entity.Bracelet{
		ID:     uuid.New(),
		Codigo: "PULSERA01",
		Token:  "PULSERA01",
		Estado: entity.BraceletActiva,
	}
	input := &usecase.IngestInput{
		Token:       "PULSERA01",
		Mensaje:     "Movimiento normal",
		Temperatura: floatPtr(36.5),
	}

	fx.braceletRepo.EXPECT().
		FindBraceletByToken(ctx, "PULSERA01").
		Return(bracelet, nil)

	fx.eventRepo.EXPECT().
		CreateEvent(ctx, mock.AnythingOfType("*entity.SensorEvent")).
		Run(func(_ context.Context, event *entity.SensorEvent) {
			assert.Equal(t, bracelet.ID, event.BraceletID)
			assert.Equal(t, "Movimiento normal", event.Mensaje)
			assert.Equal(t, 36.5, *event.Temperatura)
			assert.False(t, event.Fecha.IsZero())
		}).
		Return(nil)

	fx.classifier.EXPECT().
		Classify("Movimiento normal").
		Return(false)

	err := fx.service.Ingest(ctx, input)
	require.NoError(t, err)
}

func TestTelemetryService_Ingest_MissingFields(t *testing.T) {
	fx := createTestTelemetryService(t)

	ctx := context.Background()

	err := fx.service.Ingest(ctx, &usecase.IngestInput{Token: "", Mensaje: "hola"})
	assert.ErrorIs(t, err, domainerrors.ErrDatosFaltantes)

	err = fx.service.Ingest(ctx, &usecase.IngestInput{Token: "PULSERA01", Mensaje: ""})
	assert.ErrorIs(t, err, domainerrors.ErrDatosFaltantes)

	err = fx.service.Ingest(ctx, nil)
	assert.ErrorIs(t, err, domainerrors.ErrDatosFaltantes)
}

func TestTelemetryService_Ingest_SelfRegistersBracelet(t *testing.T) {
	fx := createTestTelemetryService(t)

	ctx := context.Background()
	input := &usecase.IngestInput{
		Token:   "NUEVA01",
		Mensaje: "Primer contacto",
	}

	fx.braceletRepo.EXPECT().
		FindBraceletByToken(ctx, "NUEVA01").
		Return(nil, repository.ErrBraceletNotFound)

	fx.braceletRepo.EXPECT().
		CreateBracelet(ctx, mock.AnythingOfType("*entity.Bracelet")).
		Run(func(_ context.Context, bracelet *entity.Bracelet) {
			assert.Equal(t, "NUEVA01", bracelet.Codigo)
			assert.Equal(t, "NUEVA01", bracelet.Token)
			assert.Equal(t, entity.BraceletActiva, bracelet.Estado)
		}).
		Return(nil)

	fx.eventRepo.EXPECT().
		CreateEvent(ctx, mock.AnythingOfType("*entity.SensorEvent")).
		Return(nil)

	fx.classifier.EXPECT().
		Classify("Primer contacto").
		Return(false)

	err := fx.service.Ingest(ctx, input)
	require.NoError(t, err)
}

func TestTelemetryService_Ingest_DuplicateRegistrationRace(t *testing.T) {
	fx := createTestTelemetryService(t)

	ctx := context.Background()
	bracelet := &entity.Bracelet{
		ID:     uuid.New(),
		Codigo: "NUEVA01",
		Token:  "NUEVA01",
		Estado: entity.BraceletActiva,
	}
	input := &usecase.IngestInput{
		Token:   "NUEVA01",
		Mensaje: "Primer contacto",
	}

	fx.braceletRepo.EXPECT().
		FindBraceletByToken(ctx, "NUEVA01").
		Return(nil, repository.ErrBraceletNotFound).
		Once()

	fx.braceletRepo.EXPECT().
		CreateBracelet(ctx, mock.AnythingOfType("*entity.Bracelet")).
		Return(repository.ErrDuplicateBracelet)

	fx.braceletRepo.EXPECT().
		FindBraceletByToken(ctx, "NUEVA01").
		Return(bracelet, nil).
		Once()

	fx.eventRepo.EXPECT().
		CreateEvent(ctx, mock.AnythingOfType("*entity.SensorEvent")).
		Run(func(_ context.Context, event *entity.SensorEvent) {
			assert.Equal(t, bracelet.ID, event.BraceletID)
		}).
		Return(nil)

	fx.classifier.EXPECT().
		Classify("Primer contacto").
		Return(false)

	err := fx.service.Ingest(ctx, input)
	require.NoError(t, err)
}

func TestTelemetryService_Ingest_FallDispatchesAlert(t *testing.T) {
	fx := createTestTelemetryService(t)

	ctx := context.Background()
	bracelet := &entity.Bracelet{
		ID:     uuid.New(),
		Codigo: "PULSERA01",
		Token:  "PULSERA01",
		Estado: entity.BraceletActiva,
	}
	input := &usecase.IngestInput{
		Token:       "PULSERA01",
		Mensaje:     "Caída detectada",
		Temperatura: floatPtr(37.1),
	}

	fx.braceletRepo.EXPECT().
		FindBraceletByToken(ctx, "PULSERA01").
		Return(bracelet, nil)

	fx.eventRepo.EXPECT().
		CreateEvent(ctx, mock.AnythingOfType("*entity.SensorEvent")).
		Return(nil)

	fx.classifier.EXPECT().
		Classify("Caída detectada").
		Return(true)

	fx.alertUC.EXPECT().
		NotifyFallDetected(ctx, mock.AnythingOfType("*usecase.FallAlert")).
		Run(func(_ context.Context, alert *usecase.FallAlert) {
			assert.Equal(t, "PULSERA01", alert.Token)
			assert.Equal(t, "Caída detectada", alert.Mensaje)
			assert.Equal(t, 37.1, *alert.Temperatura)
		}).
		Return(nil)

	err := fx.service.Ingest(ctx, input)
	require.NoError(t, err)
}

func TestTelemetryService_Ingest_AlertFailureDoesNotFailIngest(t *testing.T) {
	fx := createTestTelemetryService(t)

	ctx := context.Background()
	bracelet := &entity.Bracelet{ID: uuid.New(), Codigo: "PULSERA01", Token: "PULSERA01"}
	input := &usecase.IngestInput{Token: "PULSERA01", Mensaje: "Caída detectada"}

	fx.braceletRepo.EXPECT().
		FindBraceletByToken(ctx, "PULSERA01").
		Return(bracelet, nil)

	fx.eventRepo.EXPECT().
		CreateEvent(ctx, mock.AnythingOfType("*entity.SensorEvent")).
		Return(nil)

	fx.classifier.EXPECT().
		Classify("Caída detectada").
		Return(true)

	fx.alertUC.EXPECT().
		NotifyFallDetected(ctx, mock.AnythingOfType("*usecase.FallAlert")).
		Return(errors.New("gateway unavailable"))

	err := fx.service.Ingest(ctx, input)
	require.NoError(t, err)
}

func TestTelemetryService_Ingest_StoreError(t *testing.T) {
	fx := createTestTelemetryService(t)

	ctx := context.Background()
	bracelet := &entity.Bracelet{ID: uuid.New(), Codigo: "PULSERA01", Token: "PULSERA01"}
	input := &usecase.IngestInput{Token: "PULSERA01", Mensaje: "Movimiento normal"}

	fx.braceletRepo.EXPECT().
		FindBraceletByToken(ctx, "PULSERA01").
		Return(bracelet, nil)

	fx.eventRepo.EXPECT().
		CreateEvent(ctx, mock.AnythingOfType("*entity.SensorEvent")).
		Return(errors.New("database error"))

	err := fx.service.Ingest(ctx, input)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store telemetry event")
}

func TestTelemetryService_GetBraceletHistory_NotFound(t *testing.T) {
	fx := createTestTelemetryService(t)

	ctx := context.Background()

	fx.braceletRepo.EXPECT().
		FindBraceletByToken(ctx, "DESCONOCIDA").
		Return(nil, repository.ErrBraceletNotFound)

	history, err := fx.service.GetBraceletHistory(ctx, "DESCONOCIDA")
	assert.Nil(t, history)
	assert.ErrorIs(t, err, domainerrors.ErrPulseraNoEncontrada)
}

func TestTelemetryService_GetBraceletHistory_Aggregates(t *testing.T) {
	fx := createTestTelemetryService(t)

	ctx := context.Background()
	bracelet := &entity.Bracelet{
		ID:     uuid.New(),
		Codigo: "PULSERA01",
		Token:  "PULSERA01",
	}

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	// Newest first, the order the repository returns.
	events := []*entity.SensorEvent{
		{
			ID:         uuid.New(),
			BraceletID: bracelet.ID,
			Mensaje:    "Movimiento BRUSCO detectado",
			Fecha:      base.Add(2 * time.Minute),
		},
		{
			ID:          uuid.New(),
			BraceletID:  bracelet.ID,
			Mensaje:     "Lectura periódica",
			Temperatura: floatPtr(36.8),
			Ax:          floatPtr(0.1), Ay: floatPtr(0.2), Az: floatPtr(9.8),
			Gx: floatPtr(0.01), Gy: floatPtr(0.02), Gz: floatPtr(0.03),
			Fecha: base.Add(time.Minute),
		},
		{
			ID:          uuid.New(),
			BraceletID:  bracelet.ID,
			Mensaje:     "Movimiento brusco",
			Temperatura: floatPtr(36.4),
			Fecha:       base,
		},
	}

	fx.braceletRepo.EXPECT().
		FindBraceletByToken(ctx, "PULSERA01").
		Return(bracelet, nil)

	fx.eventRepo.EXPECT().
		FindEventsByBracelet(ctx, bracelet.ID).
		Return(events, nil)

	history, err := fx.service.GetBraceletHistory(ctx, "PULSERA01")
	require.NoError(t, err)
	require.NotNil(t, history)

	assert.Equal(t, "PULSERA01", history.Codigo)
	assert.Equal(t, "PULSERA01", history.Token)
	assert.Equal(t, 2, history.MovimientosBruscos)

	// Full history keeps the newest-first order.
	require.Len(t, history.Historial, 3)
	assert.Equal(t, "Movimiento BRUSCO detectado", history.Historial[0].Mensaje)

	// Temperature series is chronological.
	require.Len(t, history.HistorialTemperatura, 2)
	assert.Equal(t, 36.4, history.HistorialTemperatura[0].Temperatura)
	assert.Equal(t, 36.8, history.HistorialTemperatura[1].Temperatura)
	assert.True(t, history.HistorialTemperatura[0].Fecha.Before(history.HistorialTemperatura[1].Fecha))

	// Only the event with a complete six-axis sample contributes.
	require.Len(t, history.HistorialSensores, 1)
	assert.Equal(t, 9.8, history.HistorialSensores[0].Az)
}

func TestTelemetryService_GetBraceletHistory_MotionSampleLimit(t *testing.T) {
	fx := createTestTelemetryService(t)

	ctx := context.Background()
	bracelet := &entity.Bracelet{ID: uuid.New(), Codigo: "PULSERA01", Token: "PULSERA01"}

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	events := make([]*entity.SensorEvent, 0, 15)
	for i := 14; i >= 0; i-- {
		events = append(events, &entity.SensorEvent{
			ID:         uuid.New(),
			BraceletID: bracelet.ID,
			Mensaje:    "Lectura periódica",
			Ax:         floatPtr(float64(i)), Ay: floatPtr(0), Az: floatPtr(0),
			Gx: floatPtr(0), Gy: floatPtr(0), Gz: floatPtr(0),
			Fecha: base.Add(time.Duration(i) * time.Minute),
		})
	}

	fx.braceletRepo.EXPECT().
		FindBraceletByToken(ctx, "PULSERA01").
		Return(bracelet, nil)

	fx.eventRepo.EXPECT().
		FindEventsByBracelet(ctx, bracelet.ID).
		Return(events, nil)

	history, err := fx.service.GetBraceletHistory(ctx, "PULSERA01")
	require.NoError(t, err)

	// The ten most recent samples, oldest of them first.
	require.Len(t, history.HistorialSensores, 10)
	assert.Equal(t, 5.0, history.HistorialSensores[0].Ax)
	assert.Equal(t, 14.0, history.HistorialSensores[9].Ax)
}
