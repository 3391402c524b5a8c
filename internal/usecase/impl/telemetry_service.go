// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "vigia/internal/delivery/context"
	"vigia/internal/domain/entity"
	domainerrors "vigia/internal/domain/errors"
	"vigia/internal/domain/repository"
	"vigia/internal/domain/service"
	"vigia/internal/observability/metrics"
	"vigia/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bruscoKeyword = "brusco"

const motionSampleLimit = 10

// telemetryService implements the TelemetryUsecase interface.
type telemetryService struct {
	braceletRepo repository.BraceletRepository
	eventRepo    repository.EventRepository
	classifier   service.FallClassifier
	alertUC      usecase.AlertUsecase
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// TelemetryServiceParams holds dependencies for telemetryService, injected by Fx.
type TelemetryServiceParams struct {
	fx.In

	BraceletRepo repository.BraceletRepository
	EventRepo    repository.EventRepository
	Classifier   service.FallClassifier
	AlertUC      usecase.AlertUsecase
	Metrics      *metrics.Metrics
	Logger       *slog.Logger
}

// NewTelemetryService is the constructor for telemetryService.
func NewTelemetryService(params TelemetryServiceParams) usecase.TelemetryUsecase {
	return &telemetryService{
		braceletRepo: params.BraceletRepo,
		eventRepo:    params.EventRepo,
		classifier:   params.Classifier,
		alertUC:      params.AlertUC,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *telemetryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Ingest stores a telemetry event and triggers alerting on fall detection.
// The bracelet self-registers on first contact: an unknown token creates a
// new active bracelet whose codigo is the token itself.
func (srv *telemetryService) Ingest(ctx context.Context, input *usecase.IngestInput) error {
	start := time.Now()

	if input == nil || input.Token == "" || input.Mensaje == "" {
		return domainerrors.ErrDatosFaltantes
	}

	bracelet, err := srv.findOrCreateBracelet(ctx, input.Token)
	if err != nil {
		return err
	}

	event := &entity.SensorEvent{
		BraceletID:  bracelet.ID,
		Mensaje:     input.Mensaje,
		Temperatura: input.Temperatura,
		Ax:          input.Ax,
		Ay:          input.Ay,
		Az:          input.Az,
		Gx:          input.Gx,
		Gy:          input.Gy,
		Gz:          input.Gz,
		Fecha:       time.Now(),
	}

	if err := srv.eventRepo.CreateEvent(ctx, event); err != nil {
		return errors.Wrap(err, "failed to store telemetry event")
	}

	if srv.metrics != nil {
		srv.metrics.EventsIngested.Inc()
		srv.metrics.IngestLatency.Observe(time.Since(start).Seconds())
	}

	if srv.classifier.Classify(input.Mensaje) {
		if srv.metrics != nil {
			srv.metrics.FallsDetected.Inc()
		}

		srv.dispatchFallAlert(ctx, input)
	}

	return nil
}

// findOrCreateBracelet resolves a token to a bracelet, registering it on
// first contact. A duplicate error from the insert means another request
// registered the same token concurrently; the bracelet is re-fetched.
func (srv *telemetryService) findOrCreateBracelet(ctx context.Context, token string) (*entity.Bracelet, error) {
	bracelet, err := srv.braceletRepo.FindBraceletByToken(ctx, token)
	if err == nil {
		return bracelet, nil
	}
	if !errors.Is(err, repository.ErrBraceletNotFound) {
		return nil, errors.Wrap(err, "failed to look up bracelet")
	}

	bracelet = &entity.Bracelet{
		Codigo: token,
		Token:  token,
		Estado: entity.BraceletActiva,
	}

	createErr := srv.braceletRepo.CreateBracelet(ctx, bracelet)
	if createErr == nil {
		srv.log(ctx).Info("Registered new bracelet", slog.String("token", token))

		return bracelet, nil
	}
	if !errors.Is(createErr, repository.ErrDuplicateBracelet) {
		return nil, errors.Wrap(createErr, "failed to register bracelet")
	}

	bracelet, err = srv.braceletRepo.FindBraceletByToken(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to re-fetch bracelet after duplicate insert")
	}

	return bracelet, nil
}

// dispatchFallAlert hands the event to the alerting pipeline. Alerting
// failures never fail the ingest: the event is already stored.
func (srv *telemetryService) dispatchFallAlert(ctx context.Context, input *usecase.IngestInput) {
	alert := &usecase.FallAlert{
		Token:       input.Token,
		Mensaje:     input.Mensaje,
		Temperatura: input.Temperatura,
	}

	if err := srv.alertUC.NotifyFallDetected(ctx, alert); err != nil {
		srv.log(ctx).Error("Fall alert dispatch failed",
			slog.String("token", input.Token),
			slog.String("error", err.Error()),
		)
	}
}

// GetBraceletHistory aggregates the full event history of a bracelet.
func (srv *telemetryService) GetBraceletHistory(ctx context.Context, token string) (*usecase.BraceletHistory, error) {
	bracelet, err := srv.braceletRepo.FindBraceletByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrBraceletNotFound) {
			return nil, domainerrors.ErrPulseraNoEncontrada
		}

		return nil, errors.Wrap(err, "failed to look up bracelet")
	}

	events, err := srv.eventRepo.FindEventsByBracelet(ctx, bracelet.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load bracelet history")
	}

	return buildHistory(bracelet, events), nil
}

func containsKeyword(mensaje, keyword string) bool {
	return strings.Contains(strings.ToLower(mensaje), keyword)
}

// buildHistory derives the dashboard aggregates from the newest-first event
// list returned by the repository.
func buildHistory(bracelet *entity.Bracelet, events []*entity.SensorEvent) *usecase.BraceletHistory {
	history := &usecase.BraceletHistory{
		Codigo:               bracelet.Codigo,
		Token:                bracelet.Token,
		Historial:            make([]*usecase.HistoryEntry, 0, len(events)),
		HistorialTemperatura: make([]*usecase.TemperaturePoint, 0, len(events)),
		HistorialSensores:    make([]*usecase.MotionSample, 0, motionSampleLimit),
	}

	for _, event := range events {
		history.Historial = append(history.Historial, &usecase.HistoryEntry{
			ID:      event.ID.String(),
			Mensaje: event.Mensaje,
			Fecha:   event.Fecha,
		})

		if containsKeyword(event.Mensaje, bruscoKeyword) {
			history.MovimientosBruscos++
		}
	}

	// Temperature series is chronological; events arrive newest first.
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Temperatura != nil {
			history.HistorialTemperatura = append(history.HistorialTemperatura, &usecase.TemperaturePoint{
				Fecha:       events[i].Fecha,
				Temperatura: *events[i].Temperatura,
			})
		}
	}

	// The ten most recent complete six-axis samples, chronological.
	samples := make([]*usecase.MotionSample, 0, motionSampleLimit)
	for _, event := range events {
		if !event.HasMotionSample() {
			continue
		}
		samples = append(samples, &usecase.MotionSample{
			Fecha: event.Fecha,
			Ax:    *event.Ax,
			Ay:    *event.Ay,
			Az:    *event.Az,
			Gx:    *event.Gx,
			Gy:    *event.Gy,
			Gz:    *event.Gz,
		})
		if len(samples) == motionSampleLimit {
			break
		}
	}
	for i := len(samples) - 1; i >= 0; i-- {
		history.HistorialSensores = append(history.HistorialSensores, samples[i])
	}

	return history
}
