// Package usecase defines the application's business operation interfaces and
// their input/output types.
package usecase

import (
	"context"
	"time"
)

// IngestInput is the telemetry payload a bracelet posts on every reading.
// Only token and mensaje are mandatory; firmware revisions without the
// six-axis IMU omit the motion fields.
type IngestInput struct {
	Token       string   `json:"token" validate:"required"`
	Mensaje     string   `json:"mensaje" validate:"required"`
	Temperatura *float64 `json:"temperatura"`
	Ax          *float64 `json:"ax"`
	Ay          *float64 `json:"ay"`
	Az          *float64 `json:"az"`
	Gx          *float64 `json:"gx"`
	Gy          *float64 `json:"gy"`
	Gz          *float64 `json:"gz"`
}

// HistoryEntry is one row of a bracelet's event history.
type HistoryEntry struct {
	ID      string    `json:"id"`
	Mensaje string    `json:"mensaje"`
	Fecha   time.Time `json:"fecha"`
}

// TemperaturePoint is one reading of the temperature series.
type TemperaturePoint struct {
	Fecha       time.Time `json:"fecha"`
	Temperatura float64   `json:"temperatura"`
}

// MotionSample is one complete six-axis reading.
type MotionSample struct {
	Fecha time.Time `json:"fecha"`
	Ax    float64   `json:"ax"`
	Ay    float64   `json:"ay"`
	Az    float64   `json:"az"`
	Gx    float64   `json:"gx"`
	Gy    float64   `json:"gy"`
	Gz    float64   `json:"gz"`
}

// BraceletHistory is the aggregated view the caregiver dashboard renders.
type BraceletHistory struct {
	Codigo               string              `json:"codigo"`
	Token                string              `json:"token"`
	MovimientosBruscos   int                 `json:"movimientos_bruscos"`
	Historial            []*HistoryEntry     `json:"historial"`
	HistorialTemperatura []*TemperaturePoint `json:"historialTemperatura"`
	HistorialSensores    []*MotionSample     `json:"historialSensores"`
}

// TelemetryUsecase defines the interface for the telemetry pipeline.
type TelemetryUsecase interface {
	// Ingest stores a telemetry event, registering the bracelet on first
	// contact, and triggers caregiver alerting when the message is
	// classified as a fall.
	Ingest(ctx context.Context, input *IngestInput) error

	// GetBraceletHistory aggregates the full event history of a bracelet.
	GetBraceletHistory(ctx context.Context, token string) (*BraceletHistory, error)
}
