package repository

import (
	"context"

	"vigia/internal/domain/entity"

	"github.com/google/uuid"
)

// EventRepository defines the interface for telemetry event persistence.
// Events are append-only; no update or delete operation exists.
type EventRepository interface {
	// CreateEvent appends a telemetry event for a bracelet.
	CreateEvent(ctx context.Context, event *entity.SensorEvent) error

	// FindEventsByBracelet retrieves all events for a bracelet, newest first.
	FindEventsByBracelet(ctx context.Context, braceletID uuid.UUID) ([]*entity.SensorEvent, error)
}
