package postgres

import (
	"context"

	"vigia/internal/domain/entity"
	"vigia/internal/domain/repository"
	"vigia/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{
		db: db,
	}
}

// CreateEvent appends a telemetry event to a bracelet's history.
func (repo *eventRepository) CreateEvent(ctx context.Context, event *entity.SensorEvent) error {
	eventM := fromEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return errors.Wrap(err, "failed to create sensor event")
	}

	event.ID = eventM.ID

	return nil
}

// FindEventsByBracelet retrieves the full event history of a bracelet,
// newest first.
func (repo *eventRepository) FindEventsByBracelet(ctx context.Context, braceletID uuid.UUID) ([]*entity.SensorEvent, error) {
	var eventModels []*model.SensorEventModel

	if err := repo.db.WithContext(ctx).
		Where("bracelet_id = ?", braceletID).
		Order("fecha DESC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find events by bracelet")
	}

	events := make([]*entity.SensorEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toEventDomain(eventM))
	}

	return events, nil
}

// --- Mapper Functions ---

// toEventDomain converts a GORM SensorEventModel to a domain SensorEvent entity.
func toEventDomain(data *model.SensorEventModel) *entity.SensorEvent {
	if data == nil {
		return nil
	}

	return &entity.SensorEvent{
		ID:          data.ID,
		BraceletID:  data.BraceletID,
		Mensaje:     data.Mensaje,
		Temperatura: data.Temperatura,
		Ax:          data.Ax,
		Ay:          data.Ay,
		Az:          data.Az,
		Gx:          data.Gx,
		Gy:          data.Gy,
		Gz:          data.Gz,
		Fecha:       data.Fecha,
	}
}

// fromEventDomain converts a domain SensorEvent entity to a GORM SensorEventModel.
func fromEventDomain(data *entity.SensorEvent) *model.SensorEventModel {
	if data == nil {
		return nil
	}

	return &model.SensorEventModel{
		ID:          data.ID,
		BraceletID:  data.BraceletID,
		Mensaje:     data.Mensaje,
		Temperatura: data.Temperatura,
		Ax:          data.Ax,
		Ay:          data.Ay,
		Az:          data.Az,
		Gx:          data.Gx,
		Gy:          data.Gy,
		Gz:          data.Gz,
		Fecha:       data.Fecha,
	}
}
