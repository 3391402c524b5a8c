package repository

import (
	"context"

	"vigia/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for caregiver device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when registering a device that already exists.
	ErrDuplicateDevice = errors.New("device already registered")
)

// CaregiverDeviceRepository defines the interface for push-device database operations.
type CaregiverDeviceRepository interface {
	// CreateDevice persists a new push device for an account.
	CreateDevice(ctx context.Context, device *entity.CaregiverDevice) error

	// FindDevicesByUser retrieves all devices for an account, including inactive ones.
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CaregiverDevice, error)

	// FindActiveDevicesByUser retrieves the active devices for an account.
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CaregiverDevice, error)

	// DeactivateDevice marks a device inactive, scoped to its owner.
	DeactivateDevice(ctx context.Context, id, userID uuid.UUID) error

	// ReactivateDevice marks a device active again, scoped to its owner.
	ReactivateDevice(ctx context.Context, id, userID uuid.UUID) error
}
