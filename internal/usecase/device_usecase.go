package usecase

import (
	"context"

	"vigia/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents a caregiver app installation registering for push.
type DeviceInfo struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=android ios web"`
}

// DeviceUsecase defines the interface for caregiver push device management.
type DeviceUsecase interface {
	// RegisterDevice records a push token, reactivating it when the same
	// token was registered before.
	RegisterDevice(ctx context.Context, userID uuid.UUID, info *DeviceInfo) (*entity.CaregiverDevice, error)

	// GetUserDevices retrieves all devices the caller has registered.
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.CaregiverDevice, error)

	// DeactivateDevice stops push delivery to a device the caller owns.
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
