package impl

import (
	"context"
	"log/slog"

	deliverycontext "vigia/internal/delivery/context"
	"vigia/internal/domain/entity"
	domainerrors "vigia/internal/domain/errors"
	"vigia/internal/domain/repository"
	"vigia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	deviceRepo repository.CaregiverDeviceRepository
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for deviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.CaregiverDeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDevice records a push token for the caller. Registering a token
// the caller already has returns the existing registration, reactivating it
// first if it had been deactivated.
func (srv *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, info *usecase.DeviceInfo) (*entity.CaregiverDevice, error) {
	devices, err := srv.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load devices")
	}

	for _, device := range devices {
		if device.FCMToken != info.FCMToken {
			continue
		}

		if !device.IsActive {
			if err := srv.deviceRepo.ReactivateDevice(ctx, device.ID, userID); err != nil {
				return nil, errors.Wrap(err, "failed to reactivate device")
			}

			device.IsActive = true

			srv.log(ctx).Info("Push device reactivated",
				slog.String("userID", userID.String()),
				slog.String("deviceID", device.ID.String()),
			)
		}

		return device, nil
	}

	device := &entity.CaregiverDevice{
		UserID:   userID,
		FCMToken: info.FCMToken,
		Platform: info.Platform,
		IsActive: true,
	}

	if err := srv.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	srv.log(ctx).Info("Push device registered",
		slog.String("userID", userID.String()),
		slog.String("platform", info.Platform),
	)

	return device, nil
}

// GetUserDevices retrieves all devices the caller has registered.
func (srv *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.CaregiverDevice, error) {
	devices, err := srv.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load devices")
	}

	return devices, nil
}

// DeactivateDevice stops push delivery to a device the caller owns.
func (srv *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if err := srv.deviceRepo.DeactivateDevice(ctx, deviceID, userID); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDispositivoNoEncontrado
		}

		return errors.Wrap(err, "failed to deactivate device")
	}

	return nil
}
