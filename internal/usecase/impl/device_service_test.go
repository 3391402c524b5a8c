package impl

import (
	"context"
	"testing"

	"vigia/internal/domain/entity"
	domainerrors "vigia/internal/domain/errors"
	"vigia/internal/domain/repository"
	mockRepo "vigia/internal/mocks/repository"
	"vigia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockCaregiverDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockCaregiverDeviceRepository(t)

	service := NewDeviceService(DeviceServiceParams{
		DeviceRepo: deviceRepo,
		Logger:     newDiscardLogger(),
	})

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	info := &usecase.DeviceInfo{
		FCMToken: "fcm-token-1",
		Platform: "android",
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.CaregiverDevice{}, nil)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.CaregiverDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, info)
	require.NoError(t, err)
	assert.NotNil(t, device)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, "fcm-token-1", device.FCMToken)
	assert.Equal(t, "android", device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_ExistingToken(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.CaregiverDevice{
		ID:       uuid.New(),
		UserID:   userID,
		FCMToken: "fcm-token-1",
		Platform: "ios",
		IsActive: true,
	}
	info := &usecase.DeviceInfo{
		FCMToken: "fcm-token-1",
		Platform: "ios",
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.CaregiverDevice{existing}, nil)

	device, err := fx.service.RegisterDevice(ctx, userID, info)
	require.NoError(t, err)
	assert.Equal(t, existing, device)
}

func TestDeviceService_RegisterDevice_ReactivatesDeactivatedToken(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.CaregiverDevice{
		ID:       uuid.New(),
		UserID:   userID,
		FCMToken: "fcm-token-1",
		Platform: "android",
		IsActive: false,
	}
	info := &usecase.DeviceInfo{
		FCMToken: "fcm-token-1",
		Platform: "android",
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.CaregiverDevice{existing}, nil)

	fx.deviceRepo.EXPECT().
		ReactivateDevice(ctx, existing.ID, userID).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, info)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, device.ID)
	assert.True(t, device.IsActive, "re-registered device should receive push again")
}

func TestDeviceService_RegisterDevice_ReactivateError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.CaregiverDevice{
		ID:       uuid.New(),
		UserID:   userID,
		FCMToken: "fcm-token-1",
		Platform: "android",
		IsActive: false,
	}
	info := &usecase.DeviceInfo{FCMToken: "fcm-token-1", Platform: "android"}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.CaregiverDevice{existing}, nil)

	fx.deviceRepo.EXPECT().
		ReactivateDevice(ctx, existing.ID, userID).
		Return(errors.New("database error"))

	device, err := fx.service.RegisterDevice(ctx, userID, info)
	assert.Nil(t, device)
	assert.Contains(t, err.Error(), "failed to reactivate device")
}

func TestDeviceService_RegisterDevice_FindError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	info := &usecase.DeviceInfo{FCMToken: "fcm-token-1", Platform: "android"}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return(nil, errors.New("database error"))

	device, err := fx.service.RegisterDevice(ctx, userID, info)
	assert.Nil(t, device)
	assert.Contains(t, err.Error(), "failed to load devices")
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.CaregiverDevice{
		{ID: uuid.New(), UserID: userID, IsActive: true},
		{ID: uuid.New(), UserID: userID, IsActive: false},
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return(expected, nil)

	devices, err := fx.service.GetUserDevices(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, expected, devices)
}

func TestDeviceService_DeactivateDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		DeactivateDevice(ctx, deviceID, userID).
		Return(nil)

	err := fx.service.DeactivateDevice(ctx, userID, deviceID)
	require.NoError(t, err)
}

func TestDeviceService_DeactivateDevice_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		DeactivateDevice(ctx, deviceID, userID).
		Return(repository.ErrDeviceNotFound)

	err := fx.service.DeactivateDevice(ctx, userID, deviceID)
	assert.ErrorIs(t, err, domainerrors.ErrDispositivoNoEncontrado)
}
