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

// deviceRepository implements the repository.CaregiverDeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.CaregiverDeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// CreateDevice persists a new caregiver push device.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.CaregiverDevice) error {
	deviceM := fromCaregiverDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}

		return errors.Wrap(err, "failed to create device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindDevicesByUser retrieves all devices registered by a caregiver,
// including deactivated ones.
func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CaregiverDevice, error) {
	var deviceModels []*model.CaregiverDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	devices := make([]*entity.CaregiverDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toCaregiverDeviceDomain(deviceM))
	}

	return devices, nil
}

// FindActiveDevicesByUser retrieves the devices that should still receive
// push notifications for a caregiver.
func (repo *deviceRepository) FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CaregiverDevice, error) {
	var deviceModels []*model.CaregiverDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	devices := make([]*entity.CaregiverDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toCaregiverDeviceDomain(deviceM))
	}

	return devices, nil
}

// DeactivateDevice turns off push delivery for a device owned by the user.
func (repo *deviceRepository) DeactivateDevice(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CaregiverDeviceModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_active", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// ReactivateDevice turns push delivery back on for a device owned by the user.
func (repo *deviceRepository) ReactivateDevice(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CaregiverDeviceModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_active", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to reactivate device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCaregiverDeviceDomain converts a GORM CaregiverDeviceModel to a domain entity.
func toCaregiverDeviceDomain(data *model.CaregiverDeviceModel) *entity.CaregiverDevice {
	if data == nil {
		return nil
	}

	return &entity.CaregiverDevice{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCaregiverDeviceDomain converts a domain CaregiverDevice entity to a GORM model.
func fromCaregiverDeviceDomain(data *entity.CaregiverDevice) *model.CaregiverDeviceModel {
	if data == nil {
		return nil
	}

	return &model.CaregiverDeviceModel{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
