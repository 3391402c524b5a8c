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

// bindingRepository implements the repository.BindingRepository interface.
type bindingRepository struct {
	db *gorm.DB
}

// NewBindingRepository is the constructor for bindingRepository.
func NewBindingRepository(db *gorm.DB) repository.BindingRepository {
	return &bindingRepository{
		db: db,
	}
}

// CreateBinding persists a new caregiver-to-bracelet binding. A unique
// constraint violation on the token column is reported as ErrDuplicateBinding.
func (repo *bindingRepository) CreateBinding(ctx context.Context, binding *entity.Binding) error {
	bindingM := fromBindingDomain(binding)

	if err := repo.db.WithContext(ctx).Create(bindingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateBinding
		}

		return errors.Wrap(err, "failed to create binding")
	}

	binding.ID = bindingM.ID
	binding.CreatedAt = bindingM.CreatedAt

	return nil
}

// FindBindingByToken retrieves the binding that watches a bracelet token.
func (repo *bindingRepository) FindBindingByToken(ctx context.Context, token string) (*entity.Binding, error) {
	var bindingM model.BindingModel

	if err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&bindingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBindingNotFound
		}

		return nil, errors.Wrap(err, "failed to find binding by token")
	}

	return toBindingDomain(&bindingM), nil
}

// FindBindingsByUser retrieves all bindings owned by a caregiver, newest first.
func (repo *bindingRepository) FindBindingsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Binding, error) {
	var bindingModels []*model.BindingModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bindingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find bindings by user")
	}

	bindings := make([]*entity.Binding, 0, len(bindingModels))
	for _, bindingM := range bindingModels {
		bindings = append(bindings, toBindingDomain(bindingM))
	}

	return bindings, nil
}

// DeleteBinding removes a binding only when it belongs to the given user.
// The ownership check and the delete are a single statement so a caregiver
// cannot unlink another caregiver's bracelet.
func (repo *bindingRepository) DeleteBinding(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.BindingModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete binding")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBindingNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBindingDomain converts a GORM BindingModel to a domain Binding entity.
func toBindingDomain(data *model.BindingModel) *entity.Binding {
	if data == nil {
		return nil
	}

	return &entity.Binding{
		ID:            data.ID,
		UserID:        data.UserID,
		Token:         data.Token,
		NombrePulsera: data.NombrePulsera,
		CreatedAt:     data.CreatedAt,
	}
}

// fromBindingDomain converts a domain Binding entity to a GORM BindingModel.
func fromBindingDomain(data *entity.Binding) *model.BindingModel {
	if data == nil {
		return nil
	}

	return &model.BindingModel{
		ID:            data.ID,
		UserID:        data.UserID,
		Token:         data.Token,
		NombrePulsera: data.NombrePulsera,
		CreatedAt:     data.CreatedAt,
	}
}
