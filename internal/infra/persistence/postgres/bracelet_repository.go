// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"vigia/internal/domain/entity"
	"vigia/internal/domain/repository"
	"vigia/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// braceletRepository implements the repository.BraceletRepository interface.
type braceletRepository struct {
	db *gorm.DB
}

// NewBraceletRepository is the constructor for braceletRepository.
func NewBraceletRepository(db *gorm.DB) repository.BraceletRepository {
	return &braceletRepository{
		db: db,
	}
}

// CreateBracelet persists a new bracelet. A unique constraint violation on the
// token column is reported as ErrDuplicateBracelet so callers can handle a
// concurrent find-or-create race.
func (repo *braceletRepository) CreateBracelet(ctx context.Context, bracelet *entity.Bracelet) error {
	braceletM := fromBraceletDomain(bracelet)

	if err := repo.db.WithContext(ctx).Create(braceletM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateBracelet
		}

		return errors.Wrap(err, "failed to create bracelet")
	}

	bracelet.ID = braceletM.ID
	bracelet.CreatedAt = braceletM.CreatedAt
	bracelet.UpdatedAt = braceletM.UpdatedAt

	return nil
}

// FindBraceletByToken retrieves a bracelet by its device token.
func (repo *braceletRepository) FindBraceletByToken(ctx context.Context, token string) (*entity.Bracelet, error) {
	var braceletM model.BraceletModel

	if err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&braceletM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBraceletNotFound
		}

		return nil, errors.Wrap(err, "failed to find bracelet by token")
	}

	return toBraceletDomain(&braceletM), nil
}

// --- Mapper Functions ---

// toBraceletDomain converts a GORM BraceletModel to a domain Bracelet entity.
func toBraceletDomain(data *model.BraceletModel) *entity.Bracelet {
	if data == nil {
		return nil
	}

	return &entity.Bracelet{
		ID:        data.ID,
		Codigo:    data.Codigo,
		Token:     data.Token,
		Estado:    entity.BraceletStatus(data.Estado),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromBraceletDomain converts a domain Bracelet entity to a GORM BraceletModel.
func fromBraceletDomain(data *entity.Bracelet) *model.BraceletModel {
	if data == nil {
		return nil
	}

	return &model.BraceletModel{
		ID:        data.ID,
		Codigo:    data.Codigo,
		Token:     data.Token,
		Estado:    string(data.Estado),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
