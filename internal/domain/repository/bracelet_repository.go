// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"vigia/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for bracelet persistence.
var (
	// ErrBraceletNotFound is returned when no bracelet matches the lookup.
	ErrBraceletNotFound = errors.New("bracelet not found")
	// ErrDuplicateBracelet is returned when creating a bracelet whose token already exists.
	ErrDuplicateBracelet = errors.New("bracelet token already registered")
)

// BraceletRepository defines the interface for bracelet-related database operations.
type BraceletRepository interface {
	// CreateBracelet persists a new bracelet. The token column carries a
	// unique index; concurrent creates for the same token surface
	// ErrDuplicateBracelet on the loser.
	CreateBracelet(ctx context.Context, bracelet *entity.Bracelet) error

	// FindBraceletByToken retrieves a bracelet by its device token.
	FindBraceletByToken(ctx context.Context, token string) (*entity.Bracelet, error)
}
