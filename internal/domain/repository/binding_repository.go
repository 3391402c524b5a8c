package repository

import (
	"context"

	"vigia/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for binding persistence.
var (
	// ErrBindingNotFound is returned when no binding matches the lookup.
	ErrBindingNotFound = errors.New("binding not found")
	// ErrDuplicateBinding is returned when binding a token that is already bound.
	ErrDuplicateBinding = errors.New("token already bound")
)

// BindingRepository defines the interface for binding-related database operations.
type BindingRepository interface {
	// CreateBinding persists a new caregiver-bracelet binding. The token
	// column carries a unique index, so a token can be bound at most once.
	CreateBinding(ctx context.Context, binding *entity.Binding) error

	// FindBindingByToken retrieves the binding for a device token.
	FindBindingByToken(ctx context.Context, token string) (*entity.Binding, error)

	// FindBindingsByUser retrieves all bindings owned by an account.
	FindBindingsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Binding, error)

	// DeleteBinding removes a binding by ID, scoped to its owner. Returns
	// ErrBindingNotFound when the binding does not exist or belongs to a
	// different account.
	DeleteBinding(ctx context.Context, id, userID uuid.UUID) error
}
