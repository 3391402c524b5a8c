package repository

import (
	"context"

	"vigia/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for account persistence.
var (
	// ErrUserNotFound is returned when no account matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when registering an email that already exists.
	ErrDuplicateUser = errors.New("email already registered")
)

// UserRepository defines the interface for account-related database operations.
type UserRepository interface {
	// CreateUser persists a new account.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves an account by its unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByCorreo retrieves an account by its login email.
	FindUserByCorreo(ctx context.Context, correo string) (*entity.User, error)

	// UpdateUser persists profile changes for an existing account.
	UpdateUser(ctx context.Context, user *entity.User) error

	// UpdatePassword replaces the stored password hash for an account.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}
