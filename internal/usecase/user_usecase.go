package usecase

import (
	"context"

	"vigia/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterUserInput is the caregiver account registration request.
type RegisterUserInput struct {
	Nombres   string `json:"nombres" validate:"required"`
	Apellidos string `json:"apellidos" validate:"required"`
	Telefono  string `json:"telefono" validate:"required"`
	Correo    string `json:"correo" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

// LoginInput is the credential pair presented at login.
type LoginInput struct {
	Correo   string `json:"correo" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput is the result of a successful login.
type LoginOutput struct {
	Token   string
	Usuario *entity.User
}

// UpdateProfileInput carries the editable profile fields. Nil pointers leave
// the current value untouched; a non-nil Password is re-hashed.
type UpdateProfileInput struct {
	Nombres   *string `json:"nombres"`
	Apellidos *string `json:"apellidos"`
	Telefono  *string `json:"telefono"`
	Correo    *string `json:"correo" validate:"omitempty,email"`
	Password  *string `json:"password" validate:"omitempty,min=6"`
}

// UserUsecase defines the interface for caregiver account management.
type UserUsecase interface {
	// Register creates a caregiver account with a bcrypt-hashed password.
	Register(ctx context.Context, input *RegisterUserInput) (*entity.User, error)

	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetProfile fetches an account by ID.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile applies partial profile changes.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
}
