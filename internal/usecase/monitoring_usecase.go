package usecase

import (
	"context"

	"vigia/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterBindingInput is the request to start watching a bracelet.
type RegisterBindingInput struct {
	Token         string `json:"token" validate:"required"`
	NombrePulsera string `json:"nombre_pulsera"`
}

// MonitoringUsecase defines the interface for caregiver-to-bracelet bindings.
type MonitoringUsecase interface {
	// RegisterBinding links a bracelet token to the caller's account.
	RegisterBinding(ctx context.Context, userID uuid.UUID, input *RegisterBindingInput) (*entity.Binding, error)

	// GetUserBindings retrieves the caller's bindings, newest first.
	GetUserBindings(ctx context.Context, userID uuid.UUID) ([]*entity.Binding, error)

	// DeleteBinding unlinks a bracelet the caller owns.
	DeleteBinding(ctx context.Context, userID, bindingID uuid.UUID) error

	// GeneratePairingQR renders a PNG QR code carrying a pairing token.
	GeneratePairingQR(ctx context.Context, token string) ([]byte, error)
}
