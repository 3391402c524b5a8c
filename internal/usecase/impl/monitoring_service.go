package impl

import (
	"context"
	"log/slog"

	deliverycontext "vigia/internal/delivery/context"
	"vigia/internal/domain/entity"
	domainerrors "vigia/internal/domain/errors"
	"vigia/internal/domain/repository"
	"vigia/internal/domain/service"
	"vigia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// monitoringService implements the MonitoringUsecase interface.
type monitoringService struct {
	bindingRepo repository.BindingRepository
	qrcodeSvc   service.QRCodeService
	logger      *slog.Logger
}

// MonitoringServiceParams holds dependencies for monitoringService, injected by Fx.
type MonitoringServiceParams struct {
	fx.In

	BindingRepo repository.BindingRepository
	QRCodeSvc   service.QRCodeService
	Logger      *slog.Logger
}

// NewMonitoringService is the constructor for monitoringService.
func NewMonitoringService(params MonitoringServiceParams) usecase.MonitoringUsecase {
	return &monitoringService{
		bindingRepo: params.BindingRepo,
		qrcodeSvc:   params.QRCodeSvc,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *monitoringService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterBinding links a bracelet token to the caller's account. A token can
// be watched by at most one caregiver; the unique index on the token column
// enforces that even under concurrent registration.
func (srv *monitoringService) RegisterBinding(ctx context.Context, userID uuid.UUID, input *usecase.RegisterBindingInput) (*entity.Binding, error) {
	nombre := input.NombrePulsera
	if nombre == "" {
		nombre = defaultBraceletName
	}

	binding := &entity.Binding{
		UserID:        userID,
		Token:         input.Token,
		NombrePulsera: nombre,
	}

	if err := srv.bindingRepo.CreateBinding(ctx, binding); err != nil {
		if errors.Is(err, repository.ErrDuplicateBinding) {
			return nil, domainerrors.ErrTokenYaVinculado
		}

		return nil, errors.Wrap(err, "failed to create binding")
	}

	srv.log(ctx).Info("Bracelet bound",
		slog.String("token", input.Token),
		slog.String("userID", userID.String()),
	)

	return binding, nil
}

// GetUserBindings retrieves the caller's bindings, newest first.
func (srv *monitoringService) GetUserBindings(ctx context.Context, userID uuid.UUID) ([]*entity.Binding, error) {
	bindings, err := srv.bindingRepo.FindBindingsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load bindings")
	}

	return bindings, nil
}

// DeleteBinding unlinks a bracelet the caller owns.
func (srv *monitoringService) DeleteBinding(ctx context.Context, userID, bindingID uuid.UUID) error {
	if err := srv.bindingRepo.DeleteBinding(ctx, bindingID, userID); err != nil {
		if errors.Is(err, repository.ErrBindingNotFound) {
			return domainerrors.ErrVinculoNoEncontrado
		}

		return errors.Wrap(err, "failed to delete binding")
	}

	return nil
}

// GeneratePairingQR renders a PNG QR code carrying a pairing token.
func (srv *monitoringService) GeneratePairingQR(_ context.Context, token string) ([]byte, error) {
	if token == "" {
		return nil, domainerrors.NewValidationError("Falta el token")
	}

	png, err := srv.qrcodeSvc.GeneratePairingQR(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pairing QR")
	}

	return png, nil
}
