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

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a caregiver account with a bcrypt-hashed password.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Nombres:      input.Nombres,
		Apellidos:    input.Apellidos,
		Telefono:     input.Telefono,
		Correo:       input.Correo,
		PasswordHash: hash,
		Rol:          entity.RoleUsuario,
	}

	if err := srv.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, domainerrors.ErrCorreoRegistrado
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("Caregiver registered", slog.String("userID", user.ID.String()))

	return user, nil
}

// Login verifies credentials and issues an access token. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindUserByCorreo(ctx, input.Correo)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrCredencialesInvalidas
		}

		return nil, errors.Wrap(err, "failed to look up user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrCredencialesInvalidas
	}

	token, err := srv.tokenService.GenerateAccessToken(user.ID, user.Rol)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.LoginOutput{
		Token:   token,
		Usuario: user,
	}, nil
}

// GetProfile fetches an account by ID.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUsuarioNoEncontrado
		}

		return nil, errors.Wrap(err, "failed to look up user")
	}

	return user, nil
}

// UpdateProfile applies partial profile changes, re-hashing the password
// when a new one is supplied.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUsuarioNoEncontrado
		}

		return nil, errors.Wrap(err, "failed to look up user")
	}

	if input.Nombres != nil {
		user.Nombres = *input.Nombres
	}
	if input.Apellidos != nil {
		user.Apellidos = *input.Apellidos
	}
	if input.Telefono != nil {
		user.Telefono = *input.Telefono
	}
	if input.Correo != nil {
		user.Correo = *input.Correo
	}

	if err := srv.userRepo.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, domainerrors.ErrCorreoRegistrado
		}
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUsuarioNoEncontrado
		}

		return nil, errors.Wrap(err, "failed to update user")
	}

	if input.Password != nil {
		hash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password")
		}

		user.PasswordHash = hash
		if err := srv.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
			return nil, errors.Wrap(err, "failed to update password")
		}
	}

	return user, nil
}
