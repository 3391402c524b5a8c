package impl

import (
	"context"
	"testing"

	"vigia/internal/domain/entity"
	domainerrors "vigia/internal/domain/errors"
	"vigia/internal/domain/repository"
	mockRepo "vigia/internal/mocks/repository"
	mockService "vigia/internal/mocks/service"
	"vigia/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Nombres:   "María",
		Apellidos: "García",
		Telefono:  "+51987654321",
		Correo:    "maria@example.com",
		Password:  "secreto123",
	}

	fx.hasher.EXPECT().
		Hash("secreto123").
		Return("hashed-password", nil)

	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "María", user.Nombres)
			assert.Equal(t, "maria@example.com", user.Correo)
			assert.Equal(t, "hashed-password", user.PasswordHash)
			assert.Equal(t, entity.RoleUsuario, user.Rol)
		}).
		Return(nil)

	user, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, entity.RoleUsuario, user.Rol)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Nombres:  "María",
		Correo:   "maria@example.com",
		Password: "secreto123",
	}

	fx.hasher.EXPECT().
		Hash("secreto123").
		Return("hashed-password", nil)

	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateUser)

	user, err := fx.service.Register(ctx, input)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrCorreoRegistrado)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Nombres:      "María",
		Correo:       "maria@example.com",
		PasswordHash: "hashed-password",
		Rol:          entity.RoleUsuario,
	}

	fx.userRepo.EXPECT().
		FindUserByCorreo(ctx, "maria@example.com").
		Return(user, nil)

	fx.hasher.EXPECT().
		Check("secreto123", "hashed-password").
		Return(true)

	fx.tokenService.EXPECT().
		GenerateAccessToken(userID, entity.RoleUsuario).
		Return("jwt-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Correo:   "maria@example.com",
		Password: "secreto123",
	})
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", output.Token)
	assert.Equal(t, user, output.Usuario)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindUserByCorreo(ctx, "nadie@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Correo:   "nadie@example.com",
		Password: "secreto123",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrCredencialesInvalidas)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Correo:       "maria@example.com",
		PasswordHash: "hashed-password",
	}

	fx.userRepo.EXPECT().
		FindUserByCorreo(ctx, "maria@example.com").
		Return(user, nil)

	fx.hasher.EXPECT().
		Check("incorrecta", "hashed-password").
		Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Correo:   "maria@example.com",
		Password: "incorrecta",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrCredencialesInvalidas)
}

func TestUserService_GetProfile_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := &entity.User{ID: userID, Nombres: "María"}

	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(expected, nil)

	user, err := fx.service.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, expected, user)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetProfile(ctx, userID)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUsuarioNoEncontrado)
}

func TestUserService_UpdateProfile_PartialUpdate(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{
		ID:        userID,
		Nombres:   "María",
		Apellidos: "García",
		Telefono:  "+51987654321",
		Correo:    "maria@example.com",
	}

	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(existing, nil)

	fx.userRepo.EXPECT().
		UpdateUser(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "+51911111111", user.Telefono)
			assert.Equal(t, "María", user.Nombres)
		}).
		Return(nil)

	user, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		Telefono: strPtr("+51911111111"),
	})
	require.NoError(t, err)
	assert.Equal(t, "+51911111111", user.Telefono)
}

func TestUserService_UpdateProfile_PasswordChange(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{ID: userID, Nombres: "María", PasswordHash: "old-hash"}

	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(existing, nil)

	fx.userRepo.EXPECT().
		UpdateUser(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	fx.hasher.EXPECT().
		Hash("nueva-clave").
		Return("new-hash", nil)

	fx.userRepo.EXPECT().
		UpdatePassword(ctx, userID, "new-hash").
		Return(nil)

	user, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		Password: strPtr("nueva-clave"),
	})
	require.NoError(t, err)
	assert.Equal(t, "new-hash", user.PasswordHash)
}

func TestUserService_UpdateProfile_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{ID: userID, Correo: "maria@example.com"}

	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(existing, nil)

	fx.userRepo.EXPECT().
		UpdateUser(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateUser)

	user, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		Correo: strPtr("otra@example.com"),
	})
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrCorreoRegistrado)
}
