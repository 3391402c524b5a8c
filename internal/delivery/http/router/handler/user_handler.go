package handler

import (
	"log/slog"
	"net/http"

	"vigia/internal/delivery/http/middleware"
	"vigia/internal/delivery/http/response"
	"vigia/internal/domain/entity"
	domainerrors "vigia/internal/domain/errors"
	"vigia/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// usuarioDTO is the account shape the frontend stores after login.
type usuarioDTO struct {
	ID        uuid.UUID   `json:"id"`
	Nombres   string      `json:"nombres"`
	Apellidos string      `json:"apellidos"`
	Rol       entity.Role `json:"rol"`
}

// loginResponse is the login result envelope.
type loginResponse struct {
	Mensaje string     `json:"mensaje"`
	Token   string     `json:"token"`
	Usuario usuarioDTO `json:"usuario"`
}

// Register handles the caregiver registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var input *usecase.RegisterUserInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.NewValidationError("Datos de registro inválidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if _, err := h.uc.Register(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Mensaje(c, http.StatusCreated, "Usuario registrado correctamente")
}

// Login handles the credential check and token issuance.
func (h *UserHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.NewValidationError("Datos de acceso inválidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, loginResponse{
		Mensaje: "Login exitoso",
		Token:   output.Token,
		Usuario: usuarioDTO{
			ID:        output.Usuario.ID,
			Nombres:   output.Usuario.Nombres,
			Apellidos: output.Usuario.Apellidos,
			Rol:       output.Usuario.Rol,
		},
	})
}

// GetProfile returns an account's profile. Callers may read their own
// profile; administrators may read any.
func (h *UserHandler) GetProfile(c echo.Context) error {
	targetID, err := h.authorizeProfileAccess(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetProfile(c.Request().Context(), targetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, user)
}

// UpdateProfile applies partial profile changes under the same access rule
// as GetProfile.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	targetID, err := h.authorizeProfileAccess(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.NewValidationError("Datos de perfil inválidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), targetID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, user)
}

// authorizeProfileAccess resolves the :id route param and enforces the
// self-or-admin rule.
func (h *UserHandler) authorizeProfileAccess(c echo.Context) (uuid.UUID, error) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrTokenInvalido
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrUsuarioNoEncontrado
	}

	if targetID != callerID {
		rol, _ := middleware.GetRole(c)
		if rol != entity.RoleAdmin {
			return uuid.Nil, domainerrors.ErrAccesoDenegado
		}
	}

	return targetID, nil
}
