package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"vigia/internal/domain/entity"
	domainerrors "vigia/internal/domain/errors"
	"vigia/internal/domain/service"
	mockService "vigia/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/monitoreo/mis-pulseras", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, _ := newAuthTestContext("")

	err := m.Authenticate(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrTokenNoProporcionado)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, _ := newAuthTestContext("Basic abc123")

	err := m.Authenticate(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrTokenNoProporcionado)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().
		ValidateAccessToken("expired-token").
		Return(nil, errors.New("token is expired"))

	c, _ := newAuthTestContext("Bearer expired-token")

	err := m.Authenticate(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalido)
}

func TestAuthMiddleware_Authenticate_SetsIdentity(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	userID := uuid.New()
	tokenSvc.EXPECT().
		ValidateAccessToken("valid-token").
		Return(&service.TokenClaims{UserID: userID, Rol: entity.RoleUsuario}, nil)

	c, rec := newAuthTestContext("Bearer valid-token")

	err := m.Authenticate(func(c echo.Context) error {
		gotID, ok := GetUserID(c)
		require.True(t, ok)
		assert.Equal(t, userID, gotID)

		rol, ok := GetRole(c)
		require.True(t, ok)
		assert.Equal(t, entity.RoleUsuario, rol)

		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RequireRole_Denied(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, _ := newAuthTestContext("")
	c.Set("rol", entity.RoleUsuario)

	err := m.RequireRole(entity.RoleAdmin)(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrAccesoDenegado)
}

func TestAuthMiddleware_RequireRole_Allowed(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext("")
	c.Set("rol", entity.RoleAdmin)

	err := m.RequireRole(entity.RoleAdmin)(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
