package middleware

import (
	"strings"

	"vigia/internal/domain/entity"
	domainerrors "vigia/internal/domain/errors"
	"vigia/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"
	contextKeyRol    = "rol"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the caller's
// identity on the request context. Validation failures surface as the domain
// auth errors so the error handler renders the right status and message.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrTokenNoProporcionado
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrTokenNoProporcionado
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return domainerrors.ErrTokenInvalido
		}

		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyRol, claims.Rol)

		return next(c)
	}
}

// RequireRole restricts a route to callers holding the given role. It must
// run after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rol, ok := GetRole(c)
			if !ok || rol != requiredRole {
				return domainerrors.ErrAccesoDenegado
			}

			return next(c)
		}
	}
}

// GetUserID extracts the authenticated caller's ID set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok
}

// GetRole extracts the authenticated caller's role set by Authenticate.
func GetRole(c echo.Context) (entity.Role, bool) {
	rol, ok := c.Get(contextKeyRol).(entity.Role)

	return rol, ok
}
