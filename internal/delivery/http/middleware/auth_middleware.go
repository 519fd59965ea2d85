package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/domain/service"
)

// Context keys set by the auth middleware.
const (
	ContextKeyUserID = "userID"
	ContextKeyRoles  = "roles"
)

var errMissingToken = domainerrors.NewBaseError(
	http.StatusUnauthorized,
	"MISSING_TOKEN",
	"Authorization header with a bearer token is required",
	nil,
)

var errInvalidToken = domainerrors.NewBaseError(
	http.StatusUnauthorized,
	"INVALID_TOKEN",
	"Access token is invalid or expired",
	nil,
)

// AuthMiddleware authenticates requests with bearer access tokens.
type AuthMiddleware struct {
	tokenService service.TokenService
}

// NewAuthMiddleware creates the JWT auth middleware.
func NewAuthMiddleware(tokenService service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService}
}

// Authenticate validates the bearer token and stores the user ID and roles
// on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return errMissingToken
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return errMissingToken
		}

		claims, err := m.tokenService.ValidateAccessToken(parts[1])
		if err != nil {
			return errInvalidToken
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRoles, entity.RolesFromStrings(claims.Roles))

		return next(c)
	}
}

// RequireRole rejects requests whose token lacks the given role.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := c.Get(ContextKeyRoles).(entity.Roles)
			if !ok || !roles.Contains(role) {
				return domainerrors.ErrForbidden
			}
			return next(c)
		}
	}
}
