package middleware

import (
	"slices"
	"strings"

	"feira/internal/delivery/api/response"
	deliverycontext "feira/internal/delivery/context"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	keyUserID   = "userID"
	keyUserType = "userType"
)

// AuthMiddleware checks bearer access tokens.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid access token and exposes
// the token subject as the caller.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Cabeçalho Authorization ausente.")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "O token deve ser do tipo Bearer.")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Token inválido ou expirado.")
		}

		c.Set(keyUserID, claims.UserID)
		c.Set(keyUserType, claims.UserType)

		principal := deliverycontext.Principal{ID: claims.UserID, Type: claims.UserType}
		c.SetRequest(c.Request().WithContext(deliverycontext.WithPrincipal(c.Request().Context(), principal)))

		return next(c)
	}
}

// RequireType allows only callers of the given user types. It must run
// after Authenticate.
func (m *AuthMiddleware) RequireType(userTypes ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userType, ok := GetUserType(c)
			if !ok || !slices.Contains(userTypes, userType) {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), domainerrors.ErrForbidden.Message())
			}

			return next(c)
		}
	}
}

// GetUserID returns the caller id set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(keyUserID).(uuid.UUID)

	return userID, ok
}

// GetUserType returns the caller's user type set by Authenticate.
func GetUserType(c echo.Context) (string, bool) {
	userType, ok := c.Get(keyUserType).(string)

	return userType, ok
}
