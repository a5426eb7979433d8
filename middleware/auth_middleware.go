package middleware

import (
	"context"
	"net/http"

	"readlog/domain"
	"readlog/port/auth_port"
	"readlog/utils/logger"

	"github.com/labstack/echo/v4"
)

const sessionCookieName = "session_token"

// AuthMiddleware resolves the session cookie into a domain.UserContext once
// per request. Every failure mode answers with the same 401 body so callers
// cannot probe for token validity.
type AuthMiddleware struct {
	authGateway auth_port.AuthPort
}

func NewAuthMiddleware(authGateway auth_port.AuthPort) *AuthMiddleware {
	return &AuthMiddleware{authGateway: authGateway}
}

func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(sessionCookieName)
			if err != nil || cookie.Value == "" {
				return unauthorized(c)
			}

			user, err := m.authGateway.ValidateSession(c.Request().Context(), cookie.Value)
			if err != nil {
				logger.SafeInfoContext(c.Request().Context(), "session validation rejected",
					"path", c.Request().URL.Path, "remote_addr", c.RealIP())
				return unauthorized(c)
			}

			ctx := domain.SetUserContext(c.Request().Context(), user)
			ctx = context.WithValue(ctx, logger.UserIDKey, user.UserID.String())
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
}
