package middleware

import (
	"net/http"
	"strings"

	"readlog/config"
	"readlog/utils/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const serviceTokenHeader = "X-Service-Token"

// ServiceAuthMiddleware guards internal endpoints with short-lived HMAC JWTs
// minted by operator tooling. Sessions are never accepted here.
type ServiceAuthMiddleware struct {
	secret []byte
	issuer string
}

func NewServiceAuthMiddleware(cfg config.AuthConfig) *ServiceAuthMiddleware {
	if cfg.ServiceTokenSecret == "" {
		logger.SafeWarn("service token secret not set, internal endpoints will deny all requests")
	}
	return &ServiceAuthMiddleware{
		secret: []byte(cfg.ServiceTokenSecret),
		issuer: cfg.ServiceTokenIssuer,
	}
}

func (m *ServiceAuthMiddleware) RequireServiceAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := strings.TrimSpace(c.Request().Header.Get(serviceTokenHeader))
			if token == "" {
				logger.SafeWarnContext(c.Request().Context(), "service auth failed: missing token",
					"path", c.Request().URL.Path, "remote_addr", c.RealIP())
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			}

			if len(m.secret) == 0 {
				logger.SafeError("service auth failed: secret not configured")
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": "service authentication not configured"})
			}

			if err := m.verify(token); err != nil {
				logger.SafeWarnContext(c.Request().Context(), "service auth failed: invalid token",
					"path", c.Request().URL.Path, "remote_addr", c.RealIP(), "error", err)
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			}

			c.Set("service.authenticated", true)
			return next(c)
		}
	}
}

func (m *ServiceAuthMiddleware) verify(token string) error {
	_, err := jwt.Parse(token,
		func(t *jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
	)
	return err
}
