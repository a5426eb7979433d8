package middleware

import (
	"strconv"
	"time"

	"readlog/utils/logger"
	"readlog/utils/metrics"

	"github.com/labstack/echo/v4"
)

func LoggingMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			// Health checks just add noise.
			if req.URL.Path == "/v1/health" {
				return next(c)
			}

			start := time.Now()
			ctx := req.Context()

			logger.SafeInfoContext(ctx, "request started",
				"method", req.Method,
				"path", req.URL.Path,
				"remote_addr", c.RealIP(),
				"user_agent", req.UserAgent(),
			)

			err := next(c)

			duration := time.Since(start)
			status := c.Response().Status

			route := c.Path()
			if route == "" {
				route = req.URL.Path
			}
			metrics.HTTPRequestsTotal.WithLabelValues(req.Method, route, strconv.Itoa(status)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(req.Method, route).Observe(duration.Seconds())

			logAttrs := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", status,
				"duration_ms", duration.Milliseconds(),
				"response_size", c.Response().Size,
			}
			switch {
			case status >= 500:
				logger.SafeErrorContext(ctx, "request completed", logAttrs...)
			case status >= 400:
				logger.SafeWarnContext(ctx, "request completed", logAttrs...)
			default:
				logger.SafeInfoContext(ctx, "request completed", logAttrs...)
			}

			if err != nil {
				logger.SafeErrorContext(ctx, "request error",
					"method", req.Method,
					"path", req.URL.Path,
					"error", err,
					"duration_ms", duration.Milliseconds(),
				)
			}

			return err
		}
	}
}
