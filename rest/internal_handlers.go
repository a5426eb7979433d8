package rest

import (
	"net/http"

	"readlog/di"
	"readlog/usecase/rebuild_rollup_usecase"
	"readlog/utils/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func registerInternalRoutes(e *echo.Echo, v1 *echo.Group, container *di.ApplicationComponents) {
	v1.GET("/health", handleHealth())
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	internal := v1.Group("/internal", container.ServiceAuthMiddleware.RequireServiceAuth())
	internal.POST("/rollup/rebuild", handleRebuildRollup(container.RebuildRollupUsecase))
}

func handleHealth() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// handleRebuildRollup recomputes one user's daily rollup from their raw
// articles. Operator-only; the target user comes from the request body.
func handleRebuildRollup(usecase *rebuild_rollup_usecase.RebuildRollupUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req RebuildRollupRequest
		if err := c.Bind(&req); err != nil {
			appErr := errors.ValidationError("invalid request body", nil)
			return c.JSON(appErr.HTTPStatusCode(), appErr.ToHTTPResponse())
		}

		userID, appErr := parseUUID(req.UserID, "user_id")
		if appErr != nil {
			return c.JSON(appErr.HTTPStatusCode(), appErr.ToHTTPResponse())
		}

		if err := usecase.Execute(c.Request().Context(), userID); err != nil {
			return HandleError(c, err, "RebuildRollup")
		}
		return c.JSON(http.StatusOK, MessageResponse{Message: "rollup rebuilt"})
	}
}
