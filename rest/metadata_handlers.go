package rest

import (
	"net/http"

	"readlog/di"
	"readlog/usecase/fetch_metadata_usecase"
	"readlog/utils/errors"

	"github.com/labstack/echo/v4"
)

func registerMetadataRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.POST("/opengraph", handleFetchMetadata(container.FetchMetadataUsecase))
}

// handleFetchMetadata previews page metadata without persisting anything.
func handleFetchMetadata(usecase *fetch_metadata_usecase.FetchMetadataUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req FetchMetadataRequest
		if err := c.Bind(&req); err != nil || req.URL == "" {
			appErr := errors.ValidationError("url is required", nil)
			return c.JSON(appErr.HTTPStatusCode(), appErr.ToHTTPResponse())
		}

		meta, err := usecase.Execute(c.Request().Context(), req.URL)
		if err != nil {
			return HandleError(c, err, "FetchMetadata")
		}
		return c.JSON(http.StatusOK, meta)
	}
}
