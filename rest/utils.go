package rest

import (
	stderrors "errors"

	"readlog/domain"
	"readlog/utils/errors"
	"readlog/utils/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HandleError translates any error bubbling out of a usecase into the
// client-facing {"error": ...} body with the right status. Domain sentinels
// carry the taxonomy; anything unrecognized becomes a generic 500.
func HandleError(c echo.Context, err error, operation string) error {
	appErr := toAppError(err)

	logger.SafeErrorContext(c.Request().Context(), "handler error",
		"error", appErr.Error(),
		"error_code", appErr.Code,
		"operation", operation,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	return c.JSON(appErr.HTTPStatusCode(), appErr.ToHTTPResponse())
}

func toAppError(err error) *errors.AppError {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	switch {
	case stderrors.Is(err, domain.ErrUnauthorized), stderrors.Is(err, domain.ErrInvalidUserContext):
		return errors.UnauthorizedError("unauthorized")
	case stderrors.Is(err, domain.ErrInvalidInput):
		return errors.ValidationError(err.Error(), nil)
	case stderrors.Is(err, domain.ErrArticleNotFound):
		return errors.NotFoundError("article not found", nil)
	case stderrors.Is(err, domain.ErrBookmarkNotFound):
		return errors.NotFoundError("bookmark not found", nil)
	case stderrors.Is(err, domain.ErrBookmarkExists):
		return errors.ConflictError("already bookmarked", nil)
	case stderrors.Is(err, domain.ErrMetadataFetchFailed):
		return errors.ExternalAPIError("failed to fetch page metadata", err, nil)
	default:
		return errors.UnknownError("internal server error", err)
	}
}

// parseUUID validates a client-supplied id. A malformed id is a validation
// error, not a not-found: the value could never name an entity.
func parseUUID(raw, field string) (uuid.UUID, *errors.AppError) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.ValidationError(field+" must be a valid UUID", map[string]interface{}{field: raw})
	}
	return id, nil
}
