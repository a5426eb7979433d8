package rest

import (
	"net/http"

	"readlog/di"
	"readlog/usecase/bookmark_usecase"
	"readlog/usecase/fetch_articles_usecase"
	"readlog/utils/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func registerBookmarkRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.GET("/bookmarks", handleListBookmarks(container.FetchBookmarkedArticlesUsecase))
	v1.POST("/bookmarks", handleAddBookmark(container.BookmarkUsecase))
	v1.DELETE("/bookmarks/:id", handleRemoveBookmark(container.BookmarkUsecase))
	v1.POST("/bookmarks/toggle", handleToggleBookmark(container.BookmarkUsecase))
	v1.POST("/bookmarks/check", handleCheckBookmarks(container.BookmarkUsecase))
}

func handleListBookmarks(usecase *fetch_articles_usecase.FetchArticlesUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		page, err := usecase.Execute(c.Request().Context(), articleQueryFromRequest(c))
		if err != nil {
			return HandleError(c, err, "ListBookmarks")
		}
		return c.JSON(http.StatusOK, page)
	}
}

func handleAddBookmark(usecase *bookmark_usecase.BookmarkUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req AddBookmarkRequest
		if err := c.Bind(&req); err != nil {
			appErr := errors.ValidationError("invalid request body", nil)
			return c.JSON(appErr.HTTPStatusCode(), appErr.ToHTTPResponse())
		}

		articleID, appErr := parseUUID(req.BlogPostID, "blog_post_id")
		if appErr != nil {
			return c.JSON(appErr.HTTPStatusCode(), appErr.ToHTTPResponse())
		}

		bookmark, err := usecase.Add(c.Request().Context(), articleID)
		if err != nil {
			return HandleError(c, err, "AddBookmark")
		}
		return c.JSON(http.StatusCreated, bookmark)
	}
}

func handleRemoveBookmark(usecase *bookmark_usecase.BookmarkUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		bookmarkID, appErr := parseUUID(c.Param("id"), "id")
		if appErr != nil {
			return c.JSON(appErr.HTTPStatusCode(), appErr.ToHTTPResponse())
		}

		if err := usecase.Remove(c.Request().Context(), bookmarkID); err != nil {
			return HandleError(c, err, "RemoveBookmark")
		}
		return c.JSON(http.StatusOK, MessageResponse{Message: "bookmark removed"})
	}
}

func handleToggleBookmark(usecase *bookmark_usecase.BookmarkUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req ToggleBookmarkRequest
		if err := c.Bind(&req); err != nil {
			appErr := errors.ValidationError("invalid request body", nil)
			return c.JSON(appErr.HTTPStatusCode(), appErr.ToHTTPResponse())
		}

		articleID, appErr := parseUUID(req.BlogPostID, "blog_post_id")
		if appErr != nil {
			return c.JSON(appErr.HTTPStatusCode(), appErr.ToHTTPResponse())
		}

		bookmarked, err := usecase.Toggle(c.Request().Context(), articleID)
		if err != nil {
			return HandleError(c, err, "ToggleBookmark")
		}

		message := "bookmark removed"
		if bookmarked {
			message = "bookmark added"
		}
		return c.JSON(http.StatusOK, ToggleBookmarkResponse{IsBookmarked: bookmarked, Message: message})
	}
}

func handleCheckBookmarks(usecase *bookmark_usecase.BookmarkUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req CheckBookmarksRequest
		if err := c.Bind(&req); err != nil {
			appErr := errors.ValidationError("invalid request body", nil)
			return c.JSON(appErr.HTTPStatusCode(), appErr.ToHTTPResponse())
		}

		ids := make([]uuid.UUID, 0, len(req.BlogPostIDs))
		for _, raw := range req.BlogPostIDs {
			id, appErr := parseUUID(raw, "blog_post_ids")
			if appErr != nil {
				return c.JSON(appErr.HTTPStatusCode(), appErr.ToHTTPResponse())
			}
			ids = append(ids, id)
		}

		statuses, err := usecase.Check(c.Request().Context(), ids)
		if err != nil {
			return HandleError(c, err, "CheckBookmarks")
		}

		response := make(map[string]bool, len(statuses))
		for id, bookmarked := range statuses {
			response[id.String()] = bookmarked
		}
		return c.JSON(http.StatusOK, response)
	}
}
