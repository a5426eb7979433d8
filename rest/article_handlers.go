package rest

import (
	"net/http"
	"strconv"

	"readlog/di"
	"readlog/domain"
	"readlog/usecase/delete_article_usecase"
	"readlog/usecase/fetch_articles_usecase"
	"readlog/usecase/save_article_usecase"
	"readlog/utils/errors"

	"github.com/labstack/echo/v4"
)

func registerArticleRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.GET("/articles", handleListArticles(container.FetchArticlesUsecase))
	v1.POST("/articles", handleCreateArticle(container.SaveArticleUsecase))
	v1.DELETE("/articles/:id", handleDeleteArticle(container.DeleteArticleUsecase))
	v1.GET("/articles/stats", handleGetStats(container))
	v1.GET("/analytics/daily-chart", handleGetDailyChart(container))
}

func articleQueryFromRequest(c echo.Context) domain.ArticleQuery {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	return domain.ArticleQuery{
		Page:       page,
		PageSize:   size,
		SearchTerm: c.QueryParam("search"),
	}
}

func handleListArticles(usecase *fetch_articles_usecase.FetchArticlesUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		page, err := usecase.Execute(c.Request().Context(), articleQueryFromRequest(c))
		if err != nil {
			return HandleError(c, err, "ListArticles")
		}
		return c.JSON(http.StatusOK, page)
	}
}

func handleCreateArticle(usecase *save_article_usecase.SaveArticleUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req CreateArticleRequest
		if err := c.Bind(&req); err != nil {
			appErr := errors.ValidationError("invalid request body", nil)
			return c.JSON(appErr.HTTPStatusCode(), appErr.ToHTTPResponse())
		}

		article, err := usecase.Execute(c.Request().Context(), domain.ArticleDraft{
			URL:         req.URL,
			Title:       req.Title,
			Description: req.Description,
			ImageURL:    req.ImageURL,
			SiteName:    req.SiteName,
			ReadDate:    req.ReadDate,
		})
		if err != nil {
			return HandleError(c, err, "CreateArticle")
		}
		return c.JSON(http.StatusOK, article)
	}
}

func handleDeleteArticle(usecase *delete_article_usecase.DeleteArticleUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		articleID, appErr := parseUUID(c.Param("id"), "id")
		if appErr != nil {
			return c.JSON(appErr.HTTPStatusCode(), appErr.ToHTTPResponse())
		}

		if err := usecase.Execute(c.Request().Context(), articleID); err != nil {
			return HandleError(c, err, "DeleteArticle")
		}
		return c.JSON(http.StatusOK, MessageResponse{Message: "article deleted"})
	}
}

func handleGetStats(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		summary, err := container.StatsUsecase.Execute(c.Request().Context(), c.QueryParam("timezone"))
		if err != nil {
			return HandleError(c, err, "GetStats")
		}
		return c.JSON(http.StatusOK, summary)
	}
}

func handleGetDailyChart(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		chart, err := container.DailyChartUsecase.Execute(c.Request().Context(), c.QueryParam("timezone"))
		if err != nil {
			return HandleError(c, err, "GetDailyChart")
		}
		return c.JSON(http.StatusOK, chart)
	}
}
