package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"readlog/config"
	"readlog/domain"
	"readlog/mocks"
	"readlog/usecase/delete_article_usecase"
	"readlog/usecase/fetch_articles_usecase"
	"readlog/usecase/save_article_usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testPagination = config.PaginationConfig{DefaultPageSize: 20, MaxPageSize: 100}

// authedRequest builds an echo context whose request already carries a valid
// user, the way the auth middleware leaves it.
func authedRequest(method, target string, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	ctx := domain.SetUserContext(req.Context(), &domain.UserContext{
		UserID:    userID,
		Email:     "reader@example.com",
		ExpiresAt: time.Now().Add(time.Hour),
	})
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandleListArticles(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()

	port := mocks.NewMockFetchArticlesPort(ctrl)
	port.EXPECT().
		Execute(gomock.Any(), userID, domain.ArticleQuery{Page: 2, PageSize: 5, SearchTerm: "fox"}).
		Return([]domain.Article{{ID: uuid.New(), Title: "The Quick Fox"}}, 11, nil)

	usecase := fetch_articles_usecase.NewFetchArticlesUsecase(port, testPagination)

	c, rec := authedRequest(http.MethodGet, "/v1/articles?page=2&size=5&search=fox", "", userID)
	require.NoError(t, handleListArticles(usecase)(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var page domain.ArticlePage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Data, 1)
	assert.Equal(t, "The Quick Fox", page.Data[0].Title)
	assert.Equal(t, domain.PaginationInfo{TotalCount: 11, CurrentPage: 2, PageSize: 5, TotalPage: 3}, page.Pagination)
}

func TestHandleCreateArticle(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()

	saved := &domain.Article{ID: uuid.New(), UserID: userID, URL: "https://example.com/post", Title: "t"}

	savePort := mocks.NewMockSaveArticlePort(ctrl)
	savePort.EXPECT().Execute(gomock.Any(), userID, gomock.Any()).Return(saved, nil)
	metaPort := mocks.NewMockFetchMetadataPort(ctrl)

	usecase := save_article_usecase.NewSaveArticleUsecase(savePort, metaPort)

	c, rec := authedRequest(http.MethodPost, "/v1/articles",
		`{"url":"https://example.com/post","title":"t","read_date":"2025-03-10"}`, userID)
	require.NoError(t, handleCreateArticle(usecase)(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var got domain.Article
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, saved.ID, got.ID)
}

func TestHandleCreateArticle_MissingURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()

	usecase := save_article_usecase.NewSaveArticleUsecase(
		mocks.NewMockSaveArticlePort(ctrl), mocks.NewMockFetchMetadataPort(ctrl))

	c, rec := authedRequest(http.MethodPost, "/v1/articles", `{"title":"no url"}`, userID)
	require.NoError(t, handleCreateArticle(usecase)(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestHandleDeleteArticle(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()
	articleID := uuid.New()

	port := mocks.NewMockDeleteArticlePort(ctrl)
	port.EXPECT().Execute(gomock.Any(), userID, articleID).Return(nil)

	usecase := delete_article_usecase.NewDeleteArticleUsecase(port)

	c, rec := authedRequest(http.MethodDelete, "/v1/articles/"+articleID.String(), "", userID)
	c.SetParamNames("id")
	c.SetParamValues(articleID.String())

	require.NoError(t, handleDeleteArticle(usecase)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleDeleteArticle_Failures(t *testing.T) {
	t.Run("malformed id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		usecase := delete_article_usecase.NewDeleteArticleUsecase(mocks.NewMockDeleteArticlePort(ctrl))

		c, rec := authedRequest(http.MethodDelete, "/v1/articles/nope", "", uuid.New())
		c.SetParamNames("id")
		c.SetParamValues("nope")

		require.NoError(t, handleDeleteArticle(usecase)(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not owned looks like not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userID := uuid.New()
		articleID := uuid.New()

		port := mocks.NewMockDeleteArticlePort(ctrl)
		port.EXPECT().Execute(gomock.Any(), userID, articleID).Return(domain.ErrArticleNotFound)

		usecase := delete_article_usecase.NewDeleteArticleUsecase(port)

		c, rec := authedRequest(http.MethodDelete, "/v1/articles/"+articleID.String(), "", userID)
		c.SetParamNames("id")
		c.SetParamValues(articleID.String())

		require.NoError(t, handleDeleteArticle(usecase)(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
