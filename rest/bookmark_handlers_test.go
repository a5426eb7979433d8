package rest

import (
	"encoding/json"
	"net/http"
	"testing"

	"readlog/domain"
	"readlog/mocks"
	"readlog/usecase/bookmark_usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandleAddBookmark(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()
	articleID := uuid.New()

	bookmark := &domain.Bookmark{ID: uuid.New(), UserID: userID, ArticleID: articleID}

	port := mocks.NewMockBookmarkPort(ctrl)
	port.EXPECT().Add(gomock.Any(), userID, articleID).Return(bookmark, nil)

	usecase := bookmark_usecase.NewBookmarkUsecase(port)

	c, rec := authedRequest(http.MethodPost, "/v1/bookmarks",
		`{"blog_post_id":"`+articleID.String()+`"}`, userID)
	require.NoError(t, handleAddBookmark(usecase)(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandleAddBookmark_Failures(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		portErr    error
		wantStatus int
	}{
		{
			name:       "duplicate bookmark",
			portErr:    domain.ErrBookmarkExists,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "unowned article",
			portErr:    domain.ErrArticleNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "malformed id",
			body:       `{"blog_post_id":"nope"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			userID := uuid.New()

			port := mocks.NewMockBookmarkPort(ctrl)
			body := tt.body
			if body == "" {
				articleID := uuid.New()
				body = `{"blog_post_id":"` + articleID.String() + `"}`
				port.EXPECT().Add(gomock.Any(), userID, articleID).Return(nil, tt.portErr)
			}

			usecase := bookmark_usecase.NewBookmarkUsecase(port)

			c, rec := authedRequest(http.MethodPost, "/v1/bookmarks", body, userID)
			require.NoError(t, handleAddBookmark(usecase)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandleToggleBookmark(t *testing.T) {
	tests := []struct {
		name        string
		result      bool
		wantMessage string
	}{
		{name: "added", result: true, wantMessage: "bookmark added"},
		{name: "removed", result: false, wantMessage: "bookmark removed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			userID := uuid.New()
			articleID := uuid.New()

			port := mocks.NewMockBookmarkPort(ctrl)
			port.EXPECT().Toggle(gomock.Any(), userID, articleID).Return(tt.result, nil)

			usecase := bookmark_usecase.NewBookmarkUsecase(port)

			c, rec := authedRequest(http.MethodPost, "/v1/bookmarks/toggle",
				`{"blog_post_id":"`+articleID.String()+`"}`, userID)
			require.NoError(t, handleToggleBookmark(usecase)(c))

			assert.Equal(t, http.StatusOK, rec.Code)

			var resp ToggleBookmarkResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.result, resp.IsBookmarked)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

func TestHandleRemoveBookmark(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()
	bookmarkID := uuid.New()

	port := mocks.NewMockBookmarkPort(ctrl)
	port.EXPECT().Remove(gomock.Any(), userID, bookmarkID).Return(nil)

	usecase := bookmark_usecase.NewBookmarkUsecase(port)

	c, rec := authedRequest(http.MethodDelete, "/v1/bookmarks/"+bookmarkID.String(), "", userID)
	c.SetParamNames("id")
	c.SetParamValues(bookmarkID.String())

	require.NoError(t, handleRemoveBookmark(usecase)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleCheckBookmarks(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()
	bookmarked := uuid.New()
	plain := uuid.New()

	port := mocks.NewMockBookmarkPort(ctrl)
	port.EXPECT().
		Check(gomock.Any(), userID, []uuid.UUID{bookmarked, plain}).
		Return(map[uuid.UUID]bool{bookmarked: true, plain: false}, nil)

	usecase := bookmark_usecase.NewBookmarkUsecase(port)

	c, rec := authedRequest(http.MethodPost, "/v1/bookmarks/check",
		`{"blog_post_ids":["`+bookmarked.String()+`","`+plain.String()+`"]}`, userID)
	require.NoError(t, handleCheckBookmarks(usecase)(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, map[string]bool{bookmarked.String(): true, plain.String(): false}, resp)
}

func TestHandleCheckBookmarks_EmptyList(t *testing.T) {
	ctrl := gomock.NewController(t)

	usecase := bookmark_usecase.NewBookmarkUsecase(mocks.NewMockBookmarkPort(ctrl))

	c, rec := authedRequest(http.MethodPost, "/v1/bookmarks/check", `{"blog_post_ids":[]}`, uuid.New())
	require.NoError(t, handleCheckBookmarks(usecase)(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
