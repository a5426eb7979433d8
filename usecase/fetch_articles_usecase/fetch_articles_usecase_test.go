package fetch_articles_usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"readlog/config"
	"readlog/domain"
	"readlog/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testPagination = config.PaginationConfig{DefaultPageSize: 20, MaxPageSize: 100}

func authedContext(userID uuid.UUID) context.Context {
	return domain.SetUserContext(context.Background(), &domain.UserContext{
		UserID:    userID,
		Email:     "reader@example.com",
		ExpiresAt: time.Now().Add(time.Hour),
	})
}

func TestExecute_BuildsPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()
	ctx := authedContext(userID)

	articles := []domain.Article{
		{ID: uuid.New(), Title: "newest"},
		{ID: uuid.New(), Title: "older"},
	}

	port := mocks.NewMockFetchArticlesPort(ctrl)
	port.EXPECT().
		Execute(ctx, userID, domain.ArticleQuery{Page: 2, PageSize: 2, SearchTerm: "go"}).
		Return(articles, 5, nil)

	page, err := NewFetchArticlesUsecase(port, testPagination).Execute(ctx, domain.ArticleQuery{
		Page: 2, PageSize: 2, SearchTerm: "go",
	})
	require.NoError(t, err)
	assert.Equal(t, articles, page.Data)
	assert.Equal(t, domain.PaginationInfo{TotalCount: 5, CurrentPage: 2, PageSize: 2, TotalPage: 3}, page.Pagination)
}

func TestExecute_QueryClamping(t *testing.T) {
	tests := []struct {
		name string
		in   domain.ArticleQuery
		want domain.ArticleQuery
	}{
		{name: "zero values get defaults", in: domain.ArticleQuery{}, want: domain.ArticleQuery{Page: 1, PageSize: 20}},
		{name: "negative page", in: domain.ArticleQuery{Page: -3, PageSize: 10}, want: domain.ArticleQuery{Page: 1, PageSize: 10}},
		{name: "oversized page size", in: domain.ArticleQuery{Page: 1, PageSize: 500}, want: domain.ArticleQuery{Page: 1, PageSize: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			userID := uuid.New()
			ctx := authedContext(userID)

			port := mocks.NewMockFetchArticlesPort(ctrl)
			port.EXPECT().Execute(ctx, userID, tt.want).Return(nil, 0, nil)

			_, err := NewFetchArticlesUsecase(port, testPagination).Execute(ctx, tt.in)
			require.NoError(t, err)
		})
	}
}

func TestExecute_PageBeyondRangeIsEmptyNotError(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()
	ctx := authedContext(userID)

	port := mocks.NewMockFetchArticlesPort(ctrl)
	port.EXPECT().Execute(ctx, userID, gomock.Any()).Return(nil, 5, nil)

	page, err := NewFetchArticlesUsecase(port, testPagination).Execute(ctx, domain.ArticleQuery{Page: 99, PageSize: 2})
	require.NoError(t, err)
	assert.Empty(t, page.Data)
	assert.NotNil(t, page.Data)
	assert.Equal(t, 3, page.Pagination.TotalPage)
	assert.Equal(t, 99, page.Pagination.CurrentPage)
}

func TestExecute_RequiresUserContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	u := NewFetchArticlesUsecase(mocks.NewMockFetchArticlesPort(ctrl), testPagination)

	_, err := u.Execute(context.Background(), domain.ArticleQuery{})
	assert.ErrorIs(t, err, domain.ErrInvalidUserContext)
}

func TestExecute_GatewayErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()
	ctx := authedContext(userID)
	wantErr := errors.New("query failed")

	port := mocks.NewMockFetchArticlesPort(ctrl)
	port.EXPECT().Execute(ctx, userID, gomock.Any()).Return(nil, 0, wantErr)

	_, err := NewFetchArticlesUsecase(port, testPagination).Execute(ctx, domain.ArticleQuery{})
	assert.ErrorIs(t, err, wantErr)
}
