package fetch_articles_usecase

import (
	"context"

	"readlog/config"
	"readlog/domain"
	"readlog/port/article_port"
	"readlog/utils/logger"
)

// FetchArticlesUsecase serves one page of a user's articles. The same
// usecase backs both the full list and the bookmarked-only list; the
// injected port decides which relation is read.
type FetchArticlesUsecase struct {
	fetchArticlesGateway article_port.FetchArticlesPort
	pagination           config.PaginationConfig
}

func NewFetchArticlesUsecase(
	fetchArticlesGateway article_port.FetchArticlesPort,
	pagination config.PaginationConfig,
) *FetchArticlesUsecase {
	return &FetchArticlesUsecase{
		fetchArticlesGateway: fetchArticlesGateway,
		pagination:           pagination,
	}
}

func (u *FetchArticlesUsecase) Execute(ctx context.Context, query domain.ArticleQuery) (*domain.ArticlePage, error) {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 {
		query.PageSize = u.pagination.DefaultPageSize
	}
	if query.PageSize > u.pagination.MaxPageSize {
		query.PageSize = u.pagination.MaxPageSize
	}

	articles, total, err := u.fetchArticlesGateway.Execute(ctx, user.UserID, query)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to fetch articles", "error", err, "page", query.Page)
		return nil, err
	}

	if articles == nil {
		articles = []domain.Article{}
	}

	return &domain.ArticlePage{
		Data:       articles,
		Pagination: domain.NewPaginationInfo(total, query.Page, query.PageSize),
	}, nil
}
