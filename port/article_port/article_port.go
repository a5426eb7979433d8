package article_port

//go:generate mockgen -source=article_port.go -destination=../../mocks/mock_article_port.go -package=mocks

import (
	"context"

	"readlog/domain"

	"github.com/google/uuid"
)

type SaveArticlePort interface {
	Execute(ctx context.Context, userID uuid.UUID, draft domain.ArticleDraft) (*domain.Article, error)
}

// FetchArticlesPort returns one page of articles plus the unpaged total.
type FetchArticlesPort interface {
	Execute(ctx context.Context, userID uuid.UUID, query domain.ArticleQuery) ([]domain.Article, int, error)
}

type FetchRecentArticlesPort interface {
	Execute(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Article, error)
}

type DeleteArticlePort interface {
	Execute(ctx context.Context, userID uuid.UUID, articleID uuid.UUID) error
}
