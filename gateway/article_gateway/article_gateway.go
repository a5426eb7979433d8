package article_gateway

import (
	"context"
	"errors"

	"readlog/domain"
	"readlog/driver/readlog_db"
	"readlog/utils/logger"

	"github.com/google/uuid"
)

// SaveArticleGateway persists new articles through the repository.
type SaveArticleGateway struct {
	repo *readlog_db.ReadlogDBRepository
}

func NewSaveArticleGateway(repo *readlog_db.ReadlogDBRepository) *SaveArticleGateway {
	return &SaveArticleGateway{repo: repo}
}

func (g *SaveArticleGateway) Execute(ctx context.Context, userID uuid.UUID, draft domain.ArticleDraft) (*domain.Article, error) {
	if g.repo == nil {
		return nil, errors.New("database connection not available")
	}

	article, err := g.repo.CreateArticle(ctx, userID, draft)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return nil, err
		}
		logger.SafeErrorContext(ctx, "failed to save article", "error", err)
		return nil, errors.New("failed to save article")
	}
	return article, nil
}

// FetchArticlesGateway serves the list/search surface.
type FetchArticlesGateway struct {
	repo *readlog_db.ReadlogDBRepository
}

func NewFetchArticlesGateway(repo *readlog_db.ReadlogDBRepository) *FetchArticlesGateway {
	return &FetchArticlesGateway{repo: repo}
}

func (g *FetchArticlesGateway) Execute(ctx context.Context, userID uuid.UUID, query domain.ArticleQuery) ([]domain.Article, int, error) {
	if g.repo == nil {
		return nil, 0, errors.New("database connection not available")
	}

	articles, total, err := g.repo.FetchArticles(ctx, userID, query)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to fetch articles", "error", err)
		return nil, 0, errors.New("failed to fetch articles")
	}
	return articles, total, nil
}

// FetchBookmarkedArticlesGateway is the list surface restricted to
// bookmarked articles.
type FetchBookmarkedArticlesGateway struct {
	repo *readlog_db.ReadlogDBRepository
}

func NewFetchBookmarkedArticlesGateway(repo *readlog_db.ReadlogDBRepository) *FetchBookmarkedArticlesGateway {
	return &FetchBookmarkedArticlesGateway{repo: repo}
}

func (g *FetchBookmarkedArticlesGateway) Execute(ctx context.Context, userID uuid.UUID, query domain.ArticleQuery) ([]domain.Article, int, error) {
	if g.repo == nil {
		return nil, 0, errors.New("database connection not available")
	}

	articles, total, err := g.repo.FetchBookmarkedArticles(ctx, userID, query)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to fetch bookmarked articles", "error", err)
		return nil, 0, errors.New("failed to fetch bookmarked articles")
	}
	return articles, total, nil
}

// FetchRecentArticlesGateway serves the dashboard's recent-posts strip.
type FetchRecentArticlesGateway struct {
	repo *readlog_db.ReadlogDBRepository
}

func NewFetchRecentArticlesGateway(repo *readlog_db.ReadlogDBRepository) *FetchRecentArticlesGateway {
	return &FetchRecentArticlesGateway{repo: repo}
}

func (g *FetchRecentArticlesGateway) Execute(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Article, error) {
	if g.repo == nil {
		return nil, errors.New("database connection not available")
	}

	articles, err := g.repo.FetchRecentArticles(ctx, userID, limit)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to fetch recent articles", "error", err)
		return nil, errors.New("failed to fetch recent articles")
	}
	return articles, nil
}

// DeleteArticleGateway removes an article and its dependents.
type DeleteArticleGateway struct {
	repo *readlog_db.ReadlogDBRepository
}

func NewDeleteArticleGateway(repo *readlog_db.ReadlogDBRepository) *DeleteArticleGateway {
	return &DeleteArticleGateway{repo: repo}
}

func (g *DeleteArticleGateway) Execute(ctx context.Context, userID uuid.UUID, articleID uuid.UUID) error {
	if g.repo == nil {
		return errors.New("database connection not available")
	}

	err := g.repo.DeleteArticle(ctx, userID, articleID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrArticleNotFound),
		errors.Is(err, domain.ErrDependencyDeleteFailed):
		return err
	default:
		logger.SafeErrorContext(ctx, "failed to delete article", "error", err, "article_id", articleID)
		return errors.New("failed to delete article")
	}
}
