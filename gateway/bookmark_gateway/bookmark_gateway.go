package bookmark_gateway

import (
	"context"
	"errors"

	"readlog/domain"
	"readlog/driver/readlog_db"
	"readlog/utils/logger"

	"github.com/google/uuid"
)

// BookmarkGateway implements every bookmark port over the repository.
// Domain sentinels (not found, duplicate) pass through untouched so the
// usecases can translate them; anything else collapses to a generic store
// failure with the cause logged.
type BookmarkGateway struct {
	repo *readlog_db.ReadlogDBRepository
}

func NewBookmarkGateway(repo *readlog_db.ReadlogDBRepository) *BookmarkGateway {
	return &BookmarkGateway{repo: repo}
}

func (g *BookmarkGateway) Add(ctx context.Context, userID uuid.UUID, articleID uuid.UUID) (*domain.Bookmark, error) {
	if g.repo == nil {
		return nil, errors.New("database connection not available")
	}

	bookmark, err := g.repo.InsertBookmark(ctx, userID, articleID)
	switch {
	case err == nil:
		return bookmark, nil
	case errors.Is(err, domain.ErrArticleNotFound), errors.Is(err, domain.ErrBookmarkExists):
		return nil, err
	default:
		logger.SafeErrorContext(ctx, "failed to add bookmark", "error", err, "article_id", articleID)
		return nil, errors.New("failed to add bookmark")
	}
}

func (g *BookmarkGateway) Remove(ctx context.Context, userID uuid.UUID, bookmarkID uuid.UUID) error {
	if g.repo == nil {
		return errors.New("database connection not available")
	}

	err := g.repo.DeleteBookmark(ctx, userID, bookmarkID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrBookmarkNotFound):
		return err
	default:
		logger.SafeErrorContext(ctx, "failed to remove bookmark", "error", err, "bookmark_id", bookmarkID)
		return errors.New("failed to remove bookmark")
	}
}

func (g *BookmarkGateway) Toggle(ctx context.Context, userID uuid.UUID, articleID uuid.UUID) (bool, error) {
	if g.repo == nil {
		return false, errors.New("database connection not available")
	}

	bookmarked, err := g.repo.ToggleBookmark(ctx, userID, articleID)
	switch {
	case err == nil:
		return bookmarked, nil
	case errors.Is(err, domain.ErrArticleNotFound):
		return false, err
	default:
		logger.SafeErrorContext(ctx, "failed to toggle bookmark", "error", err, "article_id", articleID)
		return false, errors.New("failed to toggle bookmark")
	}
}

func (g *BookmarkGateway) Check(ctx context.Context, userID uuid.UUID, articleIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	if g.repo == nil {
		return nil, errors.New("database connection not available")
	}

	result, err := g.repo.CheckBookmarks(ctx, userID, articleIDs)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to check bookmarks", "error", err)
		return nil, errors.New("failed to check bookmarks")
	}
	return result, nil
}
