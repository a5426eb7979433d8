package readlog_db

import (
	"context"
	"errors"
	"fmt"

	"readlog/domain"
	"readlog/utils/logger"

	"github.com/google/uuid"
)

const articleExistsQuery = `
	SELECT EXISTS (SELECT 1 FROM articles WHERE id = $1 AND user_id = $2)
`

const deleteArticleBookmarksQuery = `
	DELETE FROM bookmarks WHERE article_id = $1 AND user_id = $2
`

const deleteArticleQuery = `
	DELETE FROM articles WHERE id = $1 AND user_id = $2
`

// DeleteArticle removes an article and its bookmarks in one transaction.
// Bookmarks go first; if that step fails the whole operation aborts and the
// article row survives, so a bookmark can never reference a missing article.
func (r *ReadlogDBRepository) DeleteArticle(ctx context.Context, userID, articleID uuid.UUID) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to begin transaction", "error", err)
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var exists bool
	if err := tx.QueryRow(ctx, articleExistsQuery, articleID, userID).Scan(&exists); err != nil {
		logger.SafeErrorContext(ctx, "failed to check article ownership", "error", err)
		return err
	}
	if !exists {
		return domain.ErrArticleNotFound
	}

	if _, err := tx.Exec(ctx, deleteArticleBookmarksQuery, articleID, userID); err != nil {
		logger.SafeErrorContext(ctx, "failed to delete dependent bookmarks", "error", err, "article_id", articleID)
		return fmt.Errorf("%w: %w", domain.ErrDependencyDeleteFailed, err)
	}

	if _, err := tx.Exec(ctx, deleteArticleQuery, articleID, userID); err != nil {
		logger.SafeErrorContext(ctx, "failed to delete article", "error", err, "article_id", articleID)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		logger.SafeErrorContext(ctx, "failed to commit article deletion", "error", err)
		return err
	}

	logger.SafeInfoContext(ctx, "article deleted", "article_id", articleID)
	return nil
}
