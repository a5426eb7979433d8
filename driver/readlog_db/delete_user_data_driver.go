package readlog_db

import (
	"context"
	"errors"

	"readlog/utils/logger"

	"github.com/google/uuid"
)

// DeleteUserData removes everything the user owns: bookmarks first, then the
// rollup, then the articles, all in one transaction.
func (r *ReadlogDBRepository) DeleteUserData(ctx context.Context, userID uuid.UUID) error {
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

	for _, sql := range []string{
		`DELETE FROM bookmarks WHERE user_id = $1`,
		`DELETE FROM daily_stats WHERE user_id = $1`,
		`DELETE FROM articles WHERE user_id = $1`,
	} {
		if _, err := tx.Exec(ctx, sql, userID); err != nil {
			logger.SafeErrorContext(ctx, "failed to delete user rows", "error", err)
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		logger.SafeErrorContext(ctx, "failed to commit user data deletion", "error", err)
		return err
	}

	logger.SafeInfoContext(ctx, "user data deleted", "user_id", userID)
	return nil
}
