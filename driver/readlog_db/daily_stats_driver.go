package readlog_db

import (
	"context"
	"errors"

	"readlog/utils/logger"

	"github.com/google/uuid"
)

// Statistics sum the daily rollup instead of counting raw article rows: the
// scan is bounded by one row per day regardless of how much the user reads.

const sumBlogCountTotalQuery = `
	SELECT COALESCE(SUM(blog_count), 0) FROM daily_stats WHERE user_id = $1
`

const sumBlogCountSinceQuery = `
	SELECT COALESCE(SUM(blog_count), 0)
	FROM daily_stats
	WHERE user_id = $1 AND daily_date >= $2::date
`

const fetchDailyCountsQuery = `
	SELECT daily_date::text, blog_count
	FROM daily_stats
	WHERE user_id = $1 AND daily_date BETWEEN $2::date AND $3::date
`

const countBookmarksQuery = `
	SELECT COUNT(*) FROM bookmarks WHERE user_id = $1
`

// SumBlogCountTotal returns the all-time article count from the rollup.
func (r *ReadlogDBRepository) SumBlogCountTotal(ctx context.Context, userID uuid.UUID) (int, error) {
	return r.sumQuery(ctx, sumBlogCountTotalQuery, userID)
}

// SumBlogCountSince returns the article count on or after the boundary date
// (inclusive, "YYYY-MM-DD").
func (r *ReadlogDBRepository) SumBlogCountSince(ctx context.Context, userID uuid.UUID, since string) (int, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("database connection not available")
	}

	var total int
	if err := r.pool.QueryRow(ctx, sumBlogCountSinceQuery, userID, since).Scan(&total); err != nil {
		logger.SafeErrorContext(ctx, "failed to sum daily stats", "error", err, "since", since)
		return 0, err
	}
	return total, nil
}

// FetchDailyCounts returns date -> blog_count for the inclusive range. Days
// without a rollup row are simply absent; zero-filling is the caller's job.
func (r *ReadlogDBRepository) FetchDailyCounts(ctx context.Context, userID uuid.UUID, from, to string) (map[string]int, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	rows, err := r.pool.Query(ctx, fetchDailyCountsQuery, userID, from, to)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to fetch daily counts", "error", err, "from", from, "to", to)
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var date string
		var count int
		if err := rows.Scan(&date, &count); err != nil {
			return nil, err
		}
		counts[date] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// CountBookmarks returns the user's bookmark total.
func (r *ReadlogDBRepository) CountBookmarks(ctx context.Context, userID uuid.UUID) (int, error) {
	return r.sumQuery(ctx, countBookmarksQuery, userID)
}

func (r *ReadlogDBRepository) sumQuery(ctx context.Context, sql string, userID uuid.UUID) (int, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("database connection not available")
	}

	var total int
	if err := r.pool.QueryRow(ctx, sql, userID).Scan(&total); err != nil {
		logger.SafeErrorContext(ctx, "failed to run aggregate query", "error", err)
		return 0, err
	}
	return total, nil
}

const rebuildDailyStatsDeleteQuery = `
	DELETE FROM daily_stats WHERE user_id = $1
`

const rebuildDailyStatsInsertQuery = `
	INSERT INTO daily_stats (user_id, daily_date, blog_count)
	SELECT user_id, read_date, COUNT(*)
	FROM articles
	WHERE user_id = $1
	GROUP BY user_id, read_date
`

// RebuildDailyStats recomputes the rollup from raw articles. Deletions never
// decrement the rollup, so drift accumulates by design; this is the repair
// path operators run when it matters.
func (r *ReadlogDBRepository) RebuildDailyStats(ctx context.Context, userID uuid.UUID) error {
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

	if _, err := tx.Exec(ctx, rebuildDailyStatsDeleteQuery, userID); err != nil {
		logger.SafeErrorContext(ctx, "failed to clear daily stats", "error", err)
		return err
	}
	if _, err := tx.Exec(ctx, rebuildDailyStatsInsertQuery, userID); err != nil {
		logger.SafeErrorContext(ctx, "failed to rebuild daily stats", "error", err)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		logger.SafeErrorContext(ctx, "failed to commit daily stats rebuild", "error", err)
		return err
	}

	logger.SafeInfoContext(ctx, "daily stats rebuilt", "user_id", userID)
	return nil
}
