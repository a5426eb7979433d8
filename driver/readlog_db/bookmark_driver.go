package readlog_db

import (
	"context"
	"errors"

	"readlog/domain"
	"readlog/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const insertBookmarkQuery = `
	INSERT INTO bookmarks (user_id, article_id)
	VALUES ($1, $2)
	RETURNING id, created_at
`

const deleteBookmarkByIDQuery = `
	DELETE FROM bookmarks WHERE id = $1 AND user_id = $2
`

const deleteBookmarkByArticleQuery = `
	DELETE FROM bookmarks WHERE article_id = $1 AND user_id = $2
`

const insertBookmarkIgnoringDuplicateQuery = `
	INSERT INTO bookmarks (user_id, article_id)
	VALUES ($1, $2)
	ON CONFLICT (user_id, article_id) DO NOTHING
`

const checkBookmarksQuery = `
	SELECT article_id FROM bookmarks
	WHERE user_id = $1 AND article_id = ANY($2)
`

// InsertBookmark adds a bookmark for an article the user owns. The
// uniqueness constraint, not a pre-check, detects duplicates (SQLSTATE
// 23505), which closes the race between two concurrent adds.
func (r *ReadlogDBRepository) InsertBookmark(ctx context.Context, userID, articleID uuid.UUID) (*domain.Bookmark, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	owned, err := r.articleOwnedBy(ctx, userID, articleID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, domain.ErrArticleNotFound
	}

	bookmark := domain.Bookmark{UserID: userID, ArticleID: articleID}
	err = r.pool.QueryRow(ctx, insertBookmarkQuery, userID, articleID).
		Scan(&bookmark.ID, &bookmark.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrBookmarkExists
		}
		logger.SafeErrorContext(ctx, "failed to insert bookmark", "error", err, "article_id", articleID)
		return nil, err
	}

	return &bookmark, nil
}

// DeleteBookmark removes a bookmark by its own id.
func (r *ReadlogDBRepository) DeleteBookmark(ctx context.Context, userID, bookmarkID uuid.UUID) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	tag, err := r.pool.Exec(ctx, deleteBookmarkByIDQuery, bookmarkID, userID)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to delete bookmark", "error", err, "bookmark_id", bookmarkID)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBookmarkNotFound
	}
	return nil
}

// ToggleBookmark flips the bookmark state for (user, article) atomically and
// returns the resulting state. The delete-first probe plus the ON CONFLICT
// insert make concurrent duplicate toggles resolve to a consistent row count
// instead of a constraint failure.
func (r *ReadlogDBRepository) ToggleBookmark(ctx context.Context, userID, articleID uuid.UUID) (bool, error) {
	if r == nil || r.pool == nil {
		return false, errors.New("database connection not available")
	}

	owned, err := r.articleOwnedBy(ctx, userID, articleID)
	if err != nil {
		return false, err
	}
	if !owned {
		return false, domain.ErrArticleNotFound
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to begin transaction", "error", err)
		return false, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	tag, err := tx.Exec(ctx, deleteBookmarkByArticleQuery, articleID, userID)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to delete bookmark in toggle", "error", err)
		return false, err
	}

	bookmarked := false
	if tag.RowsAffected() == 0 {
		if _, err := tx.Exec(ctx, insertBookmarkIgnoringDuplicateQuery, userID, articleID); err != nil {
			logger.SafeErrorContext(ctx, "failed to insert bookmark in toggle", "error", err)
			return false, err
		}
		bookmarked = true
	}

	if err := tx.Commit(ctx); err != nil {
		logger.SafeErrorContext(ctx, "failed to commit bookmark toggle", "error", err)
		return false, err
	}

	logger.SafeInfoContext(ctx, "bookmark toggled", "article_id", articleID, "is_bookmarked", bookmarked)
	return bookmarked, nil
}

// CheckBookmarks reports the bookmark state for every requested article id.
// Ids that are unbookmarked, missing, or owned by someone else map to false.
func (r *ReadlogDBRepository) CheckBookmarks(ctx context.Context, userID uuid.UUID, articleIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	result := make(map[uuid.UUID]bool, len(articleIDs))
	for _, id := range articleIDs {
		result[id] = false
	}
	if len(articleIDs) == 0 {
		return result, nil
	}

	rows, err := r.pool.Query(ctx, checkBookmarksQuery, userID, articleIDs)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to check bookmarks", "error", err)
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		result[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *ReadlogDBRepository) articleOwnedBy(ctx context.Context, userID, articleID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, articleExistsQuery, articleID, userID).Scan(&exists); err != nil {
		logger.SafeErrorContext(ctx, "failed to check article ownership", "error", err)
		return false, err
	}
	return exists, nil
}
