package readlog_db

import (
	"context"
	"errors"
	"strings"

	"readlog/domain"
	"readlog/utils/logger"

	"github.com/google/uuid"
)

const insertArticleQuery = `
	INSERT INTO articles (user_id, url, title, description, image_url, site_name, read_date)
	VALUES ($1, $2, $3, $4, $5, $6, $7::date)
	RETURNING id, read_date::text, created_at, updated_at
`

// Incrementing and inserting race against concurrent saves for the same day;
// the ON CONFLICT arm makes the increment atomic at the row level so counts
// are never lost.
const upsertDailyStatQuery = `
	INSERT INTO daily_stats (user_id, daily_date, blog_count)
	VALUES ($1, $2::date, 1)
	ON CONFLICT (user_id, daily_date)
	DO UPDATE SET blog_count = daily_stats.blog_count + 1
`

// CreateArticle persists a new article and bumps the owner's daily rollup in
// the same transaction, so the stats table can never observe the article
// without its count.
func (r *ReadlogDBRepository) CreateArticle(ctx context.Context, userID uuid.UUID, draft domain.ArticleDraft) (*domain.Article, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}
	if strings.TrimSpace(draft.URL) == "" {
		return nil, domain.ErrInvalidInput
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to begin transaction", "error", err)
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	article := domain.Article{
		UserID:      userID,
		URL:         strings.TrimSpace(draft.URL),
		Title:       draft.Title,
		Description: draft.Description,
		ImageURL:    draft.ImageURL,
		SiteName:    draft.SiteName,
	}

	err = tx.QueryRow(ctx, insertArticleQuery,
		userID,
		article.URL,
		draft.Title,
		draft.Description,
		draft.ImageURL,
		draft.SiteName,
		draft.ReadDate,
	).Scan(&article.ID, &article.ReadDate, &article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to insert article", "error", err, "url", article.URL)
		return nil, err
	}

	if _, err := tx.Exec(ctx, upsertDailyStatQuery, userID, article.ReadDate); err != nil {
		logger.SafeErrorContext(ctx, "failed to upsert daily stat", "error", err, "daily_date", article.ReadDate)
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		logger.SafeErrorContext(ctx, "failed to commit article creation", "error", err)
		return nil, err
	}

	logger.SafeInfoContext(ctx, "article created", "article_id", article.ID, "read_date", article.ReadDate)
	return &article, nil
}
