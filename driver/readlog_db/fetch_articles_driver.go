package readlog_db

import (
	"context"
	"errors"

	"readlog/domain"
	"readlog/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Search matches title, description, or site name case-insensitively. The
// `$2 = ''` arm keeps the SQL static whether or not a term was supplied.
const searchFilter = `
	AND ($2 = ''
		OR title ILIKE '%' || $2 || '%'
		OR description ILIKE '%' || $2 || '%'
		OR site_name ILIKE '%' || $2 || '%')
`

const countArticlesQuery = `
	SELECT COUNT(*)
	FROM articles
	WHERE user_id = $1` + searchFilter

const fetchArticlesQuery = `
	SELECT id, user_id, url, title, description, image_url, site_name,
		read_date::text, created_at, updated_at
	FROM articles
	WHERE user_id = $1` + searchFilter + `
	ORDER BY read_date DESC, created_at DESC
	LIMIT $3 OFFSET $4
`

const countBookmarkedArticlesQuery = `
	SELECT COUNT(*)
	FROM articles
	INNER JOIN bookmarks ON bookmarks.article_id = articles.id
	WHERE articles.user_id = $1` + bookmarkedSearchFilter

const bookmarkedSearchFilter = `
	AND ($2 = ''
		OR articles.title ILIKE '%' || $2 || '%'
		OR articles.description ILIKE '%' || $2 || '%'
		OR articles.site_name ILIKE '%' || $2 || '%')
`

const fetchBookmarkedArticlesQuery = `
	SELECT articles.id, articles.user_id, articles.url, articles.title,
		articles.description, articles.image_url, articles.site_name,
		articles.read_date::text, articles.created_at, articles.updated_at
	FROM articles
	INNER JOIN bookmarks ON bookmarks.article_id = articles.id
	WHERE articles.user_id = $1` + bookmarkedSearchFilter + `
	ORDER BY articles.read_date DESC, articles.created_at DESC
	LIMIT $3 OFFSET $4
`

// FetchArticles returns one page of the user's articles, newest reading
// first, optionally filtered by a search term, plus the unpaged total.
func (r *ReadlogDBRepository) FetchArticles(ctx context.Context, userID uuid.UUID, query domain.ArticleQuery) ([]domain.Article, int, error) {
	return r.fetchArticlePage(ctx, userID, query, countArticlesQuery, fetchArticlesQuery, false)
}

// FetchBookmarkedArticles is FetchArticles restricted to the join over
// bookmarks. Every returned article is marked bookmarked.
func (r *ReadlogDBRepository) FetchBookmarkedArticles(ctx context.Context, userID uuid.UUID, query domain.ArticleQuery) ([]domain.Article, int, error) {
	return r.fetchArticlePage(ctx, userID, query, countBookmarkedArticlesQuery, fetchBookmarkedArticlesQuery, true)
}

func (r *ReadlogDBRepository) fetchArticlePage(ctx context.Context, userID uuid.UUID, query domain.ArticleQuery, countSQL, pageSQL string, bookmarked bool) ([]domain.Article, int, error) {
	if r == nil || r.pool == nil {
		return nil, 0, errors.New("database connection not available")
	}

	var total int
	if err := r.pool.QueryRow(ctx, countSQL, userID, query.SearchTerm).Scan(&total); err != nil {
		logger.SafeErrorContext(ctx, "failed to count articles", "error", err)
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.PageSize
	rows, err := r.pool.Query(ctx, pageSQL, userID, query.SearchTerm, query.PageSize, offset)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to fetch articles", "error", err)
		return nil, 0, err
	}
	defer rows.Close()

	articles, err := scanArticles(rows, bookmarked)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to scan articles", "error", err)
		return nil, 0, err
	}

	return articles, total, nil
}

const fetchRecentArticlesQuery = `
	SELECT id, user_id, url, title, description, image_url, site_name,
		read_date::text, created_at, updated_at
	FROM articles
	WHERE user_id = $1
	ORDER BY read_date DESC, created_at DESC
	LIMIT $2
`

// FetchRecentArticles returns the user's most recent reads. It reads the raw
// article rows because the dashboard needs per-row detail the daily rollup
// does not carry.
func (r *ReadlogDBRepository) FetchRecentArticles(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Article, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	rows, err := r.pool.Query(ctx, fetchRecentArticlesQuery, userID, limit)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to fetch recent articles", "error", err)
		return nil, err
	}
	defer rows.Close()

	return scanArticles(rows, false)
}

func scanArticles(rows pgx.Rows, bookmarked bool) ([]domain.Article, error) {
	articles := []domain.Article{}
	for rows.Next() {
		var a domain.Article
		if err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.URL,
			&a.Title,
			&a.Description,
			&a.ImageURL,
			&a.SiteName,
			&a.ReadDate,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		a.IsBookmarked = bookmarked
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return articles, nil
}
