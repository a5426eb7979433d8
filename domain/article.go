package domain

import (
	"time"

	"github.com/google/uuid"
)

// Article is a saved reading record. Every article belongs to exactly one
// user; metadata fields are optional because the fetch may fail or be
// skipped at save time.
type Article struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	URL          string    `json:"url"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url"`
	SiteName     string    `json:"site_name"`
	ReadDate     string    `json:"read_date"`
	IsBookmarked bool      `json:"is_bookmarked"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ArticleDraft carries the fields accepted when saving an article.
// ReadDate is "YYYY-MM-DD"; empty means today in UTC.
type ArticleDraft struct {
	URL         string
	Title       string
	Description string
	ImageURL    string
	SiteName    string
	ReadDate    string
}

// ArticleQuery selects a page of a user's articles. Page is 1-indexed.
// SearchTerm, when non-empty, matches title, description, or site name
// case-insensitively.
type ArticleQuery struct {
	Page       int
	PageSize   int
	SearchTerm string
}

// PaginationInfo is derived per response, never stored.
type PaginationInfo struct {
	TotalCount  int `json:"total_count"`
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
	TotalPage   int `json:"total_page"`
}

// ArticlePage is one page of list/search results.
type ArticlePage struct {
	Data       []Article      `json:"data"`
	Pagination PaginationInfo `json:"pagination"`
}

// NewPaginationInfo computes total_page = ceil(totalCount/pageSize).
func NewPaginationInfo(totalCount, currentPage, pageSize int) PaginationInfo {
	totalPage := 0
	if pageSize > 0 {
		totalPage = (totalCount + pageSize - 1) / pageSize
	}
	return PaginationInfo{
		TotalCount:  totalCount,
		CurrentPage: currentPage,
		PageSize:    pageSize,
		TotalPage:   totalPage,
	}
}

// Bookmark marks one article as favorited by its owner. The (user, article)
// pair is unique at the storage level.
type Bookmark struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ArticleID uuid.UUID `json:"article_id"`
	CreatedAt time.Time `json:"created_at"`
}

// DailyStat is the per-user, per-day article rollup. BlogCount is the number
// of articles the user saved with that read date. It is the single source of
// truth for the statistics queries and is maintained transactionally at
// article-save time. Article deletion does not decrement it; the internal
// rollup rebuild recomputes it from raw articles when drift matters.
type DailyStat struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	DailyDate string    `json:"daily_date"`
	BlogCount int       `json:"blog_count"`
}
