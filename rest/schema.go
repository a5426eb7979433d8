package rest

// CreateArticleRequest is the POST /articles payload. Only url is required;
// a missing title triggers a metadata fetch, and a missing read_date means
// today.
type CreateArticleRequest struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	SiteName    string `json:"site_name"`
	ReadDate    string `json:"read_date"`
}

type AddBookmarkRequest struct {
	BlogPostID string `json:"blog_post_id"`
}

type ToggleBookmarkRequest struct {
	BlogPostID string `json:"blog_post_id"`
}

type CheckBookmarksRequest struct {
	BlogPostIDs []string `json:"blog_post_ids"`
}

type ToggleBookmarkResponse struct {
	IsBookmarked bool   `json:"isBookmarked"`
	Message      string `json:"message"`
}

type FetchMetadataRequest struct {
	URL string `json:"url"`
}

type RebuildRollupRequest struct {
	UserID string `json:"user_id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
