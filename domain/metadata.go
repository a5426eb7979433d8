package domain

// PageMetadata is the normalized view over Open Graph, Twitter Card, and
// Dublin Core tags for one fetched page. Every field defaults to the empty
// string when the page carries no usable tag; URL falls back to the URL the
// fetch was issued for.
type PageMetadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	SiteName    string `json:"siteName"`
	URL         string `json:"url"`
}

// IsEmpty reports whether the fetch produced no metadata beyond the URL.
func (m PageMetadata) IsEmpty() bool {
	return m.Title == "" && m.Description == "" && m.Image == "" && m.SiteName == ""
}
