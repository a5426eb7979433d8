// Package htmlmeta extracts page metadata from Open Graph, Twitter Card,
// and Dublin Core meta tags.
package htmlmeta

import (
	"html"
	"io"
	"strings"

	"readlog/domain"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

var stripPolicy = bluemonday.StrictPolicy()

// Parse reads an HTML document and resolves each metadata attribute through
// its fallback chain: Open Graph first, then Twitter Card, then Dublin Core,
// else empty. The page URL falls back to sourceURL when og:url is absent.
func Parse(r io.Reader, sourceURL string) (*domain.PageMetadata, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	meta := &domain.PageMetadata{
		Title: firstMetaContent(doc,
			"meta[property='og:title']",
			"meta[name='twitter:title']",
			"meta[property='twitter:title']",
			"meta[name='dc.title']",
			"meta[name='DC.title']",
		),
		Description: firstMetaContent(doc,
			"meta[property='og:description']",
			"meta[name='twitter:description']",
			"meta[property='twitter:description']",
			"meta[name='dc.description']",
			"meta[name='DC.description']",
		),
		Image: firstMetaContent(doc,
			"meta[property='og:image']",
			"meta[name='twitter:image']",
			"meta[property='twitter:image']",
		),
		SiteName: firstMetaContent(doc,
			"meta[property='og:site_name']",
			"meta[name='twitter:site']",
		),
		URL: firstMetaContent(doc, "meta[property='og:url']"),
	}

	if meta.URL == "" {
		meta.URL = sourceURL
	}

	return meta, nil
}

// firstMetaContent returns the sanitized content of the first selector that
// matches a non-empty meta tag.
func firstMetaContent(doc *goquery.Document, selectors ...string) string {
	for _, selector := range selectors {
		content, exists := doc.Find(selector).First().Attr("content")
		if !exists {
			continue
		}
		if cleaned := cleanText(content); cleaned != "" {
			return cleaned
		}
	}
	return ""
}

// cleanText strips markup, unescapes entities, and collapses whitespace runs
// to single spaces.
func cleanText(s string) string {
	s = stripPolicy.Sanitize(s)
	s = html.UnescapeString(s)
	return strings.Join(strings.Fields(s), " ")
}
