package search

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"readlog/domain"
)

// Highlight wraps every case-insensitive occurrence of term in text with
// <mark> tags. The original casing of the matched substring is preserved.
// Purely presentational; it never changes result order.
//
// Matching is rune-wise: lowercasing can change a rune's byte length, so
// byte offsets into a lowered copy cannot be used to slice the original.
func Highlight(text, term string) string {
	if term == "" || text == "" {
		return text
	}

	termRunes := []rune(term)

	var b strings.Builder
	pos := 0
	for pos < len(text) {
		end, ok := matchAt(text, pos, termRunes)
		if !ok {
			_, size := utf8.DecodeRuneInString(text[pos:])
			b.WriteString(text[pos : pos+size])
			pos += size
			continue
		}
		b.WriteString("<mark>")
		b.WriteString(text[pos:end])
		b.WriteString("</mark>")
		pos = end
	}
	return b.String()
}

// matchAt reports whether term occurs case-insensitively at byte offset pos
// of text, and if so the byte offset just past the match in text.
func matchAt(text string, pos int, termRunes []rune) (int, bool) {
	for _, tr := range termRunes {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if size == 0 || unicode.ToLower(r) != unicode.ToLower(tr) {
			return 0, false
		}
		pos += size
	}
	return pos, true
}

// HighlightArticle returns a copy of the article with title and description
// highlighted for the given term.
func HighlightArticle(article domain.Article, term string) domain.Article {
	article.Title = Highlight(article.Title, term)
	article.Description = Highlight(article.Description, term)
	return article
}
