package search

import (
	"testing"

	"readlog/domain"

	"github.com/stretchr/testify/assert"
)

func TestHighlight(t *testing.T) {
	tests := []struct {
		name string
		text string
		term string
		want string
	}{
		{
			name: "case-insensitive match keeps original casing",
			text: "The Quick Fox",
			term: "fox",
			want: "The Quick <mark>Fox</mark>",
		},
		{
			name: "multiple occurrences",
			text: "go and Go and GO",
			term: "go",
			want: "<mark>go</mark> and <mark>Go</mark> and <mark>GO</mark>",
		},
		{
			name: "no match",
			text: "The Quick Fox",
			term: "cat",
			want: "The Quick Fox",
		},
		{
			name: "empty term is a no-op",
			text: "The Quick Fox",
			term: "",
			want: "The Quick Fox",
		},
		{
			name: "empty text",
			text: "",
			term: "fox",
			want: "",
		},
		{
			name: "non-ascii match keeps casing",
			text: "CAFÉ au lait",
			term: "café",
			want: "<mark>CAFÉ</mark> au lait",
		},
		{
			name: "rune that shrinks when lowered stays intact",
			text: "İstanbul reading list",
			term: "reading",
			want: "İstanbul <mark>reading</mark> list",
		},
		{
			name: "rune that grows when lowered stays intact",
			text: "Ⱥa",
			term: "a",
			want: "Ⱥ<mark>a</mark>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Highlight(tt.text, tt.term))
		})
	}
}

func TestHighlightArticle(t *testing.T) {
	article := domain.Article{
		Title:       "The Quick Fox",
		Description: "a fox story",
		SiteName:    "fox news",
	}

	got := HighlightArticle(article, "fox")
	assert.Equal(t, "The Quick <mark>Fox</mark>", got.Title)
	assert.Equal(t, "a <mark>fox</mark> story", got.Description)
	// Only title and description are emphasized.
	assert.Equal(t, "fox news", got.SiteName)
	// Input is untouched.
	assert.Equal(t, "The Quick Fox", article.Title)
}
