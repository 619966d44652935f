package models

import "strings"

// BlogItem is a single blog search hit as returned by the Naver search API.
type BlogItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	BloggerName string `json:"bloggername"`
	BloggerLink string `json:"bloggerlink"`
	PostDate    string `json:"postdate"`
}

// BlogResult carries search hits or an inline error message for display.
// Error is empty on success.
type BlogResult struct {
	Items []BlogItem `json:"items"`
	Error string     `json:"error,omitempty"`
}

var highlightReplacer = strings.NewReplacer("<b>", "", "</b>", "")

// PlainTitle returns the title without the <b> highlight tags the API inserts
// around matched terms.
func (b BlogItem) PlainTitle() string {
	return highlightReplacer.Replace(b.Title)
}

// PlainDescription returns the description without highlight tags.
func (b BlogItem) PlainDescription() string {
	return highlightReplacer.Replace(b.Description)
}
