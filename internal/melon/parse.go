package melon

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"melonrank/internal/models"
)

// Selectors are the CSS selectors used to pick chart rows and their fields.
// Field selectors are matched inside each row.
type Selectors struct {
	Row    string `yaml:"row"`
	Rank   string `yaml:"rank"`
	Title  string `yaml:"title"`
	Artist string `yaml:"artist"`
}

// DefaultSelectors match the Melon top 100 page layout.
var DefaultSelectors = Selectors{
	Row:    ".lst50, .lst100",
	Rank:   ".rank",
	Title:  ".ellipsis.rank01 a",
	Artist: ".ellipsis.rank02 a",
}

type compiledSelectors struct {
	row, rank, title, artist cascadia.Selector
}

func (s Selectors) compile() (*compiledSelectors, error) {
	var c compiledSelectors
	for _, f := range []struct {
		name string
		expr string
		dst  *cascadia.Selector
	}{
		{"row", s.Row, &c.row},
		{"rank", s.Rank, &c.rank},
		{"title", s.Title, &c.title},
		{"artist", s.Artist, &c.artist},
	} {
		sel, err := cascadia.Compile(f.expr)
		if err != nil {
			return nil, fmt.Errorf("compile %s selector %q: %w", f.name, f.expr, err)
		}
		*f.dst = sel
	}
	return &c, nil
}

// Parse extracts chart entries from a chart page in document order.
// Rows whose rank is not a positive decimal number are skipped. A missing
// title or artist is replaced by models.NoTitle or models.NoArtist.
func Parse(r io.Reader, sel Selectors) ([]models.ChartEntry, error) {
	compiled, err := sel.compile()
	if err != nil {
		return nil, err
	}

	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	entries := []models.ChartEntry{}
	for _, row := range compiled.row.MatchAll(doc) {
		rank, ok := parseRank(fieldText(row, compiled.rank, ""))
		if !ok {
			continue
		}
		entries = append(entries, models.ChartEntry{
			Rank:   rank,
			Title:  fieldText(row, compiled.title, models.NoTitle),
			Artist: fieldText(row, compiled.artist, models.NoArtist),
		})
	}
	return entries, nil
}

// fieldText returns the trimmed text of the first descendant of row matching
// sel, or fallback when nothing matches.
func fieldText(row *html.Node, sel cascadia.Selector, fallback string) string {
	for c := row.FirstChild; c != nil; c = c.NextSibling {
		if n := sel.MatchFirst(c); n != nil {
			return strings.TrimSpace(text(n))
		}
	}
	return fallback
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func parseRank(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	rank, err := strconv.Atoi(s)
	if err != nil || rank < 1 {
		return 0, false
	}
	return rank, true
}
