package validation

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Query validation errors.
var (
	ErrEmptyQuery   = errors.New("query is required")
	ErrInvalidQuery = errors.New("query contains invalid characters")
)

// NormalizeQuery trims surrounding whitespace. Case is preserved because
// keywords and artist matching are case-sensitive.
func NormalizeQuery(query string) string {
	return strings.TrimSpace(query)
}

// ValidateQuery checks a normalized query before it reaches the stores.
func ValidateQuery(query string) error {
	if query == "" {
		return ErrEmptyQuery
	}
	if !utf8.ValidString(query) || strings.ContainsRune(query, 0) {
		return ErrInvalidQuery
	}
	return nil
}

// ClampLimit bounds a client-supplied result limit to [1, max], using def
// for non-positive values.
func ClampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
