package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"untouched", "aespa", "aespa"},
		{"trims spaces", "  아이유  ", "아이유"},
		{"trims tabs and newlines", "\tIU\n", "IU"},
		{"keeps case", "NewJeans", "NewJeans"},
		{"keeps inner spaces", " BTS  V ", "BTS  V"},
		{"blank", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeQuery(tt.query); got != tt.want {
				t.Errorf("NormalizeQuery(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestValidateQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr error
	}{
		{"valid ascii", "aespa", nil},
		{"valid korean", "아이유 콘서트", nil},
		{"long query", strings.Repeat("가", 500), nil},
		{"empty", "", ErrEmptyQuery},
		{"invalid utf8", "\xff\xfe", ErrInvalidQuery},
		{"nul byte", "a\x00b", ErrInvalidQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuery(tt.query)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateQuery(%q) = %v, want %v", tt.query, err, tt.wantErr)
			}
		})
	}
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		limit, want int
	}{
		{0, 10},
		{-3, 10},
		{5, 5},
		{50, 50},
		{51, 50},
	}
	for _, tt := range tests {
		if got := ClampLimit(tt.limit, 10, 50); got != tt.want {
			t.Errorf("ClampLimit(%d) = %d, want %d", tt.limit, got, tt.want)
		}
	}
}
