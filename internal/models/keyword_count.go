package models

import "time"

// KeywordCount is the number of times a search keyword has been submitted.
type KeywordCount struct {
	Keyword   string    `json:"keyword"`
	Count     int64     `json:"count"`
	UpdatedAt time.Time `json:"updated_at"`
}
