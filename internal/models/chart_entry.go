package models

// Placeholders stored when a chart row has no title or artist element.
const (
	NoTitle  = "제목 없음"
	NoArtist = "아티스트 없음"
)

// ChartEntry is one row of the current chart snapshot.
type ChartEntry struct {
	Rank   int    `json:"rank"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

// ArtistCount is the number of songs an artist has in the current snapshot.
type ArtistCount struct {
	Artist    string `json:"artist"`
	SongCount int    `json:"song_count"`
}
