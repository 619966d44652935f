package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"melonrank/internal/jobs"
	"melonrank/internal/models"
)

func table(header string, rows func(w *tabwriter.Writer)) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, header)
	rows(w)
	w.Flush()
	return b.String()
}

func formatChart(entries []models.ChartEntry) string {
	if len(entries) == 0 {
		return "no chart entries\n"
	}
	return table("RANK\tTITLE\tARTIST", func(w *tabwriter.Writer) {
		for _, e := range entries {
			fmt.Fprintf(w, "%d\t%s\t%s\n", e.Rank, e.Title, e.Artist)
		}
	})
}

func formatArtists(artists []models.ArtistCount) string {
	if len(artists) == 0 {
		return "no artists\n"
	}
	return table("#\tARTIST\tSONGS", func(w *tabwriter.Writer) {
		for i, a := range artists {
			fmt.Fprintf(w, "%d\t%s\t%d\n", i+1, a.Artist, a.SongCount)
		}
	})
}

func formatKeywords(keywords []models.KeywordCount) string {
	if len(keywords) == 0 {
		return "no searches recorded\n"
	}
	return table("#\tKEYWORD\tCOUNT", func(w *tabwriter.Writer) {
		for i, k := range keywords {
			fmt.Fprintf(w, "%d\t%s\t%d\n", i+1, k.Keyword, k.Count)
		}
	})
}

func formatRefresh(r jobs.RefreshResult) string {
	if r.Skipped {
		return "chart fetch returned no entries; snapshot unchanged\n"
	}
	return fmt.Sprintf("stored %d chart entries at %s\n", r.Entries, r.RefreshedAt.Format("2006-01-02 15:04:05"))
}
