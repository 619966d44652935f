package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"melonrank/internal/ranking"
)

var rankLimit int

var artistsCmd = &cobra.Command{
	Use:   "artists",
	Short: "Rank artists by song count in the stored chart",
	Args:  cobra.NoArgs,
	RunE:  runArtists,
}

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Rank keywords by search count",
	Args:  cobra.NoArgs,
	RunE:  runKeywords,
}

func init() {
	artistsCmd.Flags().IntVarP(&rankLimit, "limit", "n", 10, "number of artists to show")
	keywordsCmd.Flags().IntVarP(&rankLimit, "limit", "n", 10, "number of keywords to show")
}

func runArtists(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	st, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	artists, err := ranking.NewEngine(st, st).ArtistSongCounts(ctx, rankLimit)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), formatArtists(artists))
	return nil
}

func runKeywords(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	st, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	keywords, err := ranking.NewEngine(st, st).TopKeywords(ctx, rankLimit)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), formatKeywords(keywords))
	return nil
}
