package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"melonrank/internal/validation"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Print the stored chart snapshot",
	Args:  cobra.NoArgs,
	RunE:  runChart,
}

var searchArtistCmd = &cobra.Command{
	Use:   "search-artist <query>",
	Short: "List chart entries whose artist contains query",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearchArtist,
}

func runChart(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	st, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	entries, err := st.ListChart(ctx)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), formatChart(entries))
	return nil
}

func runSearchArtist(cmd *cobra.Command, args []string) error {
	query := validation.NormalizeQuery(args[0])
	if err := validation.ValidateQuery(query); err != nil {
		return err
	}

	ctx := cmd.Context()
	st, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	entries, err := st.SearchChartByArtist(ctx, query)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), formatChart(entries))
	return nil
}
