package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"melonrank/internal/config"
	"melonrank/internal/jobs"
	"melonrank/internal/melon"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch the Melon chart and replace the stored snapshot",
	Long:  "Fetch the Melon chart and replace the stored snapshot. An empty fetch leaves the snapshot untouched.",
	Args:  cobra.NoArgs,
	RunE:  runRefresh,
}

func runRefresh(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		return err
	}

	st, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	fetcher := melon.NewFetcher(config.Load().FetcherOptions(yamlCfg)...)
	result, err := jobs.NewChartRefresher(fetcher, st).Refresh(ctx)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), formatRefresh(result))
	return nil
}
