package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"melonrank/internal/config"
	"melonrank/internal/store"
)

var databaseURL string

var rootCmd = &cobra.Command{
	Use:           "melonctl",
	Short:         "Keyword and Melon chart maintenance",
	Long:          "Refresh the Melon chart snapshot, inspect rankings and record searches against the configured database.",
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))
		if databaseURL == "" {
			databaseURL = cfg.DatabaseURL
		}
	},
}

// openStore opens the store named by --database or DATABASE_URL.
func openStore(ctx context.Context) (store.Store, error) {
	return store.Open(ctx, databaseURL)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database", "", "database URL (default $DATABASE_URL or sqlite://search_rank.db)")

	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(artistsCmd)
	rootCmd.AddCommand(keywordsCmd)
	rootCmd.AddCommand(searchArtistCmd)
	rootCmd.AddCommand(recordCmd)
}
