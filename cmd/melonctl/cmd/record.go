package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"melonrank/internal/validation"
)

var recordCmd = &cobra.Command{
	Use:   "record <keyword>",
	Short: "Count one search for keyword",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecord,
}

func runRecord(cmd *cobra.Command, args []string) error {
	keyword := validation.NormalizeQuery(args[0])
	if err := validation.ValidateQuery(keyword); err != nil {
		return err
	}

	ctx := cmd.Context()
	st, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.RecordSearch(ctx, keyword); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "recorded %q\n", keyword)
	return nil
}
