package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/nichewise/internal/cli"
)

func historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent revenue estimates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, cleanup, err := requireStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			records, err := store.GetRecentEstimates(ctx, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, cli.FormatSuccess("No estimates recorded yet."))
				return nil
			}

			fmt.Fprintln(out, cli.TitleStyle.Render("Recent estimates"))
			for _, r := range records {
				fmt.Fprintf(out, "%s  %-16s long=%s short=%s total=%s\n",
					r.CreatedAt.Format("2006-01-02 15:04"),
					r.CategoryID,
					cli.FormatCount(r.LongFormViews),
					cli.FormatCount(r.ShortFormViews),
					cli.FormatMoney(r.TotalRevenue))
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of estimates to show")

	return cmd
}
