package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/nichewise/internal/cli"
)

func reviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Manage the unknown-niche review queue",
	}

	cmd.AddCommand(reviewListCmd())
	cmd.AddCommand(reviewResolveCmd())

	return cmd
}

func reviewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List queries awaiting catalog curation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, cleanup, err := requireStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			queue, err := store.GetReviewQueue(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(queue) == 0 {
				fmt.Fprintln(out, cli.FormatSuccess("Review queue is empty."))
				return nil
			}

			fmt.Fprintln(out, cli.TitleStyle.Render("Unknown niches awaiting review"))
			for _, n := range queue {
				fmt.Fprintf(out, "%-32s hits=%-4d first=%s last=%s\n",
					n.Query, n.HitCount,
					n.FirstSeen.Format("2006-01-02"),
					n.LastSeen.Format("2006-01-02"))
			}

			return nil
		},
	}
}

func reviewResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <query>",
		Short: "Remove a query from the review queue after curating it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, cleanup, err := requireStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := store.ResolveUnknownQuery(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to resolve %q: %w", args[0], err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Resolved %q.", args[0])))
			return nil
		},
	}
}
