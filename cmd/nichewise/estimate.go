package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/nichewise/internal/cli"
)

func estimateCmd() *cobra.Command {
	var (
		longViews  int64
		shortViews int64
		validate   bool
	)

	cmd := &cobra.Command{
		Use:   "estimate <niche or category>",
		Short: "Estimate revenue from view counts for a niche or category",
		Long: `Estimate revenue from long-form and short-form view counts. The argument
may be a category id (e.g. "finance"), a category synonym (e.g. "fitness"),
or a free-text niche description, which is classified first.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			eng, cleanup, err := newEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			query := strings.Join(args, " ")
			breakdown, err := eng.EstimateRevenue(ctx, longViews, shortViews, query)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, cli.RenderBreakdown(breakdown))

			if validate {
				comparison, err := eng.ValidateAgainstBenchmark(breakdown, longViews+shortViews)
				if err != nil {
					return err
				}
				fmt.Fprint(out, "\n"+cli.RenderComparison(comparison))
			}

			return nil
		},
	}

	cmd.Flags().Int64Var(&longViews, "long", 0, "long-form view count")
	cmd.Flags().Int64Var(&shortViews, "short", 0, "short-form view count")
	cmd.Flags().BoolVar(&validate, "validate", false, "compare against the industry benchmark")

	return cmd
}
