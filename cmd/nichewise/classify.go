package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/nichewise/internal/cli"
)

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <niche description>",
		Short: "Classify a free-text niche description into a category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			eng, cleanup, err := newEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			query := strings.Join(args, " ")
			result := eng.ClassifyNiche(ctx, query)

			fmt.Fprint(cmd.OutOrStdout(), cli.RenderClassification(result))
			return nil
		},
	}
}
