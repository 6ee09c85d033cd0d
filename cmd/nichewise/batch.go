package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/Veraticus/nichewise/internal/cli"
	"github.com/Veraticus/nichewise/internal/model"
)

func batchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <file>",
		Short: "Classify a file of niche queries, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			eng, cleanup, err := newEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open input file: %w", err)
			}
			defer func() { _ = file.Close() }()

			var queries []string
			scanner := bufio.NewScanner(file)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line != "" {
					queries = append(queries, line)
				}
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input file: %w", err)
			}

			bar := progressbar.Default(int64(len(queries)), "classifying")

			counts := make(map[model.MatchType]int)
			results := make([]*model.ClassificationResult, 0, len(queries))
			for _, q := range queries {
				if err := ctx.Err(); err != nil {
					return err
				}
				result := eng.ClassifyNiche(ctx, q)
				results = append(results, result)
				counts[result.MatchType]++
				_ = bar.Add(1)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			for _, r := range results {
				fmt.Fprintf(out, "%-40s %-12s %s\n", r.Query, r.MatchType, r.Category.DisplayName)
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf(
				"%d classified: %d exact, %d partial, %d fuzzy, %d semantic, %d unknown",
				len(results),
				counts[model.MatchExact], counts[model.MatchPartial],
				counts[model.MatchFuzzy], counts[model.MatchSemantic],
				counts[model.MatchDefault])))

			return nil
		},
	}
}
