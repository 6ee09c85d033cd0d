package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/nichewise/internal/catalog"
	"github.com/Veraticus/nichewise/internal/cli"
)

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the category rate table and niche catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := catalog.New()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.TitleStyle.Render(fmt.Sprintf("Catalog %s", catalog.Version)))

			for _, c := range cat.Categories() {
				fmt.Fprintf(out, "%s (long-form RPM %s)\n",
					cli.BoldStyle.Render(c.DisplayName),
					cli.FormatMoney(c.LongFormRPMUSD))

				for _, n := range cat.Niches() {
					if n.ParentCategory != c.ID || n.ID == c.ID {
						continue
					}
					fmt.Fprintf(out, "  %-24s %s  %s\n",
						n.DisplayName,
						cli.FormatMoney(n.LongFormRPMUSD),
						cli.SubtleStyle.Render(n.Description))
				}
			}

			fmt.Fprintf(out, "\nShort-form RPM is a flat %s across all categories.\n",
				cli.FormatMoney(cat.General().ShortFormRPMUSD))

			return nil
		},
	}
}
