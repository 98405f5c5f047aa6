//go:build !release

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/izhairtrend/hairtrend/internal/locale"
)

func addDevCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(localesCmd())
}

func localesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "Check the locale catalogs",
		Long:  "Loads every catalog and prints each key per locale; fails on a missing key.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := locale.Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, l := range locale.All() {
				d := catalog.Dictionary(l)
				_, _ = fmt.Fprintf(out, "%s\t%s\t%s\n", l.Label(), d.Hero, d.Tagline)
				for i, label := range d.Nav {
					_, _ = fmt.Fprintf(out, "  nav[%d]\t%s\n", i, label)
				}
			}
			_, _ = fmt.Fprintf(out, "%d keys × %d locales ok\n", len(locale.Keys()), len(locale.All()))
			return nil
		},
	}
}
