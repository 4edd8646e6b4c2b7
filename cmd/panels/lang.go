package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/aretw0/panels/pkg/lang"
)

func newLangCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lang [locale]",
		Short: "List locales or print the strings of one",
		Long: `Without arguments lists the supported locales. With a locale or an
Accept-Language value such as "ar-EG,en;q=0.5" prints the best matching table.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, l := range lang.Locales() {
					fmt.Fprintf(out, "%s\t%s\n", l, lang.Direction(l))
				}
				return nil
			}

			locale := lang.Match(args[0])
			table, err := lang.Table(locale)
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(table))
			for k := range table {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			fmt.Fprintf(out, "# %s (%s)\n", locale, lang.Direction(locale))
			for _, k := range keys {
				fmt.Fprintf(out, "%s = %s\n", k, table[k])
			}
			return nil
		},
	}
}
