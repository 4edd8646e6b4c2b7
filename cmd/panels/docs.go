package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/panels/pkg/docs"
)

func newDocsCmd(a *app) *cobra.Command {
	var (
		search string
		raw    bool
	)

	cmd := &cobra.Command{
		Use:   "docs [slug]",
		Short: "Read the widgets documentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			switch {
			case search != "":
				results := docs.Search(search)
				if len(results) == 0 {
					return fmt.Errorf("no documentation found for %q", search)
				}
				for _, r := range results {
					fmt.Fprintf(out, "%-16s %s (score %d)\n", r.Slug, r.Title, r.Score)
				}
				return nil
			case len(args) > 0:
				page, err := docs.Get(args[0])
				if err != nil {
					return err
				}
				return printMarkdown(out, page.Body, raw)
			default:
				var b strings.Builder
				for _, p := range docs.Pages() {
					fmt.Fprintf(&b, "%-16s %s\n", p.Slug, p.Title)
				}
				_, err := fmt.Fprint(out, b.String())
				return err
			}
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "search the documentation")
	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without styling")
	return cmd
}
