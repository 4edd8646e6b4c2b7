package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/panels"
	"github.com/aretw0/panels/internal/presentation/tui"
)

func newVersionCmd(a *app) *cobra.Command {
	var banner bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of panels",
		Run: func(cmd *cobra.Command, args []string) {
			version := strings.TrimSpace(panels.Version)
			if banner {
				tui.PrintBanner(cmd.OutOrStdout(), version)
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "panels version %s\n", version)
		},
	}
	cmd.Flags().BoolVar(&banner, "banner", false, "print the banner")
	return cmd
}
