package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/panels/internal/cli"
	"github.com/aretw0/panels/internal/scaffold"
)

func newMakeCmd(a *app) *cobra.Command {
	var (
		opts          scaffold.Options
		noInteraction bool
	)

	cmd := &cobra.Command{
		Use:   "make [name]",
		Short: "Generate a new widget type",
		Long: `Generates a Go widget type under widgets/ (or panels/<panel>/widgets/)
embedding a stats overview, a chart variant or the bare widget base.

Missing options are asked for when stdin is a terminal.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := a.cfg.Scaffold()
			if !cmd.Flags().Changed("root") {
				opts.Root = base.Root
			}
			if !cmd.Flags().Changed("module") {
				opts.Module = base.Module
			}
			if !cmd.Flags().Changed("panel") && opts.Panel == "" {
				opts.Panel = base.Panel
			}
			if len(args) > 0 {
				opts.Name = args[0]
			}

			if !noInteraction && cli.Interactive() {
				p := cli.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
				askPolling := !cmd.Flags().Changed("polling")
				if err := cli.AskScaffold(p, &opts, askPolling); err != nil {
					return err
				}
			}

			res, err := scaffold.Generate(opts)
			if err != nil {
				return err
			}
			a.logger.Debug("widget generated", "path", res.Path, "type", res.Type)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Widget %s created successfully.\n\n", res.Type)
			fmt.Fprintf(out, "  Location: %s\n", res.Path)
			if res.Import != "" {
				fmt.Fprintf(out, "  Import:   %s\n", res.Import)
			}
			fmt.Fprintf(out, "  Usage:    %s\n", res.Usage)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Panel, "panel", "", "panel the widget belongs to")
	flags.StringVarP(&opts.Kind, "type", "t", "", "widget type (basic, stats, chart)")
	flags.StringVar(&opts.Chart, "chart", "", "chart type (line, bar, pie, doughnut, area)")
	flags.BoolVar(&opts.Polling, "polling", false, "enable auto-refresh polling")
	flags.IntVar(&opts.PollingInterval, "interval", 0, "polling interval in seconds")
	flags.BoolVarP(&opts.Force, "force", "f", false, "overwrite an existing file")
	flags.StringVar(&opts.Root, "root", ".", "project root")
	flags.StringVar(&opts.Module, "module", "", "module path of the project, for the import hint")
	flags.BoolVarP(&noInteraction, "no-interaction", "n", false, "never prompt")
	return cmd
}
