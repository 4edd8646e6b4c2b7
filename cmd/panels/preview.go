package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/panels/internal/presentation/tui"
	"github.com/aretw0/panels/pkg/lang"
)

func newPreviewCmd(a *app) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "preview [path]",
		Short: "Show a dashboard in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := a.open(args)
			if err != nil {
				return err
			}
			rendered, err := board.Dashboard().RenderAll(cmd.Context())
			if err != nil {
				return err
			}

			locale := lang.Match(a.cfg.Locale)
			return printMarkdown(cmd.OutOrStdout(), tui.Markdown(board.Name(), rendered, locale), raw)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without styling")
	return cmd
}

// printMarkdown styles md with glamour unless raw is set or stdout is not a terminal.
func printMarkdown(w io.Writer, md string, raw bool) error {
	if raw || !term.IsTerminal(int(os.Stdout.Fd())) {
		_, err := io.WriteString(w, md)
		return err
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width > 120 {
		width = 120
	}
	render, err := tui.NewRenderer(width)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := render(md)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
