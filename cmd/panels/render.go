package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/panels/internal/presentation/graph"
	"github.com/aretw0/panels/pkg/dashboard"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		id     string
		indent bool
		format string
	)

	cmd := &cobra.Command{
		Use:   "render [path]",
		Short: "Print the JSON props of a dashboard",
		Long: `Prints the props of every widget, or of one with --id. With
--format mermaid the charts are printed as Mermaid diagrams instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := a.open(args)
			if err != nil {
				return err
			}

			switch format {
			case "json":
			case "mermaid":
				return renderMermaid(cmd, board.Dashboard(), id)
			default:
				return fmt.Errorf("unknown format %q (json or mermaid)", format)
			}

			var payload any
			if id != "" {
				props, err := board.Dashboard().Render(cmd.Context(), id)
				if err != nil {
					return err
				}
				payload = props
			} else {
				rendered, err := board.Dashboard().RenderAll(cmd.Context())
				if err != nil {
					return err
				}
				payload = map[string]any{
					"dashboard": board.Name(),
					"widgets":   rendered,
				}
			}

			var data []byte
			if indent {
				data, err = json.MarshalIndent(payload, "", "  ")
			} else {
				data, err = json.Marshal(payload)
			}
			if err != nil {
				return fmt.Errorf("failed to encode props: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "render a single widget")
	cmd.Flags().BoolVar(&indent, "indent", false, "indent the output")
	cmd.Flags().StringVarP(&format, "format", "o", "json", "output format (json, mermaid)")
	return cmd
}

func renderMermaid(cmd *cobra.Command, d *dashboard.Dashboard, id string) error {
	var rendered []dashboard.Rendered
	if id != "" {
		props, err := d.Render(cmd.Context(), id)
		if err != nil {
			return err
		}
		rendered = []dashboard.Rendered{{ID: id, Props: props}}
	} else {
		var err error
		if rendered, err = d.RenderAll(cmd.Context()); err != nil {
			return err
		}
	}

	doc := graph.Document(rendered)
	if doc == "" {
		return fmt.Errorf("no chart with data to draw")
	}
	fmt.Fprint(cmd.OutOrStdout(), doc)
	return nil
}
