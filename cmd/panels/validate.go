package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/panels/pkg/schema"
)

func newValidateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Check a dashboard definition",
		Long: `Builds every widget of the dashboard and checks its props against the
props contract. With --strict, columns, bar thickness and polling intervals
must also be positive.

With --print-contract COMPONENT the contract itself is printed and no
dashboard is read.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			strict := a.v.GetBool("strict")
			out := cmd.OutOrStdout()

			if component, _ := cmd.Flags().GetString("print-contract"); component != "" {
				contract, err := schema.Contract(component, strict)
				if err != nil {
					return err
				}
				data, err := json.MarshalIndent(contract, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			board, err := a.open(args)
			if err != nil {
				return err
			}

			d := board.Dashboard()
			failed := 0
			for _, id := range d.IDs() {
				w, _ := d.Widget(id)
				if err := schema.ValidateWidget(w, strict); err != nil {
					failed++
					fmt.Fprintf(out, "FAIL %s\n", id)
					errs := schema.ValidationErrors(err)
					if errs == nil {
						errs = []error{err}
					}
					for _, e := range errs {
						fmt.Fprintf(out, "  - %v\n", e)
					}
					continue
				}
				fmt.Fprintf(out, "ok   %s\n", id)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d widgets are invalid", failed, len(d.IDs()))
			}
			fmt.Fprintf(out, "Dashboard %s is valid (%d widgets)\n", board.Name(), len(d.IDs()))
			return nil
		},
	}
	cmd.Flags().Bool("strict", false, "apply range checks")
	cmd.Flags().String("print-contract", "", "print the props contract of a component (StatsOverviewWidget, ChartWidget)")
	a.v.BindPFlag("strict", cmd.Flags().Lookup("strict"))
	return cmd
}
