package cli

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/aretw0/panels/internal/scaffold"
	"github.com/aretw0/panels/pkg/widget"
)

// noPanel is the select option for widgets outside any panel.
const noPanel = "(none)"

// AskScaffold fills the options the user did not pass as flags.
// askPolling is false when polling was already decided on the command line.
func AskScaffold(p *Prompter, opts *scaffold.Options, askPolling bool) error {
	var err error
	if opts.Name == "" {
		if opts.Name, err = p.Text("What is the widget name? (e.g. StatsOverview, RecentOrders)", "", true); err != nil {
			return err
		}
	}

	if opts.Panel == "" {
		if panels := Panels(opts.Root); len(panels) > 0 {
			choice, err := p.Select("Which panel is this widget for?", append([]string{noPanel}, panels...), noPanel)
			if err != nil {
				return err
			}
			if choice != noPanel {
				opts.Panel = choice
			}
		}
	}

	if opts.Kind == "" && opts.Chart == "" {
		if opts.Kind, err = p.Select("What type of widget?", scaffold.Kinds, scaffold.KindBasic); err != nil {
			return err
		}
	}

	if opts.Kind == scaffold.KindChart && opts.Chart == "" {
		charts := make([]string, len(widget.ChartTypes))
		for i, c := range widget.ChartTypes {
			charts[i] = string(c)
		}
		if opts.Chart, err = p.Select("What type of chart?", charts, scaffold.DefaultChart); err != nil {
			return err
		}
	}

	if askPolling {
		if opts.Polling, err = p.Confirm("Enable auto-refresh polling?", false); err != nil {
			return err
		}
		if opts.Polling && opts.PollingInterval <= 0 {
			if opts.PollingInterval, err = p.Int("Polling interval (seconds)", widget.DefaultPollingInterval); err != nil {
				return err
			}
		}
	}
	return nil
}

// Panels lists the panel directories under root/panels.
func Panels(root string) []string {
	entries, err := os.ReadDir(filepath.Join(root, "panels"))
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out
}
