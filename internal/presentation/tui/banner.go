package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the panels banner and version to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"                          _     ", "#38bdf8"},
		{"  _ __   __ _ _ __   ___| |___ ", "#22d3ee"},
		{" | '_ \\ / _` | '_ \\ / _ \\ / __|", "#2dd4bf"},
		{" | |_) | (_| | | | |  __/ \\__ \\", "#34d399"},
		{" | .__/ \\__,_|_| |_|\\___|_|___/", "#4ade80"},
		{" |_|                            ", "#a3e635"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String(" v"+version).Faint())
	fmt.Fprintln(w)
}
