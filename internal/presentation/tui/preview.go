package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/panels/pkg/dashboard"
	"github.com/aretw0/panels/pkg/lang"
	"github.com/aretw0/panels/pkg/widget"
)

// Markdown renders a dashboard as a markdown document: stats as a table per
// overview, charts as a label-by-dataset table. Labels come from locale.
func Markdown(title string, rendered []dashboard.Rendered, locale string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	for _, r := range rendered {
		writeWidget(&b, r, locale)
	}
	return b.String()
}

func writeWidget(b *strings.Builder, r dashboard.Rendered, locale string) {
	heading := r.ID
	if h, ok := r.Props["heading"].(string); ok && h != "" {
		heading = h
	}
	fmt.Fprintf(b, "## %s\n\n", heading)
	if d, ok := r.Props["description"].(string); ok && d != "" {
		fmt.Fprintf(b, "%s\n\n", d)
	}

	switch r.Props["component"] {
	case widget.ComponentStatsOverview:
		writeStats(b, r.Props, locale)
	case widget.ComponentChart:
		writeChart(b, r.Props, locale)
	default:
		fmt.Fprintf(b, "_%v_\n\n", r.Props["component"])
	}

	if p, ok := r.Props["polling"].(widget.Props); ok && p["enabled"] == true {
		fmt.Fprintf(b, "> %s: %vs\n\n", lang.T(locale, "common.refresh"), p["interval"])
	}
}

func writeStats(b *strings.Builder, props widget.Props, locale string) {
	stats, _ := props["stats"].([]widget.Props)
	if len(stats) == 0 {
		fmt.Fprintf(b, "_%s_\n\n", lang.T(locale, "chart.no_data"))
		return
	}
	fmt.Fprintf(b, "| %s | | |\n|---|---|---|\n", lang.T(locale, "types.stats"))
	for _, s := range stats {
		fmt.Fprintf(b, "| %v | **%v** | %s |\n", s["label"], s["value"], text(s["description"]))
	}
	b.WriteString("\n")
}

func writeChart(b *strings.Builder, props widget.Props, locale string) {
	fmt.Fprintf(b, "%s: `%v`\n\n", lang.T(locale, "types.chart"), props["chartType"])

	data, _ := props["data"].(widget.ChartData)
	labels := toStrings(data["labels"])
	datasets := toDatasets(data["datasets"])
	if len(labels) == 0 || len(datasets) == 0 {
		fmt.Fprintf(b, "_%s_\n\n", lang.T(locale, "chart.no_data"))
		return
	}

	b.WriteString("| |")
	for i, ds := range datasets {
		name := text(ds["label"])
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
		}
		fmt.Fprintf(b, " %s |", name)
	}
	b.WriteString("\n|---|")
	for range datasets {
		b.WriteString("---|")
	}
	b.WriteString("\n")

	for i, label := range labels {
		fmt.Fprintf(b, "| %s |", label)
		for _, ds := range datasets {
			fmt.Fprintf(b, " %s |", text(at(ds["data"], i)))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if opts, ok := props["options"].(widget.Options); ok && len(opts) > 0 {
		keys := make([]string, 0, len(opts))
		for k := range opts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%s=%v", k, opts[k])
		}
		fmt.Fprintf(b, "_%s_\n\n", strings.Join(parts, ", "))
	}
}

func text(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func toStrings(v any) []string {
	switch s := v.(type) {
	case []string:
		return s
	case []any:
		out := make([]string, len(s))
		for i, x := range s {
			out[i] = fmt.Sprint(x)
		}
		return out
	}
	return nil
}

func toDatasets(v any) []widget.Dataset {
	switch ds := v.(type) {
	case []widget.Dataset:
		return ds
	case []map[string]any:
		out := make([]widget.Dataset, len(ds))
		for i, d := range ds {
			out[i] = d
		}
		return out
	case []any:
		var out []widget.Dataset
		for _, d := range ds {
			if m, ok := d.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	}
	return nil
}

// at returns element i of any slice value, or nil.
func at(v any, i int) any {
	switch s := v.(type) {
	case []any:
		if i < len(s) {
			return s[i]
		}
	case []float64:
		if i < len(s) {
			return s[i]
		}
	case []int:
		if i < len(s) {
			return s[i]
		}
	}
	return nil
}
