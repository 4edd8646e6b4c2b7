// Package graph exports chart widgets as Mermaid diagrams.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/panels/pkg/dashboard"
	"github.com/aretw0/panels/pkg/widget"
)

// GenerateMermaid produces Mermaid syntax for a rendered chart widget:
// pie and doughnut charts become a pie diagram, line, area and bar charts an
// xychart. ok is false for widgets that are not charts or have no data.
func GenerateMermaid(r dashboard.Rendered) (diagram string, ok bool) {
	if r.Props["component"] != widget.ComponentChart {
		return "", false
	}
	data, _ := r.Props["data"].(widget.ChartData)
	labels := values(data["labels"])
	datasets := values(data["datasets"])
	if len(labels) == 0 || len(datasets) == 0 {
		return "", false
	}

	title := r.ID
	if h, ok := r.Props["heading"].(string); ok && h != "" {
		title = h
	}
	kind := widget.ChartType(fmt.Sprint(r.Props["chartType"]))
	options, _ := r.Props["options"].(widget.Options)

	var sb strings.Builder
	switch kind {
	case widget.ChartPie, widget.ChartDoughnut:
		first, _ := datasets[0].(widget.Dataset)
		if first == nil {
			first, _ = datasets[0].(map[string]any)
		}
		points := values(first["data"])
		if options["showLegend"] == true {
			sb.WriteString("pie showData\n")
		} else {
			sb.WriteString("pie\n")
		}
		fmt.Fprintf(&sb, "    title %s\n", sanitizeMermaidText(title))
		for i, label := range labels {
			if i >= len(points) {
				break
			}
			fmt.Fprintf(&sb, "    \"%s\" : %v\n", sanitizeMermaidText(fmt.Sprint(label)), points[i])
		}
	default:
		sb.WriteString("xychart-beta")
		if options["horizontal"] == true {
			sb.WriteString(" horizontal")
		}
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "    title \"%s\"\n", sanitizeMermaidText(title))

		quoted := make([]string, len(labels))
		for i, l := range labels {
			quoted[i] = fmt.Sprintf("\"%s\"", sanitizeMermaidText(fmt.Sprint(l)))
		}
		fmt.Fprintf(&sb, "    x-axis [%s]\n", strings.Join(quoted, ", "))

		series := "line"
		if kind == widget.ChartBar {
			series = "bar"
		}
		for _, ds := range datasets {
			var points []any
			switch d := ds.(type) {
			case widget.Dataset:
				points = values(d["data"])
			case map[string]any:
				points = values(d["data"])
			}
			nums := make([]string, len(points))
			for i, p := range points {
				nums[i] = fmt.Sprint(p)
			}
			fmt.Fprintf(&sb, "    %s [%s]\n", series, strings.Join(nums, ", "))
		}
	}
	return sb.String(), true
}

// Document renders every chart of a dashboard as fenced Mermaid blocks.
func Document(rendered []dashboard.Rendered) string {
	var sb strings.Builder
	for _, r := range rendered {
		diagram, ok := GenerateMermaid(r)
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "%%%% %s\n```mermaid\n%s```\n\n", sanitizeMermaidID(r.ID), diagram)
	}
	return sb.String()
}

// values flattens the slice shapes found in props into []any.
func values(v any) []any {
	switch s := v.(type) {
	case []any:
		return s
	case []string:
		out := make([]any, len(s))
		for i, x := range s {
			out[i] = x
		}
		return out
	case []float64:
		out := make([]any, len(s))
		for i, x := range s {
			out[i] = x
		}
		return out
	case []int:
		out := make([]any, len(s))
		for i, x := range s {
			out[i] = x
		}
		return out
	case []widget.Dataset:
		out := make([]any, len(s))
		for i, x := range s {
			out[i] = x
		}
		return out
	case []map[string]any:
		out := make([]any, len(s))
		for i, x := range s {
			out[i] = x
		}
		return out
	}
	return nil
}

func sanitizeMermaidText(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
