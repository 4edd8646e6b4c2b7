package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/panels/internal/presentation/graph"
	"github.com/aretw0/panels/pkg/dashboard"
	"github.com/aretw0/panels/pkg/widget"
)

func render(t *testing.T, id string, w widget.Widget) dashboard.Rendered {
	t.Helper()
	props, err := w.Props()
	require.NoError(t, err)
	return dashboard.Rendered{ID: id, Props: props}
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		widget   widget.Widget
		contains []string
	}{
		{
			name: "line",
			widget: widget.NewLineChart([]string{"mon", "tue"}, []widget.Dataset{
				{"label": "cpu", "data": []float64{1, 2}},
				{"label": "mem", "data": []any{3, 4.5}},
			}).Heading(`Load "now"`),
			contains: []string{"xychart-beta\n", `title "Load 'now'"`, `x-axis ["mon", "tue"]`, "line [1, 2]", "line [3, 4.5]"},
		},
		{
			name: "horizontal bar",
			widget: widget.NewBarChart([]string{"a"}, []widget.Dataset{{"data": []int{7}}}).
				Horizontal(),
			contains: []string{"xychart-beta horizontal", "bar [7]"},
		},
		{
			name:     "pie",
			widget:   widget.NewPieChart([]string{"x", "y"}, []float64{30, 70}).Heading("Share"),
			contains: []string{"pie\n", "title Share", `"x" : 30`, `"y" : 70`},
		},
		{
			name:     "doughnut with legend",
			widget:   widget.NewPieChart([]string{"x"}, []float64{1}).Doughnut().ShowLegend(),
			contains: []string{"pie showData", "title share"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := "share"
			diagram, ok := graph.GenerateMermaid(render(t, id, tt.widget))
			require.True(t, ok)
			for _, s := range tt.contains {
				assert.Contains(t, diagram, s)
			}
		})
	}
}

func TestGenerateMermaid_Skips(t *testing.T) {
	_, ok := graph.GenerateMermaid(render(t, "users", widget.NewStatsOverview().
		Stats(widget.NewStat("Users", 1))))
	assert.False(t, ok)

	_, ok = graph.GenerateMermaid(render(t, "empty", widget.NewLineChart(nil, nil)))
	assert.False(t, ok)
}

func TestDocument(t *testing.T) {
	doc := graph.Document([]dashboard.Rendered{
		render(t, "users", widget.NewStatsOverview()),
		render(t, "sales-q1", widget.NewBarChart([]string{"a"}, []widget.Dataset{{"data": []float64{1}}})),
	})
	assert.Equal(t, 1, strings.Count(doc, "```mermaid"))
	assert.Contains(t, doc, "%% sales_q1\n")
}
