package scaffold

// Templates are rendered with text/template and then gofmt'ed, so their
// indentation does not matter.

const basicTemplate = `// Code generated by panels make. You may edit this file.

package {{ .Package }}

import "github.com/aretw0/panels/pkg/widget"

// {{ .Type }} is a custom dashboard widget.
type {{ .Type }} struct {
	widget.Base[*{{ .Type }}]
}

// New{{ .Type }} creates the widget.
func New{{ .Type }}() *{{ .Type }} {
	w := &{{ .Type }}{}
	w.Bind(w)
	w.Heading("{{ .Heading }}")
{{- if .Polling }}
	w.Polling({{ .Interval }})
{{- end }}
	return w
}

// Props serializes the widget.
func (w *{{ .Type }}) Props() (widget.Props, error) {
	props := w.BaseProps(widget.ComponentBasic)
	props["data"] = w.data()
	return props, nil
}

func (w *{{ .Type }}) data() map[string]any {
	return map[string]any{
		// Add your widget data here
	}
}
`

const statsTemplate = `// Code generated by panels make. You may edit this file.

package {{ .Package }}

import "github.com/aretw0/panels/pkg/widget"

// {{ .Type }} is a stats overview widget.
type {{ .Type }} struct {
	*widget.StatsOverview
}

// New{{ .Type }} creates the widget.
func New{{ .Type }}() *{{ .Type }} {
	w := &{{ .Type }}{StatsOverview: widget.NewStatsOverview()}
	w.Heading("{{ .Heading }}")
{{- if .Polling }}
	w.Polling({{ .Interval }})
{{- end }}
	w.Stats(w.stats()...)
	return w
}

func (w *{{ .Type }}) stats() []*widget.Stat {
	return []*widget.Stat{
		widget.NewStat("Total Users", "1,234").
			Description("12% increase").
			Icon("TrendingUp").
			Chart([]float64{7, 4, 6, 8, 5, 9, 10}, "", "").
			Color("success"),

		widget.NewStat("Total Orders", "567").
			Description("8% decrease").
			Icon("TrendingDown").
			Chart([]float64{10, 9, 5, 8, 6, 4, 7}, "", "").
			Color("danger"),

		widget.NewStat("Revenue", "$12,345").
			Description("No change").
			Icon("DollarSign").
			Chart([]float64{5, 5, 5, 5, 5, 5, 5}, "", "").
			Color("secondary"),
	}
}
`

const chartTemplate = `// Code generated by panels make. You may edit this file.

package {{ .Package }}

import "github.com/aretw0/panels/pkg/widget"

// {{ .Type }} is a {{ .Chart }} chart widget.
type {{ .Type }} struct {
	*widget.{{ .Base }}
}

// New{{ .Type }} creates the widget.
func New{{ .Type }}() *{{ .Type }} {
{{- if .Pie }}
	labels, _ := series{{ .Type }}()
{{- else }}
	labels, datasets := series{{ .Type }}()
{{- end }}
{{- if eq .Chart "line" }}
	w := &{{ .Type }}{LineChart: widget.NewLineChart(labels, datasets)}
{{- else if eq .Chart "bar" }}
	w := &{{ .Type }}{BarChart: widget.NewBarChart(labels, datasets)}
{{- else if eq .Chart "pie" }}
	w := &{{ .Type }}{PieChart: widget.NewPieChart(labels, []float64{65, 59, 80, 81, 56, 55, 40})}
{{- else if eq .Chart "doughnut" }}
	w := &{{ .Type }}{PieChart: widget.NewPieChart(labels, []float64{65, 59, 80, 81, 56, 55, 40}).Doughnut()}
{{- else }}
	w := &{{ .Type }}{Chart: widget.NewChart(widget.ChartType("{{ .Chart }}")).Data(widget.Series(labels, datasets))}
{{- end }}
	w.Heading("{{ .Heading }}")
{{- if .Polling }}
	w.Polling({{ .Interval }})
{{- end }}
	return w
}

func series{{ .Type }}() ([]string, []widget.Dataset) {
	labels := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul"}
	datasets := []widget.Dataset{
		{
			"label":           "Dataset 1",
			"data":            []int{65, 59, 80, 81, 56, 55, 40},
			"borderColor":     "#3b82f6",
			"backgroundColor": "rgba(59, 130, 246, 0.1)",
		},
	}
	return labels, datasets
}
`
