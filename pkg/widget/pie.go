package widget

// PieChart renders a single series as a pie or doughnut.
type PieChart struct {
	ChartBase[*PieChart]
}

// NewPieChart creates a pie chart with one implicit dataset. Data is set only
// when both labels and values are non-empty.
func NewPieChart(labels []string, values []float64) *PieChart {
	w := &PieChart{}
	w.InitChart(w, ChartPie)
	if len(labels) > 0 && len(values) > 0 {
		w.Data(Series(labels, []Dataset{{"data": values}}))
	}
	return w
}

// Doughnut switches the chart type between doughnut and pie.
func (w *PieChart) Doughnut(on ...bool) *PieChart {
	if enabled(on) {
		w.chartType = ChartDoughnut
	} else {
		w.chartType = ChartPie
	}
	return w
}

// ShowLegend displays the legend next to the chart.
func (w *PieChart) ShowLegend(on ...bool) *PieChart {
	return w.setOption("showLegend", enabled(on))
}

// ShowPercentage labels each slice with its share of the total.
func (w *PieChart) ShowPercentage(on ...bool) *PieChart {
	return w.setOption("showPercentage", enabled(on))
}
