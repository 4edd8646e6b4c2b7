package widget

// BarChart renders one or more series as bars.
type BarChart struct {
	ChartBase[*BarChart]
}

// NewBarChart creates a bar chart. Data is set only when both labels and
// datasets are non-empty.
func NewBarChart(labels []string, datasets []Dataset) *BarChart {
	w := &BarChart{}
	w.InitChart(w, ChartBar)
	if len(labels) > 0 && len(datasets) > 0 {
		w.Data(Series(labels, datasets))
	}
	return w
}

// Horizontal lays the bars out along the y axis.
func (w *BarChart) Horizontal(on ...bool) *BarChart {
	return w.setOption("horizontal", enabled(on))
}

// Stacked stacks the datasets instead of grouping them.
func (w *BarChart) Stacked(on ...bool) *BarChart {
	return w.setOption("stacked", enabled(on))
}

// ShowGrid draws the background grid.
func (w *BarChart) ShowGrid(on ...bool) *BarChart {
	return w.setOption("showGrid", enabled(on))
}

// BarThickness sets the bar width in pixels. The value is not range checked.
func (w *BarChart) BarThickness(px int) *BarChart {
	return w.setOption("barThickness", px)
}
