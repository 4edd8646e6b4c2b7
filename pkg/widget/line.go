package widget

// LineChart renders one or more series as lines.
type LineChart struct {
	ChartBase[*LineChart]
}

// NewLineChart creates a line chart. Data is set only when both labels and
// datasets are non-empty.
func NewLineChart(labels []string, datasets []Dataset) *LineChart {
	w := &LineChart{}
	w.InitChart(w, ChartLine)
	if len(labels) > 0 && len(datasets) > 0 {
		w.Data(Series(labels, datasets))
	}
	return w
}

// Curved sets the line tension to 0.4, or 0 when turned off.
func (w *LineChart) Curved(on ...bool) *LineChart {
	if enabled(on) {
		return w.setOption("tension", 0.4)
	}
	return w.setOption("tension", 0)
}

// Fill shades the area under each line.
func (w *LineChart) Fill(on ...bool) *LineChart {
	return w.setOption("fill", enabled(on))
}

// ShowPoints draws a marker on every data point.
func (w *LineChart) ShowPoints(on ...bool) *LineChart {
	return w.setOption("showPoints", enabled(on))
}

// ShowGrid draws the background grid.
func (w *LineChart) ShowGrid(on ...bool) *LineChart {
	return w.setOption("showGrid", enabled(on))
}
