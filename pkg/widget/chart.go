package widget

import (
	"maps"
	"slices"
)

// ChartType is the render discriminator of a chart widget.
type ChartType string

const (
	ChartLine     ChartType = "line"
	ChartBar      ChartType = "bar"
	ChartPie      ChartType = "pie"
	ChartDoughnut ChartType = "doughnut"
	ChartArea     ChartType = "area"
)

// ChartTypes lists every chart type the rendering layer understands.
var ChartTypes = []ChartType{ChartLine, ChartBar, ChartPie, ChartDoughnut, ChartArea}

// Valid reports whether t is a known chart type.
func (t ChartType) Valid() bool {
	for _, known := range ChartTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ChartData holds the "labels" and "datasets" of a chart. A top-level value may be
// a Value or a zero-argument function; it is resolved when props are built.
type ChartData map[string]any

// Dataset is one series of a chart. It carries at least a "data" key and any
// style keys the renderer understands.
type Dataset map[string]any

// Options are free-form renderer hints.
type Options map[string]any

// Series builds chart data from labels and datasets.
func Series(labels []string, datasets []Dataset) ChartData {
	return ChartData{
		"labels":   labels,
		"datasets": datasets,
	}
}

// ChartBase holds the state shared by every chart kind. Custom chart widgets
// embed it and call InitChart from their constructor.
type ChartBase[T any] struct {
	Base[T]

	data      ChartData
	options   Options
	chartType ChartType
	height    *int
}

// InitChart binds the concrete widget and fixes its chart type.
func (c *ChartBase[T]) InitChart(self T, kind ChartType) {
	c.Bind(self)
	c.chartType = kind
	c.data = ChartData{}
	c.options = Options{}
}

// Kind returns the current chart type.
func (c *ChartBase[T]) Kind() ChartType {
	return c.chartType
}

// Data replaces the chart data. Labels, datasets and their data slices are copied.
func (c *ChartBase[T]) Data(data ChartData) T {
	c.data = make(ChartData, len(data))
	for key, v := range data {
		c.data[key] = cloneSeries(v)
	}
	return c.self
}

func cloneSeries(v any) any {
	switch val := v.(type) {
	case []string:
		return slices.Clone(val)
	case []float64:
		return slices.Clone(val)
	case []any:
		return slices.Clone(val)
	case Dataset:
		out := maps.Clone(val)
		for k, inner := range out {
			out[k] = cloneSeries(inner)
		}
		return out
	case []Dataset:
		if val == nil {
			return val
		}
		out := make([]Dataset, len(val))
		for i, ds := range val {
			out[i] = cloneSeries(ds).(Dataset)
		}
		return out
	default:
		return v
	}
}

// Options replaces every option, including those set by variant setters.
// Options are never merged.
func (c *ChartBase[T]) Options(options Options) T {
	c.options = maps.Clone(options)
	if c.options == nil {
		c.options = Options{}
	}
	return c.self
}

// Height sets the chart height in pixels.
func (c *ChartBase[T]) Height(px int) T {
	c.height = &px
	return c.self
}

func (c *ChartBase[T]) setOption(key string, value any) T {
	if c.options == nil {
		c.options = Options{}
	}
	c.options[key] = value
	return c.self
}

// evaluateData resolves deferred values found at the top level of the data map.
// Deferred values nested inside datasets are passed through untouched; unlike
// Stat, charts only resolve one level deep.
func (c *ChartBase[T]) evaluateData() (ChartData, error) {
	out := make(ChartData, len(c.data))
	for key, raw := range c.data {
		d, ok := deferredOf(raw)
		if !ok {
			out[key] = raw
			continue
		}
		v, err := resolveField("data."+key, d)
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}

// Props serializes the chart.
func (c *ChartBase[T]) Props() (Props, error) {
	data, err := c.evaluateData()
	if err != nil {
		return nil, err
	}

	props := c.BaseProps(ComponentChart)
	props["chartType"] = string(c.chartType)
	props["data"] = data
	props["options"] = maps.Clone(c.options)
	props["height"] = optInt(c.height)
	props["color"] = optString(c.color)
	return props, nil
}

// Chart is a chart without variant-specific setters, used for kinds such as
// ChartArea that have no dedicated builder.
type Chart struct {
	ChartBase[*Chart]
}

// NewChart creates a chart of the given kind.
func NewChart(kind ChartType) *Chart {
	w := &Chart{}
	w.InitChart(w, kind)
	return w
}
