package widget_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/panels/pkg/widget"
)

func TestBarChart_Scenario(t *testing.T) {
	labels := []string{"A", "B", "C"}
	datasets := []widget.Dataset{{"label": "Sales", "data": []float64{100, 200, 150}}}

	props, err := widget.NewBarChart(labels, datasets).
		Horizontal().
		Stacked().
		Props()
	require.NoError(t, err)

	assert.Equal(t, widget.Props{
		"component":   "ChartWidget",
		"heading":     nil,
		"description": nil,
		"chartType":   "bar",
		"data": widget.ChartData{
			"labels":   labels,
			"datasets": datasets,
		},
		"options": widget.Options{"horizontal": true, "stacked": true},
		"height":  nil,
		"color":   nil,
		"polling": widget.Props{"enabled": false, "interval": nil},
	}, props)
}

func TestBarChart_Options(t *testing.T) {
	props, err := widget.NewBarChart(nil, nil).
		Horizontal(false).
		ShowGrid().
		BarThickness(25).
		Height(350).
		Color("success").
		Polling(45).
		Props()
	require.NoError(t, err)

	options := props["options"].(widget.Options)
	assert.Equal(t, false, options["horizontal"])
	assert.Equal(t, true, options["showGrid"])
	assert.Equal(t, 25, options["barThickness"])
	assert.Equal(t, 350, props["height"])
	assert.Equal(t, "success", props["color"])
	assert.Equal(t, widget.Props{"enabled": true, "interval": 45}, props["polling"])
	assert.Equal(t, widget.ChartData{}, props["data"])
}

func TestLineChart_Options(t *testing.T) {
	tests := []struct {
		name  string
		build func() *widget.LineChart
		key   string
		want  any
	}{
		{"curved", func() *widget.LineChart { return widget.NewLineChart(nil, nil).Curved() }, "tension", 0.4},
		{"not curved", func() *widget.LineChart { return widget.NewLineChart(nil, nil).Curved(false) }, "tension", 0},
		{"fill", func() *widget.LineChart { return widget.NewLineChart(nil, nil).Fill() }, "fill", true},
		{"points", func() *widget.LineChart { return widget.NewLineChart(nil, nil).ShowPoints(false) }, "showPoints", false},
		{"grid", func() *widget.LineChart { return widget.NewLineChart(nil, nil).ShowGrid() }, "showGrid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props, err := tt.build().Props()
			require.NoError(t, err)
			assert.Equal(t, "line", props["chartType"])
			assert.Equal(t, tt.want, props["options"].(widget.Options)[tt.key])
		})
	}
}

func TestLineChart_DataRequiresLabelsAndDatasets(t *testing.T) {
	props, err := widget.NewLineChart([]string{"Jan"}, nil).Props()
	require.NoError(t, err)
	assert.Equal(t, widget.ChartData{}, props["data"])

	props, err = widget.NewLineChart([]string{"Jan", "Feb"}, []widget.Dataset{{"data": []float64{1, 2}}}).Props()
	require.NoError(t, err)
	assert.Equal(t, []string{"Jan", "Feb"}, props["data"].(widget.ChartData)["labels"])
}

func TestChart_OptionsReplaceWholesale(t *testing.T) {
	w := widget.NewLineChart(nil, nil).
		Curved().
		Fill().
		Options(widget.Options{"responsive": true})

	props, err := w.Props()
	require.NoError(t, err)
	assert.Equal(t, widget.Options{"responsive": true}, props["options"])

	// Variant setters keep writing into the replaced map.
	props, err = w.ShowGrid().Props()
	require.NoError(t, err)
	assert.Equal(t, widget.Options{"responsive": true, "showGrid": true}, props["options"])
}

func TestChart_OptionsDoNotAliasCaller(t *testing.T) {
	opts := widget.Options{"responsive": true}
	w := widget.NewBarChart(nil, nil).Options(opts).Stacked()

	_, err := w.Props()
	require.NoError(t, err)
	assert.NotContains(t, opts, "stacked")
}

func TestPieChart(t *testing.T) {
	t.Run("Doughnut Scenario", func(t *testing.T) {
		props, err := widget.NewPieChart([]string{"Red", "Blue"}, []float64{300, 50}).
			Doughnut().
			Props()
		require.NoError(t, err)

		assert.Equal(t, "doughnut", props["chartType"])
		datasets := props["data"].(widget.ChartData)["datasets"].([]widget.Dataset)
		require.Len(t, datasets, 1)
		assert.Equal(t, []float64{300, 50}, datasets[0]["data"])
	})

	t.Run("Doughnut Off", func(t *testing.T) {
		w := widget.NewPieChart(nil, nil).Doughnut().Doughnut(false)
		assert.Equal(t, widget.ChartPie, w.Kind())
	})

	t.Run("Legend And Percentage", func(t *testing.T) {
		props, err := widget.NewPieChart(nil, nil).ShowLegend().ShowPercentage(false).Props()
		require.NoError(t, err)
		assert.Equal(t, widget.Options{"showLegend": true, "showPercentage": false}, props["options"])
	})
}

func TestChart_EvaluatesTopLevelDeferredOnly(t *testing.T) {
	nested := func() any { return []float64{1, 2, 3} }

	w := widget.NewLineChart(nil, nil).Data(widget.ChartData{
		"labels": widget.DeferredFunc(func() any { return []string{"Mon", "Tue"} }),
		"datasets": func() any {
			return []widget.Dataset{{"label": "Visits", "data": []float64{5, 8}}}
		},
		"nested": map[string]any{"data": nested},
		"plain":  "kept",
	})

	props, err := w.Props()
	require.NoError(t, err)

	data := props["data"].(widget.ChartData)
	assert.Equal(t, []string{"Mon", "Tue"}, data["labels"])
	assert.Equal(t, []widget.Dataset{{"label": "Visits", "data": []float64{5, 8}}}, data["datasets"])
	assert.Equal(t, "kept", data["plain"])

	inner := data["nested"].(map[string]any)
	_, stillFunc := inner["data"].(func() any)
	assert.True(t, stillFunc, "nested deferred values are not resolved")
}

func TestChart_DeferredDataError(t *testing.T) {
	boom := errors.New("query failed")
	w := widget.NewBarChart(nil, nil).Data(widget.ChartData{
		"datasets": widget.Deferred(func() (any, error) { return nil, boom }),
	})

	_, err := w.Props()
	var serErr *widget.SerializationError
	require.ErrorAs(t, err, &serErr)
	assert.Equal(t, "data.datasets", serErr.Field)
	assert.ErrorIs(t, err, boom)
}

func TestChart_GenericKind(t *testing.T) {
	props, err := widget.NewChart(widget.ChartArea).Heading("Traffic").Props()
	require.NoError(t, err)
	assert.Equal(t, "area", props["chartType"])
	assert.Equal(t, "Traffic", props["heading"])
}

func TestChartType_Valid(t *testing.T) {
	assert.True(t, widget.ChartDoughnut.Valid())
	assert.False(t, widget.ChartType("radar").Valid())
}

func TestJSON(t *testing.T) {
	w := widget.NewPieChart([]string{"Red", "Blue"}, []float64{300, 50}).Heading("Colors")

	data, err := widget.JSON(w)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Colors", decoded["heading"])
	assert.Equal(t, "pie", decoded["chartType"])
	assert.Nil(t, decoded["height"])
	assert.Equal(t, map[string]any{"enabled": false, "interval": nil}, decoded["polling"])
}

func TestChart_TypedDataFunctions(t *testing.T) {
	w := widget.NewLineChart(nil, nil).Data(widget.ChartData{
		"labels": func() []string { return []string{"Jan", "Feb"} },
		"datasets": func() ([]widget.Dataset, error) {
			return []widget.Dataset{{"data": []float64{4, 7}}}, nil
		},
	})

	props, err := w.Props()
	require.NoError(t, err)
	data := props["data"].(widget.ChartData)
	assert.Equal(t, []string{"Jan", "Feb"}, data["labels"])
	assert.Equal(t, []widget.Dataset{{"data": []float64{4, 7}}}, data["datasets"])

	_, err = widget.JSON(w)
	require.NoError(t, err)
}

func TestChart_DataIsCopied(t *testing.T) {
	labels := []string{"Mon", "Tue"}
	values := []float64{5, 8}
	datasets := []widget.Dataset{{"label": "Visits", "data": values}}

	w := widget.NewBarChart(labels, datasets)
	labels[0] = "Sun"
	values[0] = 100
	datasets[0]["label"] = "Changed"

	props, err := w.Props()
	require.NoError(t, err)
	data := props["data"].(widget.ChartData)
	assert.Equal(t, []string{"Mon", "Tue"}, data["labels"])
	assert.Equal(t, []widget.Dataset{{"label": "Visits", "data": []float64{5, 8}}}, data["datasets"])
}
