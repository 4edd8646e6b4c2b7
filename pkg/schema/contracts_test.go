package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/panels/pkg/schema"
	"github.com/aretw0/panels/pkg/widget"
)

func TestContracts_BuiltinWidgets(t *testing.T) {
	widgets := map[string]widget.Widget{
		"stats": widget.NewStatsOverview().Stats(
			widget.NewStat("Revenue", 45000).Chart([]float64{1, 2}, "line", ""),
			widget.NewStat("Users", "1,234").DescriptionIcon("TrendingUp", "success"),
		),
		"line":  widget.NewLineChart([]string{"Jan"}, []widget.Dataset{{"data": []float64{1}}}).Curved(),
		"bar":   widget.NewBarChart(nil, nil).BarThickness(20).Polling(),
		"pie":   widget.NewPieChart([]string{"Red"}, []float64{1}).Doughnut(),
		"area":  widget.NewChart(widget.ChartArea).Height(200),
	}

	for name, w := range widgets {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, schema.ValidateWidget(w, false))
			assert.NoError(t, schema.ValidateWidget(w, true))
		})
	}
}

func TestContracts_Strict(t *testing.T) {
	tests := []struct {
		name string
		w    widget.Widget
		key  string
	}{
		{"zero columns", widget.NewStatsOverview().Columns(0), "columns"},
		{"negative polling", widget.NewStatsOverview().Polling(-5), "polling.interval"},
		{"bar thickness", widget.NewBarChart(nil, nil).BarThickness(0), "options"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, schema.ValidateWidget(tt.w, false), "lenient contract accepts it")

			err := schema.ValidateWidget(tt.w, true)
			require.Error(t, err)
			errs := schema.ValidationErrors(err)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.key, errs[0].(*schema.ValidationError).Key)
		})
	}
}

func TestFor_FallsBackToBase(t *testing.T) {
	props := map[string]any{
		"component":   "BasicWidget",
		"heading":     "Custom",
		"description": nil,
		"polling":     map[string]any{"enabled": false, "interval": nil},
	}
	assert.NoError(t, schema.Validate(schema.For(props, true), props))
}

func TestContract(t *testing.T) {
	chart, err := schema.Contract(widget.ComponentChart, false)
	require.NoError(t, err)
	assert.Equal(t, "line|bar|pie|doughnut|area", chart["chartType"].Name())

	overview, err := schema.Contract(widget.ComponentStatsOverview, true)
	require.NoError(t, err)
	assert.Equal(t, "positive_int", overview["columns"].Name())

	_, err = schema.Contract("TableWidget", false)
	assert.ErrorIs(t, err, schema.ErrUnknownComponent)

	assert.Equal(t, schema.BaseProps()["component"].Name(), schema.For(map[string]any{"component": "TableWidget"}, false)["component"].Name())
}
