package definition

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/panels/pkg/widget"
)

const salesYAML = `
name: sales
widgets:
  - id: overview
    type: stats
    heading: Overview
    columns: 2
    polling: 30
    stats:
      - label: Total Revenue
        value: "$45,000"
        description: 12% increase
        description_icon: heroicon-m-arrow-trending-up
        description_color: success
        chart: [7, 3, 4, 5, 6]
      - label: Orders
        value: 1250
  - id: monthly
    type: bar
    heading: Monthly Sales
    labels: [Jan, Feb, Mar]
    datasets:
      - label: Sales
        data: [100, 200, 150]
    stacked: true
    bar_thickness: 20
`

func TestParse_YAML(t *testing.T) {
	file, err := Parse([]byte(salesYAML), ".yaml")
	require.NoError(t, err)

	assert.Equal(t, "sales", file.Name)
	require.Len(t, file.Widgets, 2)

	overview := file.Widgets[0]
	assert.Equal(t, TypeStats, overview.Type)
	require.NotNil(t, overview.Columns)
	assert.Equal(t, 2, *overview.Columns)
	assert.Equal(t, 30, overview.Polling)
	require.Len(t, overview.Stats, 2)
	assert.Equal(t, []float64{7, 3, 4, 5, 6}, overview.Stats[0].Chart)
	assert.Equal(t, 1250, overview.Stats[1].Value)

	monthly := file.Widgets[1]
	require.NotNil(t, monthly.Stacked)
	assert.True(t, *monthly.Stacked)
	assert.Nil(t, monthly.Horizontal)
}

func TestParse_JSON(t *testing.T) {
	data := []byte(`{"name":"json","widgets":[{"type":"pie","labels":["A","B"],"values":[1,2],"show_legend":false}]}`)

	file, err := Parse(data, ".JSON")
	require.NoError(t, err)
	require.Len(t, file.Widgets, 1)
	assert.Equal(t, []float64{1, 2}, file.Widgets[0].Values)
	require.NotNil(t, file.Widgets[0].ShowLegend)
	assert.False(t, *file.Widgets[0].ShowLegend)
}

func TestParse_Errors(t *testing.T) {
	t.Run("unknown key", func(t *testing.T) {
		_, err := Parse([]byte("widgets:\n  - type: bar\n    stackd: true\n"), ".yaml")
		assert.ErrorIs(t, err, ErrInvalidSpec)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Parse([]byte("{"), ".json")
		assert.Error(t, err)
	})
}

func TestLoadFile_DefaultsName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.yml")
	require.NoError(t, os.WriteFile(path, []byte("widgets: []\n"), 0644))

	file, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ops", file.Name)
}

func TestBuild_Stats(t *testing.T) {
	file, err := Parse([]byte(salesYAML), ".yaml")
	require.NoError(t, err)

	w, err := Build(file.Widgets[0])
	require.NoError(t, err)

	props, err := w.Props()
	require.NoError(t, err)
	assert.Equal(t, widget.ComponentStatsOverview, props["component"])
	assert.Equal(t, "Overview", props["heading"])
	assert.Equal(t, 2, props["columns"])
	assert.Equal(t, widget.Props{"enabled": true, "interval": 30}, props["polling"])

	stats := props["stats"].([]widget.Props)
	require.Len(t, stats, 2)
	assert.Equal(t, "$45,000", stats[0]["value"])
	assert.Equal(t, true, stats[0]["descriptionIcon"])
	assert.Equal(t, "heroicon-m-arrow-trending-up", stats[0]["icon"])
	assert.Equal(t, "success", stats[0]["descriptionColor"])
	assert.Equal(t, "bar", stats[0]["chart"])
	assert.Equal(t, 1250, stats[1]["value"])
}

func TestBuild_Bar(t *testing.T) {
	file, err := Parse([]byte(salesYAML), ".yaml")
	require.NoError(t, err)

	w, err := Build(file.Widgets[1])
	require.NoError(t, err)

	props, err := w.Props()
	require.NoError(t, err)
	assert.Equal(t, "bar", props["chartType"])
	assert.Equal(t, widget.Options{"stacked": true, "barThickness": 20}, props["options"])

	data := props["data"].(widget.ChartData)
	assert.Equal(t, []string{"Jan", "Feb", "Mar"}, data["labels"])
}

func TestBuild_Variants(t *testing.T) {
	yes, no := true, false

	t.Run("doughnut", func(t *testing.T) {
		w, err := Build(Spec{Type: TypeDoughnut, Labels: []string{"A"}, Values: []float64{1}, ShowPercentage: &yes})
		require.NoError(t, err)
		props, err := w.Props()
		require.NoError(t, err)
		assert.Equal(t, "doughnut", props["chartType"])
		assert.Equal(t, widget.Options{"showPercentage": true}, props["options"])
	})

	t.Run("line flags after options", func(t *testing.T) {
		w, err := Build(Spec{
			Type:    TypeLine,
			Options: map[string]any{"responsive": true},
			Curved:  &no,
			Fill:    &yes,
		})
		require.NoError(t, err)
		props, err := w.Props()
		require.NoError(t, err)
		assert.Equal(t, widget.Options{"responsive": true, "tension": 0, "fill": true}, props["options"])
	})

	t.Run("area", func(t *testing.T) {
		height := 300
		w, err := Build(Spec{Type: "Area", Labels: []string{"Q1"}, Datasets: []map[string]any{{"data": []any{1}}}, Height: &height})
		require.NoError(t, err)
		props, err := w.Props()
		require.NoError(t, err)
		assert.Equal(t, "area", props["chartType"])
		assert.Equal(t, 300, props["height"])
	})
}

func TestBuild_Errors(t *testing.T) {
	t.Run("unknown type suggests", func(t *testing.T) {
		_, err := Build(Spec{Type: "lien"})
		require.ErrorIs(t, err, ErrUnknownType)

		var unknown *UnknownTypeError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "line", unknown.Suggestion)
		assert.Contains(t, err.Error(), `did you mean "line"`)
	})

	t.Run("no suggestion", func(t *testing.T) {
		_, err := Build(Spec{Type: "histogram"})
		require.ErrorIs(t, err, ErrUnknownType)
		assert.NotContains(t, err.Error(), "did you mean")
	})

	t.Run("missing type", func(t *testing.T) {
		_, err := Build(Spec{})
		assert.ErrorIs(t, err, ErrInvalidSpec)
	})

	t.Run("empty stat label", func(t *testing.T) {
		_, err := Build(Spec{Type: TypeStats, Stats: []StatSpec{{Value: 1}}})
		assert.ErrorIs(t, err, widget.ErrInvalidArgument)
	})
}

func TestID(t *testing.T) {
	s := Spec{Type: TypeBar, Heading: "Sales"}

	a := ID("sales", 0, s)
	assert.Equal(t, a, ID("sales", 0, s), "ids must be deterministic")
	assert.NotEqual(t, a, ID("sales", 1, s))
	assert.Equal(t, "fixed", ID("sales", 0, Spec{ID: "fixed"}))
}

func TestSort(t *testing.T) {
	specs := []Spec{{ID: "c", Order: 2}, {ID: "b", Order: 1}, {ID: "a", Order: 2}}
	Sort(specs)

	assert.Equal(t, "b", specs[0].ID)
	assert.Equal(t, "a", specs[1].ID)
	assert.Equal(t, "c", specs[2].ID)
}

func TestEntries(t *testing.T) {
	file, err := Parse([]byte(salesYAML), ".yaml")
	require.NoError(t, err)

	entries, err := Entries(file.Name, file.Widgets)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "overview", entries[0].ID)

	_, err = Entries("x", []Spec{{ID: "bad", Type: "nope"}})
	assert.ErrorContains(t, err, "widget bad")
}
