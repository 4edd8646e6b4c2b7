package observability

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/panels/pkg/dashboard"
	"github.com/aretw0/panels/pkg/widget"
)

func TestMetrics_Hooks(t *testing.T) {
	m := NewMetrics(nil)

	d := dashboard.New("sales", dashboard.WithHooks(m.Hooks()))
	require.NoError(t, d.Add("ok", widget.NewBarChart(nil, nil)))
	require.NoError(t, d.Add("broken", widget.NewStatsOverview().Stats(
		widget.NewStat("Failing", widget.Deferred(func() (any, error) { return nil, errors.New("db down") })),
	)))

	ctx := context.Background()
	_, err := d.Render(ctx, "ok")
	require.NoError(t, err)
	_, err = d.Render(ctx, "broken")
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Renders.WithLabelValues(widget.ComponentChart, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Renders.WithLabelValues("unknown", "error")))

	require.NoError(t, d.Replace(ctx, []dashboard.Entry{{ID: "only", Widget: widget.NewPieChart(nil, nil)}}))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Reloads.WithLabelValues("sales")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Widgets.WithLabelValues("sales")))
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics(nil)
	m.Renders.WithLabelValues(widget.ComponentChart, "ok").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `panels_widget_renders_total{component="ChartWidget",status="ok"} 1`)
}
