package observability

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/panels/pkg/dashboard"
)

// Metrics records widget renders and dashboard reloads.
type Metrics struct {
	registry *prometheus.Registry

	Renders        *prometheus.CounterVec
	RenderDuration *prometheus.HistogramVec
	Reloads        *prometheus.CounterVec
	Widgets        *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them on registry.
// A nil registry gets a fresh one.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	m := &Metrics{
		registry: registry,
		Renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "panels_widget_renders_total",
				Help: "Total number of widget renders",
			},
			[]string{"component", "status"},
		),
		RenderDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "panels_widget_render_duration_seconds",
				Help:    "Duration of widget renders, deferred values included",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"component"},
		),
		Reloads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "panels_dashboard_reloads_total",
				Help: "Total number of dashboard reloads",
			},
			[]string{"dashboard"},
		),
		Widgets: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "panels_dashboard_widgets",
				Help: "Number of widgets on a dashboard",
			},
			[]string{"dashboard"},
		),
	}
	registry.MustRegister(m.Renders, m.RenderDuration, m.Reloads, m.Widgets)
	return m
}

// Hooks returns dashboard hooks that feed the collectors.
func (m *Metrics) Hooks() dashboard.Hooks {
	return dashboard.Hooks{
		OnRender: func(ctx context.Context, e *dashboard.RenderEvent) {
			status := "ok"
			if e.Err != nil {
				status = "error"
			}
			component := e.Component
			if component == "" {
				component = "unknown"
			}
			m.Renders.WithLabelValues(component, status).Inc()
			m.RenderDuration.WithLabelValues(component).Observe(e.Duration.Seconds())
		},
		OnReload: func(ctx context.Context, e *dashboard.ReloadEvent) {
			m.Reloads.WithLabelValues(e.Dashboard).Inc()
			m.Widgets.WithLabelValues(e.Dashboard).Set(float64(e.Widgets))
		},
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
