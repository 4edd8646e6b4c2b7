/*
Package observability exports dashboard activity as Prometheus metrics.

Metrics plugs into a Dashboard through its hooks:

	m := observability.NewMetrics(prometheus.NewRegistry())
	board, err := panels.New("./dashboard.yaml", panels.WithHooks(m.Hooks()))
	http.Handle("/metrics", m.Handler())
*/
package observability
