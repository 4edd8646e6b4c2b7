/*
Package dashboard groups widgets into an ordered, id-addressed collection and
renders their props.

A Dashboard is what the HTTP and MCP adapters serve. The widgets it holds stay
single-owner configuration objects; the Dashboard only guards its own entry list so
that a reload can swap widgets while renders are in flight.

	d := dashboard.New("sales", dashboard.WithLogger(logger))
	_ = d.Add("overview", widget.NewStatsOverview().Stats(...))
	_ = d.Add("revenue", widget.NewLineChart(labels, datasets).Curved())

	rendered, err := d.RenderAll(ctx)
*/
package dashboard
