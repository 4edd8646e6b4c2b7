/*
Package widget provides the fluent builders that describe dashboard widgets and
serialize them into "props": plain, JSON-compatible maps consumed by client-side
rendering components.

Every widget embeds Base, which carries the attributes shared by all kinds (heading,
description, icon, color and polling). Setters return the concrete widget so calls can
be chained:

	stats := widget.NewStatsOverview().
		Heading("Today").
		Columns(2).
		Stats(
			widget.NewStat("Revenue", 45000).Chart([]float64{10, 20, 30}, "line", "success"),
			widget.NewStat("Orders", widget.DeferredFunc(countOrders)),
		)

	props, err := stats.Props()

Serialization is a read: calling Props twice on an unmodified widget yields equal maps,
except for deferred values, which are re-evaluated on every call.

Widgets are single-owner configuration objects. They are not safe for concurrent
mutation.
*/
package widget
