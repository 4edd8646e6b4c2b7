/*
Package panels builds dashboard widgets (stat panels, line, bar and pie charts)
and serializes them into JSON-compatible props for a client-side renderer.

Widgets can be written in Go with fluent builders (see pkg/widget) or declared
in a YAML/JSON file, a directory of documents or a Redis hash and loaded
through a Board.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/panels"
	)

	func main() {
		board, err := panels.New("./dashboard.yaml")
		if err != nil {
			log.Fatal(err)
		}

		rendered, err := board.Dashboard().RenderAll(context.Background())
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(len(rendered), "widgets")
	}

# Builders

	stats := widget.NewStatsOverview().
		Heading("Overview").
		Stats(
			widget.NewStat("Total Revenue", "$45,000").
				Description("12% increase").
				DescriptionIcon("heroicon-m-arrow-trending-up", "success"),
			widget.NewStat("Orders", widget.DeferredFunc(countOrders)),
		).
		Columns(2)

	props, err := stats.Props()

Deferred values are resolved each time Props is called.

# Surfaces

The panels command (cmd/panels) scaffolds custom widgets, renders and validates
dashboards, serves them over HTTP and exposes generation tools over MCP.
*/
package panels
