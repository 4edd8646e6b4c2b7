/*
Package definition describes widgets declaratively.

A dashboard file lists widget specs in YAML (default) or JSON:

	name: sales
	widgets:
	  - id: overview
	    type: stats
	    columns: 2
	    stats:
	      - label: Revenue
	        value: "$45,000"
	  - type: bar
	    heading: Monthly Sales
	    labels: [Jan, Feb]
	    datasets:
	      - label: Sales
	        data: [10, 20]
	    stacked: true

Build translates each Spec into calls on the fluent builders in pkg/widget.
*/
package definition
