package panels_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/panels"
	"github.com/aretw0/panels/pkg/adapters/memory"
	"github.com/aretw0/panels/pkg/definition"
	"github.com/aretw0/panels/pkg/widget"
)

// ExampleNew_memory demonstrates a Board backed by specs held in memory.
func ExampleNew_memory() {
	src := memory.New("sales",
		definition.Spec{ID: "orders", Type: definition.TypeStats, Stats: []definition.StatSpec{
			{Label: "Orders", Value: 1250},
		}},
		definition.Spec{ID: "share", Type: definition.TypeDoughnut, Labels: []string{"Web", "Store"}, Values: []float64{70, 30}},
	)

	board, err := panels.New("", panels.WithSource(src))
	if err != nil {
		log.Fatal(err)
	}

	rendered, err := board.Dashboard().RenderAll(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	for _, r := range rendered {
		fmt.Println(r.ID, r.Props["component"])
	}
	// Output:
	// orders StatsOverviewWidget
	// share ChartWidget
}

func Example_barChart() {
	chart := widget.NewBarChart(
		[]string{"Jan", "Feb"},
		[]widget.Dataset{{"label": "Sales", "data": []int{100, 200}}},
	).Heading("Monthly Sales").Stacked()

	data, err := widget.JSON(chart)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(data))
	// Output:
	// {"chartType":"bar","color":null,"component":"ChartWidget","data":{"datasets":[{"data":[100,200],"label":"Sales"}],"labels":["Jan","Feb"]},"description":null,"heading":"Monthly Sales","height":null,"options":{"stacked":true},"polling":{"enabled":false,"interval":null}}
}
