package schema

import (
	"errors"
	"fmt"

	"github.com/aretw0/panels/pkg/widget"
)

func polling(interval Type) Type {
	return Object(Schema{
		"enabled":  Bool(),
		"interval": Nullable(interval),
	})
}

// StatProps is the contract of a single serialized stat.
func StatProps() Schema {
	return Schema{
		"label":            String(),
		"value":            Any(),
		"description":      Nullable(String()),
		"icon":             Nullable(String()),
		"color":            Nullable(String()),
		"chart":            Nullable(String()),
		"chartData":        Nullable(Slice(Float())),
		"chartColor":       Nullable(String()),
		"url":              Nullable(String()),
		"descriptionIcon":  Bool(),
		"descriptionColor": Nullable(String()),
	}
}

// StatsOverviewProps is the contract of a StatsOverviewWidget.
func StatsOverviewProps(strict bool) Schema {
	columns, interval := Int(), Int()
	if strict {
		columns, interval = Positive(), Positive()
	}
	return Schema{
		"component":   Literal(widget.ComponentStatsOverview),
		"heading":     Nullable(String()),
		"description": Nullable(String()),
		"stats":       Slice(Object(StatProps())),
		"columns":     columns,
		"polling":     polling(interval),
	}
}

// ChartProps is the contract of a ChartWidget.
func ChartProps(strict bool) Schema {
	interval := Int()
	options := Type(Any())
	if strict {
		interval = Positive()
		options = Custom("options", func(v any) error {
			m, ok := asMap(v)
			if !ok {
				return fmt.Errorf("expected object, got %T", v)
			}
			if bt, ok := m["barThickness"]; ok {
				return Positive().Validate(bt)
			}
			return nil
		})
	}

	chartTypes := make([]string, 0, len(widget.ChartTypes))
	for _, t := range widget.ChartTypes {
		chartTypes = append(chartTypes, string(t))
	}

	return Schema{
		"component":   Literal(widget.ComponentChart),
		"heading":     Nullable(String()),
		"description": Nullable(String()),
		"chartType":   Literal(chartTypes...),
		"data":        Object(Schema{}),
		"options":     options,
		"height":      Nullable(Int()),
		"color":       Nullable(String()),
		"polling":     polling(interval),
	}
}

// BaseProps is the minimum every widget must serialize.
func BaseProps() Schema {
	return Schema{
		"component":   String(),
		"heading":     Nullable(String()),
		"description": Nullable(String()),
		"polling":     polling(Int()),
	}
}

// ErrUnknownComponent is returned by Contract for components without a contract.
var ErrUnknownComponent = errors.New("unknown component")

// Components lists the components that have a dedicated contract.
var Components = []string{widget.ComponentStatsOverview, widget.ComponentChart}

// Contract returns the props contract of a component.
func Contract(component string, strict bool) (Schema, error) {
	switch component {
	case widget.ComponentStatsOverview:
		return StatsOverviewProps(strict), nil
	case widget.ComponentChart:
		return ChartProps(strict), nil
	default:
		return nil, fmt.Errorf("%w %q (known: %v)", ErrUnknownComponent, component, Components)
	}
}

// For returns the contract matching the "component" key of props. Unknown
// components fall back to BaseProps.
func For(props map[string]any, strict bool) Schema {
	component, _ := props["component"].(string)
	if s, err := Contract(component, strict); err == nil {
		return s
	}
	return BaseProps()
}

// ValidateWidget serializes w and validates its props.
func ValidateWidget(w widget.Widget, strict bool) error {
	props, err := w.Props()
	if err != nil {
		return err
	}
	return Validate(For(props, strict), props)
}
