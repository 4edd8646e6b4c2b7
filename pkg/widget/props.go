package widget

import (
	"encoding/json"
	"fmt"
)

// Props is the serialized, JSON-compatible description of a widget.
type Props map[string]any

// Widget is implemented by every serializable widget, including custom ones
// built on top of Base.
type Widget interface {
	Props() (Props, error)
}

// Component names understood by the rendering layer.
const (
	ComponentStatsOverview = "StatsOverviewWidget"
	ComponentChart         = "ChartWidget"
	ComponentBasic         = "BasicWidget"
)

// JSON serializes the props of w.
func JSON(w Widget) ([]byte, error) {
	props, err := w.Props()
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(props)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal props: %w", err)
	}
	return data, nil
}

func optString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func optInt(i *int) any {
	if i == nil {
		return nil
	}
	return *i
}

// enabled reads an optional boolean argument that defaults to true.
func enabled(on []bool) bool {
	if len(on) == 0 {
		return true
	}
	return on[0]
}
