package widget

import (
	"fmt"
	"slices"
)

// DefaultStatChart is the sparkline kind used when Chart is given no kind.
const DefaultStatChart = "bar"

// Stat is a single labeled metric rendered inside a StatsOverview.
type Stat struct {
	label string
	value Value

	description *string
	icon        *string
	color       *string
	url         *string

	chart      *string
	chartData  []float64
	chartColor *string

	descriptionIcon  bool
	descriptionColor *string

	err error
}

// NewStat creates a stat. value may be a string or number, a Value, or a
// zero-argument function returning T or (T, error), such as func() int, evaluated
// when props are built.
//
// An empty label is recorded as ErrInvalidArgument and reported by Err and Props.
func NewStat(label string, value any) *Stat {
	s := &Stat{
		label: label,
		value: valueOf(value),
	}
	if label == "" {
		s.err = fmt.Errorf("stat label is required: %w", ErrInvalidArgument)
	}
	return s
}

// Err returns the construction error, if any.
func (s *Stat) Err() error {
	return s.err
}

// Label returns the stat label.
func (s *Stat) Label() string {
	return s.label
}

// Description sets the secondary line under the value.
func (s *Stat) Description(text string) *Stat {
	s.description = &text
	return s
}

// DescriptionIcon marks the icon as belonging to the description line.
// It replaces any icon set earlier. An empty color serializes as null.
func (s *Stat) DescriptionIcon(icon string, color string) *Stat {
	s.descriptionIcon = true
	s.icon = &icon
	s.descriptionColor = nonEmpty(color)
	return s
}

// Icon sets the icon name shown next to the label.
func (s *Stat) Icon(name string) *Stat {
	s.icon = &name
	return s
}

// Color sets the color token of the stat.
func (s *Stat) Color(token string) *Stat {
	s.color = &token
	return s
}

// URL makes the stat a link to href.
func (s *Stat) URL(href string) *Stat {
	s.url = &href
	return s
}

// Chart attaches a trend sparkline. An empty kind means DefaultStatChart and an
// empty color clears any previous override.
func (s *Stat) Chart(data []float64, kind string, color string) *Stat {
	if kind == "" {
		kind = DefaultStatChart
	}
	s.chart = &kind
	s.chartData = slices.Clone(data)
	s.chartColor = nonEmpty(color)
	return s
}

// Props resolves the value and returns the flat stat map.
func (s *Stat) Props() (Props, error) {
	if s.err != nil {
		return nil, s.err
	}

	value, err := resolveField("value", s.value)
	if err != nil {
		return nil, err
	}

	var chartData any
	if s.chartData != nil {
		chartData = s.chartData
	}

	return Props{
		"label":            s.label,
		"value":            value,
		"description":      optString(s.description),
		"icon":             optString(s.icon),
		"color":            optString(s.color),
		"chart":            optString(s.chart),
		"chartData":        chartData,
		"chartColor":       optString(s.chartColor),
		"url":              optString(s.url),
		"descriptionIcon":  s.descriptionIcon,
		"descriptionColor": optString(s.descriptionColor),
	}, nil
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
