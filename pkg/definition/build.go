package definition

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/aretw0/panels/internal/fuzzy"
	"github.com/aretw0/panels/pkg/dashboard"
	"github.com/aretw0/panels/pkg/widget"
)

// namespace scopes generated widget ids.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/aretw0/panels"))

// suggestDistance bounds how far a misspelt type may be from a suggestion.
const suggestDistance = 3

// base is the setter surface shared by every widget builder.
type base[T any] interface {
	Heading(string) T
	Description(string) T
	Icon(string) T
	Color(string) T
	Polling(...int) T
}

// chart adds the chart-level setters.
type chart[T any] interface {
	base[T]
	Data(widget.ChartData) T
	Options(widget.Options) T
	Height(int) T
}

// Build translates a spec into a configured widget.
func Build(s Spec) (widget.Widget, error) {
	switch strings.ToLower(s.Type) {
	case TypeStats:
		return buildStats(s)
	case TypeLine:
		w := widget.NewLineChart(s.Labels, datasets(s.Datasets))
		applyChart[*widget.LineChart](w, s)
		flag(s.Curved, w.Curved)
		flag(s.Fill, w.Fill)
		flag(s.ShowPoints, w.ShowPoints)
		flag(s.ShowGrid, w.ShowGrid)
		return w, nil
	case TypeBar:
		w := widget.NewBarChart(s.Labels, datasets(s.Datasets))
		applyChart[*widget.BarChart](w, s)
		flag(s.Horizontal, w.Horizontal)
		flag(s.Stacked, w.Stacked)
		flag(s.ShowGrid, w.ShowGrid)
		if s.BarThickness != nil {
			w.BarThickness(*s.BarThickness)
		}
		return w, nil
	case TypePie, TypeDoughnut:
		w := widget.NewPieChart(s.Labels, s.Values)
		applyChart[*widget.PieChart](w, s)
		if strings.EqualFold(s.Type, TypeDoughnut) {
			w.Doughnut()
		}
		flag(s.ShowLegend, w.ShowLegend)
		flag(s.ShowPercentage, w.ShowPercentage)
		return w, nil
	case TypeArea:
		w := widget.NewChart(widget.ChartArea)
		if s.Labels != nil || s.Datasets != nil {
			w.Data(widget.Series(s.Labels, datasets(s.Datasets)))
		}
		applyChart[*widget.Chart](w, s)
		return w, nil
	case "":
		return nil, fmt.Errorf("%w: type is required", ErrInvalidSpec)
	default:
		err := &UnknownTypeError{Type: s.Type}
		if suggestion, ok := fuzzy.Closest(s.Type, Types, suggestDistance); ok {
			err.Suggestion = suggestion
		}
		return nil, err
	}
}

func buildStats(s Spec) (widget.Widget, error) {
	w := widget.NewStatsOverview()
	applyBase[*widget.StatsOverview](w, s)
	if s.Columns != nil {
		w.Columns(*s.Columns)
	}

	stats := make([]*widget.Stat, 0, len(s.Stats))
	for i, st := range s.Stats {
		stat := widget.NewStat(st.Label, st.Value)
		if err := stat.Err(); err != nil {
			return nil, fmt.Errorf("stats[%d]: %w", i, err)
		}
		if st.Description != "" {
			stat.Description(st.Description)
		}
		if st.DescriptionIcon != "" {
			stat.DescriptionIcon(st.DescriptionIcon, st.DescriptionColor)
		}
		if st.Icon != "" {
			stat.Icon(st.Icon)
		}
		if st.Color != "" {
			stat.Color(st.Color)
		}
		if st.URL != "" {
			stat.URL(st.URL)
		}
		if st.Chart != nil {
			stat.Chart(st.Chart, st.ChartType, st.ChartColor)
		}
		stats = append(stats, stat)
	}
	w.Stats(stats...)
	return w, nil
}

func applyBase[T any](w base[T], s Spec) {
	if s.Heading != "" {
		w.Heading(s.Heading)
	}
	if s.Description != "" {
		w.Description(s.Description)
	}
	if s.Icon != "" {
		w.Icon(s.Icon)
	}
	if s.Color != "" {
		w.Color(s.Color)
	}
	if s.Polling > 0 {
		w.Polling(s.Polling)
	}
}

// applyChart sets common and chart fields. Options are applied before variant
// flags so the flags land on top of them.
func applyChart[T any](w chart[T], s Spec) {
	applyBase[T](w, s)
	if s.Data != nil {
		w.Data(widget.ChartData(s.Data))
	}
	if s.Options != nil {
		w.Options(widget.Options(s.Options))
	}
	if s.Height != nil {
		w.Height(*s.Height)
	}
}

func flag[T any](v *bool, set func(...bool) T) {
	if v != nil {
		set(*v)
	}
}

func datasets(in []map[string]any) []widget.Dataset {
	if in == nil {
		return nil
	}
	out := make([]widget.Dataset, len(in))
	for i, d := range in {
		out[i] = widget.Dataset(d)
	}
	return out
}

// ID returns the spec id, or a stable id derived from scope, position and heading.
func ID(scope string, index int, s Spec) string {
	if s.ID != "" {
		return s.ID
	}
	key := scope + "/" + strconv.Itoa(index) + "/" + s.Type + "/" + s.Heading
	return uuid.NewSHA1(namespace, []byte(key)).String()
}

// Sort orders specs by Order, then ID.
func Sort(specs []Spec) {
	sort.SliceStable(specs, func(i, j int) bool {
		if specs[i].Order != specs[j].Order {
			return specs[i].Order < specs[j].Order
		}
		return specs[i].ID < specs[j].ID
	})
}

// Entries builds every spec into dashboard entries, assigning ids where missing.
func Entries(scope string, specs []Spec) ([]dashboard.Entry, error) {
	entries := make([]dashboard.Entry, 0, len(specs))
	for i, s := range specs {
		id := ID(scope, i, s)
		w, err := Build(s)
		if err != nil {
			return nil, fmt.Errorf("widget %s: %w", id, err)
		}
		entries = append(entries, dashboard.Entry{ID: id, Widget: w})
	}
	return entries, nil
}
