package widget

import (
	"fmt"
	"slices"
)

// DefaultColumns is the grid width of a new StatsOverview.
const DefaultColumns = 3

// StatsOverview renders an ordered row of stats.
type StatsOverview struct {
	Base[*StatsOverview]

	stats   []*Stat
	columns int
}

// NewStatsOverview creates an empty overview with DefaultColumns columns.
func NewStatsOverview() *StatsOverview {
	w := &StatsOverview{columns: DefaultColumns}
	w.Bind(w)
	return w
}

// Stats replaces the stats. The given order is the render order; nil entries are skipped.
func (w *StatsOverview) Stats(stats ...*Stat) *StatsOverview {
	w.stats = slices.DeleteFunc(slices.Clone(stats), func(s *Stat) bool { return s == nil })
	return w
}

// Columns sets the grid width. The value is not range checked.
func (w *StatsOverview) Columns(n int) *StatsOverview {
	w.columns = n
	return w
}

// Props serializes the overview and every stat in order.
func (w *StatsOverview) Props() (Props, error) {
	stats := make([]Props, 0, len(w.stats))
	for i, s := range w.stats {
		p, err := s.Props()
		if err != nil {
			return nil, fmt.Errorf("stat %d (%s): %w", i, s.Label(), err)
		}
		stats = append(stats, p)
	}

	props := w.BaseProps(ComponentStatsOverview)
	props["stats"] = stats
	props["columns"] = w.columns
	return props, nil
}
