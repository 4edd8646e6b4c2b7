package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/panels/internal/logging"
	"github.com/aretw0/panels/pkg/widget"
)

// Entry is a widget registered under an id.
type Entry struct {
	ID     string
	Widget widget.Widget
}

// Rendered is the serialized form of an Entry.
type Rendered struct {
	ID    string       `json:"id"`
	Props widget.Props `json:"props"`
}

// Dashboard is an ordered collection of widgets. Safe for concurrent use.
type Dashboard struct {
	name   string
	hooks  Hooks
	logger *slog.Logger

	mu      sync.RWMutex
	entries []Entry
	index   map[string]int
}

// Option defines a functional option for configuring the Dashboard.
type Option func(*Dashboard)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dashboard) {
		d.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks Hooks) Option {
	return func(d *Dashboard) {
		d.hooks = d.hooks.Merge(hooks)
	}
}

// New creates an empty dashboard.
func New(name string, opts ...Option) *Dashboard {
	d := &Dashboard{
		name:  name,
		index: make(map[string]int),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = logging.NewNop()
	}
	d.logger = d.logger.With("dashboard", name)
	return d
}

// Name returns the dashboard name.
func (d *Dashboard) Name() string {
	return d.name
}

// Add appends a widget. Ids must be unique and non-empty.
func (d *Dashboard) Add(id string, w widget.Widget) error {
	if id == "" {
		return fmt.Errorf("widget id is required: %w", widget.ErrInvalidArgument)
	}
	if w == nil {
		return fmt.Errorf("widget %q is nil: %w", id, widget.ErrInvalidArgument)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.index[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateWidget, id)
	}
	d.index[id] = len(d.entries)
	d.entries = append(d.entries, Entry{ID: id, Widget: w})
	return nil
}

// Replace swaps every entry at once. On error the dashboard is left untouched.
func (d *Dashboard) Replace(ctx context.Context, entries []Entry) error {
	index := make(map[string]int, len(entries))
	for i, e := range entries {
		if e.ID == "" || e.Widget == nil {
			return fmt.Errorf("entry %d: %w", i, widget.ErrInvalidArgument)
		}
		if _, ok := index[e.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateWidget, e.ID)
		}
		index[e.ID] = i
	}

	d.mu.Lock()
	d.entries = append([]Entry(nil), entries...)
	d.index = index
	d.mu.Unlock()

	d.logger.Debug("dashboard reloaded", "widgets", len(entries))
	if d.hooks.OnReload != nil {
		d.hooks.OnReload(ctx, &ReloadEvent{
			Timestamp: time.Now(),
			Dashboard: d.name,
			Widgets:   len(entries),
		})
	}
	return nil
}

// IDs returns the widget ids in render order.
func (d *Dashboard) IDs() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ids := make([]string, len(d.entries))
	for i, e := range d.entries {
		ids[i] = e.ID
	}
	return ids
}

// Widget returns the widget registered under id.
func (d *Dashboard) Widget(id string) (widget.Widget, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	i, ok := d.index[id]
	if !ok {
		return nil, false
	}
	return d.entries[i].Widget, true
}

// Render serializes a single widget.
func (d *Dashboard) Render(ctx context.Context, id string) (widget.Props, error) {
	w, ok := d.Widget(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrWidgetNotFound, id)
	}
	return d.render(ctx, id, w)
}

// RenderAll serializes every widget in order. The first failure aborts the render.
func (d *Dashboard) RenderAll(ctx context.Context) ([]Rendered, error) {
	d.mu.RLock()
	entries := append([]Entry(nil), d.entries...)
	d.mu.RUnlock()

	out := make([]Rendered, 0, len(entries))
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		props, err := d.render(ctx, e.ID, e.Widget)
		if err != nil {
			return nil, err
		}
		out = append(out, Rendered{ID: e.ID, Props: props})
	}
	return out, nil
}

func (d *Dashboard) render(ctx context.Context, id string, w widget.Widget) (widget.Props, error) {
	start := time.Now()
	props, err := w.Props()
	elapsed := time.Since(start)

	event := &RenderEvent{
		Timestamp: start,
		Dashboard: d.name,
		WidgetID:  id,
		Duration:  elapsed,
		Err:       err,
	}
	if err == nil {
		event.Component, _ = props["component"].(string)
	}
	if d.hooks.OnRender != nil {
		d.hooks.OnRender(ctx, event)
	}

	if err != nil {
		d.logger.Error("widget render failed", "widget", id, "error", err)
		return nil, fmt.Errorf("render %s: %w", id, err)
	}
	d.logger.Debug("widget rendered", "widget", id, "component", event.Component, "duration", elapsed)
	return props, nil
}
