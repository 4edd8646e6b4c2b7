package dashboard

import (
	"context"
	"time"
)

// RenderEvent describes one widget serialization.
type RenderEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Dashboard string        `json:"dashboard"`
	WidgetID  string        `json:"widget_id"`
	Component string        `json:"component,omitempty"`
	Duration  time.Duration `json:"duration"`
	Err       error         `json:"-"`
}

// ReloadEvent describes a swap of the dashboard entries.
type ReloadEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Dashboard string    `json:"dashboard"`
	Widgets   int       `json:"widgets"`
}

// Hooks defines callbacks for dashboard observability.
type Hooks struct {
	OnRender func(context.Context, *RenderEvent)
	OnReload func(context.Context, *ReloadEvent)
}

// Merge returns hooks that call h first and then other.
func (h Hooks) Merge(other Hooks) Hooks {
	return Hooks{
		OnRender: chain(h.OnRender, other.OnRender),
		OnReload: chain(h.OnReload, other.OnReload),
	}
}

func chain[E any](a, b func(context.Context, *E)) func(context.Context, *E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *E) {
		a(ctx, e)
		b(ctx, e)
	}
}
