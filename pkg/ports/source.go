package ports

import (
	"context"

	"github.com/aretw0/panels/pkg/definition"
)

// Source loads widget definitions from a backend (a single file, a Loam directory, memory).
type Source interface {
	// Load returns the dashboard name and its widget specs in display order.
	Load(ctx context.Context) (name string, specs []definition.Spec, err error)
}

// Watchable is implemented by sources that can notify about backend changes.
type Watchable interface {
	// Watch returns a channel that receives the id (or path) of whatever changed.
	// The channel is closed when ctx is done.
	Watch(ctx context.Context) (<-chan string, error)
}
