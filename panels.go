package panels

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/aretw0/panels/internal/logging"
	fileAdapter "github.com/aretw0/panels/pkg/adapters/file"
	loamAdapter "github.com/aretw0/panels/pkg/adapters/loam"
	redisAdapter "github.com/aretw0/panels/pkg/adapters/redis"
	"github.com/aretw0/panels/pkg/dashboard"
	"github.com/aretw0/panels/pkg/definition"
	"github.com/aretw0/panels/pkg/ports"
)

// ErrNotWatchable is returned by Watch when the source cannot report changes.
var ErrNotWatchable = errors.New("source does not support watching")

// Board is the high-level entry point of the library: a dashboard kept in
// sync with the source it was declared in.
type Board struct {
	source ports.Source
	dash   *dashboard.Dashboard
	hooks  dashboard.Hooks
	logger *slog.Logger

	reloadMu sync.Mutex
}

// Option defines a functional option for configuring the Board.
type Option func(*Board)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Board) {
		b.logger = logger
	}
}

// WithHooks registers observability hooks on the underlying dashboard.
func WithHooks(hooks dashboard.Hooks) Option {
	return func(b *Board) {
		b.hooks = b.hooks.Merge(hooks)
	}
}

// WithSource injects a custom source, bypassing path detection.
func WithSource(src ports.Source) Option {
	return func(b *Board) {
		b.source = src
	}
}

// New loads the dashboard declared at path. A redis:// URL is read from Redis,
// a directory through Loam, anything else as a single YAML/JSON file. With WithSource, path may be empty.
func New(path string, opts ...Option) (*Board, error) {
	b := &Board{}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = logging.NewNop()
	}

	if b.source == nil {
		src, err := sourceFor(path, b.logger)
		if err != nil {
			return nil, err
		}
		b.source = src
	}

	ctx := context.Background()
	name, specs, err := b.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}

	b.dash = dashboard.New(name, dashboard.WithLogger(b.logger), dashboard.WithHooks(b.hooks))
	if err := b.apply(ctx, name, specs); err != nil {
		return nil, err
	}
	return b, nil
}

func sourceFor(path string, logger *slog.Logger) (ports.Source, error) {
	if path == "" {
		return nil, fmt.Errorf("path is required when no custom source is provided")
	}
	if redisAdapter.IsURL(path) {
		return redisAdapter.Open(path, redisAdapter.WithLogger(logger))
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	if info.IsDir() {
		return loamAdapter.Open(path, loamAdapter.WithLogger(logger))
	}
	return fileAdapter.New(path, fileAdapter.WithLogger(logger)), nil
}

// Dashboard returns the live dashboard.
func (b *Board) Dashboard() *dashboard.Dashboard {
	return b.dash
}

// Name returns the dashboard name.
func (b *Board) Name() string {
	return b.dash.Name()
}

// Reload re-reads the source. On failure the previous widgets stay in place.
func (b *Board) Reload(ctx context.Context) error {
	b.reloadMu.Lock()
	defer b.reloadMu.Unlock()

	name, specs, err := b.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load dashboard: %w", err)
	}
	return b.apply(ctx, name, specs)
}

func (b *Board) apply(ctx context.Context, name string, specs []definition.Spec) error {
	entries, err := definition.Entries(name, specs)
	if err != nil {
		return err
	}
	return b.dash.Replace(ctx, entries)
}

// Watch reloads the dashboard whenever the source changes and reports what
// changed on the returned channel. Failed reloads are logged and skipped.
// The channel is closed when ctx is done.
func (b *Board) Watch(ctx context.Context) (<-chan string, error) {
	w, ok := b.source.(ports.Watchable)
	if !ok {
		return nil, ErrNotWatchable
	}
	events, err := w.Watch(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan string, 1)
	go func() {
		defer close(out)
		for id := range events {
			if err := b.Reload(ctx); err != nil {
				b.logger.Warn("reload failed", "changed", id, "err", err)
				continue
			}
			b.logger.Info("dashboard reloaded", "changed", id)
			select {
			case out <- id:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
