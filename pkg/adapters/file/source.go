// Package file implements a widget source backed by a single YAML or JSON dashboard file.
package file

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/panels/internal/logging"
	"github.com/aretw0/panels/pkg/definition"
)

// DefaultDebounce collapses bursts of writes (editors often write twice) into one change.
const DefaultDebounce = 100 * time.Millisecond

// Source reads a dashboard file.
type Source struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Source.
type Option func(*Source)

// WithDebounce sets the quiet period before a change is reported.
func WithDebounce(d time.Duration) Option {
	return func(s *Source) {
		s.debounce = d
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Source) {
		s.logger = logger
	}
}

// New creates a file source.
func New(path string, opts ...Option) *Source {
	s := &Source{
		path:     filepath.Clean(path),
		debounce: DefaultDebounce,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the watched file.
func (s *Source) Path() string {
	return s.path
}

// Load implements ports.Source. Widgets keep their file order.
func (s *Source) Load(ctx context.Context) (string, []definition.Spec, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}
	file, err := definition.LoadFile(s.path)
	if err != nil {
		return "", nil, err
	}
	return file.Name, file.Widgets, nil
}

// Watch implements ports.Watchable. It watches the parent directory so that
// editors replacing the file through a rename are still observed.
func (s *Source) Watch(ctx context.Context) (<-chan string, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(s.path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", s.path, err)
	}

	ch := make(chan string, 1)

	go func() {
		defer close(ch)
		defer w.Close()

		timer := time.NewTimer(s.debounce)
		timer.Stop()
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != s.path {
					continue
				}
				if !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Create) && !evt.Has(fsnotify.Rename) && !evt.Has(fsnotify.Remove) {
					continue
				}
				s.logger.Debug("dashboard file changed", "path", evt.Name, "op", evt.Op.String())
				timer.Reset(s.debounce)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				s.logger.Warn("file watcher error", "err", err)
			case <-timer.C:
				select {
				case ch <- s.path:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}
