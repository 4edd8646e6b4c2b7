// Package loam implements a widget source over a directory of documents managed by Loam.
// Each document (Markdown front matter, YAML or JSON) describes one widget.
package loam

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/aretw0/loam"

	"github.com/aretw0/panels/internal/logging"
	"github.com/aretw0/panels/pkg/definition"
)

// Source adapts a Loam repository to ports.Source.
type Source struct {
	Repo   *loam.TypedRepository[definition.Spec]
	name   string
	logger *slog.Logger
}

// Option defines a functional option for configuring the Source.
type Option func(*Source)

// WithName overrides the dashboard name (defaults to the directory name).
func WithName(name string) Option {
	return func(s *Source) {
		s.name = name
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Source) {
		s.logger = logger
	}
}

// New creates a source over an existing typed repository.
func New(repo *loam.TypedRepository[definition.Spec], opts ...Option) *Source {
	s := &Source{Repo: repo, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open initializes Loam on dir in strict, read-only mode.
// Strict mode keeps numbers exact (json.Number) across Markdown, YAML and JSON documents.
func Open(dir string, opts ...Option) (*Source, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}

	opts = append([]Option{WithName(filepath.Base(absPath))}, opts...)
	return New(loam.NewTypedRepository[definition.Spec](repo), opts...), nil
}

// Load implements ports.Source. Documents without a type are skipped, so a
// README can live next to the widgets. Specs are ordered by order, then id.
func (s *Source) Load(ctx context.Context) (string, []definition.Spec, error) {
	docs, err := s.Repo.List(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string)
	specs := make([]definition.Spec, 0, len(docs))

	for _, doc := range docs {
		spec := doc.Data
		if spec.Type == "" {
			s.logger.Debug("skipping document without type", "doc", doc.ID)
			continue
		}

		if spec.ID == "" {
			spec.ID = trimExtension(doc.ID)
		}
		if existing, ok := seen[spec.ID]; ok {
			return "", nil, fmt.Errorf("collision detected: ID '%s' is defined in both '%s' and '%s'", spec.ID, existing, doc.ID)
		}
		seen[spec.ID] = doc.ID

		// The Markdown body doubles as the description.
		if body := strings.TrimSpace(doc.Content); spec.Description == "" && body != "" {
			spec.Description = body
		}

		normalizeNumbers(&spec)
		specs = append(specs, spec)
	}

	definition.Sort(specs)
	return s.name, specs, nil
}

// Watch implements ports.Watchable.
func (s *Source) Watch(ctx context.Context) (<-chan string, error) {
	events, err := s.Repo.Watch(ctx, "**/*.{md,json,yaml,yml}")
	if err != nil {
		return nil, fmt.Errorf("failed to start loam watcher: %w", err)
	}

	ch := make(chan string, 1)

	go func() {
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-events:
				if !ok {
					return
				}
				select {
				case ch <- trimExtension(evt.ID):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}

func trimExtension(id string) string {
	return filepath.ToSlash(strings.TrimSuffix(id, filepath.Ext(id)))
}

// normalizeNumbers turns json.Number stat values back into int64 or float64.
func normalizeNumbers(spec *definition.Spec) {
	for i := range spec.Stats {
		n, ok := spec.Stats[i].Value.(json.Number)
		if !ok {
			continue
		}
		if v, err := n.Int64(); err == nil {
			spec.Stats[i].Value = v
		} else if v, err := n.Float64(); err == nil {
			spec.Stats[i].Value = v
		}
	}
}
