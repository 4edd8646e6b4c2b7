package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/aretw0/panels/pkg/definition"
)

// Source implements ports.Source and ports.Watchable over specs held in memory.
// It is mostly useful for tests and for embedding dashboards built in code.
type Source struct {
	mu       sync.Mutex
	name     string
	specs    []definition.Spec
	watchers []chan string
}

// New creates a memory source with the provided specs.
func New(name string, specs ...definition.Spec) *Source {
	return &Source{name: name, specs: slices.Clone(specs)}
}

// Load returns a copy of the current specs.
func (s *Source) Load(ctx context.Context) (string, []definition.Spec, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name, slices.Clone(s.specs), nil
}

// Set replaces the specs and notifies watchers. Slow watchers miss notifications
// rather than block the writer.
func (s *Source) Set(specs ...definition.Spec) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.specs = slices.Clone(specs)

	for _, ch := range s.watchers {
		select {
		case ch <- s.name:
		default:
		}
	}
}

// Watch implements ports.Watchable.
func (s *Source) Watch(ctx context.Context) (<-chan string, error) {
	ch := make(chan string, 1)

	s.mu.Lock()
	s.watchers = append(s.watchers, ch)
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		defer s.mu.Unlock()
		s.watchers = slices.DeleteFunc(s.watchers, func(c chan string) bool { return c == ch })
		close(ch)
	}()

	return ch, nil
}
