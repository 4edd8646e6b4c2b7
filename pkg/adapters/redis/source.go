// Package redis stores widget definitions in a Redis hash, one JSON document
// per widget id, and announces changes on a pub/sub channel.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"strings"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/panels/internal/logging"
	"github.com/aretw0/panels/pkg/definition"
)

// DefaultPrefix is prepended to the dashboard name to form the hash key.
const DefaultPrefix = "panels:dashboard:"

// ErrMissingID is returned by Save for specs without an id.
var ErrMissingID = errors.New("widget id is required")

// Source implements ports.Source and ports.Watchable on top of Redis.
type Source struct {
	client *backend.Client
	name   string
	prefix string
	logger *slog.Logger
}

type Option func(*Source)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Source) {
		s.prefix = prefix
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Source) {
		s.logger = logger
	}
}

// New creates a source for dashboard name connecting to address.
func New(address, password string, db int, name string, opts ...Option) *Source {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, name, opts...)
}

// IsURL reports whether path names a Redis dashboard rather than a file.
func IsURL(path string) bool {
	return strings.HasPrefix(path, "redis://") || strings.HasPrefix(path, "rediss://")
}

// Open connects using a URL such as redis://:secret@localhost:6379/0?dashboard=ops.
// The dashboard parameter defaults to "default"; the rest follows go-redis URL syntax.
func Open(rawURL string, opts ...Option) (*Source, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	q := u.Query()
	name := q.Get("dashboard")
	if name == "" {
		name = "default"
	}
	q.Del("dashboard")
	u.RawQuery = q.Encode()

	redisOpts, err := backend.ParseURL(u.String())
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return NewFromClient(backend.NewClient(redisOpts), name, opts...), nil
}

// NewFromClient creates a source from an existing client.
func NewFromClient(client *backend.Client, name string, opts ...Option) *Source {
	s := &Source{
		client: client,
		name:   name,
		prefix: DefaultPrefix,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Source) key() string {
	return s.prefix + s.name
}

func (s *Source) channel() string {
	return s.key() + ":changes"
}

// Load reads every widget of the dashboard, ordered by order then id.
func (s *Source) Load(ctx context.Context) (string, []definition.Spec, error) {
	fields, err := s.client.HGetAll(ctx, s.key()).Result()
	if err != nil {
		return "", nil, fmt.Errorf("failed to read from redis: %w", err)
	}

	ids := make([]string, 0, len(fields))
	for id := range fields {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	specs := make([]definition.Spec, 0, len(ids))
	for _, id := range ids {
		var raw map[string]any
		if err := json.Unmarshal([]byte(fields[id]), &raw); err != nil {
			return "", nil, fmt.Errorf("widget %s: failed to unmarshal: %w", id, err)
		}
		var spec definition.Spec
		if err := definition.Decode(raw, &spec); err != nil {
			return "", nil, fmt.Errorf("widget %s: %w", id, err)
		}
		spec.ID = id
		specs = append(specs, spec)
	}

	definition.Sort(specs)
	return s.name, specs, nil
}

// Save writes spec under its id and notifies watchers.
func (s *Source) Save(ctx context.Context, spec definition.Spec) error {
	if spec.ID == "" {
		return ErrMissingID
	}
	data, err := json.Marshal(spec)
	if err != nil {
		return fmt.Errorf("failed to marshal spec: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.HSet(ctx, s.key(), spec.ID, data)
	pipe.Publish(ctx, s.channel(), spec.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Delete removes a widget and notifies watchers.
func (s *Source) Delete(ctx context.Context, id string) error {
	pipe := s.client.Pipeline()
	pipe.HDel(ctx, s.key(), id)
	pipe.Publish(ctx, s.channel(), id)
	_, err := pipe.Exec(ctx)
	return err
}

// Watch reports the ids passed to Save and Delete, by this or any other
// process. The channel is closed when ctx is done.
func (s *Source) Watch(ctx context.Context) (<-chan string, error) {
	sub := s.client.Subscribe(ctx, s.channel())
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	out := make(chan string)
	go func() {
		defer close(out)
		defer sub.Close()

		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				s.logger.Debug("dashboard changed", "dashboard", s.name, "widget", msg.Payload)
				select {
				case out <- msg.Payload:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
