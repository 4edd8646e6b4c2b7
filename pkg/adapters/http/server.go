// Package http serves dashboard props over a small JSON API built on chi.
package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/aretw0/panels"
	"github.com/aretw0/panels/internal/logging"
	"github.com/aretw0/panels/pkg/dashboard"
	"github.com/aretw0/panels/pkg/lang"
	"github.com/aretw0/panels/pkg/schema"
	"github.com/aretw0/panels/pkg/widget"
)

//go:embed openapi.yaml
var rawSpec []byte

var (
	specOnce sync.Once
	spec     *openapi3.T
	specErr  error
)

// GetSwagger parses the embedded OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	specOnce.Do(func() {
		spec, specErr = openapi3.NewLoader().LoadFromData(rawSpec)
	})
	return spec, specErr
}

// Dashboard is the read side of a dashboard the server renders.
type Dashboard interface {
	Name() string
	Render(ctx context.Context, id string) (widget.Props, error)
	RenderAll(ctx context.Context) ([]dashboard.Rendered, error)
}

// Server exposes a dashboard over HTTP.
type Server struct {
	Dashboard Dashboard
	Streams   *StreamManager
	metrics   http.Handler
	logger    *slog.Logger
}

// Option defines a functional option for configuring the Server.
type Option func(*Server)

// WithMetrics mounts h on /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a server for d.
func NewServer(d Dashboard, opts ...Option) *Server {
	s := &Server{
		Dashboard: d,
		Streams:   NewStreamManager(),
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Streams.logger = s.logger
	return s
}

// NewHandler is a shortcut for NewServer(d, opts...).Handler().
func NewHandler(d Dashboard, opts ...Option) http.Handler {
	return NewServer(d, opts...).Handler()
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	r.Get("/widgets", s.ListWidgets)
	r.Get("/widgets/{id}", s.GetWidget)
	r.Get("/contracts/{component}", s.GetContract)
	r.Get("/lang", s.GetLang)
	r.Get("/lang/{locale}", s.GetLang)
	r.Get("/events", s.SubscribeEvents)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	return enableCORS(r)
}

// Notify broadcasts a change to /events subscribers.
func (s *Server) Notify(id string) {
	s.Streams.Broadcast(id)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept-Language")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	}

	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":         "panels-http",
		"version":     panels.Version,
		"api_version": apiVersion,
	})
}

// ListWidgets handles the GET /widgets request.
func (s *Server) ListWidgets(w http.ResponseWriter, r *http.Request) {
	rendered, err := s.Dashboard.RenderAll(r.Context())
	if err != nil {
		s.logger.Error("render failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"dashboard": s.Dashboard.Name(),
		"widgets":   rendered,
	})
}

// GetWidget handles the GET /widgets/{id} request. With ?strict=true the props
// are also checked against the strict contract and 422 is returned on violations.
func (s *Server) GetWidget(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var strict bool
	if err := runtime.BindQueryParameter("form", true, false, "strict", r.URL.Query(), &strict); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid format for parameter strict: %w", err))
		return
	}

	props, err := s.Dashboard.Render(r.Context(), id)
	if err != nil {
		if errors.Is(err, dashboard.ErrWidgetNotFound) {
			s.writeError(w, http.StatusNotFound, err)
			return
		}
		s.logger.Error("render failed", "widget", id, "error", err)
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	if strict {
		if err := schema.Validate(schema.For(props, true), props); err != nil {
			s.writeError(w, http.StatusUnprocessableEntity, err)
			return
		}
	}
	s.writeJSON(w, http.StatusOK, props)
}

// GetContract handles the GET /contracts/{component} request: the props contract
// as a map of prop key to type name.
func (s *Server) GetContract(w http.ResponseWriter, r *http.Request) {
	var strict bool
	if err := runtime.BindQueryParameter("form", true, false, "strict", r.URL.Query(), &strict); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid format for parameter strict: %w", err))
		return
	}

	contract, err := schema.Contract(chi.URLParam(r, "component"), strict)
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	s.writeJSON(w, http.StatusOK, contract)
}

// GetLang handles GET /lang and GET /lang/{locale}. Without a locale the
// Accept-Language header picks one.
func (s *Server) GetLang(w http.ResponseWriter, r *http.Request) {
	locale := chi.URLParam(r, "locale")
	if locale == "" {
		locale = lang.Match(r.Header.Get("Accept-Language"))
	}

	table, err := lang.Table(locale)
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"locale":  locale,
		"dir":     lang.Direction(locale),
		"strings": table,
	})
}

// SubscribeEvents handles the GET /events request (SSE).
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	var watch string
	if err := runtime.BindQueryParameter("form", true, false, "watch", r.URL.Query(), &watch); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid format for parameter watch: %w", err))
		return
	}
	var watchList []string
	if watch != "" {
		for _, id := range strings.Split(watch, ",") {
			if id = strings.TrimSpace(id); id != "" {
				watchList = append(watchList, id)
			}
		}
	}

	ch, cancel := s.Streams.Subscribe()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.logger.Debug("SSE client disconnected")
			return
		case id, ok := <-ch:
			if !ok {
				return
			}
			if len(watchList) > 0 && !matches(watchList, id) {
				continue
			}
			fmt.Fprintf(w, "event: reload\ndata: %s\n\n", id)
			flusher.Flush()
		}
	}
}

func matches(watchList []string, id string) bool {
	for _, w := range watchList {
		if w == id || strings.HasSuffix(id, "/"+w) {
			return true
		}
	}
	return false
}
