// Package mcp exposes dashboards, scaffolding and documentation as an MCP server.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/panels"
	"github.com/aretw0/panels/internal/logging"
	"github.com/aretw0/panels/internal/scaffold"
	"github.com/aretw0/panels/pkg/dashboard"
	"github.com/aretw0/panels/pkg/docs"
	"github.com/aretw0/panels/pkg/widget"
)

const (
	// DashboardURI is the resource holding every rendered widget.
	DashboardURI = "panels://dashboard"
	docsPrefix   = "panels://docs/"
)

const instructions = `This server provides dashboard widget capabilities for Go projects built on panels.

You can:
- Generate stats overview widgets
- Generate chart widgets (line, bar, pie/doughnut, area)
- Render the widgets of the loaded dashboard as JSON props
- Search widgets documentation

Widgets display dashboard statistics and data visualizations.`

// RenderResponse is the structured result of render_widget.
type RenderResponse struct {
	ID    string       `json:"id" jsonschema_description:"Widget id"`
	Props widget.Props `json:"props" jsonschema_description:"Serialized widget props"`
}

// Dashboard is the read side of a dashboard the server renders.
type Dashboard interface {
	Name() string
	IDs() []string
	Render(ctx context.Context, id string) (widget.Props, error)
	RenderAll(ctx context.Context) ([]dashboard.Rendered, error)
}

// Server wraps a dashboard and exposes it as an MCP Server.
type Server struct {
	dashboard Dashboard
	scaffold  scaffold.Options
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option defines a functional option for configuring the Server.
type Option func(*Server)

// WithScaffold sets the defaults (Root, Module) used by generate_widget.
func WithScaffold(opts scaffold.Options) Option {
	return func(s *Server) {
		s.scaffold = opts
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance. d may be nil, in which case
// only the scaffolding and documentation tools are registered.
func NewServer(d Dashboard, opts ...Option) *Server {
	s := &Server{
		dashboard: d,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.mcpServer = server.NewMCPServer("panels-mcp", strings.TrimSpace(panels.Version),
		server.WithInstructions(instructions),
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: generate_widget
	s.mcpServer.AddTool(mcp.NewTool("generate_widget",
		mcp.WithDescription("Generate a new widget type for dashboard statistics or charts."),
		mcp.WithString("name", mcp.Required(),
			mcp.Description(`Widget type name in StudlyCase (e.g., "SalesChartWidget")`)),
		mcp.WithBoolean("stats", mcp.Description("Generate a stats overview widget"), mcp.DefaultBool(false)),
		mcp.WithString("chart", mcp.Description("Generate a chart widget"),
			mcp.Enum(string(widget.ChartLine), string(widget.ChartBar), string(widget.ChartPie),
				string(widget.ChartDoughnut), string(widget.ChartArea))),
		mcp.WithString("panel", mcp.Description("Panel the widget belongs to (optional)")),
		mcp.WithBoolean("polling", mcp.Description("Enable polling in the generated widget"), mcp.DefaultBool(false)),
		mcp.WithBoolean("force", mcp.Description("Overwrite existing file"), mcp.DefaultBool(false)),
	), s.handleGenerate)

	// TOOL: search_docs
	s.mcpServer.AddTool(mcp.NewTool("search_docs",
		mcp.WithDescription("Search the widgets documentation."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search terms")),
	), s.handleSearch)

	if s.dashboard == nil {
		return
	}

	// TOOL: render_widget
	s.mcpServer.AddTool(mcp.NewTool("render_widget",
		mcp.WithDescription("Render one widget of the loaded dashboard as JSON props."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Widget id")),
		mcp.WithOutputSchema[RenderResponse](),
	), mcp.NewStructuredToolHandler(s.handleRender))
}

func (s *Server) handleGenerate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := s.scaffold
	opts.Name = request.GetString("name", "")
	opts.Panel = request.GetString("panel", opts.Panel)
	opts.Chart = request.GetString("chart", "")
	opts.Polling = request.GetBool("polling", false)
	opts.Force = request.GetBool("force", false)
	opts.Kind = ""
	if request.GetBool("stats", false) {
		opts.Kind = scaffold.KindStats
	}

	res, err := scaffold.Generate(opts)
	if err != nil {
		s.logger.Warn("generate_widget failed", "name", opts.Name, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create widget: %v", err)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Widget %s created successfully.\n\n", res.Type)
	fmt.Fprintf(&b, "Location: %s\n", res.Path)
	if res.Import != "" {
		fmt.Fprintf(&b, "Import: %s\n", res.Import)
	}
	fmt.Fprintf(&b, "Usage: %s\n\n", res.Usage)
	b.WriteString("Widget types: Stats Overview, Line Chart, Bar Chart, Pie/Doughnut Chart, Area Chart\n")
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	results := docs.Search(query)
	if len(results) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No documentation found for %q.", query)), nil
	}

	var b strings.Builder
	for _, r := range results {
		fmt.Fprintf(&b, "## %s (%s%s)\n\n%s\n\n", r.Title, docsPrefix, r.Slug, excerpt(r.Body, 400))
	}
	return mcp.NewToolResultText(strings.TrimSpace(b.String())), nil
}

type renderArgs struct {
	ID string `json:"id"`
}

func (s *Server) handleRender(ctx context.Context, request mcp.CallToolRequest, args renderArgs) (RenderResponse, error) {
	if args.ID == "" {
		return RenderResponse{}, errors.New("id is required")
	}
	props, err := s.dashboard.Render(ctx, args.ID)
	if err != nil {
		if errors.Is(err, dashboard.ErrWidgetNotFound) {
			return RenderResponse{}, fmt.Errorf("%w (available: %s)", err, strings.Join(s.dashboard.IDs(), ", "))
		}
		return RenderResponse{}, fmt.Errorf("render failed: %w", err)
	}
	return RenderResponse{ID: args.ID, Props: props}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: panels://docs/{slug}
	s.mcpServer.AddResourceTemplate(mcp.NewResourceTemplate(docsPrefix+"{slug}", "Widgets documentation page",
		mcp.WithTemplateMIMEType("text/markdown"),
	), s.readDoc)

	if s.dashboard == nil {
		return
	}

	// EXPOSE: panels://dashboard
	s.mcpServer.AddResource(mcp.NewResource(DashboardURI, "Rendered dashboard",
		mcp.WithMIMEType("application/json"),
	), s.readDashboard)
}

func (s *Server) readDashboard(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	rendered, err := s.dashboard.RenderAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to render dashboard: %w", err)
	}
	data, err := json.Marshal(map[string]any{
		"dashboard": s.dashboard.Name(),
		"widgets":   rendered,
	})
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      DashboardURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (s *Server) readDoc(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	page, err := docs.Get(strings.TrimPrefix(request.Params.URI, docsPrefix))
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/markdown",
			Text:     page.Body,
		},
	}, nil
}

func excerpt(body string, n int) string {
	body = strings.TrimSpace(body)
	if len(body) <= n {
		return body
	}
	cut := strings.LastIndexAny(body[:n], " \n")
	if cut <= 0 {
		cut = n
	}
	return body[:cut] + "..."
}
