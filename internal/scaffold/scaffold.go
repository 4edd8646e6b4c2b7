// Package scaffold generates Go source files for custom widgets.
package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"os"
	"path"
	"path/filepath"
	"slices"
	"text/template"

	"github.com/aretw0/panels/pkg/widget"
)

// Widget kinds.
const (
	KindBasic = "basic"
	KindStats = "stats"
	KindChart = "chart"
)

// Kinds lists the accepted kinds.
var Kinds = []string{KindBasic, KindStats, KindChart}

// DefaultChart is used for chart widgets when no chart type is given.
const DefaultChart = "line"

var (
	// ErrExists is returned when the target file exists and Force is not set.
	ErrExists = errors.New("widget already exists")
	// ErrInvalidOptions is returned for a missing name or an unknown kind or chart.
	ErrInvalidOptions = errors.New("invalid scaffold options")
)

// Options configures one generation.
type Options struct {
	Name            string
	Panel           string
	Kind            string
	Chart           string
	Polling         bool
	PollingInterval int
	Force           bool
	// Root is the project directory files are written under (default ".").
	Root string
	// Module is the project's Go module path, used for the import hint.
	Module string
}

// Result describes a generated widget.
type Result struct {
	Path   string `json:"path"`
	Type   string `json:"type"`
	Import string `json:"import,omitempty"`
	Usage  string `json:"usage"`
}

var templates = template.Must(template.New("basic").Parse(basicTemplate))

func init() {
	template.Must(templates.New(KindStats).Parse(statsTemplate))
	template.Must(templates.New(KindChart).Parse(chartTemplate))
}

type templateData struct {
	Package  string
	Type     string
	Heading  string
	Chart    string
	Base     string
	Pie      bool
	Polling  bool
	Interval int
}

// Normalize fills defaults and validates the options.
func (o *Options) Normalize() error {
	if Studly(o.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidOptions)
	}
	if o.Kind == "" {
		o.Kind = KindBasic
		if o.Chart != "" {
			o.Kind = KindChart
		}
	}
	if !slices.Contains(Kinds, o.Kind) {
		return fmt.Errorf("%w: unknown type %q (basic, stats or chart)", ErrInvalidOptions, o.Kind)
	}
	if o.Kind == KindChart {
		if o.Chart == "" {
			o.Chart = DefaultChart
		}
		if !widget.ChartType(o.Chart).Valid() {
			return fmt.Errorf("%w: unknown chart %q", ErrInvalidOptions, o.Chart)
		}
	} else {
		o.Chart = ""
	}
	if o.Polling && o.PollingInterval <= 0 {
		o.PollingInterval = widget.DefaultPollingInterval
	}
	if o.Root == "" {
		o.Root = "."
	}
	return nil
}

// Dir returns the package directory relative to Root.
func (o Options) Dir() string {
	if o.Panel != "" {
		return path.Join("panels", Snake(o.Panel), "widgets")
	}
	return "widgets"
}

// Render returns the formatted source for the widget without touching the disk.
func Render(opts Options) ([]byte, error) {
	if err := opts.Normalize(); err != nil {
		return nil, err
	}

	data := templateData{
		Package:  "widgets",
		Type:     Studly(opts.Name),
		Heading:  Studly(opts.Name),
		Chart:    opts.Chart,
		Polling:  opts.Polling,
		Interval: opts.PollingInterval,
	}
	switch opts.Chart {
	case "line":
		data.Base = "LineChart"
	case "bar":
		data.Base = "BarChart"
	case "pie", "doughnut":
		data.Base = "PieChart"
		data.Pie = true
	default:
		data.Base = "Chart"
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, opts.Kind, data); err != nil {
		return nil, fmt.Errorf("failed to render template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}
	return src, nil
}

// Generate writes the widget file under opts.Root.
func Generate(opts Options) (*Result, error) {
	if err := opts.Normalize(); err != nil {
		return nil, err
	}
	src, err := Render(opts)
	if err != nil {
		return nil, err
	}

	dir := opts.Dir()
	target := filepath.Join(opts.Root, filepath.FromSlash(dir), Snake(opts.Name)+".go")
	if _, err := os.Stat(target); err == nil && !opts.Force {
		return nil, fmt.Errorf("%w: %s (use force to overwrite)", ErrExists, target)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(target, src, 0644); err != nil {
		return nil, fmt.Errorf("failed to write widget: %w", err)
	}

	typeName := Studly(opts.Name)
	res := &Result{
		Path:  target,
		Type:  typeName,
		Usage: fmt.Sprintf("widgets.New%s()", typeName),
	}
	if opts.Module != "" {
		res.Import = path.Join(opts.Module, dir)
	}
	return res, nil
}
