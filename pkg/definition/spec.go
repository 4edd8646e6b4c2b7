package definition

// Widget types accepted in the "type" field.
const (
	TypeStats    = "stats"
	TypeLine     = "line"
	TypeBar      = "bar"
	TypePie      = "pie"
	TypeDoughnut = "doughnut"
	TypeArea     = "area"
)

// Types lists every buildable widget type.
var Types = []string{TypeStats, TypeLine, TypeBar, TypePie, TypeDoughnut, TypeArea}

// File is a dashboard document.
type File struct {
	Name    string `yaml:"name" json:"name" mapstructure:"name"`
	Widgets []Spec `yaml:"widgets" json:"widgets" mapstructure:"widgets"`
}

// Spec is the declarative form of one widget.
// Pointer fields distinguish "unset" from zero values.
type Spec struct {
	ID          string `yaml:"id,omitempty" json:"id,omitempty" mapstructure:"id"`
	Order       int    `yaml:"order,omitempty" json:"order,omitempty" mapstructure:"order"`
	Type        string `yaml:"type" json:"type" mapstructure:"type"`
	Heading     string `yaml:"heading,omitempty" json:"heading,omitempty" mapstructure:"heading"`
	Description string `yaml:"description,omitempty" json:"description,omitempty" mapstructure:"description"`
	Icon        string `yaml:"icon,omitempty" json:"icon,omitempty" mapstructure:"icon"`
	Color       string `yaml:"color,omitempty" json:"color,omitempty" mapstructure:"color"`

	// Polling is the refresh interval in seconds. Zero disables polling.
	Polling int `yaml:"polling,omitempty" json:"polling,omitempty" mapstructure:"polling"`

	// Stats overview
	Columns *int       `yaml:"columns,omitempty" json:"columns,omitempty" mapstructure:"columns"`
	Stats   []StatSpec `yaml:"stats,omitempty" json:"stats,omitempty" mapstructure:"stats"`

	// Charts
	Labels   []string         `yaml:"labels,omitempty" json:"labels,omitempty" mapstructure:"labels"`
	Datasets []map[string]any `yaml:"datasets,omitempty" json:"datasets,omitempty" mapstructure:"datasets"`
	Values   []float64        `yaml:"values,omitempty" json:"values,omitempty" mapstructure:"values"`
	Data     map[string]any   `yaml:"data,omitempty" json:"data,omitempty" mapstructure:"data"`
	Options  map[string]any   `yaml:"options,omitempty" json:"options,omitempty" mapstructure:"options"`
	Height   *int             `yaml:"height,omitempty" json:"height,omitempty" mapstructure:"height"`

	Curved         *bool `yaml:"curved,omitempty" json:"curved,omitempty" mapstructure:"curved"`
	Fill           *bool `yaml:"fill,omitempty" json:"fill,omitempty" mapstructure:"fill"`
	ShowPoints     *bool `yaml:"show_points,omitempty" json:"show_points,omitempty" mapstructure:"show_points"`
	ShowGrid       *bool `yaml:"show_grid,omitempty" json:"show_grid,omitempty" mapstructure:"show_grid"`
	Horizontal     *bool `yaml:"horizontal,omitempty" json:"horizontal,omitempty" mapstructure:"horizontal"`
	Stacked        *bool `yaml:"stacked,omitempty" json:"stacked,omitempty" mapstructure:"stacked"`
	BarThickness   *int  `yaml:"bar_thickness,omitempty" json:"bar_thickness,omitempty" mapstructure:"bar_thickness"`
	ShowLegend     *bool `yaml:"show_legend,omitempty" json:"show_legend,omitempty" mapstructure:"show_legend"`
	ShowPercentage *bool `yaml:"show_percentage,omitempty" json:"show_percentage,omitempty" mapstructure:"show_percentage"`
}

// StatSpec is the declarative form of a single stat.
type StatSpec struct {
	Label            string    `yaml:"label" json:"label" mapstructure:"label"`
	Value            any       `yaml:"value" json:"value" mapstructure:"value"`
	Description      string    `yaml:"description,omitempty" json:"description,omitempty" mapstructure:"description"`
	DescriptionIcon  string    `yaml:"description_icon,omitempty" json:"description_icon,omitempty" mapstructure:"description_icon"`
	DescriptionColor string    `yaml:"description_color,omitempty" json:"description_color,omitempty" mapstructure:"description_color"`
	Icon             string    `yaml:"icon,omitempty" json:"icon,omitempty" mapstructure:"icon"`
	Color            string    `yaml:"color,omitempty" json:"color,omitempty" mapstructure:"color"`
	URL              string    `yaml:"url,omitempty" json:"url,omitempty" mapstructure:"url"`
	Chart            []float64 `yaml:"chart,omitempty" json:"chart,omitempty" mapstructure:"chart"`
	ChartType        string    `yaml:"chart_type,omitempty" json:"chart_type,omitempty" mapstructure:"chart_type"`
	ChartColor       string    `yaml:"chart_color,omitempty" json:"chart_color,omitempty" mapstructure:"chart_color"`
}
