// Package config loads the panels command configuration from flags, PANELS_*
// environment variables and an optional .panels.yaml file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/aretw0/panels/internal/logging"
	"github.com/aretw0/panels/internal/scaffold"
)

// EnvPrefix prefixes every environment override (PANELS_SERVE_ADDR, ...).
const EnvPrefix = "PANELS"

// Config is the resolved command configuration.
type Config struct {
	// Path is the dashboard file or directory.
	Path      string `mapstructure:"path"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	Locale    string `mapstructure:"locale"`
	Strict    bool   `mapstructure:"strict"`

	Serve ServeConfig `mapstructure:"serve"`
	MCP   MCPConfig   `mapstructure:"mcp"`
	Make  MakeConfig  `mapstructure:"make"`
}

type ServeConfig struct {
	Addr  string `mapstructure:"addr"`
	Watch bool   `mapstructure:"watch"`
}

type MCPConfig struct {
	Transport string `mapstructure:"transport"`
	Port      int    `mapstructure:"port"`
}

type MakeConfig struct {
	Root   string `mapstructure:"root"`
	Module string `mapstructure:"module"`
	Panel  string `mapstructure:"panel"`
}

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("path", "dashboard.yaml")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("locale", "en")
	v.SetDefault("strict", false)
	v.SetDefault("serve.addr", ":8080")
	v.SetDefault("serve.watch", false)
	v.SetDefault("mcp.transport", "stdio")
	v.SetDefault("mcp.port", 8080)
	v.SetDefault("make.root", ".")
}

// Init points v at cfgFile, or at .panels.yaml in the working directory when
// cfgFile is empty, and enables environment overrides.
func Init(v *viper.Viper, cfgFile string) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".panels")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Read loads the config file if there is one. A missing default file is not an error.
// It returns the file used, or "".
func Read(v *viper.Viper) (string, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read config: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	var errs []error
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch c.MCP.Transport {
	case "stdio", "sse":
	default:
		errs = append(errs, fmt.Errorf("unknown mcp transport %q (stdio or sse)", c.MCP.Transport))
	}
	if c.MCP.Port <= 0 || c.MCP.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid mcp port %d", c.MCP.Port))
	}
	return errors.Join(errs...)
}

// Level returns the parsed log level.
func (c *Config) Level() slog.Level {
	level, _ := logging.ParseLevel(c.LogLevel)
	return level
}

// Logger builds the application logger.
func (c *Config) Logger() *slog.Logger {
	return logging.NewWithFormat(os.Stderr, c.Level(), c.LogFormat)
}

// Scaffold returns generator options seeded from the make section.
func (c *Config) Scaffold() scaffold.Options {
	return scaffold.Options{
		Root:   c.Make.Root,
		Module: c.Make.Module,
		Panel:  c.Make.Panel,
	}
}
