package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aretw0/panels"
	"github.com/aretw0/panels/internal/config"
	"github.com/aretw0/panels/pkg/dashboard"
)

// app carries the resolved configuration to every subcommand.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "panels",
		Short: "Panels builds dashboard widgets and serves them as JSON props",
		Long: `Panels describes stat panels and line, bar, pie or doughnut charts
in Go or in YAML/JSON/Markdown files and serializes them into props for a
client-side renderer.

Configuration is read from flags, PANELS_* environment variables and
.panels.yaml in the working directory, in that order of precedence.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is .panels.yaml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json)")
	flags.StringP("path", "p", "dashboard.yaml", "dashboard file, directory or redis:// URL")
	flags.String("locale", "en", "locale for human-readable output")
	a.v.BindPFlag("log_level", flags.Lookup("log-level"))
	a.v.BindPFlag("log_format", flags.Lookup("log-format"))
	a.v.BindPFlag("path", flags.Lookup("path"))
	a.v.BindPFlag("locale", flags.Lookup("locale"))

	rootCmd.AddCommand(
		newVersionCmd(a),
		newMakeCmd(a),
		newRenderCmd(a),
		newValidateCmd(a),
		newPreviewCmd(a),
		newDocsCmd(a),
		newLangCmd(a),
		newServeCmd(a),
		newMCPCmd(a),
	)
	return rootCmd
}

func (a *app) init() error {
	config.Init(a.v, a.cfgFile)
	used, err := config.Read(a.v)
	if err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = cfg.Logger()
	if used != "" {
		a.logger.Debug("using config file", "file", used)
	}
	return nil
}

// path returns the dashboard path from the first argument or the configuration.
func (a *app) path(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return a.cfg.Path
}

func (a *app) open(args []string, hooks ...dashboard.Hooks) (*panels.Board, error) {
	opts := []panels.Option{panels.WithLogger(a.logger)}
	for _, h := range hooks {
		opts = append(opts, panels.WithHooks(h))
	}
	board, err := panels.New(a.path(args), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open dashboard: %w", err)
	}
	return board, nil
}
