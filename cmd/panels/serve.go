package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/aretw0/panels/internal/cli"
	httpAdapter "github.com/aretw0/panels/pkg/adapters/http"
	"github.com/aretw0/panels/pkg/observability"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [path]",
		Short: "Serve dashboard props over HTTP",
		Long: `Starts an HTTP server exposing the dashboard as JSON props, translation
tables, Prometheus metrics and, with --watch, server-sent reload events.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			metrics := observability.NewMetrics(prometheus.NewRegistry())
			board, err := a.open(args, metrics.Hooks())
			if err != nil {
				return err
			}

			srv := httpAdapter.NewServer(board.Dashboard(),
				httpAdapter.WithMetrics(metrics.Handler()),
				httpAdapter.WithLogger(a.logger),
			)

			ctx := cli.NewSignalContext(cmd.Context())
			defer ctx.Cancel()

			if a.cfg.Serve.Watch {
				changes, err := board.Watch(ctx)
				if err != nil {
					return err
				}
				go func() {
					for id := range changes {
						srv.Notify(id)
					}
				}()
			}

			httpServer := &http.Server{
				Addr:    a.cfg.Serve.Addr,
				Handler: srv.Handler(),
			}

			serverErrors := make(chan error, 1)
			go func() {
				a.logger.Info("serving dashboard", "address", httpServer.Addr, "dashboard", board.Name(), "watch", a.cfg.Serve.Watch)
				serverErrors <- httpServer.ListenAndServe()
			}()

			select {
			case err := <-serverErrors:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
				a.logger.Info("shutting down", "signal", ctx.Signal())

				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := httpServer.Shutdown(shutdownCtx); err != nil {
					a.logger.Error("graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
					return httpServer.Close()
				}
				a.logger.Info("server stopped gracefully")
				return nil
			}
		},
	}

	cmd.Flags().String("addr", ":8080", "address to listen on")
	cmd.Flags().BoolP("watch", "w", false, "reload when the dashboard changes")
	a.v.BindPFlag("serve.addr", cmd.Flags().Lookup("addr"))
	a.v.BindPFlag("serve.watch", cmd.Flags().Lookup("watch"))
	return cmd
}
