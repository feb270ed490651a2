package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/iwvelando/finance-calculators/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCommand(a *app) *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the calculators web site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}
			defer a.sync()

			if address != "" {
				a.conf.Server.Address = address
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "listen address override (e.g. :8080)")
	return cmd
}

// serve runs the HTTP server until ctx is cancelled, then drains in-flight
// requests for up to the configured shutdown timeout.
func (a *app) serve(ctx context.Context) error {
	const op = "cmd.serve"
	srvConf := a.conf.Server

	if a.conf.Ads.Enabled() {
		a.logger.Info("ad widget enabled",
			zap.String("op", op),
			zap.String("template", a.conf.Ads.Template),
		)
	}

	srv := &http.Server{
		Addr:         srvConf.Address,
		Handler:      server.NewHandler(a.logger, a.conf.Ads, srvConf.MaxFormSizeBytes(), a.version),
		ReadTimeout:  srvConf.ReadTimeout,
		WriteTimeout: srvConf.WriteTimeout,
		IdleTimeout:  4 * srvConf.ReadTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		a.logger.Info("starting server",
			zap.String("op", op),
			zap.String("address", srvConf.Address),
			zap.String("version", a.version),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err, ok := <-serverErr:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		a.logger.Info("shutting down server", zap.String("op", op))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), srvConf.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error during server shutdown: %w", err)
	}

	a.logger.Info("server exited", zap.String("op", op))
	return nil
}
