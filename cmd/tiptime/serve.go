package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tiptime/internal/calculator"
	"tiptime/internal/config"
	"tiptime/internal/observability"
	"tiptime/internal/server"
)

func serveCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Starts the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	telemetryShutdown, err := initTelemetry(ctx, cfg)
	if err != nil {
		return logFailure(ctx, "could not initialise telemetry", err)
	}
	defer func() {
		if err := telemetryShutdown(context.Background()); err != nil {
			observability.Logger.Warn("could not flush telemetry", zap.Error(err))
		}
	}()

	tipHandler, err := calculator.NewHandler(cfg.Tip.DefaultLocale, cfg.Tip.DefaultCurrency)
	if err != nil {
		return logFailure(ctx, "could not create tip handler", err)
	}

	srv := &http.Server{
		Addr: cfg.HTTP.Addr,
		Handler: server.NewRouter(server.Options{
			MetricsPath:    cfg.HTTP.MetricsPath,
			AllowedOrigins: cfg.AllowedOrigins(),
			Tip:            tipHandler,
		}),
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		observability.Logger.Info("server started", zap.String("addr", cfg.HTTP.Addr))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return logFailure(ctx, "server stopped", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
	defer cancel()

	observability.Logger.Info("stopping server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return logFailure(shutdownCtx, "could not stop server", err)
	}
	return nil
}
