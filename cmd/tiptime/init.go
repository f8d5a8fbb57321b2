package main

import (
	"context"
	"errors"

	"tiptime/internal/calculator"
	"tiptime/internal/config"
	"tiptime/internal/observability"
)

// initTelemetry installs metric providers and, when OTel export is enabled,
// trace and log exporters. The returned function flushes and stops them all.
func initTelemetry(ctx context.Context, cfg *config.Config) (func(context.Context) error, error) {
	var shutdowns []func(context.Context) error
	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(shutdowns) - 1; i >= 0; i-- {
			errs = append(errs, shutdowns[i](ctx))
		}
		return errors.Join(errs...)
	}

	name := cfg.OTel.ServiceName

	if cfg.OTel.Enabled {
		traceShutdown, err := observability.InitTracing(ctx, name)
		if err != nil {
			return nil, err
		}
		shutdowns = append(shutdowns, traceShutdown)

		logShutdown, err := observability.InitLogging(ctx, name)
		if err != nil {
			_ = shutdown(ctx)
			return nil, err
		}
		shutdowns = append(shutdowns, logShutdown)
	}

	metricShutdown, err := observability.InitMetrics(ctx, name, cfg.OTel.Enabled)
	if err != nil {
		_ = shutdown(ctx)
		return nil, err
	}
	shutdowns = append(shutdowns, metricShutdown)

	// Domain instruments must be created after the meter provider is set.
	if err := calculator.InitMetrics(); err != nil {
		_ = shutdown(ctx)
		return nil, err
	}

	return shutdown, nil
}
