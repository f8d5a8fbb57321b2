package observability

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	DevelopmentEnvironment = "development"
	ProductionEnvironment  = "production"
)

// Logger is the process-wide logger. It discards everything until InitLogger
// runs, so packages and tests can log without setup.
var Logger = zap.NewNop()

// InitLogger builds JSON production logging for the production environment
// and human-readable development logging otherwise.
func InitLogger(environment string) error {
	var err error

	if environment == ProductionEnvironment {
		Logger, err = zap.NewProduction()
	} else {
		Logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}

	return nil
}

func SyncLogger() {
	_ = Logger.Sync()
}

// LoggerWithTrace returns a child logger enriched with trace_id and span_id
// fields from the active span in ctx.
//
// ctx is also attached as a zap.Any("context", ctx) field: the otelzap core
// uses any context-valued field as the context for log.Logger.Emit, which
// puts the native TraceID/SpanID on the exported OTLP record. The string
// fields keep stdout logs greppable.
func LoggerWithTrace(ctx context.Context) *zap.Logger {
	span := trace.SpanContextFromContext(ctx)

	if !span.IsValid() {
		return Logger
	}

	return Logger.With(
		zap.Any("context", ctx),
		zap.String("trace_id", span.TraceID().String()),
		zap.String("span_id", span.SpanID().String()),
	)
}
