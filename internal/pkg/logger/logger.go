// Package logger provides a global, Sugared Zap logger with optional
// OpenTelemetry integration. Log level is configured via functional options,
// entries are emitted as JSON to stdout, and an OTEL bridge core is added
// automatically when a telemetry logger provider is available.
//
// Key/value pairs attached to a context with With are appended to every entry
// logged with that context, which lets a scheduler tick or a single target
// carry its identifiers through the whole call chain.
package logger

import (
	"context"
	"os"
	"sync"

	"github.com/gabapcia/oraclewatch/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// logger is the global SugaredLogger instance. It starts as a no-op logger
	// so packages can log before (or without) Init being called.
	logger = zap.NewNop().Sugar()

	// initOnce ensures the logger is only configured a single time.
	initOnce sync.Once
)

// fieldsKey is the context key under which With stores key/value pairs.
type fieldsKey struct{}

// config holds configuration options for the logger.
type config struct {
	level       string // the minimum log level (debug, info, warn, error, panic, fatal)
	serviceName string // value of the "service" field added to every entry
}

// Option configures the logger before initialization.
type Option func(*config)

// WithLevel sets the minimum log level for the global logger.
// Example levels: "debug", "info", "warn", "error", "panic", "fatal".
func WithLevel(l string) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithServiceName adds a constant "service" field to every log entry and names
// the OTEL bridge instrumentation scope.
func WithServiceName(name string) Option {
	return func(c *config) {
		c.serviceName = name
	}
}

// Init configures the global logger. By default it logs JSON to stdout at the
// "info" level. If an OpenTelemetry LoggerProvider was registered by
// telemetry.Init, an OTEL bridge core is teed in to forward entries to the
// telemetry backend. Calling Init multiple times has no effect after the first
// successful initialization.
//
// Returns an error if parsing the log level fails.
func Init(opts ...Option) error {
	cfg := config{level: "info", serviceName: "oraclewatch"}
	for _, opt := range opts {
		opt(&cfg)
	}

	level, err := zapcore.ParseLevel(cfg.level)
	if err != nil {
		return err
	}

	initOnce.Do(func() {
		cores := []zapcore.Core{
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				level,
			),
		}

		if lp := telemetry.LoggerProvider(); lp != nil {
			cores = append(cores, otelzap.NewCore(cfg.serviceName, otelzap.WithLoggerProvider(lp)))
		}

		logger = zap.New(zapcore.NewTee(cores...)).Sugar().With("service", cfg.serviceName)
	})

	return nil
}

// Replace swaps the global logger for l and returns a function that restores
// the previous one.
func Replace(l *zap.Logger) func() {
	previous := logger
	logger = l.Sugar()
	return func() { logger = previous }
}

// Sync flushes any buffered log entries. It should be called on application
// shutdown to ensure all logs are written out.
func Sync() error {
	return logger.Sync()
}

// With returns a copy of ctx carrying the given key/value pairs in addition to
// any pairs already attached by a previous call.
func With(ctx context.Context, keysAndValues ...any) context.Context {
	current := fieldsFrom(ctx)
	merged := make([]any, 0, len(current)+len(keysAndValues))
	merged = append(merged, current...)
	merged = append(merged, keysAndValues...)
	return context.WithValue(ctx, fieldsKey{}, merged)
}

// fieldsFrom returns the key/value pairs attached to ctx, if any.
func fieldsFrom(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}

	fields, _ := ctx.Value(fieldsKey{}).([]any)
	return fields
}

// withContext prepends the context fields to the call-site key/value pairs.
func withContext(ctx context.Context, keysAndValues []any) []any {
	fields := fieldsFrom(ctx)
	if len(fields) == 0 {
		return keysAndValues
	}

	return append(append(make([]any, 0, len(fields)+len(keysAndValues)), fields...), keysAndValues...)
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Debugw(msg, withContext(ctx, keysAndValues)...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Infow(msg, withContext(ctx, keysAndValues)...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Warnw(msg, withContext(ctx, keysAndValues)...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Errorw(msg, withContext(ctx, keysAndValues)...)
}

// Fatal logs a fatal-level message (and then exits) with optional key/value context.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Fatalw(msg, withContext(ctx, keysAndValues)...)
}
