// Package logging - Structured diagnostics
// Results go to stdout through the CLI writers; the logger only carries
// diagnostics and stays at warn level unless verbose output is requested.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"unitcalc/internal/errors"
)

// Config contains logging configuration
type Config struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `json:"level"`

	// Format is the encoding, console or json
	Format string `json:"format"`

	// Output is stderr, stdout or a file path
	Output string `json:"output"`
}

// DefaultConfig returns quiet console logging on stderr
func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: "console",
		Output: "stderr",
	}
}

var logger = newLogger(zapcore.NewCore(
	newEncoder(DefaultConfig().Format),
	zapcore.Lock(os.Stderr),
	zapcore.WarnLevel,
))

// Initialize replaces the global logger according to cfg
func Initialize(cfg Config) error {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return errors.Config("invalid log level "+cfg.Level, err)
	}

	output := cfg.Output
	if output == "" {
		output = "stderr"
	}
	sink, _, err := zap.Open(output)
	if err != nil {
		return errors.Config("cannot open log output "+output, err)
	}

	Replace(newLogger(zapcore.NewCore(newEncoder(cfg.Format), sink, level)))
	return nil
}

func newEncoder(format string) zapcore.Encoder {
	if format == "json" {
		ec := zap.NewProductionEncoderConfig()
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(ec)
	}
	ec := zap.NewDevelopmentEncoderConfig()
	ec.TimeKey = ""
	return zapcore.NewConsoleEncoder(ec)
}

// helpers wrap the logger, so skip one frame for the caller
func newLogger(core zapcore.Core) *zap.Logger {
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
}

// Replace swaps the global logger and returns a func restoring the previous one
func Replace(l *zap.Logger) func() {
	prev := logger
	logger = l
	return func() {
		logger = prev
	}
}

// Sync flushes buffered entries
func Sync() {
	_ = logger.Sync()
}

// With returns a logger with additional fields
func With(fields ...zap.Field) *zap.Logger {
	return logger.With(fields...).WithOptions(zap.AddCallerSkip(-1))
}

// Debug logs at debug level
func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

// Info logs at info level
func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

// Warn logs at warn level
func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}
