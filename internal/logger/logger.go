// Package logger provides verbose logging for the testgen CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to trace each pipeline stage.
package logger

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu       sync.RWMutex
	verbose  bool
	output   io.Writer = os.Stderr
	lines    *zap.SugaredLogger
	sections *zap.SugaredLogger
)

func init() {
	rebuild()
}

// rebuild must be called with mu held for writing (or during init).
func rebuild() {
	sink := zapcore.AddSync(output)
	lines = zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			MessageKey:       "msg",
			LevelKey:         "level",
			EncodeLevel:      bracketLevel,
			ConsoleSeparator: " ",
		}),
		sink,
		zapcore.DebugLevel,
	)).Sugar()
	sections = zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			MessageKey:       "msg",
			ConsoleSeparator: " ",
		}),
		sink,
		zapcore.DebugLevel,
	)).Sugar()
}

func bracketLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + l.CapitalString() + "]")
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	rebuild()
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		lines.Debugf(format, args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		sections.Infof("\n=== %s ===", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		lines.Infof(format, args...)
	}
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		lines.Warnf(format, args...)
	}
}

// With returns a structured logger carrying the given key-value pairs.
// It honours verbose mode at call time like the package functions.
func With(keysAndValues ...any) *Fields {
	return &Fields{kv: keysAndValues}
}

// Fields is a set of structured context attached to log lines.
type Fields struct {
	kv []any
}

// Debug prints a debug message with the attached fields.
func (f *Fields) Debug(msg string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		lines.Debugw(msg, f.kv...)
	}
}

// Warn prints a warning with the attached fields.
func (f *Fields) Warn(msg string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		lines.Warnw(msg, f.kv...)
	}
}
