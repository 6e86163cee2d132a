// Package testutil provides common test utilities and helpers to reduce boilerplate in test files.
package testutil

import (
	"context"
	"log/slog"
	"testing"

	"github.com/oavp/oavp-cli/internal/config"
	"github.com/oavp/oavp-cli/internal/log"
)

// NewTestLogger creates a logger that writes to t.Logf for testing.
// This ensures test output is properly captured by the test framework.
func NewTestLogger(t testing.TB) log.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}

	handler := &testHandler{t: t, opts: opts}
	return log.NewSlogAdapter(slog.New(handler))
}

// ConfigOption allows customization of test config settings.
type ConfigOption func(*config.Settings)

// WithCreateHook sets the create hook command and arguments.
func WithCreateHook(command string, args ...string) ConfigOption {
	return func(cfg *config.Settings) {
		cfg.Create.Command = command
		cfg.Create.Args = args
	}
}

// WithStrictBuild sets strict build dispatch.
func WithStrictBuild(strict bool) ConfigOption {
	return func(cfg *config.Settings) {
		cfg.StrictBuild = strict
	}
}

// WithVerbose sets verbose logging.
func WithVerbose(verbose bool) ConfigOption {
	return func(cfg *config.Settings) {
		cfg.Verbose = verbose
	}
}

// NewMockConfig creates a config provider for testing with optional customizations.
func NewMockConfig(t testing.TB, opts ...ConfigOption) config.Provider {
	t.Helper()

	cfg := &config.Settings{
		Verbose: true,
		Create: config.CreateSettings{
			Dir: t.TempDir(),
		},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	configProvider := config.NewDefaultConfigProvider()
	configProvider.SetConfig(cfg)
	return configProvider
}

// testHandler implements slog.Handler to write to testing.TB.
type testHandler struct {
	t     testing.TB
	opts  *slog.HandlerOptions
	attrs []slog.Attr
}

func (h *testHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

func (h *testHandler) Handle(_ context.Context, record slog.Record) error {
	attrs := make([]any, 0, len(h.attrs)+record.NumAttrs())
	for _, a := range h.attrs {
		attrs = append(attrs, a)
	}
	record.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)
		return true
	})
	h.t.Logf("[%s] %s %v", record.Level.String(), record.Message, attrs)
	return nil
}

func (h *testHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &testHandler{t: h.t, opts: h.opts, attrs: append(append([]slog.Attr{}, h.attrs...), attrs...)}
}

func (h *testHandler) WithGroup(_ string) slog.Handler {
	return &testHandler{t: h.t, opts: h.opts, attrs: h.attrs}
}
