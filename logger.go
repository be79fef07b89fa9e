package ggkit

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for ggkit and all its sub-packages.
// By default, ggkit produces no log output. Pass nil to restore that.
//
// Log levels used by ggkit:
//   - [slog.LevelDebug]: border recomputation, layer rendering, text input
//     truncated by a length limit, text view height changes
//   - [slog.LevelWarn]: an unknown border location in a theme, replaced by inside
//
// Example:
//
//	ggkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by ggkit.
// Sub-packages call this to share one configuration without import cycles.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
