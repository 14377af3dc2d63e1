// Package logger hands out slog loggers for the container packages, tagged
// with the subsystem that produced the record and any values the caller
// attached to the context.
//
// The handler is whatever slog.Default() is; applications configure it.
package logger

import (
	"context"
	"log/slog"
	"slices"
)

// DefaultSubsystem tags records that carry no subsystem of their own.
const DefaultSubsystem = "idcontainer"

type contextKey string

// WithMuted marks the context so that Get returns a logger that drops everything.
func WithMuted(ctx context.Context, muted bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("mute"), muted)
}

func isMuted(ctx context.Context) bool {
	muted, ok := ctx.Value(contextKey("mute")).(bool)

	return ok && muted
}

// WithSubsystem overrides the subsystem name for loggers obtained from ctx.
func WithSubsystem(ctx context.Context, name string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("subsystem"), name)
}

// GetSubsystem returns the subsystem for ctx, or DefaultSubsystem if none was set.
func GetSubsystem(ctx context.Context) string { //nolint:contextcheck
	if ctx == nil {
		ctx = context.Background()
	}

	if name, ok := ctx.Value(contextKey("subsystem")).(string); ok && name != "" {
		return name
	}

	return DefaultSubsystem
}

// With returns a context whose loggers carry the given key-value pairs in
// addition to those already attached to ctx.
func With(ctx context.Context, values ...any) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	if len(values) == 0 {
		return ctx
	}

	// Copy so sibling contexts derived from the same parent don't share a backing array.
	vals := append(slices.Clone(getValues(ctx)), values...)

	return context.WithValue(ctx, contextKey("loggerValues"), vals)
}

func getValues(ctx context.Context) []any {
	vals, _ := ctx.Value(contextKey("loggerValues")).([]any)

	return vals
}

// nullHandler discards every record. It backs muted loggers.
type nullHandler struct{}

func (n *nullHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return false
}

func (n *nullHandler) Handle(_ context.Context, _ slog.Record) error {
	return nil
}

func (n *nullHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return n
}

func (n *nullHandler) WithGroup(_ string) slog.Handler {
	return n
}

var nullLogger = slog.New(&nullHandler{}) //nolint:gochecknoglobals

// Get returns the default slog logger tagged with the subsystem and any
// values attached with With. Only the first non-nil context is consulted.
//
//nolint:contextcheck
func Get(ctx ...context.Context) *slog.Logger {
	realCtx := context.Background()

	for _, c := range ctx {
		if c != nil {
			realCtx = c

			break
		}
	}

	if isMuted(realCtx) {
		return nullLogger
	}

	logger := slog.Default().With("subsystem", GetSubsystem(realCtx))

	if vals := getValues(realCtx); vals != nil {
		logger = logger.With(vals...)
	}

	return logger
}
