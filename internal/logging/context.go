package logging

import (
	"context"
	"sort"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx, or a disabled one.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// Component returns the ctx logger tagged with a component field, for
// types that keep their own logger.
func Component(ctx context.Context, name string) zerolog.Logger {
	return FromContext(ctx).With().Str("component", name).Logger()
}

// WithComponent is Component stored back into a context.
func WithComponent(ctx context.Context, name string) context.Context {
	return WithContext(ctx, Component(ctx, name))
}

// WithFields stores a child logger carrying fields. Keys are added in
// sorted order so output is stable.
func WithFields(ctx context.Context, fields map[string]any) context.Context {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lc := FromContext(ctx).With()
	for _, k := range keys {
		lc = lc.Interface(k, fields[k])
	}
	return WithContext(ctx, lc.Logger())
}
