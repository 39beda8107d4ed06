// Package noop defines a no-op tracer implementation.
package noop

import (
	"context"

	"github.com/graph-gophers/graphql-sdl/errors"
)

// Tracer is a no-op tracer that does nothing.
type Tracer struct{}

func (Tracer) TraceAnalysis(ctx context.Context, kind string, runID string, definitions int) (context.Context, func(*errors.QueryError)) {
	return ctx, func(*errors.QueryError) {}
}

func (Tracer) TraceParse(ctx context.Context, size int) func(*errors.QueryError) {
	return func(*errors.QueryError) {}
}
