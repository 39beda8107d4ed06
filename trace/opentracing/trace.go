package opentracing

import (
	"context"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"

	"github.com/graph-gophers/graphql-sdl/errors"
)

// Tracer implements the graphql-sdl Tracer interface and creates OpenTracing spans. When
// Tracer is nil, the global tracer is used.
type Tracer struct {
	Tracer opentracing.Tracer
}

func (t Tracer) TraceAnalysis(ctx context.Context, kind string, runID string, definitions int) (context.Context, func(*errors.QueryError)) {
	span, spanCtx := t.startSpan(ctx, "GraphQL analysis")
	span.SetTag("graphql.kind", kind)
	span.SetTag("graphql.run_id", runID)
	span.SetTag("graphql.definitions", definitions)

	return spanCtx, func(err *errors.QueryError) {
		finish(span, err)
	}
}

func (t Tracer) TraceParse(ctx context.Context, size int) func(*errors.QueryError) {
	span, _ := t.startSpan(ctx, "GraphQL parse")
	span.SetTag("graphql.source_size", size)

	return func(err *errors.QueryError) {
		finish(span, err)
	}
}

func (t Tracer) startSpan(ctx context.Context, name string) (opentracing.Span, context.Context) {
	if t.Tracer == nil {
		return opentracing.StartSpanFromContext(ctx, name)
	}
	return opentracing.StartSpanFromContextWithTracer(ctx, t.Tracer, name)
}

func finish(span opentracing.Span, err *errors.QueryError) {
	if err != nil {
		ext.Error.Set(span, true)
		span.SetTag("graphql.error", err.Error())
		if err.Rule != "" {
			span.SetTag("graphql.rule", err.Rule)
		}
	}
	span.Finish()
}
