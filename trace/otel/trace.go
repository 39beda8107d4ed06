// Package otel traces analyses with OpenTelemetry spans.
package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/graph-gophers/graphql-sdl/errors"
)

// DefaultTracer creates a tracer using a default name.
func DefaultTracer() *Tracer {
	return &Tracer{
		Tracer: otel.Tracer("graphql-sdl"),
	}
}

// Tracer is an OpenTelemetry implementation for graphql-sdl. Set the Tracer property to your
// tracer instance as required.
type Tracer struct {
	Tracer oteltrace.Tracer
}

func (t *Tracer) TraceAnalysis(ctx context.Context, kind string, runID string, definitions int) (context.Context, func(*errors.QueryError)) {
	spanCtx, span := t.Tracer.Start(ctx, "GraphQL Analysis")
	span.SetAttributes(
		attribute.String("graphql.kind", kind),
		attribute.String("graphql.run_id", runID),
		attribute.Int("graphql.definitions", definitions),
	)

	return spanCtx, func(err *errors.QueryError) {
		end(span, err)
	}
}

func (t *Tracer) TraceParse(ctx context.Context, size int) func(*errors.QueryError) {
	_, span := t.Tracer.Start(ctx, "GraphQL Parse")
	span.SetAttributes(attribute.Int("graphql.source_size", size))

	return func(err *errors.QueryError) {
		end(span, err)
	}
}

func end(span oteltrace.Span, err *errors.QueryError) {
	if err != nil {
		if err.Rule != "" {
			span.SetAttributes(attribute.String("graphql.rule", err.Rule))
		}
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
