// The tracer package provides tracing functionality.
package tracer

import (
	"context"

	"github.com/graph-gophers/graphql-sdl/errors"
)

// Kinds of analysis reported to TraceAnalysis.
const (
	KindSchema     = "schema"
	KindExecutable = "executable"
)

type AnalysisFinishFunc = func(*errors.QueryError)
type ParseFinishFunc = func(*errors.QueryError)

// Tracer observes analyses. runID identifies one analysis and definitions is the number of
// top-level definitions in the analyzed document.
type Tracer interface {
	TraceAnalysis(ctx context.Context, kind string, runID string, definitions int) (context.Context, AnalysisFinishFunc)
}

// ParseTracer is implemented by tracers that also observe parsing of source text.
type ParseTracer interface {
	TraceParse(ctx context.Context, size int) ParseFinishFunc
}
