package graphql

import (
	"context"

	gcontext "github.com/graph-gophers/graphql-sdl/internal/context"
)

// RunID returns the identifier of the analysis running with ctx. Tracers and loggers receive
// a context carrying it. The empty string is returned outside of an analysis.
func RunID(ctx context.Context) string {
	runID, _ := gcontext.RunID(ctx)
	return runID
}
