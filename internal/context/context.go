package context

import (
	"context"
)

type graphqlKeyType int

const runIDKey graphqlKeyType = iota

// WithRunID is used to create a new context with the identifier of an analysis added to it
// so it can be later retrieved using `RunID`.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// RunID is used to retrieve the analysis identifier from the context.
func RunID(ctx context.Context) (runID string, found bool) {
	if ctx == nil {
		return
	}

	if v, ok := ctx.Value(runIDKey).(string); ok {
		return v, true
	}

	return
}
