package graphql

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/graph-gophers/graphql-sdl/ast"
	"github.com/graph-gophers/graphql-sdl/types"
)

// SchemaResult is the outcome of analyzing one document of a batch. Exactly one of Schema and
// Err is set.
type SchemaResult struct {
	Schema *types.Schema
	Err    error
}

// AnalyzeSchemas analyzes independent documents concurrently, at most MaxParallelism at a
// time. Results are returned in the order of docs; a failing document does not affect the
// others. Documents not yet started when ctx is cancelled fail with the context's error.
func AnalyzeSchemas(ctx context.Context, docs []*ast.Document, opts ...SchemaOpt) []SchemaResult {
	a := newAnalyzer(opts)
	results := make([]SchemaResult, len(docs))

	g := new(errgroup.Group)
	g.SetLimit(a.cfg.MaxParallelism)
	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			s, err := a.analyzeSchema(ctx, doc)
			if err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Schema = s
			return nil
		})
	}
	_ = g.Wait()

	return results
}
