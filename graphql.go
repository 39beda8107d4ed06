// Package graphql analyzes GraphQL type system documents into a schema model and indexes the
// operations and fragments of executable documents.
package graphql

import (
	"context"

	"github.com/segmentio/ksuid"

	"github.com/graph-gophers/graphql-sdl/ast"
	"github.com/graph-gophers/graphql-sdl/config"
	"github.com/graph-gophers/graphql-sdl/errors"
	gcontext "github.com/graph-gophers/graphql-sdl/internal/context"
	"github.com/graph-gophers/graphql-sdl/internal/document"
	"github.com/graph-gophers/graphql-sdl/internal/query"
	"github.com/graph-gophers/graphql-sdl/internal/schema"
	"github.com/graph-gophers/graphql-sdl/log"
	"github.com/graph-gophers/graphql-sdl/trace/noop"
	"github.com/graph-gophers/graphql-sdl/trace/tracer"
	"github.com/graph-gophers/graphql-sdl/types"
)

// analyzer holds the settings of one API call, built from SchemaOpts.
type analyzer struct {
	cfg          *config.Config
	tracer       tracer.Tracer
	logger       log.Logger
	panicHandler errors.PanicHandler
}

func newAnalyzer(opts []SchemaOpt) *analyzer {
	a := &analyzer{
		cfg:          config.Default(),
		tracer:       noop.Tracer{},
		logger:       &log.DefaultLogger{},
		panicHandler: &errors.DefaultPanicHandler{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ParseDocument parses src into a document without analyzing it. The document may contain
// both type system and executable definitions.
func ParseDocument(src string, opts ...SchemaOpt) (*ast.Document, error) {
	doc, err := newAnalyzer(opts).parse(context.Background(), src)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// AnalyzeSchema builds the schema described by doc. The first violated rule is returned as a
// *errors.QueryError and no schema is produced.
func AnalyzeSchema(ctx context.Context, doc *ast.Document, opts ...SchemaOpt) (*types.Schema, error) {
	s, err := newAnalyzer(opts).analyzeSchema(ctx, doc)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ParseSchema parses and analyzes a type system document.
func ParseSchema(sdl string, opts ...SchemaOpt) (*types.Schema, error) {
	a := newAnalyzer(opts)
	ctx := context.Background()

	doc, err := a.parse(ctx, sdl)
	if err != nil {
		return nil, err
	}
	s, err := a.analyzeSchema(ctx, doc)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// MustParseSchema calls ParseSchema and panics on error.
func MustParseSchema(sdl string, opts ...SchemaOpt) *types.Schema {
	s, err := ParseSchema(sdl, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// AnalyzeExecutable indexes the operations and fragments of doc by name.
func AnalyzeExecutable(ctx context.Context, doc *ast.Document, opts ...SchemaOpt) (*types.ExecutableDocument, error) {
	ed, err := newAnalyzer(opts).analyzeExecutable(ctx, doc)
	if err != nil {
		return nil, err
	}
	return ed, nil
}

func (a *analyzer) parse(ctx context.Context, src string) (*ast.Document, *errors.QueryError) {
	finish := func(*errors.QueryError) {}
	if t, ok := a.tracer.(tracer.ParseTracer); ok {
		finish = t.TraceParse(ctx, len(src))
	}

	doc, err := document.Parse(src, a.cfg.UseStringDescriptions)
	finish(err)
	return doc, err
}

func (a *analyzer) analyzeSchema(ctx context.Context, doc *ast.Document) (s *types.Schema, err *errors.QueryError) {
	err = a.run(ctx, tracer.KindSchema, doc, func() *errors.QueryError {
		var qErr *errors.QueryError
		s, qErr = schema.Analyze(doc)
		return qErr
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (a *analyzer) analyzeExecutable(ctx context.Context, doc *ast.Document) (ed *types.ExecutableDocument, err *errors.QueryError) {
	err = a.run(ctx, tracer.KindExecutable, doc, func() *errors.QueryError {
		var qErr *errors.QueryError
		ed, qErr = query.Analyze(doc)
		return qErr
	})
	if err != nil {
		return nil, err
	}
	return ed, nil
}

// run traces one analysis of doc under a fresh run ID. A panic inside analyze is logged and
// turned into an error.
func (a *analyzer) run(ctx context.Context, kind string, doc *ast.Document, analyze func() *errors.QueryError) (err *errors.QueryError) {
	if doc == nil {
		return errors.Errorf("nil document").WithRule(errors.RuleInternal)
	}

	runID := ksuid.New().String()
	ctx = gcontext.WithRunID(ctx, runID)
	traceCtx, finish := a.tracer.TraceAnalysis(ctx, kind, runID, len(doc.Definitions))

	defer func() {
		if value := recover(); value != nil {
			a.logger.LogPanic(traceCtx, value)
			err = a.panicHandler.MakePanicError(traceCtx, value)
		}
		finish(err)
	}()

	return analyze()
}
