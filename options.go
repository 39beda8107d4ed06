package graphql

import (
	"github.com/graph-gophers/graphql-sdl/errors"
	"github.com/graph-gophers/graphql-sdl/log"
	"github.com/graph-gophers/graphql-sdl/trace/tracer"
)

// SchemaOpt is an option applied to an analysis.
type SchemaOpt func(*analyzer)

// UseStringDescriptions enables the usage of double quoted and triple quoted strings as
// descriptions as per the June 2018 spec. When this is not enabled, comments are parsed as
// descriptions instead.
func UseStringDescriptions() SchemaOpt {
	return func(a *analyzer) {
		a.cfg.UseStringDescriptions = true
	}
}

// MaxParallelism specifies the maximum number of documents AnalyzeSchemas analyzes at once.
// Values below one are ignored.
func MaxParallelism(n int) SchemaOpt {
	return func(a *analyzer) {
		if n > 0 {
			a.cfg.MaxParallelism = n
		}
	}
}

// Tracer is used to trace parsing and analysis. It defaults to noop.Tracer. If t also
// implements tracer.ParseTracer, parsing is traced as well.
func Tracer(t tracer.Tracer) SchemaOpt {
	return func(a *analyzer) {
		a.tracer = t
	}
}

// Logger is used to log panics recovered during analysis. It defaults to log.DefaultLogger.
func Logger(logger log.Logger) SchemaOpt {
	return func(a *analyzer) {
		a.logger = logger
	}
}

// PanicHandler is used to turn panics recovered during analysis into errors. It defaults to
// errors.DefaultPanicHandler.
func PanicHandler(h errors.PanicHandler) SchemaOpt {
	return func(a *analyzer) {
		a.panicHandler = h
	}
}
