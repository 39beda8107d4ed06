// Package prometheus records analysis counts and latencies as Prometheus metrics.
package prometheus

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/graph-gophers/graphql-sdl/errors"
)

// ResultOK is the result label of analyses that produced no error. Failed analyses are
// labelled with the rule of their error.
const ResultOK = "ok"

// Tracer implements the graphql-sdl Tracer interface with Prometheus collectors.
type Tracer struct {
	analyses        *prometheus.CounterVec
	analysisSeconds *prometheus.HistogramVec
	definitions     prometheus.Histogram
	parseSeconds    prometheus.Histogram
	parseErrors     prometheus.Counter
}

// New registers the tracer's collectors with reg. A nil reg uses prometheus.DefaultRegisterer.
// Registering twice with the same registry panics.
func New(reg prometheus.Registerer) *Tracer {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Tracer{
		analyses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "graphql_sdl_analyses_total",
			Help: "Analyses run, by document kind and result",
		}, []string{"kind", "result"}),
		analysisSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "graphql_sdl_analysis_duration_seconds",
			Help:    "Time to analyze a parsed document",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}, []string{"kind"}),
		definitions: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "graphql_sdl_analysis_definitions",
			Help:    "Top-level definitions per analyzed document",
			Buckets: []float64{1, 10, 100, 1000, 10000},
		}),
		parseSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "graphql_sdl_parse_duration_seconds",
			Help:    "Time to parse source text",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}),
		parseErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "graphql_sdl_parse_errors_total",
			Help: "Source texts rejected by the parser",
		}),
	}
}

func (t *Tracer) TraceAnalysis(ctx context.Context, kind string, runID string, definitions int) (context.Context, func(*errors.QueryError)) {
	start := time.Now()
	t.definitions.Observe(float64(definitions))

	return ctx, func(err *errors.QueryError) {
		t.analysisSeconds.WithLabelValues(kind).Observe(time.Since(start).Seconds())
		t.analyses.WithLabelValues(kind, result(err)).Inc()
	}
}

func (t *Tracer) TraceParse(ctx context.Context, size int) func(*errors.QueryError) {
	start := time.Now()

	return func(err *errors.QueryError) {
		t.parseSeconds.Observe(time.Since(start).Seconds())
		if err != nil {
			t.parseErrors.Inc()
		}
	}
}

func result(err *errors.QueryError) string {
	switch {
	case err == nil:
		return ResultOK
	case err.Rule == "":
		return "error"
	default:
		return err.Rule
	}
}
