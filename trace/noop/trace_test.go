package noop_test

import (
	"testing"

	"github.com/graph-gophers/graphql-sdl"
	"github.com/graph-gophers/graphql-sdl/trace/noop"
	"github.com/graph-gophers/graphql-sdl/trace/tracer"
)

func TestInterfaceImplementation(t *testing.T) {
	var _ tracer.ParseTracer = &noop.Tracer{}
	var _ tracer.Tracer = &noop.Tracer{}
}

func TestTracerOption(t *testing.T) {
	_, err := graphql.ParseSchema("schema { query: Query } type Query { a: Int }", graphql.Tracer(noop.Tracer{}))
	if err != nil {
		t.Fatal(err)
	}
}
