package types

import (
	"github.com/graph-gophers/graphql-sdl/ast"
	"github.com/graph-gophers/graphql-sdl/errors"
)

// Schema represents a GraphQL service's collective type system capabilities, with every
// extension in the source document already merged into the definition it extends.
//
// http://spec.graphql.org/draft/#sec-Schema
type Schema struct {
	// Desc is the description of the schema definition; extensions never set it.
	Desc string `json:"description,omitempty"`

	// RootOperationTypes maps each bound operation kind to the name of its root type.
	RootOperationTypes map[ast.OperationType]string `json:"rootOperationTypes"`

	// Directives are the directives applied to the schema definition and its extensions, in
	// document order.
	Directives DirectiveList `json:"schemaDirectives,omitempty"`

	DirectiveDefinitions map[string]*DirectiveDefinition `json:"directiveDefinitions"`

	// Types are the fundamental unit of any GraphQL schema.
	//
	// http://spec.graphql.org/draft/#sec-Types
	Types map[string]NamedType `json:"typeDefinitions"`
}

// Type returns the named type definition, or nil.
func (s *Schema) Type(name string) NamedType {
	return s.Types[name]
}

// RootOperationType returns the definition bound to op, if op is bound and the bound name
// is defined in the schema.
func (s *Schema) RootOperationType(op ast.OperationType) (NamedType, bool) {
	name, ok := s.RootOperationTypes[op]
	if !ok {
		return nil, false
	}
	t, ok := s.Types[name]
	return t, ok
}

// DirectiveDefinition declares a directive.
//
// http://spec.graphql.org/draft/#sec-Type-System.Directives
type DirectiveDefinition struct {
	Name       string               `json:"name"`
	Desc       string               `json:"description,omitempty"`
	Arguments  ArgumentsDefinition  `json:"argumentsDefinition,omitempty"`
	Repeatable bool                 `json:"repeatable"`
	Locations  DirectiveLocationSet `json:"locations"`
	Loc        errors.Location      `json:"-"`
}
