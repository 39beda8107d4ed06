package ast

import "github.com/graph-gophers/graphql-sdl/errors"

// OperationType is one of the three kinds of operations a schema can have a root type for.
//
// http://spec.graphql.org/draft/#OperationType
type OperationType string

const (
	Query        OperationType = "query"
	Mutation     OperationType = "mutation"
	Subscription OperationType = "subscription"
)

// SchemaDefinition corresponds to the `schema` sdl keyword. For example:
//
//	schema {
//	  query: Query
//	  mutation: Mutation
//	}
//
// https://spec.graphql.org/October2021/#sec-Schema
type SchemaDefinition struct {
	Desc           string
	Directives     DirectiveList
	OperationTypes []*RootOperationTypeDefinition
	Loc            errors.Location
}

// SchemaExtension adds root operation types or directives to the schema:
//
//	extend schema @link(url: "...") {
//	  subscription: Subscription
//	}
//
// http://spec.graphql.org/draft/#sec-Schema-Extension
type SchemaExtension struct {
	Directives     DirectiveList
	OperationTypes []*RootOperationTypeDefinition
	Loc            errors.Location
}

// RootOperationTypeDefinition binds one operation kind to a named type.
//
// http://spec.graphql.org/draft/#RootOperationTypeDefinition
type RootOperationTypeDefinition struct {
	Operation OperationType
	Type      Ident
	Loc       errors.Location
}

// DirectiveDefinition declares a directive that can be applied in the locations it lists.
//
// http://spec.graphql.org/draft/#sec-Type-System.Directives
type DirectiveDefinition struct {
	Name       Ident
	Desc       string
	Arguments  ArgumentsDefinition
	Repeatable bool
	Locations  []Ident
	Loc        errors.Location
}
