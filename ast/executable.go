package ast

import "github.com/graph-gophers/graphql-sdl/errors"

// OperationDefinition represents a GraphQL Operation.
//
// https://spec.graphql.org/draft/#sec-Language.Operations
type OperationDefinition struct {
	Type       OperationType
	Name       Ident
	Vars       ArgumentsDefinition
	Directives DirectiveList
	Selections SelectionSet
	Loc        errors.Location
}

// FragmentDefinition is a named fragment, e.g. `fragment f on User { id }`.
//
// http://spec.graphql.org/draft/#FragmentDefinition
type FragmentDefinition struct {
	Name       Ident
	On         TypeName
	Directives DirectiveList
	Selections SelectionSet
	Loc        errors.Location
}

// Selection is a Field, FragmentSpread or InlineFragment.
//
// http://spec.graphql.org/draft/#Selection
type Selection interface {
	isSelection()
}

// SelectionSet is an ordered list of selections.
type SelectionSet []Selection

// Field represents a field used in a query.
type Field struct {
	Alias           Ident
	Name            Ident
	Arguments       ArgumentList
	Directives      DirectiveList
	SelectionSet    SelectionSet
	SelectionSetLoc errors.Location
}

// FragmentSpread is a `...name` selection.
type FragmentSpread struct {
	Name       Ident
	Directives DirectiveList
	Loc        errors.Location
}

// InlineFragment is a `... on Type { }` selection; On is empty when no type condition is given.
type InlineFragment struct {
	On         TypeName
	Directives DirectiveList
	Selections SelectionSet
	Loc        errors.Location
}

func (*Field) isSelection()          {}
func (*FragmentSpread) isSelection() {}
func (*InlineFragment) isSelection() {}
