package ast

import "github.com/graph-gophers/graphql-sdl/errors"

// Directive is the application of a directive, e.g. `@deprecated(reason: "use b")`.
//
// http://spec.graphql.org/draft/#sec-Language.Directives
type Directive struct {
	Name      Ident
	Arguments ArgumentList
	Loc       errors.Location
}

// DirectiveList is an ordered list of directive applications. Names may repeat.
type DirectiveList []*Directive

// Get returns the first directive in the list with the given name.
func (l DirectiveList) Get(name string) *Directive {
	for _, d := range l {
		if d.Name.Name == name {
			return d
		}
	}
	return nil
}

// Argument is a representation of the GraphQL Argument.
//
// https://spec.graphql.org/draft/#sec-Language.Arguments
type Argument struct {
	Name  Ident
	Value Value
}

// ArgumentList is a collection of GraphQL Arguments.
type ArgumentList []*Argument

// Get returns a value in the argument list.
func (l ArgumentList) Get(name string) (Value, bool) {
	for _, arg := range l {
		if arg.Name.Name == name {
			return arg.Value, true
		}
	}
	return nil, false
}

// MustGet returns a value in the argument list or panics if the argument is missing.
func (l ArgumentList) MustGet(name string) Value {
	value, ok := l.Get(name)
	if !ok {
		panic("argument not found")
	}
	return value
}
