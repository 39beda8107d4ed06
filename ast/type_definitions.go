package ast

import "github.com/graph-gophers/graphql-sdl/errors"

// TypeDefinition is one of the six named type definition nodes.
//
// http://spec.graphql.org/draft/#TypeDefinition
type TypeDefinition interface {
	Definition
	Kind() string
	TypeName() string
}

// ScalarTypeDefinition types represent primitive leaf values (e.g. a string or an integer).
//
// http://spec.graphql.org/draft/#sec-Scalars
type ScalarTypeDefinition struct {
	Name       Ident
	Desc       string
	Directives DirectiveList
	Loc        errors.Location
}

// ObjectTypeDefinition represents a GraphQL ObjectTypeDefinition.
//
//	type FooObject implements Node {
//		foo: String
//	}
//
// https://spec.graphql.org/draft/#sec-Objects
type ObjectTypeDefinition struct {
	Name       Ident
	Desc       string
	Interfaces []Ident
	Directives DirectiveList
	// Fields is nil when the definition has no field list at all.
	Fields FieldsDefinition
	Loc    errors.Location
}

// InterfaceTypeDefinition represents a list of named fields and their arguments.
//
// http://spec.graphql.org/draft/#sec-Interfaces
type InterfaceTypeDefinition struct {
	Name       Ident
	Desc       string
	Interfaces []Ident
	Directives DirectiveList
	Fields     FieldsDefinition
	Loc        errors.Location
}

// UnionTypeDefinition represents an object that could be one of a list of GraphQL object types.
//
// http://spec.graphql.org/draft/#sec-Unions
type UnionTypeDefinition struct {
	Name        Ident
	Desc        string
	MemberTypes []Ident
	Directives  DirectiveList
	Loc         errors.Location
}

// EnumTypeDefinition types describe a set of possible values.
//
// http://spec.graphql.org/draft/#sec-Enums
type EnumTypeDefinition struct {
	Name       Ident
	Desc       string
	Values     []*EnumValueDefinition
	Directives DirectiveList
	Loc        errors.Location
}

// EnumValueDefinition is one of the values of an enum.
//
// http://spec.graphql.org/draft/#EnumValueDefinition
type EnumValueDefinition struct {
	Name       Ident
	Desc       string
	Directives DirectiveList
	Loc        errors.Location
}

// InputObjectTypeDefinition is a list of input fields, each of which is an input value.
//
// http://spec.graphql.org/draft/#sec-Input-Objects
type InputObjectTypeDefinition struct {
	Name       Ident
	Desc       string
	Fields     ArgumentsDefinition
	Directives DirectiveList
	Loc        errors.Location
}

// Extension wraps a type definition node that was introduced with the `extend` keyword.
// The wrapped node holds only what the extension adds.
//
// http://spec.graphql.org/draft/#sec-Type-Extensions
type Extension struct {
	Type TypeDefinition
	Loc  errors.Location
}

// FieldDefinition is a field of an object or interface type.
//
// http://spec.graphql.org/draft/#FieldDefinition
type FieldDefinition struct {
	Name       Ident
	Desc       string
	Arguments  ArgumentsDefinition
	Type       Type
	Directives DirectiveList
	Loc        errors.Location
}

type FieldsDefinition []*FieldDefinition

func (l FieldsDefinition) Get(name string) *FieldDefinition {
	for _, f := range l {
		if f.Name.Name == name {
			return f
		}
	}
	return nil
}

func (l FieldsDefinition) Names() []string {
	names := make([]string, len(l))
	for i, f := range l {
		names[i] = f.Name.Name
	}
	return names
}

// InputValueDefinition is a field argument, directive argument, input object field or
// operation variable.
//
// http://spec.graphql.org/draft/#InputValueDefinition
type InputValueDefinition struct {
	Name       Ident
	Desc       string
	Type       Type
	Default    Value
	Directives DirectiveList
	Loc        errors.Location
	TypeLoc    errors.Location
}

// ArgumentsDefinition is an ordered list of input value definitions.
//
// http://spec.graphql.org/draft/#ArgumentsDefinition
type ArgumentsDefinition []*InputValueDefinition

func (a ArgumentsDefinition) Get(name string) *InputValueDefinition {
	for _, inputValue := range a {
		if inputValue.Name.Name == name {
			return inputValue
		}
	}
	return nil
}

func (*ScalarTypeDefinition) Kind() string      { return "SCALAR" }
func (*ObjectTypeDefinition) Kind() string      { return "OBJECT" }
func (*InterfaceTypeDefinition) Kind() string   { return "INTERFACE" }
func (*UnionTypeDefinition) Kind() string       { return "UNION" }
func (*EnumTypeDefinition) Kind() string        { return "ENUM" }
func (*InputObjectTypeDefinition) Kind() string { return "INPUT_OBJECT" }

func (t *ScalarTypeDefinition) TypeName() string      { return t.Name.Name }
func (t *ObjectTypeDefinition) TypeName() string      { return t.Name.Name }
func (t *InterfaceTypeDefinition) TypeName() string   { return t.Name.Name }
func (t *UnionTypeDefinition) TypeName() string       { return t.Name.Name }
func (t *EnumTypeDefinition) TypeName() string        { return t.Name.Name }
func (t *InputObjectTypeDefinition) TypeName() string { return t.Name.Name }
