package ast

import (
	"strings"
	"text/scanner"

	"github.com/graph-gophers/graphql-sdl/errors"
)

// Value is an input value literal, or a variable inside executable documents.
//
// http://spec.graphql.org/draft/#sec-Input-Values
type Value interface {
	String() string
	Location() errors.Location
}

// PrimitiveValue represents a scalar literal: int, float, string, boolean or enum value.
// Text holds the literal as written, including the quotes of string values.
type PrimitiveValue struct {
	Type rune
	Text string
	Loc  errors.Location
}

func (val *PrimitiveValue) String() string            { return val.Text }
func (val *PrimitiveValue) Location() errors.Location { return val.Loc }

// IsString reports whether the literal is a quoted string.
func (val *PrimitiveValue) IsString() bool { return val.Type == scanner.String }

// Variable is a `$name` reference.
//
// http://spec.graphql.org/draft/#sec-Language.Variables
type Variable struct {
	Name string
	Loc  errors.Location
}

func (v *Variable) String() string            { return "$" + v.Name }
func (v *Variable) Location() errors.Location { return v.Loc }

// ListValue represents a literal list Value in the GraphQL specification.
//
// http://spec.graphql.org/draft/#sec-List-Value
type ListValue struct {
	Values []Value
	Loc    errors.Location
}

func (val *ListValue) String() string {
	entries := make([]string, len(val.Values))
	for i, v := range val.Values {
		entries[i] = v.String()
	}
	return "[" + strings.Join(entries, ", ") + "]"
}

func (val *ListValue) Location() errors.Location { return val.Loc }

// ObjectValue represents a literal object Value in the GraphQL specification.
//
// http://spec.graphql.org/draft/#sec-Input-Object-Values
type ObjectValue struct {
	Fields []*ObjectField
	Loc    errors.Location
}

// ObjectField is a field of an ObjectValue.
type ObjectField struct {
	Name  Ident
	Value Value
}

func (val *ObjectValue) String() string {
	entries := make([]string, len(val.Fields))
	for i, f := range val.Fields {
		entries[i] = f.Name.Name + ": " + f.Value.String()
	}
	return "{" + strings.Join(entries, ", ") + "}"
}

func (val *ObjectValue) Location() errors.Location { return val.Loc }

// NullValue represents the literal "null" in the GraphQL specification.
//
// http://spec.graphql.org/draft/#sec-Null-Value
type NullValue struct {
	Loc errors.Location
}

func (val *NullValue) String() string            { return "null" }
func (val *NullValue) Location() errors.Location { return val.Loc }

func (val *PrimitiveValue) MarshalText() ([]byte, error) { return []byte(val.String()), nil }
func (v *Variable) MarshalText() ([]byte, error)         { return []byte(v.String()), nil }
func (val *ListValue) MarshalText() ([]byte, error)      { return []byte(val.String()), nil }
func (val *ObjectValue) MarshalText() ([]byte, error)    { return []byte(val.String()), nil }
func (val *NullValue) MarshalText() ([]byte, error)      { return []byte(val.String()), nil }
