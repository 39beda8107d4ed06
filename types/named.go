package types

import (
	"encoding/json"

	"github.com/graph-gophers/graphql-sdl/errors"
)

// TypeKind discriminates the six kinds of named type definitions.
type TypeKind string

const (
	KindScalar      TypeKind = "scalar"
	KindObject      TypeKind = "object"
	KindInterface   TypeKind = "interface"
	KindUnion       TypeKind = "union"
	KindEnum        TypeKind = "enum"
	KindInputObject TypeKind = "inputObject"
)

// NamedType is implemented by exactly the six type definition kinds of this package:
// *ScalarTypeDefinition, *ObjectTypeDefinition, *InterfaceTypeDefinition, *Union,
// *EnumTypeDefinition and *InputObject. A type switch over those six is exhaustive.
type NamedType interface {
	Kind() TypeKind
	TypeName() string
	Description() string
	TypeDirectives() DirectiveList
	Location() errors.Location
	isNamedType()
}

// ScalarTypeDefinition types represent primitive leaf values.
//
// http://spec.graphql.org/draft/#sec-Scalars
type ScalarTypeDefinition struct {
	Name       string          `json:"name"`
	Desc       string          `json:"description,omitempty"`
	Directives DirectiveList   `json:"directives,omitempty"`
	Loc        errors.Location `json:"-"`
}

// ObjectTypeDefinition represents a GraphQL ObjectTypeDefinition.
//
// https://spec.graphql.org/draft/#sec-Objects
type ObjectTypeDefinition struct {
	Name       string           `json:"name"`
	Desc       string           `json:"description,omitempty"`
	Interfaces []string         `json:"implementsInterfaces,omitempty"`
	Fields     FieldsDefinition `json:"fieldsDefinition,omitempty"`
	Directives DirectiveList    `json:"directives,omitempty"`
	Loc        errors.Location  `json:"-"`
}

// InterfaceTypeDefinition represents a list of named fields and their arguments.
//
// http://spec.graphql.org/draft/#sec-Interfaces
type InterfaceTypeDefinition struct {
	Name       string           `json:"name"`
	Desc       string           `json:"description,omitempty"`
	Interfaces []string         `json:"implementsInterfaces,omitempty"`
	Fields     FieldsDefinition `json:"fieldsDefinition,omitempty"`
	Directives DirectiveList    `json:"directives,omitempty"`
	Loc        errors.Location  `json:"-"`
}

// Union types represent objects that could be one of a list of GraphQL object types.
//
// http://spec.graphql.org/draft/#sec-Unions
type Union struct {
	Name        string          `json:"name"`
	Desc        string          `json:"description,omitempty"`
	MemberTypes []string        `json:"unionMemberTypes,omitempty"`
	Directives  DirectiveList   `json:"directives,omitempty"`
	Loc         errors.Location `json:"-"`
}

// EnumTypeDefinition types describe a set of possible values, keyed by value name.
//
// http://spec.graphql.org/draft/#sec-Enums
type EnumTypeDefinition struct {
	Name       string                          `json:"name"`
	Desc       string                          `json:"description,omitempty"`
	Values     map[string]*EnumValueDefinition `json:"enumValuesDefinition,omitempty"`
	Directives DirectiveList                   `json:"directives,omitempty"`
	Loc        errors.Location                 `json:"-"`
}

// EnumValueDefinition is one value of an enum.
type EnumValueDefinition struct {
	Name       string          `json:"name"`
	Desc       string          `json:"description,omitempty"`
	Directives DirectiveList   `json:"directives,omitempty"`
	Loc        errors.Location `json:"-"`
}

// InputObject types define a set of input fields.
//
// http://spec.graphql.org/draft/#sec-Input-Objects
type InputObject struct {
	Name       string              `json:"name"`
	Desc       string              `json:"description,omitempty"`
	Fields     ArgumentsDefinition `json:"inputFieldsDefinition,omitempty"`
	Directives DirectiveList       `json:"directives,omitempty"`
	Loc        errors.Location     `json:"-"`
}

func (*ScalarTypeDefinition) Kind() TypeKind    { return KindScalar }
func (*ObjectTypeDefinition) Kind() TypeKind    { return KindObject }
func (*InterfaceTypeDefinition) Kind() TypeKind { return KindInterface }
func (*Union) Kind() TypeKind                   { return KindUnion }
func (*EnumTypeDefinition) Kind() TypeKind      { return KindEnum }
func (*InputObject) Kind() TypeKind             { return KindInputObject }

func (t *ScalarTypeDefinition) TypeName() string    { return t.Name }
func (t *ObjectTypeDefinition) TypeName() string    { return t.Name }
func (t *InterfaceTypeDefinition) TypeName() string { return t.Name }
func (t *Union) TypeName() string                   { return t.Name }
func (t *EnumTypeDefinition) TypeName() string      { return t.Name }
func (t *InputObject) TypeName() string             { return t.Name }

func (t *ScalarTypeDefinition) Description() string    { return t.Desc }
func (t *ObjectTypeDefinition) Description() string    { return t.Desc }
func (t *InterfaceTypeDefinition) Description() string { return t.Desc }
func (t *Union) Description() string                   { return t.Desc }
func (t *EnumTypeDefinition) Description() string      { return t.Desc }
func (t *InputObject) Description() string             { return t.Desc }

func (t *ScalarTypeDefinition) TypeDirectives() DirectiveList    { return t.Directives }
func (t *ObjectTypeDefinition) TypeDirectives() DirectiveList    { return t.Directives }
func (t *InterfaceTypeDefinition) TypeDirectives() DirectiveList { return t.Directives }
func (t *Union) TypeDirectives() DirectiveList                   { return t.Directives }
func (t *EnumTypeDefinition) TypeDirectives() DirectiveList      { return t.Directives }
func (t *InputObject) TypeDirectives() DirectiveList             { return t.Directives }

func (t *ScalarTypeDefinition) Location() errors.Location    { return t.Loc }
func (t *ObjectTypeDefinition) Location() errors.Location    { return t.Loc }
func (t *InterfaceTypeDefinition) Location() errors.Location { return t.Loc }
func (t *Union) Location() errors.Location                   { return t.Loc }
func (t *EnumTypeDefinition) Location() errors.Location      { return t.Loc }
func (t *InputObject) Location() errors.Location             { return t.Loc }

func (*ScalarTypeDefinition) isNamedType()    {}
func (*ObjectTypeDefinition) isNamedType()    {}
func (*InterfaceTypeDefinition) isNamedType() {}
func (*Union) isNamedType()                   {}
func (*EnumTypeDefinition) isNamedType()      {}
func (*InputObject) isNamedType()             {}

// The JSON form of every named type carries its kind under "type".

func (t *ScalarTypeDefinition) MarshalJSON() ([]byte, error) {
	type scalar ScalarTypeDefinition
	return json.Marshal(struct {
		Type TypeKind `json:"type"`
		*scalar
	}{t.Kind(), (*scalar)(t)})
}

func (t *ObjectTypeDefinition) MarshalJSON() ([]byte, error) {
	type object ObjectTypeDefinition
	return json.Marshal(struct {
		Type TypeKind `json:"type"`
		*object
	}{t.Kind(), (*object)(t)})
}

func (t *InterfaceTypeDefinition) MarshalJSON() ([]byte, error) {
	type iface InterfaceTypeDefinition
	return json.Marshal(struct {
		Type TypeKind `json:"type"`
		*iface
	}{t.Kind(), (*iface)(t)})
}

func (t *Union) MarshalJSON() ([]byte, error) {
	type union Union
	return json.Marshal(struct {
		Type TypeKind `json:"type"`
		*union
	}{t.Kind(), (*union)(t)})
}

func (t *EnumTypeDefinition) MarshalJSON() ([]byte, error) {
	type enum EnumTypeDefinition
	return json.Marshal(struct {
		Type TypeKind `json:"type"`
		*enum
	}{t.Kind(), (*enum)(t)})
}

func (t *InputObject) MarshalJSON() ([]byte, error) {
	type input InputObject
	return json.Marshal(struct {
		Type TypeKind `json:"type"`
		*input
	}{t.Kind(), (*input)(t)})
}
