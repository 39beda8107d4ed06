package types

import (
	"github.com/graph-gophers/graphql-sdl/ast"
	"github.com/graph-gophers/graphql-sdl/errors"
)

// FieldDefinition is a field of an object or interface type. Type is the reference exactly
// as written in the document.
//
// http://spec.graphql.org/draft/#FieldDefinition
type FieldDefinition struct {
	Name       string              `json:"name"`
	Desc       string              `json:"description,omitempty"`
	Arguments  ArgumentsDefinition `json:"argumentsDefinition,omitempty"`
	Type       ast.Type            `json:"type"`
	Directives DirectiveList       `json:"directives,omitempty"`
	Loc        errors.Location     `json:"-"`
}

// FieldsDefinition maps field names to their definitions.
type FieldsDefinition map[string]*FieldDefinition

// InputValueDefinition is an argument, input object field or variable definition.
//
// http://spec.graphql.org/draft/#InputValueDefinition
type InputValueDefinition struct {
	Name       string          `json:"name"`
	Desc       string          `json:"description,omitempty"`
	Type       ast.Type        `json:"type"`
	Default    ast.Value       `json:"defaultValue,omitempty"`
	Directives DirectiveList   `json:"directives,omitempty"`
	Loc        errors.Location `json:"-"`
}

// ArgumentsDefinition maps input value names to their definitions.
type ArgumentsDefinition map[string]*InputValueDefinition
