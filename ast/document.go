package ast

import "github.com/graph-gophers/graphql-sdl/errors"

// Document is the ordered sequence of top-level definitions produced by a parser.
//
// http://spec.graphql.org/draft/#sec-Document
type Document struct {
	Definitions []Definition
}

// Definition is implemented by every top-level node a Document can hold. The set of
// implementations is closed to this package.
type Definition interface {
	Location() errors.Location
	isDefinition()
}

func (*SchemaDefinition) isDefinition()          {}
func (*SchemaExtension) isDefinition()           {}
func (*DirectiveDefinition) isDefinition()       {}
func (*ScalarTypeDefinition) isDefinition()      {}
func (*ObjectTypeDefinition) isDefinition()      {}
func (*InterfaceTypeDefinition) isDefinition()   {}
func (*UnionTypeDefinition) isDefinition()       {}
func (*EnumTypeDefinition) isDefinition()        {}
func (*InputObjectTypeDefinition) isDefinition() {}
func (*Extension) isDefinition()                 {}
func (*OperationDefinition) isDefinition()       {}
func (*FragmentDefinition) isDefinition()        {}

func (d *SchemaDefinition) Location() errors.Location          { return d.Loc }
func (d *SchemaExtension) Location() errors.Location           { return d.Loc }
func (d *DirectiveDefinition) Location() errors.Location       { return d.Loc }
func (t *ScalarTypeDefinition) Location() errors.Location      { return t.Loc }
func (t *ObjectTypeDefinition) Location() errors.Location      { return t.Loc }
func (t *InterfaceTypeDefinition) Location() errors.Location   { return t.Loc }
func (t *UnionTypeDefinition) Location() errors.Location       { return t.Loc }
func (t *EnumTypeDefinition) Location() errors.Location        { return t.Loc }
func (t *InputObjectTypeDefinition) Location() errors.Location { return t.Loc }
func (e *Extension) Location() errors.Location                 { return e.Loc }
func (o *OperationDefinition) Location() errors.Location       { return o.Loc }
func (f *FragmentDefinition) Location() errors.Location        { return f.Loc }

// IsExecutable reports whether d is an operation or a fragment rather than a type system
// definition or extension.
func IsExecutable(d Definition) bool {
	switch d.(type) {
	case *OperationDefinition, *FragmentDefinition:
		return true
	default:
		return false
	}
}

// Ident is a name together with the location it was read from.
type Ident struct {
	Name string
	Loc  errors.Location
}
