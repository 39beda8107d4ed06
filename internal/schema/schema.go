// Package schema analyzes a type system document into a types.Schema. A single builder owns
// every table while the document is walked once; the first violated rule aborts the walk.
package schema

import (
	"fmt"

	"github.com/graph-gophers/graphql-sdl/ast"
	"github.com/graph-gophers/graphql-sdl/errors"
	"github.com/graph-gophers/graphql-sdl/types"
)

// builder is the mutable analysis context. It is owned by one Analyze call and dropped once
// the schema has been handed out.
type builder struct {
	types      map[string]types.NamedType
	directives map[string]*types.DirectiveDefinition

	schemaDef          *ast.SchemaDefinition
	rootOperationTypes map[ast.OperationType]*ast.RootOperationTypeDefinition
	schemaDirectives   types.DirectiveList
}

func newBuilder() *builder {
	return &builder{
		types:      make(map[string]types.NamedType),
		directives: make(map[string]*types.DirectiveDefinition),
	}
}

// Analyze builds the schema described by doc. Extensions are merged into the definitions
// they extend in document order. doc must contain exactly one schema definition and no
// executable definitions.
func Analyze(doc *ast.Document) (*types.Schema, *errors.QueryError) {
	b := newBuilder()
	for _, def := range doc.Definitions {
		if err := b.add(def); err != nil {
			return nil, err
		}
	}

	if b.schemaDef == nil {
		return nil, errors.Errorf("No SchemaDefinition found in document").
			WithRule(errors.RuleNoSchemaDefinition)
	}
	return b.schema(), nil
}

func (b *builder) add(def ast.Definition) *errors.QueryError {
	switch def := def.(type) {
	case *ast.SchemaDefinition:
		return b.addSchemaDefinition(def)
	case *ast.SchemaExtension:
		return b.extendSchema(def)
	case *ast.DirectiveDefinition:
		return b.addDirectiveDefinition(def)
	case ast.TypeDefinition:
		return b.addTypeDefinition(def)
	case *ast.Extension:
		return b.extendType(def)
	case *ast.OperationDefinition, *ast.FragmentDefinition:
		return errors.Errorf("Executable definition found in schema document").
			WithRule(errors.RuleExecutableDefinitionInSchema).
			At(def.Location())
	default:
		return errors.Errorf("unexpected definition %T in schema document", def).
			WithRule(errors.RuleInternal)
	}
}

func (b *builder) schema() *types.Schema {
	roots := make(map[ast.OperationType]string, len(b.rootOperationTypes))
	for op, def := range b.rootOperationTypes {
		roots[op] = def.Type.Name
	}
	return &types.Schema{
		Desc:                 b.schemaDef.Desc,
		RootOperationTypes:   roots,
		Directives:           b.schemaDirectives,
		DirectiveDefinitions: b.directives,
		Types:                b.types,
	}
}

func (b *builder) addTypeDefinition(def ast.TypeDefinition) *errors.QueryError {
	name := def.TypeName()
	if prev, ok := b.types[name]; ok {
		return errors.Errorf("Multiple type definitions for type %s", name).
			WithRule(errors.RuleDuplicateTypeDefinition).
			At(prev.Location(), def.Location())
	}

	t, err := buildType(def)
	if err != nil {
		return err
	}
	b.types[name] = t
	return nil
}

// typeLabel names a type in error messages the way it is declared, e.g. "input Filter".
func typeLabel(kind types.TypeKind, name string) string {
	switch kind {
	case types.KindObject:
		return "type " + name
	case types.KindInputObject:
		return "input " + name
	default:
		return fmt.Sprintf("%s %s", kind, name)
	}
}

func fieldLabel(typeName, fieldName string) string {
	return fmt.Sprintf("field %s.%s", typeName, fieldName)
}
