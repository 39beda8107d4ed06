package schema

import (
	"github.com/graph-gophers/graphql-sdl/ast"
	"github.com/graph-gophers/graphql-sdl/errors"
	"github.com/graph-gophers/graphql-sdl/internal/common"
)

const schemaLabel = "schema"

func (b *builder) addSchemaDefinition(def *ast.SchemaDefinition) *errors.QueryError {
	if b.schemaDef != nil {
		return errors.Errorf("Multiple SchemaDefinition found in document").
			WithRule(errors.RuleDuplicateSchemaDefinition).
			At(b.schemaDef.Loc, def.Loc)
	}
	b.schemaDef = def

	if err := b.bindRootOperationTypes(def.OperationTypes); err != nil {
		return err
	}
	return b.appendSchemaDirectives(def.Directives)
}

// extendSchema applies a schema extension. Unlike type extensions, schema extensions may
// appear before the schema definition.
func (b *builder) extendSchema(ext *ast.SchemaExtension) *errors.QueryError {
	if err := b.bindRootOperationTypes(ext.OperationTypes); err != nil {
		return err
	}
	return b.appendSchemaDirectives(ext.Directives)
}

// bindRootOperationTypes records each binding in ops. An operation kind may be bound once
// across the schema definition and all schema extensions.
func (b *builder) bindRootOperationTypes(ops []*ast.RootOperationTypeDefinition) *errors.QueryError {
	if b.rootOperationTypes == nil {
		b.rootOperationTypes = make(map[ast.OperationType]*ast.RootOperationTypeDefinition, len(ops))
	}
	for _, op := range ops {
		err := common.InsertUnique(b.rootOperationTypes, op.Operation, op, func(prev *ast.RootOperationTypeDefinition) *errors.QueryError {
			return errors.Errorf("Multiple root operation types defined for %s: %s and %s", op.Operation, prev.Type.Name, op.Type.Name).
				WithRule(errors.RuleDuplicateRootOperationType).
				At(prev.Loc, op.Loc)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) appendSchemaDirectives(directives ast.DirectiveList) *errors.QueryError {
	normalized, err := common.NormalizeDirectives(directives, schemaLabel)
	if err != nil {
		return err
	}
	b.schemaDirectives = append(b.schemaDirectives, normalized...)
	return nil
}
