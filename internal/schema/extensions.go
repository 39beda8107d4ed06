package schema

import (
	"github.com/graph-gophers/graphql-sdl/ast"
	"github.com/graph-gophers/graphql-sdl/errors"
	"github.com/graph-gophers/graphql-sdl/internal/common"
	"github.com/graph-gophers/graphql-sdl/types"
)

// extendType merges a type extension into the definition of the same name, which must
// already exist and be of the same kind. The definition is modified in place.
func (b *builder) extendType(ext *ast.Extension) *errors.QueryError {
	if ext.Type == nil {
		return errors.Errorf("type extension without a type").
			WithRule(errors.RuleInternal).
			At(ext.Loc)
	}

	name := ext.Type.TypeName()
	t, ok := b.types[name]
	if !ok {
		return errors.Errorf("Type extension before type definition for type %s", name).
			WithRule(errors.RuleNoMatchingDefinition).
			At(ext.Loc)
	}

	kind := extensionKind(ext.Type)
	if kind != t.Kind() {
		return errors.Errorf("Type extension of kind %s does not match the %s definition of type %s", kind, t.Kind(), name).
			WithRule(errors.RuleKindMismatch).
			At(t.Location(), ext.Loc)
	}

	switch e := ext.Type.(type) {
	case *ast.ScalarTypeDefinition:
		return extendScalar(t.(*types.ScalarTypeDefinition), e)
	case *ast.ObjectTypeDefinition:
		return extendObject(t.(*types.ObjectTypeDefinition), e)
	case *ast.InterfaceTypeDefinition:
		return extendInterface(t.(*types.InterfaceTypeDefinition), e)
	case *ast.UnionTypeDefinition:
		return extendUnion(t.(*types.Union), e)
	case *ast.EnumTypeDefinition:
		return extendEnum(t.(*types.EnumTypeDefinition), e)
	case *ast.InputObjectTypeDefinition:
		return extendInputObject(t.(*types.InputObject), e)
	default:
		panic(errors.Errorf("unknown type extension %T", e))
	}
}

func extensionKind(t ast.TypeDefinition) types.TypeKind {
	switch t.(type) {
	case *ast.ScalarTypeDefinition:
		return types.KindScalar
	case *ast.ObjectTypeDefinition:
		return types.KindObject
	case *ast.InterfaceTypeDefinition:
		return types.KindInterface
	case *ast.UnionTypeDefinition:
		return types.KindUnion
	case *ast.EnumTypeDefinition:
		return types.KindEnum
	case *ast.InputObjectTypeDefinition:
		return types.KindInputObject
	default:
		panic(errors.Errorf("unknown type definition %T", t))
	}
}

func extendScalar(def *types.ScalarTypeDefinition, ext *ast.ScalarTypeDefinition) *errors.QueryError {
	return appendDirectives(&def.Directives, ext.Directives, typeLabel(types.KindScalar, def.Name))
}

func extendObject(def *types.ObjectTypeDefinition, ext *ast.ObjectTypeDefinition) *errors.QueryError {
	if err := validateUnique(accumulated(def.Interfaces, ext.Interfaces), implementsLabel(def.Name)); err != nil {
		return err
	}
	def.Interfaces = append(def.Interfaces, identNames(ext.Interfaces)...)

	for _, f := range ext.Fields {
		if err := insertField(def.Fields, f, def.Name); err != nil {
			return err
		}
	}
	return appendDirectives(&def.Directives, ext.Directives, typeLabel(types.KindObject, def.Name))
}

func extendInterface(def *types.InterfaceTypeDefinition, ext *ast.InterfaceTypeDefinition) *errors.QueryError {
	if err := validateUnique(accumulated(def.Interfaces, ext.Interfaces), implementsLabel(def.Name)); err != nil {
		return err
	}
	def.Interfaces = append(def.Interfaces, identNames(ext.Interfaces)...)

	for _, f := range ext.Fields {
		if err := insertField(def.Fields, f, def.Name); err != nil {
			return err
		}
	}
	return appendDirectives(&def.Directives, ext.Directives, typeLabel(types.KindInterface, def.Name))
}

func extendUnion(def *types.Union, ext *ast.UnionTypeDefinition) *errors.QueryError {
	if err := validateUnique(accumulated(def.MemberTypes, ext.MemberTypes), unionMembersLabel(def.Name)); err != nil {
		return err
	}
	def.MemberTypes = append(def.MemberTypes, identNames(ext.MemberTypes)...)
	return appendDirectives(&def.Directives, ext.Directives, typeLabel(types.KindUnion, def.Name))
}

func extendEnum(def *types.EnumTypeDefinition, ext *ast.EnumTypeDefinition) *errors.QueryError {
	for _, v := range ext.Values {
		if err := insertEnumValue(def.Values, v, def.Name); err != nil {
			return err
		}
	}
	return appendDirectives(&def.Directives, ext.Directives, typeLabel(types.KindEnum, def.Name))
}

func extendInputObject(def *types.InputObject, ext *ast.InputObjectTypeDefinition) *errors.QueryError {
	label := typeLabel(types.KindInputObject, def.Name)
	for _, f := range ext.Fields {
		if err := common.InsertInputValue(def.Fields, f, label); err != nil {
			return err
		}
	}
	return appendDirectives(&def.Directives, ext.Directives, label)
}

func appendDirectives(dst *types.DirectiveList, directives ast.DirectiveList, label string) *errors.QueryError {
	normalized, err := common.NormalizeDirectives(directives, label)
	if err != nil {
		return err
	}
	*dst = append(*dst, normalized...)
	return nil
}
