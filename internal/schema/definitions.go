package schema

import (
	"github.com/graph-gophers/graphql-sdl/ast"
	"github.com/graph-gophers/graphql-sdl/errors"
	"github.com/graph-gophers/graphql-sdl/internal/common"
	"github.com/graph-gophers/graphql-sdl/types"
)

// buildType constructs the definition record for one of the six type definition nodes.
func buildType(def ast.TypeDefinition) (types.NamedType, *errors.QueryError) {
	switch def := def.(type) {
	case *ast.ScalarTypeDefinition:
		return buildScalar(def)
	case *ast.ObjectTypeDefinition:
		return buildObject(def)
	case *ast.InterfaceTypeDefinition:
		return buildInterface(def)
	case *ast.UnionTypeDefinition:
		return buildUnion(def)
	case *ast.EnumTypeDefinition:
		return buildEnum(def)
	case *ast.InputObjectTypeDefinition:
		return buildInputObject(def)
	default:
		panic(errors.Errorf("unknown type definition %T", def))
	}
}

func buildScalar(def *ast.ScalarTypeDefinition) (*types.ScalarTypeDefinition, *errors.QueryError) {
	name := def.Name.Name
	directives, err := common.NormalizeDirectives(def.Directives, typeLabel(types.KindScalar, name))
	if err != nil {
		return nil, err
	}
	return &types.ScalarTypeDefinition{
		Name:       name,
		Desc:       def.Desc,
		Directives: directives,
		Loc:        def.Loc,
	}, nil
}

func buildObject(def *ast.ObjectTypeDefinition) (*types.ObjectTypeDefinition, *errors.QueryError) {
	name := def.Name.Name
	if err := validateUnique(def.Interfaces, implementsLabel(name)); err != nil {
		return nil, err
	}

	fields := make(types.FieldsDefinition, len(def.Fields))
	for _, f := range def.Fields {
		if err := insertField(fields, f, name); err != nil {
			return nil, err
		}
	}

	directives, err := common.NormalizeDirectives(def.Directives, typeLabel(types.KindObject, name))
	if err != nil {
		return nil, err
	}

	return &types.ObjectTypeDefinition{
		Name:       name,
		Desc:       def.Desc,
		Interfaces: identNames(def.Interfaces),
		Fields:     fields,
		Directives: directives,
		Loc:        def.Loc,
	}, nil
}

func buildInterface(def *ast.InterfaceTypeDefinition) (*types.InterfaceTypeDefinition, *errors.QueryError) {
	name := def.Name.Name
	if err := validateUnique(def.Interfaces, implementsLabel(name)); err != nil {
		return nil, err
	}

	fields := make(types.FieldsDefinition, len(def.Fields))
	for _, f := range def.Fields {
		if err := insertField(fields, f, name); err != nil {
			return nil, err
		}
	}

	directives, err := common.NormalizeDirectives(def.Directives, typeLabel(types.KindInterface, name))
	if err != nil {
		return nil, err
	}

	return &types.InterfaceTypeDefinition{
		Name:       name,
		Desc:       def.Desc,
		Interfaces: identNames(def.Interfaces),
		Fields:     fields,
		Directives: directives,
		Loc:        def.Loc,
	}, nil
}

func buildUnion(def *ast.UnionTypeDefinition) (*types.Union, *errors.QueryError) {
	name := def.Name.Name
	if err := validateUnique(def.MemberTypes, unionMembersLabel(name)); err != nil {
		return nil, err
	}

	directives, err := common.NormalizeDirectives(def.Directives, typeLabel(types.KindUnion, name))
	if err != nil {
		return nil, err
	}

	return &types.Union{
		Name:        name,
		Desc:        def.Desc,
		MemberTypes: identNames(def.MemberTypes),
		Directives:  directives,
		Loc:         def.Loc,
	}, nil
}

func buildEnum(def *ast.EnumTypeDefinition) (*types.EnumTypeDefinition, *errors.QueryError) {
	name := def.Name.Name
	values := make(map[string]*types.EnumValueDefinition, len(def.Values))
	for _, v := range def.Values {
		if err := insertEnumValue(values, v, name); err != nil {
			return nil, err
		}
	}

	directives, err := common.NormalizeDirectives(def.Directives, typeLabel(types.KindEnum, name))
	if err != nil {
		return nil, err
	}

	return &types.EnumTypeDefinition{
		Name:       name,
		Desc:       def.Desc,
		Values:     values,
		Directives: directives,
		Loc:        def.Loc,
	}, nil
}

func buildInputObject(def *ast.InputObjectTypeDefinition) (*types.InputObject, *errors.QueryError) {
	name := def.Name.Name
	label := typeLabel(types.KindInputObject, name)
	fields, err := common.NormalizeInputValues(def.Fields, label)
	if err != nil {
		return nil, err
	}

	directives, err := common.NormalizeDirectives(def.Directives, label)
	if err != nil {
		return nil, err
	}

	return &types.InputObject{
		Name:       name,
		Desc:       def.Desc,
		Fields:     fields,
		Directives: directives,
		Loc:        def.Loc,
	}, nil
}

// insertField adds f to the fields of typeName. Field names must be unique across the
// definition and all of its extensions.
func insertField(fields types.FieldsDefinition, f *ast.FieldDefinition, typeName string) *errors.QueryError {
	label := fieldLabel(typeName, f.Name.Name)
	args, err := common.NormalizeInputValues(f.Arguments, label)
	if err != nil {
		return err
	}
	directives, err := common.NormalizeDirectives(f.Directives, label)
	if err != nil {
		return err
	}

	field := &types.FieldDefinition{
		Name:       f.Name.Name,
		Desc:       f.Desc,
		Arguments:  args,
		Type:       f.Type,
		Directives: directives,
		Loc:        f.Loc,
	}
	return common.InsertUnique(fields, field.Name, field, func(prev *types.FieldDefinition) *errors.QueryError {
		return errors.Errorf("Multiple field definitions for field %s on type %s", field.Name, typeName).
			WithRule(errors.RuleDuplicateFieldDefinition).
			At(prev.Loc, field.Loc)
	})
}

// insertEnumValue adds v to the values of enumName. Value names are compared case-sensitively.
func insertEnumValue(values map[string]*types.EnumValueDefinition, v *ast.EnumValueDefinition, enumName string) *errors.QueryError {
	directives, err := common.NormalizeDirectives(v.Directives, "enum value "+enumName+"."+v.Name.Name)
	if err != nil {
		return err
	}

	value := &types.EnumValueDefinition{
		Name:       v.Name.Name,
		Desc:       v.Desc,
		Directives: directives,
		Loc:        v.Loc,
	}
	return common.InsertUnique(values, value.Name, value, func(prev *types.EnumValueDefinition) *errors.QueryError {
		return errors.Errorf("Multiple enum value definitions for value %s on enum %s", value.Name, enumName).
			WithRule(errors.RuleDuplicateEnumValue).
			At(prev.Loc, value.Loc)
	})
}

func (b *builder) addDirectiveDefinition(d *ast.DirectiveDefinition) *errors.QueryError {
	name := d.Name.Name
	if prev, ok := b.directives[name]; ok {
		return errors.Errorf("Multiple directive definitions for @%s", name).
			WithRule(errors.RuleDuplicateDirectiveDefinition).
			At(prev.Loc, d.Loc)
	}

	label := "directive @" + name
	args, err := common.NormalizeInputValues(d.Arguments, label)
	if err != nil {
		return err
	}

	locations := make(types.DirectiveLocationSet, len(d.Locations))
	for _, loc := range d.Locations {
		err := common.InsertUnique(locations, types.DirectiveLocation(loc.Name), struct{}{}, func(struct{}) *errors.QueryError {
			return errors.Errorf("Multiple directive locations %s on %s", loc.Name, label).
				WithRule(errors.RuleDuplicateDirectiveLocation).
				At(loc.Loc)
		})
		if err != nil {
			return err
		}
	}

	b.directives[name] = &types.DirectiveDefinition{
		Name:       name,
		Desc:       d.Desc,
		Arguments:  args,
		Repeatable: d.Repeatable,
		Locations:  locations,
		Loc:        d.Loc,
	}
	return nil
}

func identNames(idents []ast.Ident) []string {
	if len(idents) == 0 {
		return nil
	}
	names := make([]string, len(idents))
	for i, ident := range idents {
		names[i] = ident.Name
	}
	return names
}
