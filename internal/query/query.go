// Package query analyzes executable documents: operations and fragments are indexed by name
// and their variables and directives normalized. Selection sets are not resolved against a
// schema.
package query

import (
	"github.com/graph-gophers/graphql-sdl/ast"
	"github.com/graph-gophers/graphql-sdl/errors"
	"github.com/graph-gophers/graphql-sdl/internal/common"
	"github.com/graph-gophers/graphql-sdl/types"
)

func Analyze(doc *ast.Document) (*types.ExecutableDocument, *errors.QueryError) {
	ed := &types.ExecutableDocument{
		Fragments:  make(map[string]*types.Fragment),
		Operations: make(map[string]*types.OperationItem),
	}

	for _, def := range doc.Definitions {
		var err *errors.QueryError
		switch def := def.(type) {
		case *ast.OperationDefinition:
			err = addOperation(ed, def)
		case *ast.FragmentDefinition:
			err = addFragment(ed, def)
		case nil:
			err = errors.Errorf("nil definition in executable document").WithRule(errors.RuleInternal)
		default:
			err = errors.Errorf("Type system definition found in executable document").
				WithRule(errors.RuleTypeSystemDefinitionInExecutable).
				At(def.Location())
		}
		if err != nil {
			return nil, err
		}
	}

	return ed, nil
}

func addOperation(ed *types.ExecutableDocument, op *ast.OperationDefinition) *errors.QueryError {
	name := op.Name.Name
	label := operationLabel(op)

	vars, err := common.NormalizeInputValues(op.Vars, label)
	if err != nil {
		return err
	}
	directives, err := common.NormalizeDirectives(op.Directives, label)
	if err != nil {
		return err
	}

	item := &types.OperationItem{
		Name:       name,
		Type:       op.Type,
		Vars:       vars,
		Directives: directives,
		Selections: op.Selections,
		Loc:        op.Loc,
	}
	return common.InsertUnique(ed.Operations, name, item, func(prev *types.OperationItem) *errors.QueryError {
		if name == "" {
			return errors.Errorf("Multiple anonymous operations found in document").
				WithRule(errors.RuleDuplicateOperationDefinition).
				At(prev.Loc, item.Loc)
		}
		return errors.Errorf("Multiple operation definitions for operation %s", name).
			WithRule(errors.RuleDuplicateOperationDefinition).
			At(prev.Loc, item.Loc)
	})
}

func addFragment(ed *types.ExecutableDocument, frag *ast.FragmentDefinition) *errors.QueryError {
	name := frag.Name.Name
	directives, err := common.NormalizeDirectives(frag.Directives, "fragment "+name)
	if err != nil {
		return err
	}

	f := &types.Fragment{
		Name:          name,
		TypeCondition: frag.On.Name,
		Directives:    directives,
		Selections:    frag.Selections,
		Loc:           frag.Loc,
	}
	return common.InsertUnique(ed.Fragments, name, f, func(prev *types.Fragment) *errors.QueryError {
		return errors.Errorf("Multiple fragment definitions for fragment %s", name).
			WithRule(errors.RuleDuplicateFragmentDefinition).
			At(prev.Loc, f.Loc)
	})
}

func operationLabel(op *ast.OperationDefinition) string {
	if op.Name.Name == "" {
		return "anonymous " + string(op.Type)
	}
	return string(op.Type) + " " + op.Name.Name
}
