package types

import (
	"github.com/graph-gophers/graphql-sdl/ast"
	"github.com/graph-gophers/graphql-sdl/errors"
)

// ExecutableDocument indexes the operations and fragments of an executable document by name.
// Selection sets are kept as parsed.
type ExecutableDocument struct {
	Fragments  map[string]*Fragment      `json:"fragments"`
	Operations map[string]*OperationItem `json:"operations"`
}

// Operation returns the operation with the given name; the anonymous operation has the
// empty name.
func (d *ExecutableDocument) Operation(name string) *OperationItem {
	return d.Operations[name]
}

// Fragment is a named fragment definition.
type Fragment struct {
	Name          string           `json:"name"`
	TypeCondition string           `json:"typeCondition"`
	Directives    DirectiveList    `json:"directives,omitempty"`
	Selections    ast.SelectionSet `json:"-"`
	Loc           errors.Location  `json:"-"`
}

// OperationItem is a query, mutation or subscription. Name is empty for the anonymous
// operation.
type OperationItem struct {
	Name       string              `json:"name"`
	Type       ast.OperationType   `json:"operation"`
	Vars       ArgumentsDefinition `json:"variableDefinitions,omitempty"`
	Directives DirectiveList       `json:"directives,omitempty"`
	Selections ast.SelectionSet    `json:"-"`
	Loc        errors.Location     `json:"-"`
}
