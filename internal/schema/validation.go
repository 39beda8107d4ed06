package schema

import (
	"github.com/graph-gophers/graphql-sdl/ast"
	"github.com/graph-gophers/graphql-sdl/errors"
)

// validateUnique fails if any name occurs more than once in names, wherever the repeats are.
// Extensions pass the names accumulated so far followed by the names they add, so the whole
// list is checked again on every extension.
func validateUnique(names []ast.Ident, label string) *errors.QueryError {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := seen[name.Name]; ok {
			return errors.Errorf("Duplicate reference to %s in %s", name.Name, label).
				WithRule(errors.RuleDuplicateReference).
				At(name.Loc)
		}
		seen[name.Name] = struct{}{}
	}
	return nil
}

func implementsLabel(typeName string) string {
	return "implements on type " + typeName
}

func unionMembersLabel(unionName string) string {
	return "members of union " + unionName
}

// accumulated returns the names already recorded on a definition followed by the names an
// extension adds. Recorded names carry no location.
func accumulated(existing []string, added []ast.Ident) []ast.Ident {
	names := make([]ast.Ident, 0, len(existing)+len(added))
	for _, name := range existing {
		names = append(names, ast.Ident{Name: name})
	}
	return append(names, added...)
}
