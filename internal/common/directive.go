package common

import (
	"github.com/graph-gophers/graphql-sdl/ast"
	"github.com/graph-gophers/graphql-sdl/errors"
	"github.com/graph-gophers/graphql-sdl/types"
)

func ParseDirectives(l *Lexer) ast.DirectiveList {
	var directives ast.DirectiveList
	for l.Peek() == '@' {
		d := &ast.Directive{Loc: l.Location()}
		l.ConsumeToken('@')
		d.Name = l.ConsumeIdentWithLoc()
		d.Name.Loc.Column--
		if l.Peek() == '(' {
			d.Arguments = ParseArgumentList(l)
		}
		directives = append(directives, d)
	}
	return directives
}

// NormalizeDirectives turns parsed directive applications into keyed form, keeping their
// order. The same directive may be applied more than once; an argument name may not repeat
// within one application. label names the construct the directives are attached to and is
// only used in error messages.
func NormalizeDirectives(directives ast.DirectiveList, label string) (types.DirectiveList, *errors.QueryError) {
	if len(directives) == 0 {
		return nil, nil
	}
	out := make(types.DirectiveList, 0, len(directives))
	for _, d := range directives {
		args := make(map[string]*types.Argument, len(d.Arguments))
		for _, arg := range d.Arguments {
			err := InsertUnique(args, arg.Name.Name, &types.Argument{Name: arg.Name.Name, Value: arg.Value}, func(*types.Argument) *errors.QueryError {
				return errors.Errorf("Multiple arguments named %q in directive @%s on %s", arg.Name.Name, d.Name.Name, label).
					WithRule(errors.RuleDuplicateArgument).
					At(arg.Name.Loc)
			})
			if err != nil {
				return nil, err
			}
		}
		out = append(out, &types.Directive{Name: d.Name.Name, Arguments: args, Loc: d.Name.Loc})
	}
	return out, nil
}
