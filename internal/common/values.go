package common

import (
	"fmt"

	"github.com/graph-gophers/graphql-sdl/ast"
	"github.com/graph-gophers/graphql-sdl/errors"
	"github.com/graph-gophers/graphql-sdl/types"
)

func ParseInputValue(l *Lexer) *ast.InputValueDefinition {
	p := &ast.InputValueDefinition{}
	p.Loc = l.Location()
	p.Desc = l.DescComment()
	p.Name = l.ConsumeIdentWithLoc()
	l.ConsumeToken(':')
	p.TypeLoc = l.Location()
	p.Type = ParseType(l)
	if l.Peek() == '=' {
		l.ConsumeToken('=')
		p.Default = ParseLiteral(l, true)
	}
	p.Directives = ParseDirectives(l)
	return p
}

// ParseArgumentsDefinition parses an optional parenthesized list of input values.
func ParseArgumentsDefinition(l *Lexer) ast.ArgumentsDefinition {
	var args ast.ArgumentsDefinition
	if l.Peek() == '(' {
		l.ConsumeToken('(')
		for l.Peek() != ')' {
			args = append(args, ParseInputValue(l))
		}
		l.ConsumeToken(')')
	}
	return args
}

// ParseInputFieldsDefinition parses the braced field list of an input object.
func ParseInputFieldsDefinition(typeName string, l *Lexer) ast.ArgumentsDefinition {
	l.ConsumeToken('{')
	var list ast.ArgumentsDefinition
	for l.Peek() != '}' {
		list = append(list, ParseInputValue(l))
	}
	if len(list) == 0 {
		l.SyntaxError(fmt.Sprintf(`input type %q must define one or more fields`, typeName))
	}
	l.ConsumeToken('}')
	return list
}

func ParseArgumentList(l *Lexer) ast.ArgumentList {
	var args ast.ArgumentList
	l.ConsumeToken('(')
	for l.Peek() != ')' {
		name := l.ConsumeIdentWithLoc()
		l.ConsumeToken(':')
		value := ParseLiteral(l, false)
		args = append(args, &ast.Argument{Name: name, Value: value})
	}
	l.ConsumeToken(')')
	return args
}

// NormalizeInputValues keys input value definitions by name. Types and default values are
// passed through as written. label names the owner for error messages, e.g.
// "field Query.user" or "directive @auth".
func NormalizeInputValues(values ast.ArgumentsDefinition, label string) (types.ArgumentsDefinition, *errors.QueryError) {
	out := make(types.ArgumentsDefinition, len(values))
	for _, v := range values {
		if err := InsertInputValue(out, v, label); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// InsertInputValue normalizes v and adds it to m, failing if m already holds the name.
func InsertInputValue(m types.ArgumentsDefinition, v *ast.InputValueDefinition, label string) *errors.QueryError {
	directives, err := NormalizeDirectives(v.Directives, fmt.Sprintf("input value %s on %s", v.Name.Name, label))
	if err != nil {
		return err
	}
	iv := &types.InputValueDefinition{
		Name:       v.Name.Name,
		Desc:       v.Desc,
		Type:       v.Type,
		Default:    v.Default,
		Directives: directives,
		Loc:        v.Loc,
	}
	return InsertUnique(m, v.Name.Name, iv, func(prev *types.InputValueDefinition) *errors.QueryError {
		return errors.Errorf("Multiple input value definitions named %q on %s", v.Name.Name, label).
			WithRule(errors.RuleDuplicateArgumentDefinition).
			At(prev.Loc, v.Loc)
	})
}
