package common

import (
	"github.com/graph-gophers/graphql-sdl/ast"
)

// ParseType parses a type reference such as `[String!]!`.
func ParseType(l *Lexer) ast.Type {
	t := parseNullType(l)
	if l.Peek() == '!' {
		l.ConsumeToken('!')
		return &ast.NonNull{OfType: t}
	}
	return t
}

func parseNullType(l *Lexer) ast.Type {
	if l.Peek() == '[' {
		l.ConsumeToken('[')
		ofType := ParseType(l)
		l.ConsumeToken(']')
		return &ast.List{OfType: ofType}
	}

	return &ast.TypeName{Ident: l.ConsumeIdentWithLoc()}
}
