package document

import (
	"fmt"
	"text/scanner"

	"github.com/graph-gophers/graphql-sdl/ast"
	"github.com/graph-gophers/graphql-sdl/internal/common"
	"github.com/graph-gophers/graphql-sdl/types"
)

func parseScalarDef(l *common.Lexer) *ast.ScalarTypeDefinition {
	s := &ast.ScalarTypeDefinition{}
	s.Name = l.ConsumeIdentWithLoc()
	s.Directives = common.ParseDirectives(l)
	return s
}

// parseObjectDef parses everything after the `type` keyword. The field list is optional so
// that the same function serves `extend type`.
func parseObjectDef(l *common.Lexer) *ast.ObjectTypeDefinition {
	object := &ast.ObjectTypeDefinition{}
	object.Name = l.ConsumeIdentWithLoc()
	object.Interfaces = parseImplementsInterfaces(l)
	object.Directives = common.ParseDirectives(l)
	if l.Peek() == '{' {
		object.Fields = parseFieldsDef(l)
	}
	return object
}

func parseInterfaceDef(l *common.Lexer) *ast.InterfaceTypeDefinition {
	i := &ast.InterfaceTypeDefinition{}
	i.Name = l.ConsumeIdentWithLoc()
	i.Interfaces = parseImplementsInterfaces(l)
	i.Directives = common.ParseDirectives(l)
	if l.Peek() == '{' {
		i.Fields = parseFieldsDef(l)
	}
	return i
}

func parseUnionDef(l *common.Lexer) *ast.UnionTypeDefinition {
	union := &ast.UnionTypeDefinition{}
	union.Name = l.ConsumeIdentWithLoc()
	union.Directives = common.ParseDirectives(l)
	if l.Peek() != '=' {
		return union
	}
	l.ConsumeToken('=')
	if l.Peek() == '|' {
		l.ConsumeToken('|')
	}
	union.MemberTypes = []ast.Ident{l.ConsumeIdentWithLoc()}
	for l.Peek() == '|' {
		l.ConsumeToken('|')
		union.MemberTypes = append(union.MemberTypes, l.ConsumeIdentWithLoc())
	}
	return union
}

func parseInputDef(l *common.Lexer) *ast.InputObjectTypeDefinition {
	i := &ast.InputObjectTypeDefinition{}
	i.Name = l.ConsumeIdentWithLoc()
	i.Directives = common.ParseDirectives(l)
	if l.Peek() == '{' {
		i.Fields = common.ParseInputFieldsDefinition(i.Name.Name, l)
	}
	return i
}

func parseEnumDef(l *common.Lexer) *ast.EnumTypeDefinition {
	enum := &ast.EnumTypeDefinition{}
	enum.Name = l.ConsumeIdentWithLoc()
	enum.Directives = common.ParseDirectives(l)
	if l.Peek() != '{' {
		return enum
	}
	l.ConsumeToken('{')
	for l.Peek() != '}' {
		v := &ast.EnumValueDefinition{
			Desc: l.DescComment(),
			Loc:  l.Location(),
		}
		v.Name = l.ConsumeIdentWithLoc()
		switch v.Name.Name {
		case "true", "false", "null":
			l.SyntaxError(fmt.Sprintf("enum value %q is reserved", v.Name.Name))
		}
		v.Directives = common.ParseDirectives(l)
		enum.Values = append(enum.Values, v)
	}
	l.ConsumeToken('}')
	return enum
}

func parseDirectiveDef(l *common.Lexer) *ast.DirectiveDefinition {
	l.ConsumeToken('@')
	d := &ast.DirectiveDefinition{}
	d.Name = l.ConsumeIdentWithLoc()
	d.Arguments = common.ParseArgumentsDefinition(l)

	if l.Peek() == scanner.Ident && l.PeekIdent() == "repeatable" {
		l.ConsumeKeyword("repeatable")
		d.Repeatable = true
	}

	l.ConsumeKeyword("on")
	if l.Peek() == '|' {
		l.ConsumeToken('|')
	}
	for {
		loc := l.ConsumeIdentWithLoc()
		if !types.IsDirectiveLocation(loc.Name) {
			l.SyntaxError(fmt.Sprintf("unknown directive location %q", loc.Name))
		}
		d.Locations = append(d.Locations, loc)
		if l.Peek() != '|' {
			break
		}
		l.ConsumeToken('|')
	}
	return d
}

// parseImplementsInterfaces parses an optional `implements A & B` clause. A leading
// ampersand is allowed.
func parseImplementsInterfaces(l *common.Lexer) []ast.Ident {
	if l.Peek() != scanner.Ident || l.PeekIdent() != "implements" {
		return nil
	}
	l.ConsumeKeyword("implements")
	if l.Peek() == '&' {
		l.ConsumeToken('&')
	}

	names := []ast.Ident{l.ConsumeIdentWithLoc()}
	for l.Peek() == '&' {
		l.ConsumeToken('&')
		names = append(names, l.ConsumeIdentWithLoc())
	}
	return names
}

func parseFieldsDef(l *common.Lexer) ast.FieldsDefinition {
	fields := ast.FieldsDefinition{}
	l.ConsumeToken('{')
	for l.Peek() != '}' {
		f := &ast.FieldDefinition{}
		f.Desc = l.DescComment()
		f.Loc = l.Location()
		f.Name = l.ConsumeIdentWithLoc()
		f.Arguments = common.ParseArgumentsDefinition(l)
		l.ConsumeToken(':')
		f.Type = common.ParseType(l)
		f.Directives = common.ParseDirectives(l)
		fields = append(fields, f)
	}
	l.ConsumeToken('}')
	return fields
}
