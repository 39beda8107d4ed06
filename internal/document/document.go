// Package document parses GraphQL source text into an ordered ast.Document. It checks syntax
// only; every semantic rule, including name uniqueness, is left to the analyzers.
package document

import (
	"fmt"
	"text/scanner"

	"github.com/graph-gophers/graphql-sdl/ast"
	"github.com/graph-gophers/graphql-sdl/errors"
	"github.com/graph-gophers/graphql-sdl/internal/common"
)

// Parse parses src, which may mix type system and executable definitions. When
// useStringDescriptions is false, `#` comments preceding a definition are used as its
// description, as in older SDL dialects.
func Parse(src string, useStringDescriptions bool) (*ast.Document, *errors.QueryError) {
	l := common.NewLexer(src, useStringDescriptions)

	var doc *ast.Document
	err := l.CatchSyntaxError(func() { doc = parseDocument(l) })
	if err != nil {
		return nil, err
	}

	return doc, nil
}

func parseDocument(l *common.Lexer) *ast.Document {
	doc := &ast.Document{}
	l.ConsumeWhitespace()
	for l.Peek() != scanner.EOF {
		doc.Definitions = append(doc.Definitions, parseDefinition(l))
	}
	return doc
}

func parseDefinition(l *common.Lexer) ast.Definition {
	if l.Peek() == '{' {
		op := &ast.OperationDefinition{Type: ast.Query, Loc: l.Location()}
		op.Selections = parseSelectionSet(l)
		return op
	}

	desc := l.DescComment()
	loc := l.Location()
	switch x := l.ConsumeIdent(); x {
	case "schema":
		def := &ast.SchemaDefinition{Desc: desc, Loc: loc}
		def.Directives = common.ParseDirectives(l)
		l.ConsumeToken('{')
		def.OperationTypes = parseRootOperationTypes(l)
		return def

	case "extend":
		return parseExtension(l, loc)

	case "directive":
		d := parseDirectiveDef(l)
		d.Desc = desc
		d.Loc = loc
		return d

	case "query":
		return parseOperation(l, ast.Query, loc)

	case "mutation":
		return parseOperation(l, ast.Mutation, loc)

	case "subscription":
		return parseOperation(l, ast.Subscription, loc)

	case "fragment":
		return parseFragment(l, loc)

	default:
		t := parseTypeDef(l, x)
		if t == nil {
			l.SyntaxError(fmt.Sprintf(`unexpected %q, expecting "schema", "type", "enum", "interface", "union", "input", "scalar", "directive", "extend" or an operation`, x))
		}
		setTypeDesc(t, desc, loc)
		return t
	}
}

// parseTypeDef parses the remainder of a type definition introduced by keyword. It returns
// nil if keyword does not start one.
func parseTypeDef(l *common.Lexer, keyword string) ast.TypeDefinition {
	switch keyword {
	case "scalar":
		return parseScalarDef(l)
	case "type":
		return parseObjectDef(l)
	case "interface":
		return parseInterfaceDef(l)
	case "union":
		return parseUnionDef(l)
	case "enum":
		return parseEnumDef(l)
	case "input":
		return parseInputDef(l)
	default:
		return nil
	}
}

func setTypeDesc(t ast.TypeDefinition, desc string, loc errors.Location) {
	switch t := t.(type) {
	case *ast.ScalarTypeDefinition:
		t.Desc, t.Loc = desc, loc
	case *ast.ObjectTypeDefinition:
		t.Desc, t.Loc = desc, loc
	case *ast.InterfaceTypeDefinition:
		t.Desc, t.Loc = desc, loc
	case *ast.UnionTypeDefinition:
		t.Desc, t.Loc = desc, loc
	case *ast.EnumTypeDefinition:
		t.Desc, t.Loc = desc, loc
	case *ast.InputObjectTypeDefinition:
		t.Desc, t.Loc = desc, loc
	}
}

func parseExtension(l *common.Lexer, loc errors.Location) ast.Definition {
	switch x := l.ConsumeIdent(); x {
	case "schema":
		ext := &ast.SchemaExtension{Loc: loc}
		ext.Directives = common.ParseDirectives(l)
		if l.Peek() == '{' {
			l.ConsumeToken('{')
			ext.OperationTypes = parseRootOperationTypes(l)
		}
		return ext

	default:
		t := parseTypeDef(l, x)
		if t == nil {
			l.SyntaxError(fmt.Sprintf(`unexpected %q, expecting "schema", "type", "enum", "interface", "union", "input" or "scalar"`, x))
		}
		setTypeDesc(t, "", loc)
		return &ast.Extension{Type: t, Loc: loc}
	}
}

// parseRootOperationTypes parses the body of a schema definition or extension after its
// opening brace, including the closing brace.
func parseRootOperationTypes(l *common.Lexer) []*ast.RootOperationTypeDefinition {
	var ops []*ast.RootOperationTypeDefinition
	for l.Peek() != '}' {
		ident := l.ConsumeIdentWithLoc()
		op := ast.OperationType(ident.Name)
		switch op {
		case ast.Query, ast.Mutation, ast.Subscription:
		default:
			l.SyntaxError(fmt.Sprintf(`unexpected %q, expected "query", "mutation" or "subscription"`, ident.Name))
		}
		l.ConsumeToken(':')
		ops = append(ops, &ast.RootOperationTypeDefinition{
			Operation: op,
			Type:      l.ConsumeIdentWithLoc(),
			Loc:       ident.Loc,
		})
	}
	l.ConsumeToken('}')
	return ops
}
