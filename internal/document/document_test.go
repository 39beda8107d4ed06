package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graph-gophers/graphql-sdl/ast"
	"github.com/graph-gophers/graphql-sdl/errors"
	"github.com/graph-gophers/graphql-sdl/internal/document"
)

func TestParseDefinitions(t *testing.T) {
	doc, err := document.Parse(`
		"Root"
		schema @link(url: "x") { query: Query mutation: Mutation }
		extend schema @extra
		extend schema { subscription: Subscription }

		directive @auth(role: String) repeatable on | FIELD_DEFINITION | OBJECT

		scalar Date
		type Query implements & Node & Entity @key(fields: "id") { id: ID! }
		interface Node { id: ID! }
		union Result = A | B
		enum Color { RED GREEN }
		input Filter { name: String = "x" }

		extend scalar Date @format
		extend type Query implements Other
		extend interface Node { name: String }
		extend union Result = C
		extend enum Color { BLUE }
		extend input Filter { age: Int }

		query Q { a }
		fragment f on Query { a }
		{ b }
	`, true)
	require.Nil(t, err)

	var got []string
	for _, def := range doc.Definitions {
		switch def := def.(type) {
		case *ast.Extension:
			got = append(got, "extend "+def.Type.Kind())
		case ast.TypeDefinition:
			got = append(got, def.Kind())
		default:
			got = append(got, typeName(def))
		}
	}
	assert.Equal(t, []string{
		"schema", "extend schema", "extend schema", "directive",
		"SCALAR", "OBJECT", "INTERFACE", "UNION", "ENUM", "INPUT_OBJECT",
		"extend SCALAR", "extend OBJECT", "extend INTERFACE", "extend UNION", "extend ENUM", "extend INPUT_OBJECT",
		"operation", "fragment", "operation",
	}, got)

	schemaDef := doc.Definitions[0].(*ast.SchemaDefinition)
	assert.Equal(t, "Root", schemaDef.Desc)
	require.Len(t, schemaDef.OperationTypes, 2)
	assert.Equal(t, ast.Mutation, schemaDef.OperationTypes[1].Operation)
	assert.Equal(t, "Mutation", schemaDef.OperationTypes[1].Type.Name)

	ext := doc.Definitions[1].(*ast.SchemaExtension)
	assert.Empty(t, ext.OperationTypes)
	assert.NotNil(t, ext.Directives.Get("extra"))

	dir := doc.Definitions[3].(*ast.DirectiveDefinition)
	assert.True(t, dir.Repeatable)
	assert.Equal(t, "auth", dir.Name.Name)
	assert.Len(t, dir.Locations, 2)

	query := doc.Definitions[5].(*ast.ObjectTypeDefinition)
	assert.Len(t, query.Interfaces, 2)
	assert.Len(t, query.Fields, 1)

	queryExt := doc.Definitions[11].(*ast.Extension).Type.(*ast.ObjectTypeDefinition)
	assert.Nil(t, queryExt.Fields)
	assert.Equal(t, "Other", queryExt.Interfaces[0].Name)

	anon := doc.Definitions[18].(*ast.OperationDefinition)
	assert.Equal(t, ast.Query, anon.Type)
	assert.Empty(t, anon.Name.Name)
}

func typeName(def ast.Definition) string {
	switch def.(type) {
	case *ast.SchemaDefinition:
		return "schema"
	case *ast.SchemaExtension:
		return "extend schema"
	case *ast.DirectiveDefinition:
		return "directive"
	case *ast.OperationDefinition:
		return "operation"
	case *ast.FragmentDefinition:
		return "fragment"
	default:
		return "unknown"
	}
}

func TestParseDescriptions(t *testing.T) {
	tests := []struct {
		name                  string
		src                   string
		useStringDescriptions bool
		want                  string
	}{
		{
			name:                  "string description",
			src:                   `"A date" scalar Date`,
			useStringDescriptions: true,
			want:                  "A date",
		},
		{
			name:                  "block string description",
			src:                   "\"\"\"\n  A date\n\"\"\"\nscalar Date",
			useStringDescriptions: true,
			want:                  "A date",
		},
		{
			name: "comment description",
			src:  "# A date\nscalar Date",
			want: "A date",
		},
		{
			name:                  "comments ignored with string descriptions",
			src:                   "# A date\nscalar Date",
			useStringDescriptions: true,
			want:                  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := document.Parse(tt.src, tt.useStringDescriptions)
			require.Nil(t, err)
			require.Len(t, doc.Definitions, 1)
			assert.Equal(t, tt.want, doc.Definitions[0].(*ast.ScalarTypeDefinition).Desc)
		})
	}
}

func TestParseDescriptionDoesNotLeak(t *testing.T) {
	doc, err := document.Parse(`
		"Described"
		type A { a: Int }
		type B { b: Int }
	`, true)
	require.Nil(t, err)
	assert.Equal(t, "Described", doc.Definitions[0].(*ast.ObjectTypeDefinition).Desc)
	assert.Empty(t, doc.Definitions[1].(*ast.ObjectTypeDefinition).Desc)
}

func TestParseLocations(t *testing.T) {
	doc, err := document.Parse("scalar Date\n\n  type Query { hello: String }", true)
	require.Nil(t, err)

	assert.Equal(t, errors.Location{Line: 1, Column: 1}, doc.Definitions[0].Location())
	query := doc.Definitions[1].(*ast.ObjectTypeDefinition)
	assert.Equal(t, errors.Location{Line: 3, Column: 3}, query.Location())
	assert.Equal(t, errors.Location{Line: 3, Column: 8}, query.Name.Loc)
	assert.Equal(t, errors.Location{Line: 3, Column: 16}, query.Fields[0].Loc)
}

func TestParseSyntaxErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "unknown keyword",
			src:  "object Foo { a: Int }",
			want: `syntax error: unexpected "object", expecting "schema", "type", "enum", "interface", "union", "input", "scalar", "directive", "extend" or an operation`,
		},
		{
			name: "unknown extension",
			src:  "extend directive @a on FIELD",
			want: `syntax error: unexpected "directive", expecting "schema", "type", "enum", "interface", "union", "input" or "scalar"`,
		},
		{
			name: "unknown directive location",
			src:  "directive @a on FIELDS",
			want: `syntax error: unknown directive location "FIELDS"`,
		},
		{
			name: "reserved enum value",
			src:  "enum Bool { true false }",
			want: `syntax error: enum value "true" is reserved`,
		},
		{
			name: "empty input object",
			src:  "input Filter {}",
			want: `syntax error: input type "Filter" must define one or more fields`,
		},
		{
			name: "unknown root operation",
			src:  "schema { read: Query }",
			want: `syntax error: unexpected "read", expected "query", "mutation" or "subscription"`,
		},
		{
			name: "unterminated field list",
			src:  "type Query { hello: String",
			want: `syntax error: unexpected "", expecting Ident`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := document.Parse(tt.src, true)
			require.NotNil(t, err)
			assert.Nil(t, doc)
			assert.Equal(t, errors.RuleSyntaxError, err.Rule)
			assert.Equal(t, tt.want, err.Message)
			assert.Len(t, err.Locations, 1)
		})
	}
}

func TestParseEmptyDocument(t *testing.T) {
	doc, err := document.Parse("  # nothing here\n", false)
	require.Nil(t, err)
	assert.Empty(t, doc.Definitions)
}
