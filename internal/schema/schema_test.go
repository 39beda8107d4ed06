package schema_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/graph-gophers/graphql-sdl/ast"
	"github.com/graph-gophers/graphql-sdl/errors"
	"github.com/graph-gophers/graphql-sdl/internal/document"
	"github.com/graph-gophers/graphql-sdl/internal/schema"
	"github.com/graph-gophers/graphql-sdl/types"
)

func analyze(t *testing.T, sdl string) (*types.Schema, *errors.QueryError) {
	t.Helper()
	doc, err := document.Parse(sdl, true)
	require.Nil(t, err, "parse: %v", err)
	return schema.Analyze(doc)
}

func mustAnalyze(t *testing.T, sdl string) *types.Schema {
	t.Helper()
	s, err := analyze(t, sdl)
	require.Nil(t, err, "analyze: %v", err)
	require.NotNil(t, s)
	return s
}

type errorCase struct {
	Description string `yaml:"description"`
	SDL         string `yaml:"sdl"`
	Rule        string `yaml:"rule"`
	Message     string `yaml:"message"`
}

func TestAnalyzeErrors(t *testing.T) {
	raw, err := os.ReadFile("testdata/errors.yaml")
	require.NoError(t, err)

	var cases []errorCase
	require.NoError(t, yaml.Unmarshal(raw, &cases))
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(tc.Description, func(t *testing.T) {
			s, err := analyze(t, tc.SDL)
			require.NotNil(t, err, "expected %s", tc.Rule)
			assert.Nil(t, s)
			assert.Equal(t, tc.Rule, err.Rule)
			assert.Equal(t, tc.Message, err.Message)
		})
	}
}

func TestAnalyzeMinimalSchema(t *testing.T) {
	s := mustAnalyze(t, `
		schema { query: Query }
		type Query { hello: String }
	`)

	assert.Equal(t, map[ast.OperationType]string{ast.Query: "Query"}, s.RootOperationTypes)
	assert.Empty(t, s.DirectiveDefinitions)
	require.Len(t, s.Types, 1)

	query, ok := s.Types["Query"].(*types.ObjectTypeDefinition)
	require.True(t, ok, "Query is %T", s.Types["Query"])
	assert.Equal(t, types.KindObject, query.Kind())
	require.Contains(t, query.Fields, "hello")
	assert.Equal(t, "String", query.Fields["hello"].Type.String())
	assert.Empty(t, query.Fields["hello"].Arguments)

	root, ok := s.RootOperationType(ast.Query)
	require.True(t, ok)
	assert.Same(t, s.Types["Query"], root)

	_, ok = s.RootOperationType(ast.Mutation)
	assert.False(t, ok)
}

func TestAnalyzeAllKinds(t *testing.T) {
	s := mustAnalyze(t, `
		"The schema"
		schema @link(url: "https://example.com") {
			query: Query
			mutation: Mutation
		}

		"Timestamps"
		scalar Date @specifiedBy(url: "https://tools.ietf.org/html/rfc3339")

		interface Node { id: ID! }

		type Query implements Node {
			id: ID!
			user(id: ID!, active: Boolean = true @deprecated): User
		}

		type Mutation { noop: Boolean }

		type User implements Node & Entity @key(fields: "id") {
			id: ID!
			friends(first: Int = 10, after: String): [User!]!
		}

		union SearchResult = | User | Query

		enum Color { RED GREEN @deprecated(reason: "use BLUE") BLUE }

		input Filter {
			color: Color = RED
			tags: [String!] = ["a", "b"]
			range: Range = {min: 1, max: 2}
		}

		directive @auth(role: String = "admin") repeatable on FIELD_DEFINITION | OBJECT
	`)

	assert.Equal(t, "The schema", s.Desc)
	require.Len(t, s.Directives, 1)
	assert.Equal(t, "link", s.Directives[0].Name)
	assert.Equal(t, `"https://example.com"`, s.Directives[0].Arguments["url"].Value.String())

	kinds := make(map[string]types.TypeKind, len(s.Types))
	for name, typ := range s.Types {
		assert.Equal(t, name, typ.TypeName())
		kinds[name] = typ.Kind()
	}
	assert.Equal(t, map[string]types.TypeKind{
		"Date":         types.KindScalar,
		"Node":         types.KindInterface,
		"Query":        types.KindObject,
		"Mutation":     types.KindObject,
		"User":         types.KindObject,
		"SearchResult": types.KindUnion,
		"Color":        types.KindEnum,
		"Filter":       types.KindInputObject,
	}, kinds)

	date := s.Types["Date"].(*types.ScalarTypeDefinition)
	assert.Equal(t, "Timestamps", date.Desc)
	assert.NotNil(t, date.Directives.Get("specifiedBy"))

	query := s.Types["Query"].(*types.ObjectTypeDefinition)
	user := query.Fields["user"]
	require.Len(t, user.Arguments, 2)
	assert.Equal(t, "ID!", user.Arguments["id"].Type.String())
	assert.Nil(t, user.Arguments["id"].Default)
	assert.Equal(t, "true", user.Arguments["active"].Default.String())
	assert.NotNil(t, user.Arguments["active"].Directives.Get("deprecated"))

	u := s.Types["User"].(*types.ObjectTypeDefinition)
	assert.Equal(t, []string{"Node", "Entity"}, u.Interfaces)
	assert.Equal(t, "[User!]!", u.Fields["friends"].Type.String())
	assert.Equal(t, "10", u.Fields["friends"].Arguments["first"].Default.String())

	union := s.Types["SearchResult"].(*types.Union)
	assert.Equal(t, []string{"User", "Query"}, union.MemberTypes)

	color := s.Types["Color"].(*types.EnumTypeDefinition)
	assert.Len(t, color.Values, 3)
	assert.NotNil(t, color.Values["GREEN"].Directives.Get("deprecated"))

	filter := s.Types["Filter"].(*types.InputObject)
	assert.Equal(t, "RED", filter.Fields["color"].Default.String())
	assert.Equal(t, `["a", "b"]`, filter.Fields["tags"].Default.String())
	assert.Equal(t, "{min: 1, max: 2}", filter.Fields["range"].Default.String())

	auth := s.DirectiveDefinitions["auth"]
	require.NotNil(t, auth)
	assert.True(t, auth.Repeatable)
	assert.True(t, auth.Locations.Has(types.LocationFieldDefinition))
	assert.True(t, auth.Locations.Has(types.LocationObject))
	assert.False(t, auth.Locations.Has(types.LocationQuery))
	assert.Equal(t, `"admin"`, auth.Arguments["role"].Default.String())
}

func TestAnalyzeUnresolvedReferences(t *testing.T) {
	// Names are recorded as written; nothing requires them to be defined.
	s := mustAnalyze(t, `
		schema { query: Missing subscription: Events }
		type Foo implements Unknown { bar: Baz }
		union U = X | Y
	`)

	assert.Equal(t, "Missing", s.RootOperationTypes[ast.Query])
	assert.Equal(t, "Events", s.RootOperationTypes[ast.Subscription])
	_, ok := s.RootOperationType(ast.Query)
	assert.False(t, ok)
	assert.Equal(t, []string{"Unknown"}, s.Types["Foo"].(*types.ObjectTypeDefinition).Interfaces)
}

func TestAnalyzeEnumValuesAreCaseSensitive(t *testing.T) {
	s := mustAnalyze(t, `
		schema { query: Query }
		enum Color { red RED Red }
	`)
	assert.Len(t, s.Types["Color"].(*types.EnumTypeDefinition).Values, 3)
}

func TestAnalyzeRepeatedDirectiveApplications(t *testing.T) {
	s := mustAnalyze(t, `
		schema { query: Query }
		type Query @tag(name: "a") @tag(name: "b") { hello: String }
	`)

	directives := s.Types["Query"].TypeDirectives()
	require.Len(t, directives, 2)
	assert.Equal(t, `"a"`, directives[0].Arguments["name"].Value.String())
	assert.Equal(t, `"b"`, directives[1].Arguments["name"].Value.String())
}

func TestAnalyzeObjectExtensions(t *testing.T) {
	s := mustAnalyze(t, `
		schema { query: Query }
		type Query implements A @one { a: Int }
		extend type Query implements B @two { b: Int }
		extend type Query implements C & D
		extend type Query @three
		extend type Query { c(x: Int): Int }
	`)

	query := s.Types["Query"].(*types.ObjectTypeDefinition)
	assert.Equal(t, []string{"A", "B", "C", "D"}, query.Interfaces)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, keys(query.Fields))
	assert.Contains(t, query.Fields["c"].Arguments, "x")

	var names []string
	for _, d := range query.Directives {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"one", "two", "three"}, names)
}

func TestAnalyzeExtensionsOfEveryKind(t *testing.T) {
	s := mustAnalyze(t, `
		schema { query: Query }
		type Query { a: Int }

		scalar Date
		extend scalar Date @format(as: "iso")

		interface Node { id: ID }
		extend interface Node implements Entity { name: String }

		union Result = A
		extend union Result @tag = B | C

		enum Color { RED }
		extend enum Color { GREEN BLUE }

		input Filter { a: Int }
		extend input Filter @tag { b: String }
	`)

	assert.NotNil(t, s.Types["Date"].TypeDirectives().Get("format"))

	node := s.Types["Node"].(*types.InterfaceTypeDefinition)
	assert.Equal(t, []string{"Entity"}, node.Interfaces)
	assert.ElementsMatch(t, []string{"id", "name"}, keys(node.Fields))

	result := s.Types["Result"].(*types.Union)
	assert.Equal(t, []string{"A", "B", "C"}, result.MemberTypes)
	assert.NotNil(t, result.Directives.Get("tag"))

	color := s.Types["Color"].(*types.EnumTypeDefinition)
	assert.ElementsMatch(t, []string{"RED", "GREEN", "BLUE"}, keys(color.Values))

	filter := s.Types["Filter"].(*types.InputObject)
	assert.ElementsMatch(t, []string{"a", "b"}, keys(filter.Fields))
	assert.NotNil(t, filter.Directives.Get("tag"))
}

func TestAnalyzeDisjointExtensionsCommute(t *testing.T) {
	const base = `
		schema { query: Query }
		type Query { a: Int }
	`
	first := "extend type Query { b: Int }\n"
	second := "extend type Query { c: String }\n"

	s1 := mustAnalyze(t, base+first+second)
	s2 := mustAnalyze(t, base+second+first)

	f1 := s1.Types["Query"].(*types.ObjectTypeDefinition).Fields
	f2 := s2.Types["Query"].(*types.ObjectTypeDefinition).Fields
	assert.ElementsMatch(t, keys(f1), keys(f2))
	for name, f := range f1 {
		assert.Equal(t, f.Type.String(), f2[name].Type.String())
	}
}

func TestAnalyzeOverlappingExtensionsFailInEitherOrder(t *testing.T) {
	const base = `
schema { query: Query }
type Query { a: Int }
`
	first := "extend type Query { b: Int }\n"
	second := "extend type Query { b: String }\n"

	for _, sdl := range []string{base + first + second, base + second + first} {
		_, err := analyze(t, sdl)
		require.NotNil(t, err)
		assert.Equal(t, errors.RuleDuplicateFieldDefinition, err.Rule)
		assert.Equal(t, []errors.Location{{Line: 4, Column: 21}, {Line: 5, Column: 21}}, err.Locations)
	}
}

func TestAnalyzeSchemaExtensionBeforeDefinition(t *testing.T) {
	s := mustAnalyze(t, `
		extend schema @first { mutation: Mutation }
		"Described"
		schema @second { query: Query }
		extend schema { subscription: Subscription }
	`)

	assert.Equal(t, "Described", s.Desc)
	assert.Equal(t, map[ast.OperationType]string{
		ast.Query:        "Query",
		ast.Mutation:     "Mutation",
		ast.Subscription: "Subscription",
	}, s.RootOperationTypes)
	require.Len(t, s.Directives, 2)
	assert.Equal(t, "first", s.Directives[0].Name)
	assert.Equal(t, "second", s.Directives[1].Name)
}

func TestAnalyzeFirstViolationWins(t *testing.T) {
	_, err := analyze(t, `
		type Query { a: Int a: Int }
		type Query { b: Int }
	`)
	require.NotNil(t, err)
	assert.Equal(t, errors.RuleDuplicateFieldDefinition, err.Rule)
}

func TestAnalyzeErrorLocations(t *testing.T) {
	tests := []struct {
		name string
		sdl  string
		want []errors.Location
	}{
		{
			name: "duplicate type points at both definitions",
			sdl:  "schema { query: Query }\ntype Query { a: Int }\nscalar Query",
			want: []errors.Location{{Line: 2, Column: 1}, {Line: 3, Column: 1}},
		},
		{
			name: "duplicate schema points at both definitions",
			sdl:  "schema { query: Query }\nschema { query: Query }",
			want: []errors.Location{{Line: 1, Column: 1}, {Line: 2, Column: 1}},
		},
		{
			name: "extension before definition points at the extension",
			sdl:  "\nextend scalar Foo",
			want: []errors.Location{{Line: 2, Column: 1}},
		},
		{
			name: "duplicate union member points at the repeat",
			sdl:  "union U = A | B | A",
			want: []errors.Location{{Line: 1, Column: 19}},
		},
		{
			name: "kind mismatch points at definition and extension",
			sdl:  "scalar Foo\nextend enum Foo { A }",
			want: []errors.Location{{Line: 1, Column: 1}, {Line: 2, Column: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := analyze(t, tt.sdl)
			require.NotNil(t, err)
			assert.Equal(t, tt.want, err.Locations)
		})
	}
}

func TestAnalyzeHandBuiltDocument(t *testing.T) {
	doc := &ast.Document{Definitions: []ast.Definition{
		&ast.ObjectTypeDefinition{Name: ast.Ident{Name: "Query"}},
		&ast.Extension{Type: &ast.ObjectTypeDefinition{
			Name: ast.Ident{Name: "Query"},
			Fields: ast.FieldsDefinition{
				{Name: ast.Ident{Name: "hello"}, Type: &ast.TypeName{Ident: ast.Ident{Name: "String"}}},
			},
		}},
		&ast.SchemaDefinition{OperationTypes: []*ast.RootOperationTypeDefinition{
			{Operation: ast.Query, Type: ast.Ident{Name: "Query"}},
		}},
	}}

	s, err := schema.Analyze(doc)
	require.Nil(t, err)
	query := s.Types["Query"].(*types.ObjectTypeDefinition)
	assert.Contains(t, query.Fields, "hello")
	assert.Equal(t, "Query", s.RootOperationTypes[ast.Query])

	doc.Definitions = append(doc.Definitions, &ast.ScalarTypeDefinition{Name: ast.Ident{Name: "Query"}})
	_, err = schema.Analyze(doc)
	require.NotNil(t, err)
	assert.Equal(t, errors.RuleDuplicateTypeDefinition, err.Rule)
	assert.Empty(t, err.Locations)
}

func TestAnalyzeObjectWithoutFields(t *testing.T) {
	s := mustAnalyze(t, `
		schema { query: Query }
		type Query
	`)
	query := s.Types["Query"].(*types.ObjectTypeDefinition)
	assert.NotNil(t, query.Fields)
	assert.Empty(t, query.Fields)
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
