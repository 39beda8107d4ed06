package types

import (
	"encoding/json"
	"sort"

	"github.com/graph-gophers/graphql-sdl/ast"
	"github.com/graph-gophers/graphql-sdl/errors"
)

// Directive is a normalized directive application. Argument names are unique.
//
// http://spec.graphql.org/draft/#sec-Language.Directives
type Directive struct {
	Name      string               `json:"name"`
	Arguments map[string]*Argument `json:"arguments,omitempty"`
	Loc       errors.Location      `json:"-"`
}

// Argument is a single named argument of a directive application.
type Argument struct {
	Name  string    `json:"name"`
	Value ast.Value `json:"value"`
}

// DirectiveList is an ordered list of directive applications; names may repeat.
type DirectiveList []*Directive

// Get returns the first directive with the given name, or nil.
func (l DirectiveList) Get(name string) *Directive {
	for _, d := range l {
		if d.Name == name {
			return d
		}
	}
	return nil
}

// DirectiveLocation is a place in a document where a directive may be applied.
//
// http://spec.graphql.org/draft/#DirectiveLocations
type DirectiveLocation string

const (
	LocationQuery                DirectiveLocation = "QUERY"
	LocationMutation             DirectiveLocation = "MUTATION"
	LocationSubscription         DirectiveLocation = "SUBSCRIPTION"
	LocationField                DirectiveLocation = "FIELD"
	LocationFragmentDefinition   DirectiveLocation = "FRAGMENT_DEFINITION"
	LocationFragmentSpread       DirectiveLocation = "FRAGMENT_SPREAD"
	LocationInlineFragment       DirectiveLocation = "INLINE_FRAGMENT"
	LocationVariableDefinition   DirectiveLocation = "VARIABLE_DEFINITION"
	LocationSchema               DirectiveLocation = "SCHEMA"
	LocationScalar               DirectiveLocation = "SCALAR"
	LocationObject               DirectiveLocation = "OBJECT"
	LocationFieldDefinition      DirectiveLocation = "FIELD_DEFINITION"
	LocationArgumentDefinition   DirectiveLocation = "ARGUMENT_DEFINITION"
	LocationInterface            DirectiveLocation = "INTERFACE"
	LocationUnion                DirectiveLocation = "UNION"
	LocationEnum                 DirectiveLocation = "ENUM"
	LocationEnumValue            DirectiveLocation = "ENUM_VALUE"
	LocationInputObject          DirectiveLocation = "INPUT_OBJECT"
	LocationInputFieldDefinition DirectiveLocation = "INPUT_FIELD_DEFINITION"
)

var directiveLocations = map[DirectiveLocation]struct{}{
	LocationQuery: {}, LocationMutation: {}, LocationSubscription: {}, LocationField: {},
	LocationFragmentDefinition: {}, LocationFragmentSpread: {}, LocationInlineFragment: {},
	LocationVariableDefinition: {}, LocationSchema: {}, LocationScalar: {}, LocationObject: {},
	LocationFieldDefinition: {}, LocationArgumentDefinition: {}, LocationInterface: {},
	LocationUnion: {}, LocationEnum: {}, LocationEnumValue: {}, LocationInputObject: {},
	LocationInputFieldDefinition: {},
}

// IsDirectiveLocation reports whether name is one of the locations defined by GraphQL.
func IsDirectiveLocation(name string) bool {
	_, ok := directiveLocations[DirectiveLocation(name)]
	return ok
}

// DirectiveLocationSet is an unordered set of directive locations.
type DirectiveLocationSet map[DirectiveLocation]struct{}

// Has reports whether loc is in the set.
func (s DirectiveLocationSet) Has(loc DirectiveLocation) bool {
	_, ok := s[loc]
	return ok
}

// Sorted returns the locations in lexical order.
func (s DirectiveLocationSet) Sorted() []DirectiveLocation {
	locs := make([]DirectiveLocation, 0, len(s))
	for loc := range s {
		locs = append(locs, loc)
	}
	sort.Slice(locs, func(i, j int) bool { return locs[i] < locs[j] })
	return locs
}

func (s DirectiveLocationSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}
