package ast

// Type is a reference to a named type, possibly wrapped in List and NonNull. The analyzer
// carries types through as written; it never resolves them.
//
// http://spec.graphql.org/draft/#sec-Type-References
type Type interface {
	String() string
	isType()
}

// TypeName is a named type reference such as `String`.
type TypeName struct {
	Ident
}

// List wraps another type, e.g. `[String]`.
//
// http://spec.graphql.org/draft/#sec-List
type List struct {
	OfType Type
}

// NonNull wraps another type, e.g. `String!`.
//
// http://spec.graphql.org/draft/#sec-Non-Null
type NonNull struct {
	OfType Type
}

func (*TypeName) isType() {}
func (*List) isType()     {}
func (*NonNull) isType()  {}

func (t *TypeName) String() string { return t.Name }
func (t *List) String() string     { return "[" + t.OfType.String() + "]" }
func (t *NonNull) String() string  { return t.OfType.String() + "!" }

// MarshalText renders type references in their SDL form when encoded as JSON.
func (t *TypeName) MarshalText() ([]byte, error) { return []byte(t.String()), nil }
func (t *List) MarshalText() ([]byte, error)     { return []byte(t.String()), nil }
func (t *NonNull) MarshalText() ([]byte, error)  { return []byte(t.String()), nil }
