package common

import "github.com/graph-gophers/graphql-sdl/errors"

// InsertUnique stores v under key unless key is already present, in which case m is left
// untouched and the error built by dup from the previous value is returned. Every named
// collection of the schema model is populated through it.
func InsertUnique[K comparable, V any](m map[K]V, key K, v V, dup func(prev V) *errors.QueryError) *errors.QueryError {
	if prev, ok := m[key]; ok {
		return dup(prev)
	}
	m[key] = v
	return nil
}
