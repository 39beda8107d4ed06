/*
Package types holds the normalized schema model produced by analyzing a GraphQL document.

Named collections are keyed maps rather than lists: a Schema has at most one definition per
type name, one field per field name and so on. Values returned by the analyzer are never
modified after they are returned and may be shared between goroutines for reading.
*/
package types
