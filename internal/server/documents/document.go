// Package documents implements the schemaless document store behind the
// SnapfeedService API: point lookups, merge/replace writes, collection
// listing with an optional field-equals filter, and change notification
// for live Watch streams.
package documents

import "encoding/json"

// Document is one stored document. Fields is a JSON object; the store does
// not interpret it beyond filter evaluation.
type Document struct {
	ID     string
	Fields json.RawMessage
}

// Filter is an optional field-equals predicate. The zero value matches
// every document of the collection.
type Filter struct {
	Field string
	Value string
}

// IsZero reports whether the filter matches everything.
func (f Filter) IsZero() bool {
	return f.Field == ""
}
