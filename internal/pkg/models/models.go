// Package models holds the in-memory shapes of the Insurance schema
// entities. Every entity is a plain value constructed once with all of its
// fields and projected for persistence through ToRow, a pure read-only
// conversion to a column-name-keyed map. Structured plan sub-fields are
// JSON-encoded at projection time because the live schema stores them in
// NVARCHAR(MAX) columns rather than child tables.
package models

import (
	"time"

	"github.com/goccy/go-json"
)

func dateOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

// jsonText encodes v for a text column. Content that cannot be encoded is
// a construction error on the caller's side and projects as NULL.
func jsonText(v any) any {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return string(b)
}
