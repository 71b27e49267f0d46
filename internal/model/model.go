// Package model holds the stored resources and the request payloads that
// create and update them.
//
// Payloads only declare the fields a client may write. Each one knows how
// to validate itself, sanitize its free text and list the columns it sets.
package model

import (
	"github.com/deppfellow/blogful/internal/sanitize"
	"github.com/deppfellow/blogful/internal/validation"
)

// Entity is a stored row addressed by its primary key.
type Entity interface {
	GetID() int64
}

// Payload is a validated, sanitizable request body that maps to columns.
type Payload interface {
	validation.Validatable
	sanitize.Sanitizable
	Columns() map[string]any
}

// setValue records a column when the client sent it.
func setValue[T any](cols map[string]any, name string, v *T) {
	if v != nil {
		cols[name] = *v
	}
}
