// Package sanitize neutralizes HTML before user input is stored.
package sanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips active content (script and style elements, event handler
// attributes, javascript: URLs) from user supplied strings. Basic formatting
// markup allowed in user generated content is kept.
//
// A Sanitizer is safe for concurrent use.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// New builds a Sanitizer around bluemonday's user generated content policy.
func New() *Sanitizer {
	return &Sanitizer{policy: bluemonday.UGCPolicy()}
}

// String returns the sanitized form of v.
func (s *Sanitizer) String(v string) string {
	return s.policy.Sanitize(v)
}

// StringPtr sanitizes the value behind v. A nil pointer stays nil.
func (s *Sanitizer) StringPtr(v *string) *string {
	if v == nil {
		return nil
	}
	clean := s.String(*v)
	return &clean
}

// Sanitizable is implemented by request payloads carrying free text.
type Sanitizable interface {
	Sanitize(s *Sanitizer)
}
