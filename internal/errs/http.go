package errs

import "strings"

// FieldError represents a field-level validation error.
//
//	{ "field": "title", "error": "is required" }
//
// Field errors are logged; the client only sees HTTPError.Message.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the error type handlers return for expected failures.
//
// It serializes to the public error body, {"message": "..."}; Code, Status
// and Errors stay server side for logging and status selection.
type HTTPError struct {
	Code    string       `json:"-"`
	Message string       `json:"message"`
	Status  int          `json:"-"`
	Errors  []FieldError `json:"-"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is an *HTTPError, regardless of its fields.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
