package validation

import (
	"fmt"
	"strconv"

	"github.com/deppfellow/blogful/internal/errs"
)

// ParseID parses a member route id. Anything but a positive integer is a
// 400 "invalid <noun> id".
func ParseID(raw, noun string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewBadRequestError(fmt.Sprintf("invalid %s id", noun), nil, []errs.FieldError{
			{Field: "id", Error: "must be a positive integer"},
		})
	}
	return id, nil
}

// HasText reports whether v points to a non-empty string.
func HasText(v *string) bool {
	return v != nil && *v != ""
}
