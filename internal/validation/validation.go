// Package validation contains the logic for validating request data.
//
// It uses the `validator` library to enforce rules defined in struct tags
// and turns the first failure into the client facing message.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/blogful/internal/errs"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Typical pattern:
//   - declare the allowed fields with `json` and `validate` tags
//   - implement Validate() error, calling Struct for the tag rules
//   - return an *errs.HTTPError directly for rules tags cannot express
type Validatable interface {
	Validate() error
}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name, the one clients sent.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Struct runs the struct tag rules on payload. The first failure comes
// back as a 400 *errs.HTTPError.
func Struct(payload any) error {
	if err := validate.Struct(payload); err != nil {
		return toHTTPError(err)
	}
	return nil
}

// Bind decodes the request body into payload.
//
// Keys the payload does not declare are dropped by the JSON decoder, which
// is what keeps clients from writing columns like "id".
func Bind(c echo.Context, payload any) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError("invalid request body", nil, []errs.FieldError{
			{Field: "body", Error: err.Error()},
		})
	}
	return nil
}

// Validate runs payload's own rules and returns any failure as a 400
// *errs.HTTPError.
func Validate(payload Validatable) error {
	if err := payload.Validate(); err != nil {
		return toHTTPError(err)
	}
	return nil
}

// BindAndValidate binds the request body into payload and validates it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := Bind(c, payload); err != nil {
		return err
	}
	return Validate(payload)
}

func toHTTPError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return errs.ValidationError(err)
	}

	fieldErrors := make([]errs.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: fe.Field(),
			Error: describe(fe),
		})
	}

	// Only the first failure is reported to the client.
	return errs.NewBadRequestError(message(validationErrors[0]), nil, fieldErrors)
}

func message(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		return fmt.Sprintf("Missing '%s' in request body", fe.Field())
	}
	return fmt.Sprintf("Invalid '%s' in request body", fe.Field())
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s:%s", fe.Tag(), fe.Param())
		}
		return fe.Tag()
	}
}
