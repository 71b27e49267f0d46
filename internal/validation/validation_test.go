package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/blogful/internal/errs"
)

type notePayload struct {
	Text   *string `json:"text" validate:"required"`
	Author *int64  `json:"author_id" validate:"required"`
	Mood   *string `json:"mood" validate:"omitempty,min=3"`
}

func (p *notePayload) Validate() error {
	return Struct(p)
}

type vetoPayload struct {
	Text *string `json:"text"`
}

func (p *vetoPayload) Validate() error {
	if !HasText(p.Text) {
		return errs.NewBadRequestError("text please", nil, nil)
	}
	return nil
}

func newContext(body string) echo.Context {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func requireHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestBindAndValidate_OK(t *testing.T) {
	payload := &notePayload{}

	err := BindAndValidate(newContext(`{"text":"hi","author_id":3,"fakeField":"x"}`), payload)
	require.NoError(t, err)

	assert.Equal(t, "hi", *payload.Text)
	assert.Equal(t, int64(3), *payload.Author)
}

func TestBindAndValidate_MissingFieldUsesJSONName(t *testing.T) {
	err := BindAndValidate(newContext(`{"text":"hi"}`), &notePayload{})

	httpErr := requireHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Missing 'author_id' in request body", httpErr.Message)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "author_id", httpErr.Errors[0].Field)
}

func TestBindAndValidate_FirstMissingFieldReported(t *testing.T) {
	err := BindAndValidate(newContext(`{}`), &notePayload{})

	httpErr := requireHTTPError(t, err)
	assert.Equal(t, "Missing 'text' in request body", httpErr.Message)
	assert.Len(t, httpErr.Errors, 2)
}

func TestBindAndValidate_OtherRule(t *testing.T) {
	err := BindAndValidate(newContext(`{"text":"hi","author_id":1,"mood":"ok"}`), &notePayload{})

	httpErr := requireHTTPError(t, err)
	assert.Equal(t, "Invalid 'mood' in request body", httpErr.Message)
	assert.Equal(t, "must be at least 3 characters", httpErr.Errors[0].Error)
}

func TestBindAndValidate_CustomHTTPErrorPassesThrough(t *testing.T) {
	err := BindAndValidate(newContext(`{"text":""}`), &vetoPayload{})

	httpErr := requireHTTPError(t, err)
	assert.Equal(t, "text please", httpErr.Message)
}

func TestBindAndValidate_MalformedBody(t *testing.T) {
	err := BindAndValidate(newContext(`{"text":`), &notePayload{})

	httpErr := requireHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "invalid request body", httpErr.Message)
}

func TestStruct_ReturnsHTTPError(t *testing.T) {
	httpErr := requireHTTPError(t, Struct(&notePayload{Text: ptrTo("hi")}))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Missing 'author_id' in request body", httpErr.Message)

	author := int64(1)
	assert.NoError(t, Struct(&notePayload{Text: ptrTo("hi"), Author: &author}))
}

func ptrTo(s string) *string { return &s }

func TestParseID(t *testing.T) {
	id, err := ParseID("42", "article")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"abc", "0", "-3", "1.5", ""} {
		_, err := ParseID(raw, "article")
		httpErr := requireHTTPError(t, err)
		assert.Equal(t, "invalid article id", httpErr.Message, raw)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status, raw)
	}
}
