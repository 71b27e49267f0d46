package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPError_JSONBody(t *testing.T) {
	err := NewNotFoundError("article not found", nil)

	body, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)

	assert.JSONEq(t, `{"message":"article not found"}`, string(body))
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Equal(t, "NOT_FOUND", err.Code)
}

func TestHTTPError_Is(t *testing.T) {
	wrapped := fmt.Errorf("loading: %w", NewBadRequestError("bad", nil, nil))

	assert.True(t, errors.Is(wrapped, &HTTPError{}))
	assert.False(t, errors.Is(errors.New("plain"), &HTTPError{}))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestNewBadRequestError_CustomCode(t *testing.T) {
	code := "ARTICLE_INVALID"
	err := NewBadRequestError("invalid", &code, []FieldError{{Field: "title", Error: "is required"}})

	assert.Equal(t, "ARTICLE_INVALID", err.Code)
	assert.Len(t, err.Errors, 1)
}

func TestNewInternalServerError(t *testing.T) {
	err := NewInternalServerError()

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, "Internal Server Error", err.Message)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", err.Code)
}
