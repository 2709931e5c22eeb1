package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_ChainingAndHelpers(t *testing.T) {
	t.Parallel()

	root := errors.New("root")
	err := NewError(ErrUpstreamError, "upstream failed").
		WithCause(root).
		WithHTTPStatus(502).
		WithRetryable(true).
		WithProvider("gemini")

	assert.Equal(t, ErrUpstreamError, GetErrorCode(err))
	assert.True(t, IsRetryable(err))
	assert.True(t, errors.Is(err, root))
	assert.Equal(t, "[UPSTREAM_ERROR] upstream failed: root", err.Error())
	assert.Equal(t, "gemini", err.Provider)
}

func TestError_WithoutCause(t *testing.T) {
	t.Parallel()

	err := NewError(ErrInvalidRequest, "niche is required")
	assert.Equal(t, "[INVALID_REQUEST] niche is required", err.Error())
	assert.Nil(t, err.Unwrap())
	assert.False(t, IsRetryable(err))
}

func TestAsError_Wrapped(t *testing.T) {
	t.Parallel()

	inner := NewError(ErrMalformedOutput, "bad json")
	wrapped := fmt.Errorf("generate ideas: %w", inner)

	got, ok := AsError(wrapped)
	require.True(t, ok)
	assert.Same(t, inner, got)
	assert.True(t, IsErrorCode(wrapped, ErrMalformedOutput))
}

func TestAsError_PlainError(t *testing.T) {
	t.Parallel()

	_, ok := AsError(errors.New("plain"))
	assert.False(t, ok)
	assert.Equal(t, ErrorCode(""), GetErrorCode(errors.New("plain")))
	assert.False(t, IsRetryable(nil))
}
