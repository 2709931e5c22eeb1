package studio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/BaSui01/creatorstudio/llm"
	"github.com/BaSui01/creatorstudio/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToServiceError(t *testing.T) {
	assert.Nil(t, toServiceError(nil))

	existing := types.NewError(types.ErrMalformedOutput, "bad")
	assert.Same(t, existing, toServiceError(fmt.Errorf("wrapped: %w", existing)))

	for llmCode, want := range providerCodes {
		e := toServiceError(&llm.Error{Code: llmCode, Message: "x", HTTPStatus: 418, Provider: "gemini"})
		require.NotNil(t, e)
		assert.Equal(t, want, e.Code, llmCode)
		assert.Equal(t, 418, e.HTTPStatus)
		assert.Equal(t, "gemini", e.Provider)
	}

	e := toServiceError(fmt.Errorf("call: %w", context.DeadlineExceeded))
	assert.Equal(t, types.ErrUpstreamTimeout, e.Code)
	assert.Equal(t, http.StatusGatewayTimeout, e.HTTPStatus)
	assert.True(t, e.Retryable)

	e = toServiceError(errors.New("boom"))
	assert.Equal(t, types.ErrInternalError, e.Code)
	assert.Equal(t, http.StatusInternalServerError, e.HTTPStatus)
}

func TestInvalidInputAndMalformedOutput(t *testing.T) {
	e := invalidInput("niche")
	assert.Equal(t, "niche must not be blank", e.Message)
	assert.Equal(t, http.StatusBadRequest, e.HTTPStatus)

	cause := errors.New("unexpected end of JSON input")
	e = malformedOutput(OpScript, "gemini", cause)
	assert.Equal(t, types.ErrMalformedOutput, e.Code)
	assert.Equal(t, "model returned malformed script output", e.Message)
	assert.ErrorIs(t, e, cause)
}
