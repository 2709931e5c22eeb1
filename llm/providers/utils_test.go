package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/BaSui01/creatorstudio/llm"
	"github.com/stretchr/testify/assert"
)

// TestChooseModel_Priority 测试模型选择优先级：请求 > 配置 > 默认
func TestChooseModel_Priority(t *testing.T) {
	tests := []struct {
		name          string
		req           *llm.ChatRequest
		configModel   string
		defaultModel  string
		expectedModel string
	}{
		{
			name:          "Request model takes priority",
			req:           &llm.ChatRequest{Model: "request-model"},
			configModel:   "config-model",
			defaultModel:  "default-model",
			expectedModel: "request-model",
		},
		{
			name:          "Config model when request is empty",
			req:           &llm.ChatRequest{},
			configModel:   "config-model",
			defaultModel:  "default-model",
			expectedModel: "config-model",
		},
		{
			name:          "Default model when request is nil",
			req:           nil,
			defaultModel:  "default-model",
			expectedModel: "default-model",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedModel, ChooseModel(tt.req, tt.configModel, tt.defaultModel))
		})
	}
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status    int
		msg       string
		code      llm.ErrorCode
		retryable bool
	}{
		{http.StatusUnauthorized, "bad key", llm.ErrUnauthorized, false},
		{http.StatusForbidden, "denied", llm.ErrForbidden, false},
		{http.StatusTooManyRequests, "slow down", llm.ErrRateLimited, true},
		{http.StatusTooManyRequests, "Quota exceeded for metric", llm.ErrQuotaExceeded, false},
		{http.StatusBadRequest, "API key not valid. Please pass a valid API key.", llm.ErrUnauthorized, false},
		{http.StatusBadRequest, "invalid schema", llm.ErrInvalidRequest, false},
		{http.StatusNotFound, "model not found", llm.ErrProviderUnavailable, false},
		{http.StatusGatewayTimeout, "deadline", llm.ErrUpstreamTimeout, true},
		{http.StatusServiceUnavailable, "overloaded", llm.ErrModelOverloaded, true},
		{http.StatusBadGateway, "bad gateway", llm.ErrUpstreamError, true},
		{http.StatusInternalServerError, "boom", llm.ErrUpstreamError, true},
		{418, "teapot", llm.ErrUpstreamError, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_%s", tt.status, tt.msg), func(t *testing.T) {
			e := MapHTTPError(tt.status, tt.msg, "gemini")
			assert.Equal(t, tt.code, e.Code)
			assert.Equal(t, tt.retryable, e.Retryable)
			assert.Equal(t, "gemini", e.Provider)
			assert.Equal(t, tt.msg, e.Message)
		})
	}
}

func TestMapHTTPError_InvalidKeyRemapsStatus(t *testing.T) {
	e := MapHTTPError(http.StatusBadRequest, "API_KEY_INVALID", "gemini")
	assert.Equal(t, http.StatusUnauthorized, e.HTTPStatus)
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestMapTransportError(t *testing.T) {
	e := MapTransportError(fmt.Errorf("post: %w", context.DeadlineExceeded), "gemini")
	assert.Equal(t, llm.ErrUpstreamTimeout, e.Code)
	assert.Equal(t, http.StatusGatewayTimeout, e.HTTPStatus)
	assert.ErrorIs(t, e, context.DeadlineExceeded)

	e = MapTransportError(timeoutErr{}, "gemini")
	assert.Equal(t, llm.ErrUpstreamTimeout, e.Code)

	e = MapTransportError(errors.New("connection refused"), "gemini")
	assert.Equal(t, llm.ErrUpstreamError, e.Code)
	assert.Equal(t, http.StatusBadGateway, e.HTTPStatus)
	assert.True(t, e.Retryable)
}

func TestReadErrorMessage(t *testing.T) {
	msg := ReadErrorMessage(strings.NewReader(`{"error":{"code":400,"message":"Invalid JSON payload","status":"INVALID_ARGUMENT"}}`))
	assert.Equal(t, "Invalid JSON payload (status: INVALID_ARGUMENT)", msg)

	msg = ReadErrorMessage(strings.NewReader(`{"error":{"message":"nope","type":"auth"}}`))
	assert.Equal(t, "nope (type: auth)", msg)

	msg = ReadErrorMessage(strings.NewReader(`{"error":{"message":"plain"}}`))
	assert.Equal(t, "plain", msg)

	msg = ReadErrorMessage(strings.NewReader("upstream exploded\n"))
	assert.Equal(t, "upstream exploded", msg)
}
