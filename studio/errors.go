package studio

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/BaSui01/creatorstudio/llm"
	"github.com/BaSui01/creatorstudio/types"
)

// providerCodes 将 Provider 错误码映射为服务错误码
var providerCodes = map[llm.ErrorCode]types.ErrorCode{
	llm.ErrInvalidRequest:      types.ErrInvalidRequest,
	llm.ErrUnauthorized:        types.ErrUnauthorized,
	llm.ErrForbidden:           types.ErrForbidden,
	llm.ErrRateLimited:         types.ErrRateLimited,
	llm.ErrQuotaExceeded:       types.ErrQuotaExceeded,
	llm.ErrContentFiltered:     types.ErrContentFiltered,
	llm.ErrModelOverloaded:     types.ErrModelOverloaded,
	llm.ErrUpstreamTimeout:     types.ErrUpstreamTimeout,
	llm.ErrUpstreamError:       types.ErrUpstreamError,
	llm.ErrProviderUnavailable: types.ErrProviderUnavailable,
}

// toServiceError 将任意生成错误转换为 *types.Error，保留 HTTP 状态、Retryable 与 Provider
func toServiceError(err error) *types.Error {
	if err == nil {
		return nil
	}
	if e, ok := types.AsError(err); ok {
		return e
	}
	if le, ok := llm.AsError(err); ok {
		code, known := providerCodes[le.Code]
		if !known {
			code = types.ErrUpstreamError
		}
		status := le.HTTPStatus
		if status == 0 {
			status = http.StatusBadGateway
		}
		return types.NewError(code, le.Message).
			WithHTTPStatus(status).
			WithRetryable(le.Retryable).
			WithProvider(le.Provider).
			WithCause(err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return types.NewError(types.ErrUpstreamTimeout, "generation timed out").
			WithHTTPStatus(http.StatusGatewayTimeout).
			WithRetryable(true).
			WithCause(err)
	}
	return types.NewError(types.ErrInternalError, "generation failed").
		WithHTTPStatus(http.StatusInternalServerError).
		WithCause(err)
}

func invalidInput(field string) *types.Error {
	return types.NewError(types.ErrInvalidRequest, field+" must not be blank").
		WithHTTPStatus(http.StatusBadRequest)
}

func malformedOutput(op Operation, provider string, cause error) *types.Error {
	return types.NewError(types.ErrMalformedOutput, "model returned malformed "+string(op)+" output").
		WithHTTPStatus(http.StatusBadGateway).
		WithProvider(provider).
		WithCause(cause)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
