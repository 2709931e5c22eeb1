package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/BaSui01/creatorstudio/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSON(w, http.StatusCreated, map[string]string{"k": "v"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.JSONEq(t, `{"k":"v"}`, w.Body.String())
}

func TestWriteSuccess_IncludesRequestID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(types.WithRequestID(r.Context(), "req-123"))
	w := httptest.NewRecorder()

	WriteSuccess(w, r, map[string]int{"n": 1})

	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "req-123", resp.RequestID)
	assert.Nil(t, resp.Error)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestWriteError_UsesExplicitStatus(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	err := types.NewError(types.ErrRateLimited, "slow down").WithHTTPStatus(429).WithRetryable(true)

	WriteError(w, r, err, zap.NewNop())

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "RATE_LIMITED", resp.Error.Code)
	assert.Equal(t, "slow down", resp.Error.Message)
	assert.True(t, resp.Error.Retryable)
}

func TestWriteError_EnvelopeAlwaysHasRetryable(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, httptest.NewRequest(http.MethodGet, "/", nil), types.NewError(types.ErrInvalidRequest, "bad"), nil)

	var raw struct {
		Error map[string]any `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Contains(t, raw.Error, "retryable")
}

func TestMapErrorCodeToHTTPStatus(t *testing.T) {
	tests := []struct {
		code types.ErrorCode
		want int
	}{
		{types.ErrInvalidRequest, http.StatusBadRequest},
		{types.ErrUnauthorized, http.StatusUnauthorized},
		{types.ErrForbidden, http.StatusForbidden},
		{types.ErrNotFound, http.StatusNotFound},
		{types.ErrMethodNotAllow, http.StatusMethodNotAllowed},
		{types.ErrRateLimited, http.StatusTooManyRequests},
		{types.ErrQuotaExceeded, http.StatusTooManyRequests},
		{types.ErrContentFiltered, http.StatusBadRequest},
		{types.ErrUpstreamTimeout, http.StatusGatewayTimeout},
		{types.ErrModelOverloaded, http.StatusServiceUnavailable},
		{types.ErrProviderUnavailable, http.StatusServiceUnavailable},
		{types.ErrServiceUnavailable, http.StatusServiceUnavailable},
		{types.ErrUpstreamError, http.StatusBadGateway},
		{types.ErrMalformedOutput, http.StatusBadGateway},
		{types.ErrInternalError, http.StatusInternalServerError},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, mapErrorCodeToHTTPStatus(tt.code))
		})
	}
}

func TestWriteServiceError_PlainError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteServiceError(w, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("boom"), zap.NewNop())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "INTERNAL_ERROR", resp.Error.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestRequireMethod(t *testing.T) {
	w := httptest.NewRecorder()
	assert.True(t, RequireMethod(w, httptest.NewRequest(http.MethodPost, "/", nil), http.MethodPost, nil))

	w = httptest.NewRecorder()
	assert.False(t, RequireMethod(w, httptest.NewRequest(http.MethodGet, "/", nil), http.MethodPost, nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, http.MethodPost, w.Header().Get("Allow"))
	assert.Equal(t, "METHOD_NOT_ALLOWED", decodeResponse(t, w).Error.Code)
}

func TestValidateContentType(t *testing.T) {
	tests := []struct {
		contentType string
		ok          bool
	}{
		{"application/json", true},
		{"application/json; charset=utf-8", true},
		{"Application/JSON", true},
		{"text/plain", false},
		{"", false},
		{"application/x-www-form-urlencoded", false},
	}
	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.contentType != "" {
				r.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()
			assert.Equal(t, tt.ok, ValidateContentType(w, r, nil))
			if !tt.ok {
				assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
			}
		})
	}
}

func TestDecodeJSONBody(t *testing.T) {
	type payload struct {
		Niche string `json:"niche"`
	}

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "valid", body: `{"niche":"chess"}`},
		{name: "empty", body: "", wantStatus: http.StatusBadRequest},
		{name: "malformed", body: `{"niche":`, wantStatus: http.StatusBadRequest},
		{name: "unknown field", body: `{"niche":"chess","extra":1}`, wantStatus: http.StatusBadRequest},
		{name: "trailing data", body: `{"niche":"a"}{"niche":"b"}`, wantStatus: http.StatusBadRequest},
		{name: "too large", body: `{"niche":"` + strings.Repeat("a", maxBodyBytes) + `"}`, wantStatus: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r *http.Request
			if tt.body == "" {
				r = httptest.NewRequest(http.MethodPost, "/", http.NoBody)
			} else {
				r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			}
			w := httptest.NewRecorder()

			var p payload
			err := DecodeJSONBody(w, r, &p, nil)
			if tt.wantStatus == 0 {
				require.NoError(t, err)
				assert.Equal(t, "chess", p.Niche)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "INVALID_REQUEST", decodeResponse(t, w).Error.Code)
		})
	}
}

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := NewResponseWriter(rec)

	rw.WriteHeader(http.StatusAccepted)
	rw.WriteHeader(http.StatusInternalServerError)
	n, err := rw.Write([]byte("hello"))

	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusAccepted, rw.StatusCode)
	assert.Equal(t, int64(5), rw.BytesWritten)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Same(t, rec, rw.Unwrap())
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rw := NewResponseWriter(httptest.NewRecorder())
	_, _ = rw.Write([]byte("x"))
	assert.True(t, rw.Written)
	assert.Equal(t, http.StatusOK, rw.StatusCode)
}
