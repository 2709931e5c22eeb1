package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BaSui01/creatorstudio/llm"
	"github.com/BaSui01/creatorstudio/llm/providers"
	"github.com/BaSui01/creatorstudio/llm/structured"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *GeminiProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewGeminiProvider(providers.GeminiConfig{
		BaseProviderConfig: providers.BaseProviderConfig{
			APIKey:  "test-key",
			BaseURL: srv.URL,
			Timeout: 5 * time.Second,
		},
	}, zap.NewNop())
}

func TestGeminiProvider_Name(t *testing.T) {
	provider := NewGeminiProvider(providers.GeminiConfig{}, zap.NewNop())
	assert.Equal(t, "gemini", provider.Name())
}

func TestGeminiProvider_DefaultBaseURL(t *testing.T) {
	provider := NewGeminiProvider(providers.GeminiConfig{}, nil)
	assert.Equal(t, defaultBaseURL, provider.cfg.BaseURL)
	assert.Equal(t, 60*time.Second, provider.client.Timeout)
}

func TestGeminiProvider_Completion_StructuredRequest(t *testing.T) {
	var captured map[string]any
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"candidates":[{"index":0,"finishReason":"STOP","content":{"role":"model","parts":[
				{"text":"thinking...","thought":true},
				{"text":"[{\"title\":\"A\"}"},
				{"text":"]"}
			]}}],
			"usageMetadata":{"promptTokenCount":12,"candidatesTokenCount":30,"totalTokenCount":42},
			"responseId":"resp-1"
		}`)
	})

	schema := structured.NewArraySchema(
		structured.NewObjectSchema().
			AddProperty("title", structured.NewStringSchema()).
			AddProperty("viralScore", structured.NewNumberSchema().WithDescription("score")).
			AddRequired("title", "viralScore"),
	)

	resp, err := provider.Completion(context.Background(), &llm.ChatRequest{
		Model:            "gemini-2.5-flash",
		Messages:         []llm.Message{{Role: llm.RoleUser, Content: "hello"}},
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	require.NoError(t, err)

	assert.Equal(t, `[{"title":"A"}]`, llm.Text(resp))
	assert.Equal(t, "resp-1", resp.ID)
	assert.Equal(t, "gemini", resp.Provider)
	assert.Equal(t, 42, resp.Usage.TotalTokens)
	assert.Equal(t, 12, resp.Usage.PromptTokens)

	contents := captured["contents"].([]any)
	require.Len(t, contents, 1)
	first := contents[0].(map[string]any)
	assert.Equal(t, "user", first["role"])

	gc := captured["generationConfig"].(map[string]any)
	assert.Equal(t, "application/json", gc["responseMimeType"])
	rs := gc["responseSchema"].(map[string]any)
	assert.Equal(t, "ARRAY", rs["type"])
	items := rs["items"].(map[string]any)
	assert.Equal(t, "OBJECT", items["type"])
	assert.Equal(t, []any{"title", "viralScore"}, items["propertyOrdering"])
	assert.Equal(t, []any{"title", "viralScore"}, items["required"])
	props := items["properties"].(map[string]any)
	score := props["viralScore"].(map[string]any)
	assert.Equal(t, "NUMBER", score["type"])
	assert.Equal(t, "score", score["description"])
}

func TestGeminiProvider_Completion_DefaultModelAndSystemInstruction(t *testing.T) {
	var captured geminiRequest
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/"+defaultModel+":generateContent", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = io.WriteString(w, `{"candidates":[]}`)
	})

	resp, err := provider.Completion(context.Background(), &llm.ChatRequest{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: "be brief"},
			{Role: llm.RoleUser, Content: "hi"},
			{Role: llm.RoleAssistant, Content: "hello"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "", llm.Text(resp))

	require.NotNil(t, captured.SystemInstruction)
	assert.Equal(t, "be brief", captured.SystemInstruction.Parts[0].Text)
	require.Len(t, captured.Contents, 2)
	assert.Equal(t, "model", captured.Contents[1].Role)
	assert.Nil(t, captured.GenerationConfig)
}

func TestGeminiProvider_Completion_HTTPErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		code   llm.ErrorCode
	}{
		{"invalid key", http.StatusBadRequest, `{"error":{"code":400,"message":"API key not valid. Please pass a valid API key.","status":"INVALID_ARGUMENT"}}`, llm.ErrUnauthorized},
		{"rate limited", http.StatusTooManyRequests, `{"error":{"code":429,"message":"Resource has been exhausted","status":"RESOURCE_EXHAUSTED"}}`, llm.ErrRateLimited},
		{"overloaded", http.StatusServiceUnavailable, `{"error":{"code":503,"message":"The model is overloaded.","status":"UNAVAILABLE"}}`, llm.ErrModelOverloaded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})
			_, err := provider.Completion(context.Background(), &llm.ChatRequest{
				Messages: []llm.Message{{Role: llm.RoleUser, Content: "x"}},
			})
			require.Error(t, err)
			e, ok := llm.AsError(err)
			require.True(t, ok)
			assert.Equal(t, tt.code, e.Code)
			assert.Equal(t, "gemini", e.Provider)
		})
	}
}

func TestGeminiProvider_Completion_PromptBlocked(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"promptFeedback":{"blockReason":"SAFETY"}}`)
	})
	_, err := provider.Completion(context.Background(), &llm.ChatRequest{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "x"}},
	})
	e, ok := llm.AsError(err)
	require.True(t, ok)
	assert.Equal(t, llm.ErrContentFiltered, e.Code)
	assert.Contains(t, e.Message, "SAFETY")
}

func TestGeminiProvider_Completion_MalformedBody(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"candidates":`)
	})
	_, err := provider.Completion(context.Background(), &llm.ChatRequest{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "x"}},
	})
	e, ok := llm.AsError(err)
	require.True(t, ok)
	assert.Equal(t, llm.ErrUpstreamError, e.Code)
}

func TestGeminiProvider_Completion_Timeout(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	_, err := provider.Completion(context.Background(), &llm.ChatRequest{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "x"}},
		Timeout:  50 * time.Millisecond,
	})
	e, ok := llm.AsError(err)
	require.True(t, ok)
	assert.Equal(t, llm.ErrUpstreamTimeout, e.Code)
}

func TestGeminiProvider_Completion_Validation(t *testing.T) {
	provider := NewGeminiProvider(providers.GeminiConfig{}, zap.NewNop())

	_, err := provider.Completion(context.Background(), &llm.ChatRequest{})
	e, ok := llm.AsError(err)
	require.True(t, ok)
	assert.Equal(t, llm.ErrInvalidRequest, e.Code)

	_, err = provider.Completion(context.Background(), &llm.ChatRequest{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "x"}},
	})
	e, ok = llm.AsError(err)
	require.True(t, ok)
	assert.Equal(t, llm.ErrProviderUnavailable, e.Code)
}

func TestGeminiProvider_HealthCheck(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models", r.URL.Path)
		_, _ = io.WriteString(w, `{"models":[]}`)
	})
	status, err := provider.HealthCheck(context.Background())
	require.NoError(t, err)
	assert.True(t, status.Healthy)

	bad := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"error":{"message":"denied","status":"PERMISSION_DENIED"}}`)
	})
	status, err = bad.HealthCheck(context.Background())
	require.Error(t, err)
	assert.False(t, status.Healthy)

	unconfigured := NewGeminiProvider(providers.GeminiConfig{}, zap.NewNop())
	status, err = unconfigured.HealthCheck(context.Background())
	require.Error(t, err)
	assert.False(t, status.Healthy)
}

func TestConvertSchema_Nil(t *testing.T) {
	assert.Nil(t, convertSchema(nil))
}
