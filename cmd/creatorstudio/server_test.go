package main

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/BaSui01/creatorstudio/config"
	"github.com/BaSui01/creatorstudio/testutil/fixtures"
	"github.com/BaSui01/creatorstudio/testutil/mocks"
	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestServer 构建完整路由，不监听端口
func newTestServer(t *testing.T, provider *mocks.MockProvider, mutate func(*config.Config)) (*Server, http.Handler) {
	t.Helper()
	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(cfg)
	}

	s := NewServer(cfg, zap.NewNop())
	s.provider = provider
	s.registry = prometheus.NewRegistry()

	h, err := s.buildHandler()
	require.NoError(t, err)
	t.Cleanup(s.Shutdown)
	return s, h
}

func postJSON(path, body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func TestServer_HealthAndVersion(t *testing.T) {
	_, h := newTestServer(t, mocks.NewMockProvider(), nil)

	for _, path := range []string{"/health", "/healthz", "/ready", "/readyz", "/version"} {
		w := serve(h, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"), path)
		assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"), path)
	}
}

func TestServer_ReadyFailsWhenProviderUnhealthy(t *testing.T) {
	_, h := newTestServer(t, mocks.NewMockProvider().WithHealth(false, errors.New("api key invalid")), nil)

	w := serve(h, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "mock")

	// 存活检查不受依赖影响
	assert.Equal(t, http.StatusOK, serve(h, httptest.NewRequest(http.MethodGet, "/health", nil)).Code)
}

func TestServer_GenerateIdeasThroughAPI(t *testing.T) {
	provider := mocks.NewSuccessProvider(fixtures.JSONText(fixtures.SampleIdeas()))
	s, h := newTestServer(t, provider, nil)

	w := serve(h, postJSON("/api/v1/ideas", `{"niche":"home espresso"}`))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"request_id":"`+w.Header().Get("X-Request-ID")+`"`)
	assert.Contains(t, w.Body.String(), "I Tried Every Budget Espresso Machine")
	assert.Equal(t, 1, provider.GetCallCount())

	n, err := testutil.GatherAndCount(s.registry, "creatorstudio_http_requests_total", "creatorstudio_generations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestServer_PagesAndStatic(t *testing.T) {
	_, h := newTestServer(t, mocks.NewMockProvider(), nil)

	w := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Channel Overview")

	w = serve(h, httptest.NewRequest(http.MethodGet, "/static/app.css", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/views", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"path":"/seo"`)
}

func TestServer_APIKeyProtectsOnlyAPI(t *testing.T) {
	_, h := newTestServer(t, mocks.NewMockProvider(), func(c *config.Config) {
		c.Server.APIKeys = []string{"secret-key"}
	})

	assert.Equal(t, http.StatusUnauthorized, serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)).Code)
	assert.Equal(t, http.StatusOK, serve(h, httptest.NewRequest(http.MethodGet, "/health", nil)).Code)
	assert.Equal(t, http.StatusOK, serve(h, httptest.NewRequest(http.MethodGet, "/", nil)).Code)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	r.Header.Set("X-API-Key", "secret-key")
	assert.Equal(t, http.StatusOK, serve(h, r).Code)
}

func TestServer_RedisCacheServesRepeatRequests(t *testing.T) {
	mr := miniredis.RunT(t)
	provider := mocks.NewSuccessProvider(fixtures.JSONText(fixtures.SampleMetadata()))
	s, h := newTestServer(t, provider, func(c *config.Config) {
		c.Redis.Enabled = true
		c.Redis.Addr = mr.Addr()
	})
	require.NotNil(t, s.cache)

	for i := 0; i < 2; i++ {
		w := serve(h, postJSON("/api/v1/metadata", `{"description":"espresso review"}`))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Budget Espresso Showdown")
	}
	assert.Equal(t, 1, provider.GetCallCount())
	assert.NotEmpty(t, mr.Keys())

	w := serve(h, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"redis"`)
}

func TestServer_RedisUnavailableDisablesCache(t *testing.T) {
	s, h := newTestServer(t, mocks.NewSuccessProvider(fixtures.JSONText(fixtures.SampleIdeas())), func(c *config.Config) {
		c.Redis.Enabled = true
		c.Redis.Addr = "127.0.0.1:1"
	})
	assert.Nil(t, s.cache)
	assert.Equal(t, http.StatusOK, serve(h, postJSON("/api/v1/ideas", `{"niche":"chess"}`)).Code)
}

func TestRun_Commands(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 0, run([]string{"version"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "CreatorStudio "+Version)

	stdout.Reset()
	assert.Equal(t, 0, run([]string{"help"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "creatorstudio <command>")

	assert.Equal(t, 1, run(nil, &stdout, &stderr))
	assert.Equal(t, 1, run([]string{"bogus"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Unknown command: bogus")
}

func TestRun_HealthCommand(t *testing.T) {
	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ok.Close()

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"health", "--addr", ok.URL + "/"}, &stdout, &stderr))
	assert.Equal(t, "OK\n", stdout.String())

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()

	assert.Equal(t, 1, run([]string{"health", "--addr", down.URL}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "status 503")
}

func TestInitLogger(t *testing.T) {
	logger := initLogger(config.LogConfig{Level: "debug", Format: "console", OutputPaths: []string{"stderr"}})
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))

	logger = initLogger(config.LogConfig{Level: "nonsense", Format: "json"})
	assert.False(t, logger.Core().Enabled(zap.DebugLevel))
	assert.True(t, logger.Core().Enabled(zap.InfoLevel))
}
