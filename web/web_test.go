package web

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/BaSui01/creatorstudio/studio"
	"github.com/BaSui01/creatorstudio/testutil/fixtures"
	"github.com/BaSui01/creatorstudio/testutil/mocks"
	"github.com/BaSui01/creatorstudio/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMux(t *testing.T, provider *mocks.MockProvider) *http.ServeMux {
	t.Helper()
	svc := studio.NewService(provider, studio.DefaultConfig(), zap.NewNop())
	h, err := NewHandler(svc, zap.NewNop())
	require.NoError(t, err)

	mux := http.NewServeMux()
	h.Register(mux)
	return mux
}

func get(mux http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func postForm(mux http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	return w
}

func TestDashboardPage(t *testing.T) {
	mux := newTestMux(t, mocks.NewMockProvider())

	w := get(mux, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, htmlContentType, w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.Contains(t, body, "CreatorStudio")
	assert.Contains(t, body, "15.7K")
	assert.Contains(t, body, "1,240")
	assert.Contains(t, body, "vs last week")
	assert.Contains(t, body, "750 / 1000 tokens")
	assert.Contains(t, body, `<a href="/" class="active" aria-current="page">Dashboard</a>`)
	assert.Contains(t, body, `<a href="/ideas">Ideas</a>`)
}

func TestUnknownPathIsNotFound(t *testing.T) {
	mux := newTestMux(t, mocks.NewMockProvider())
	assert.Equal(t, http.StatusNotFound, get(mux, "/nope").Code)
}

func TestIdeasPage_EmptyState(t *testing.T) {
	provider := mocks.NewMockProvider()
	mux := newTestMux(t, provider)

	w := get(mux, "/ideas")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Enter a niche above to get started.")
	assert.Contains(t, w.Body.String(), `class="active" aria-current="page">Ideas</a>`)
	assert.Zero(t, provider.GetCallCount())
}

func TestIdeasPage_Generate(t *testing.T) {
	provider := mocks.NewSuccessProvider(fixtures.JSONText(fixtures.SampleIdeas()))
	mux := newTestMux(t, provider)

	w := postForm(mux, "/ideas", url.Values{"niche": {"home espresso"}})
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	for _, idea := range fixtures.SampleIdeas() {
		assert.Contains(t, body, idea.Title)
	}
	assert.Contains(t, body, `<span class="score">92</span>`)
	assert.Contains(t, body, `value="home espresso"`)
	assert.NotContains(t, body, "Enter a niche above to get started.")
	assert.Equal(t, studio.IdeasPrompt("home espresso"), provider.GetLastCall().Request.Messages[0].Content)
}

func TestIdeasPage_BlankInputSkipsModel(t *testing.T) {
	provider := mocks.NewMockProvider()
	mux := newTestMux(t, provider)

	w := postForm(mux, "/ideas", url.Values{"niche": {"   "}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, provider.GetCallCount())
	assert.NotContains(t, w.Body.String(), `role="alert"`)
}

func TestIdeasPage_FailureShowsAlert(t *testing.T) {
	mux := newTestMux(t, mocks.NewErrorProvider(errors.New("api key not valid")))

	w := postForm(mux, "/ideas", url.Values{"niche": {"chess"}})
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Failed to generate ideas. Please check your API key or try again.")
	assert.NotContains(t, body, "api key not valid")
	assert.NotContains(t, body, "Enter a niche above to get started.")
}

func TestScriptsPage_Generate(t *testing.T) {
	mux := newTestMux(t, mocks.NewSuccessProvider(fixtures.JSONText(fixtures.SampleScript())))

	w := postForm(mux, "/scripts", url.Values{"title": {"Budget Espresso"}})
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "3 sections")
	assert.Contains(t, body, "[Visual: Close-up of the portafilter]")
	assert.Contains(t, body, "## Intro")
	assert.Contains(t, body, "Subscribe for part two.")
}

func TestScriptsPage_FailureShowsAlert(t *testing.T) {
	mux := newTestMux(t, mocks.NewErrorProvider(errors.New("boom")))

	w := postForm(mux, "/scripts", url.Values{"title": {"x"}})
	assert.Contains(t, w.Body.String(), "Script generation failed.")
}

func TestSEOPage_Generate(t *testing.T) {
	mux := newTestMux(t, mocks.NewSuccessProvider(fixtures.JSONText(fixtures.SampleMetadata())))

	w := postForm(mux, "/seo", url.Values{"description": {"espresso review"}})
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Budget Espresso Showdown")
	assert.Contains(t, body, `<span class="tag">espresso</span>`)
	assert.Contains(t, body, "The winner surprised us.")
}

func TestSEOPage_FailureShowsAlert(t *testing.T) {
	mux := newTestMux(t, mocks.NewErrorProvider(errors.New("boom")))

	w := postForm(mux, "/seo", url.Values{"description": {"x"}})
	assert.Contains(t, w.Body.String(), "Optimization failed.")
}

func TestPages_EscapeModelOutput(t *testing.T) {
	ideas := []types.VideoIdea{{Title: "<script>alert(1)</script>", Description: "d", ViralScore: 50, TargetAudience: "a"}}
	mux := newTestMux(t, mocks.NewSuccessProvider(fixtures.JSONText(ideas)))

	body := postForm(mux, "/ideas", url.Values{"niche": {"x"}}).Body.String()
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestMux(t, mocks.NewMockProvider())

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/ideas", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestStaticAssets(t *testing.T) {
	mux := newTestMux(t, mocks.NewMockProvider())

	w := get(mux, "/static/app.css")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/css")
	assert.Contains(t, w.Body.String(), ".sidebar")
}

func TestBarHeight(t *testing.T) {
	barHeight := funcs["barHeight"].(func(int, []types.AnalyticsData) int)
	series := []types.AnalyticsData{{Views: 10}, {Views: 1000}}

	assert.Equal(t, 100, barHeight(1000, series))
	assert.Equal(t, 2, barHeight(10, series))
	assert.Equal(t, 0, barHeight(0, nil))
}
