package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyayasetu/nyayasetu/internal/config"
	"github.com/nyayasetu/nyayasetu/internal/core"
	"github.com/nyayasetu/nyayasetu/internal/render"
	"github.com/nyayasetu/nyayasetu/internal/service/docgen"
	"github.com/nyayasetu/nyayasetu/internal/service/memory"
	"github.com/nyayasetu/nyayasetu/internal/service/pipeline"
	"github.com/nyayasetu/nyayasetu/internal/service/prompt"
)

type mockSource struct {
	fetchFunc func(ctx context.Context, query string) (core.RetrievedContext, error)
}

func (m *mockSource) Fetch(ctx context.Context, query string) (core.RetrievedContext, error) {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, query)
	}
	return core.RetrievedContext{Passages: []string{"relevant case law"}}, nil
}

type mockProvider struct {
	completeFunc func(ctx context.Context, prompt string) (string, error)
	prompts      []string
}

func (m *mockProvider) Complete(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.completeFunc != nil {
		return m.completeFunc(ctx, prompt)
	}
	return "advisory answer", nil
}

func newTestHandler(t *testing.T, source core.ContextSource, provider core.CompletionProvider) http.Handler {
	t.Helper()

	advisor := pipeline.New(source, provider, memory.NewStore(10), prompt.NewAdvisor(0), false)
	analyzer := pipeline.New(source, provider, memory.NewStore(10), prompt.NewAnalyzer(0), true)

	engine, err := render.NewEngine(t.TempDir(), "")
	require.NoError(t, err)
	generator := docgen.NewGenerator(provider, engine)

	s := NewServer(advisor, analyzer, generator, &config.AppConfig{ListenAddr: ":0"})
	return s.router(context.Background())
}

func TestHandleQuery(t *testing.T) {
	provider := &mockProvider{}
	h := newTestHandler(t, &mockSource{}, provider)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/query",
		strings.NewReader(`{"text":"Can I appeal a consumer forum order?","user_id":"u1"}`))
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var answer core.Answer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &answer))
	assert.Equal(t, "advisory answer", answer.Text)
	assert.Equal(t, []string{"relevant case law"}, answer.Passages)
}

func TestHandleQuery_Validation(t *testing.T) {
	h := newTestHandler(t, &mockSource{}, &mockProvider{})

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{`},
		{"missing text", `{"user_id":"u1"}`},
		{"missing user_id", `{"text":"question"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/query", strings.NewReader(tc.body))
			h.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleQuery_ContextUnavailable(t *testing.T) {
	source := &mockSource{
		fetchFunc: func(ctx context.Context, query string) (core.RetrievedContext, error) {
			return core.RetrievedContext{}, errors.New("qdrant unreachable")
		},
	}
	h := newTestHandler(t, source, &mockProvider{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/query",
		strings.NewReader(`{"text":"question","user_id":"u1"}`))
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleQuery_GenerationFailure(t *testing.T) {
	provider := &mockProvider{
		completeFunc: func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("model quota exceeded")
		},
	}
	h := newTestHandler(t, &mockSource{}, provider)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/query",
		strings.NewReader(`{"text":"question","user_id":"u1"}`))
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "model quota exceeded")
}

func TestHandleAnalyze_GetDefaultsQuery(t *testing.T) {
	provider := &mockProvider{}
	h := newTestHandler(t, &mockSource{}, provider)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/analyze?user_id=u1", nil)
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, provider.prompts, 1)
	assert.Contains(t, provider.prompts[0], defaultAnalyzeQuery)
}

func TestHandleAnalyze_HistoryStaysOutOfAdvisorPrompt(t *testing.T) {
	provider := &mockProvider{}
	h := newTestHandler(t, &mockSource{}, provider)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/analyze?user_id=u1", nil)
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/query",
		strings.NewReader(`{"text":"Can I appeal a consumer forum order?","user_id":"u1"}`))
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, provider.prompts, 2)
	assert.Contains(t, provider.prompts[1], memory.NoHistory)
	assert.NotContains(t, provider.prompts[1], defaultAnalyzeQuery)
}

func TestHandleAnalyze_MissingUser(t *testing.T) {
	h := newTestHandler(t, &mockSource{}, &mockProvider{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/analyze", nil)
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyze_DocumentMissing(t *testing.T) {
	source := &mockSource{
		fetchFunc: func(ctx context.Context, query string) (core.RetrievedContext, error) {
			return core.RetrievedContext{}, nil
		},
	}
	h := newTestHandler(t, source, &mockProvider{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/analyze?user_id=u1", nil)
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGenerateDocument(t *testing.T) {
	provider := &mockProvider{
		completeFunc: func(ctx context.Context, prompt string) (string, error) {
			if strings.Contains(prompt, "classifying a legal case") {
				return "Complaint", nil
			}
			if strings.Contains(prompt, "authority details") {
				return "Designation: The Presiding Officer\nName: District Consumer Forum\nSubject: Refund", nil
			}
			return "1. Generated point", nil
		},
	}
	h := newTestHandler(t, &mockSource{}, provider)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate-document",
		strings.NewReader(`{"issue":"defective phone from QuickMart","user_name":"Asha Rao","location":"Pune, Maharashtra","contact_number":"9876543210"}`))
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, "COMPLAINT", rec.Header().Get("X-Document-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "COMPLAINT_Asha_Rao_en.pdf")
	assert.NotZero(t, rec.Body.Len())
}

func TestHandleGenerateDocument_Validation(t *testing.T) {
	h := newTestHandler(t, &mockSource{}, &mockProvider{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate-document",
		strings.NewReader(`{"issue":"defective phone"}`))
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	h := newTestHandler(t, &mockSource{}, &mockProvider{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
