package contextsrc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nyayasetu/nyayasetu/internal/config"
)

// mockEmbedder is a test double for core.Embedder
type mockEmbedder struct {
	embedFunc func(ctx context.Context, text string) ([]float32, error)
	calls     []string
}

func (m *mockEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	m.calls = append(m.calls, text)
	if m.embedFunc != nil {
		return m.embedFunc(ctx, text)
	}
	return []float32{0.1, 0.2, 0.3}, nil
}

func TestQdrant_Fetch(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		response     string
		embedErr     error
		wantErr      bool
		wantPassages []string
	}{
		{
			name:   "ranked passages returned in order",
			status: http.StatusOK,
			response: `{"result":[
				{"score":0.91,"payload":{"page_content":"first passage"}},
				{"score":0.85,"payload":{"page_content":"second passage"}}
			]}`,
			wantPassages: []string{"first passage", "second passage"},
		},
		{
			name:   "scraped markup is normalized to plain text",
			status: http.StatusOK,
			response: `{"result":[
				{"score":0.88,"payload":{"page_content":"**Section 5** of the <em>Act</em> applies"}}
			]}`,
			wantPassages: []string{"Section 5 of the Act applies"},
		},
		{
			name:         "empty result set is valid context",
			status:       http.StatusOK,
			response:     `{"result":[]}`,
			wantPassages: []string{},
		},
		{
			name:     "non-200 surfaces as error",
			status:   http.StatusBadGateway,
			response: `{"status":"error"}`,
			wantErr:  true,
		},
		{
			name:     "embedding failure surfaces as error",
			embedErr: errors.New("embedding backend down"),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/collections/legal_cases/points/search" {
					t.Errorf("unexpected path %q", r.URL.Path)
				}
				var req searchRequest
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					t.Errorf("bad search request: %v", err)
				}
				if req.Limit != 4 {
					t.Errorf("got limit %d, want 4", req.Limit)
				}
				if !req.WithPayload {
					t.Error("expected with_payload to be set")
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.response))
			}))
			defer srv.Close()

			emb := &mockEmbedder{}
			if tt.embedErr != nil {
				emb.embedFunc = func(ctx context.Context, text string) ([]float32, error) {
					return nil, tt.embedErr
				}
			}

			src := NewQdrant(&config.QdrantConfig{
				URL:        srv.URL,
				Collection: "legal_cases",
				TopK:       4,
			}, emb)

			got, err := src.Fetch(context.Background(), "water pollution precedent")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Fetch returned error: %v", err)
			}
			if len(got.Passages) != len(tt.wantPassages) {
				t.Fatalf("got %d passages, want %d", len(got.Passages), len(tt.wantPassages))
			}
			for i := range tt.wantPassages {
				if got.Passages[i] != tt.wantPassages[i] {
					t.Errorf("passage %d: got %q, want %q", i, got.Passages[i], tt.wantPassages[i])
				}
			}
			if len(emb.calls) != 1 || emb.calls[0] != "water pollution precedent" {
				t.Errorf("embedder calls = %v", emb.calls)
			}
		})
	}
}
