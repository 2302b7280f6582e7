package contextsrc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nyayasetu/nyayasetu/internal/config"
)

func TestDocument_Fetch(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		wantPassages int
		wantText     string
	}{
		{
			name:         "document available",
			status:       http.StatusOK,
			body:         "Contract dated 2020-01-01 between the parties.\n",
			wantPassages: 1,
			wantText:     "Contract dated 2020-01-01 between the parties.",
		},
		{
			name:         "not ready returns empty context, not an error",
			status:       http.StatusNotFound,
			body:         "no document",
			wantPassages: 0,
		},
		{
			name:         "server error returns empty context",
			status:       http.StatusInternalServerError,
			body:         "boom",
			wantPassages: 0,
		},
		{
			name:         "empty body treated as unavailable",
			status:       http.StatusOK,
			body:         "   \n",
			wantPassages: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/plain-text" {
					t.Errorf("unexpected path %q", r.URL.Path)
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			src := NewDocument(&config.ParserConfig{BaseURL: srv.URL})
			got, err := src.Fetch(context.Background(), "any query")
			if err != nil {
				t.Fatalf("Fetch returned error: %v", err)
			}
			if len(got.Passages) != tt.wantPassages {
				t.Fatalf("got %d passages, want %d", len(got.Passages), tt.wantPassages)
			}
			if tt.wantText != "" && got.Text() != tt.wantText {
				t.Errorf("got text %q, want %q", got.Text(), tt.wantText)
			}
		})
	}
}

func TestDocument_FetchUnreachable(t *testing.T) {
	src := NewDocument(&config.ParserConfig{BaseURL: "http://127.0.0.1:1"})
	got, err := src.Fetch(context.Background(), "q")
	if err != nil {
		t.Fatalf("Fetch returned error for unreachable upstream: %v", err)
	}
	if !got.Empty() {
		t.Errorf("expected empty context, got %+v", got)
	}
}
