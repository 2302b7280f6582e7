package contextsrc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nyayasetu/nyayasetu/internal/config"
	"github.com/nyayasetu/nyayasetu/internal/core"
	"github.com/nyayasetu/nyayasetu/pkg/conv"
)

// Qdrant retrieves the top-K most similar passages for a query from a Qdrant
// collection. An empty hit set is valid context, not an error; only transport
// and embedding failures surface as errors.
type Qdrant struct {
	client     *http.Client
	baseURL    string
	apiKey     string
	collection string
	topK       int
	embedder   core.Embedder
}

func NewQdrant(cfg *config.QdrantConfig, embedder core.Embedder) *Qdrant {
	return &Qdrant{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:    cfg.URL,
		apiKey:     cfg.APIKey,
		collection: cfg.Collection,
		topK:       cfg.TopK,
		embedder:   embedder,
	}
}

type searchRequest struct {
	Vector      []float32 `json:"vector"`
	Limit       int       `json:"limit"`
	WithPayload bool      `json:"with_payload"`
}

type searchResponse struct {
	Result []struct {
		Score   float32 `json:"score"`
		Payload struct {
			PageContent string `json:"page_content"`
		} `json:"payload"`
	} `json:"result"`
}

func (q *Qdrant) Fetch(ctx context.Context, query string) (core.RetrievedContext, error) {
	vector, err := q.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return core.RetrievedContext{}, fmt.Errorf("embed query: %w", err)
	}

	body, err := json.Marshal(searchRequest{
		Vector:      vector,
		Limit:       q.topK,
		WithPayload: true,
	})
	if err != nil {
		return core.RetrievedContext{}, fmt.Errorf("marshal search request: %w", err)
	}

	url := fmt.Sprintf("%s/collections/%s/points/search", q.baseURL, q.collection)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return core.RetrievedContext{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if q.apiKey != "" {
		req.Header.Set("api-key", q.apiKey)
	}

	resp, err := q.client.Do(req)
	if err != nil {
		return core.RetrievedContext{}, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return core.RetrievedContext{}, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return core.RetrievedContext{}, fmt.Errorf("http %d: %s", resp.StatusCode, string(data))
	}

	var result searchResponse
	if err := json.Unmarshal(data, &result); err != nil {
		return core.RetrievedContext{}, fmt.Errorf("decode: %w", err)
	}

	// Hits arrive ranked by similarity; keep that order. Ingested passages
	// may carry markdown or HTML from scraping, so normalize to plain text
	// before prompt embedding.
	passages := make([]string, 0, len(result.Result))
	for _, hit := range result.Result {
		if text := conv.MarkdownToPlainText(hit.Payload.PageContent); text != "" {
			passages = append(passages, text)
		}
	}
	return core.RetrievedContext{Passages: passages}, nil
}
