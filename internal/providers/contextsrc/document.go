package contextsrc

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nyayasetu/nyayasetu/internal/config"
	"github.com/nyayasetu/nyayasetu/internal/core"
	"github.com/nyayasetu/nyayasetu/pkg/log"
)

// Document fetches the plain text of the most recently parsed document from
// the external parser service. Any failure (non-200, transport error, empty
// body) yields an empty context with a nil error: "document not ready" is not
// an exception, and there is no retry.
type Document struct {
	client  *http.Client
	baseURL string
}

func NewDocument(cfg *config.ParserConfig) *Document {
	return &Document{
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL: cfg.BaseURL,
	}
}

func (d *Document) Fetch(ctx context.Context, query string) (core.RetrievedContext, error) {
	logger := log.FromCtx(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+"/api/plain-text", nil)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to build parsed-document request")
		return core.RetrievedContext{}, nil
	}

	resp, err := d.client.Do(req)
	if err != nil {
		logger.Warn().Err(err).Msg("parsed-document service unreachable")
		return core.RetrievedContext{}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn().Int("status", resp.StatusCode).Msg("parsed document not ready")
		return core.RetrievedContext{}, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to read parsed document")
		return core.RetrievedContext{}, nil
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		return core.RetrievedContext{}, nil
	}
	return core.RetrievedContext{Passages: []string{text}}, nil
}
