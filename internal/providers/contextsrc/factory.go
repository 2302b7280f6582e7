package contextsrc

import (
	"context"
	"fmt"

	"github.com/nyayasetu/nyayasetu/internal/config"
	"github.com/nyayasetu/nyayasetu/internal/core"
	"github.com/nyayasetu/nyayasetu/internal/providers/embed"
	"github.com/nyayasetu/nyayasetu/pkg/log"
)

// NewSource creates the ContextSource selected by the context mode.
func NewSource(ctx context.Context, appCfg *config.AppConfig) (core.ContextSource, error) {
	log.FromCtx(ctx).Info().
		Str("mode", appCfg.ContextMode).
		Msg("starting context source")

	switch appCfg.ContextMode {
	case config.ModeDocument:
		return NewDocument(config.NewParserConfig(ctx)), nil
	case config.ModeRetrieval:
		embedder := embed.NewOpenAI(config.NewEmbeddingConfig(ctx))
		return NewQdrant(config.NewQdrantConfig(ctx), embedder), nil
	default:
		return nil, fmt.Errorf("unknown context mode: %s", appCfg.ContextMode)
	}
}
