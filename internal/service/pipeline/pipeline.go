package pipeline

import (
	"context"
	"fmt"

	"github.com/nyayasetu/nyayasetu/internal/core"
	"github.com/nyayasetu/nyayasetu/internal/service/prompt"
	"github.com/nyayasetu/nyayasetu/pkg/log"
)

// HistoryStore is the slice of the memory store the pipeline needs.
type HistoryStore interface {
	Append(userID string, turn core.Turn) error
	Render(userID string) string
}

// Pipeline orchestrates one advisory answer: fetch context, read memory,
// assemble the prompt, call the model, record the turn. Each call is
// independent; there is no caching or deduplication of concurrent queries.
type Pipeline struct {
	source    core.ContextSource
	provider  core.CompletionProvider
	history   HistoryStore
	assembler *prompt.Assembler

	// requireContext makes an empty fetch fatal (single-document mode).
	// Retrieval mode degrades gracefully instead.
	requireContext bool
}

func New(
	source core.ContextSource,
	provider core.CompletionProvider,
	history HistoryStore,
	assembler *prompt.Assembler,
	requireContext bool,
) *Pipeline {
	return &Pipeline{
		source:         source,
		provider:       provider,
		history:        history,
		assembler:      assembler,
		requireContext: requireContext,
	}
}

// Answer runs the full pipeline for one query.
func (p *Pipeline) Answer(ctx context.Context, queryText, userID string) (core.Answer, error) {
	logger := log.FromCtx(ctx)

	retrieved, err := p.source.Fetch(ctx, queryText)
	if err != nil {
		return core.Answer{}, fmt.Errorf("%w: %v", core.ErrContextUnavailable, err)
	}
	if retrieved.Empty() && p.requireContext {
		return core.Answer{}, core.ErrContextUnavailable
	}

	built := p.assembler.Build(ctx, retrieved.Text(), p.history.Render(userID), queryText)

	text, err := p.provider.Complete(ctx, built)
	if err != nil {
		return core.Answer{}, core.NewGenerationError("answer", err)
	}

	// Conversational continuity degrading is preferable to failing an
	// otherwise-successful answer.
	if err := p.history.Append(userID, core.Turn{UserInput: queryText, Response: text}); err != nil {
		logger.Error().Err(err).Str("user_id", userID).Msg("failed to record interaction")
	}

	return core.Answer{
		Text:     text,
		Passages: retrieved.Passages,
	}, nil
}
