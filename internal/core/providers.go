package core

import "context"

// CompletionProvider is the single contract the service has with a language
// model: one prompt in, one text completion out. Failures carry the upstream
// message so callers can decide whether to retry.
type CompletionProvider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ContextSource abstracts where grounding text comes from: a single parsed
// document or a vector-similarity retriever. An empty RetrievedContext with a
// nil error means "nothing available" — sources never invent an error for a
// missing document.
type ContextSource interface {
	Fetch(ctx context.Context, query string) (RetrievedContext, error)
}

// Embedder turns query text into a vector for similarity search.
type Embedder interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}
