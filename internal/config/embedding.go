package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/nyayasetu/nyayasetu/pkg/log"
)

type EmbeddingConfig struct {
	Model  string `env:"EMBEDDING_MODEL" envDefault:"text-embedding-ada-002"`
	APIKey string `env:"OPENAI_API_KEY,required,notEmpty"`
}

func NewEmbeddingConfig(ctx context.Context) *EmbeddingConfig {
	c := &EmbeddingConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Embedding config")
	}
	return c
}
