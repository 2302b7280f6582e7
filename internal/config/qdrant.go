package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/nyayasetu/nyayasetu/pkg/log"
)

type QdrantConfig struct {
	URL        string `env:"QDRANT_URL,required,notEmpty"`
	APIKey     string `env:"QDRANT_API_KEY"`
	Collection string `env:"QDRANT_COLLECTION" envDefault:"my_documents"`

	// TopK is the number of passages returned per similarity search.
	TopK int `env:"SEARCH_TOP_K" envDefault:"4"`
}

func NewQdrantConfig(ctx context.Context) *QdrantConfig {
	c := &QdrantConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Qdrant config")
	}
	return c
}
