package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/nyayasetu/nyayasetu/pkg/log"
)

// ParserConfig points at the external document-parser service that exposes
// the plain text of the most recently uploaded document.
type ParserConfig struct {
	BaseURL string `env:"PARSER_BASE_URL" envDefault:"http://localhost:8000"`
}

func NewParserConfig(ctx context.Context) *ParserConfig {
	c := &ParserConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Parser config")
	}
	return c
}
