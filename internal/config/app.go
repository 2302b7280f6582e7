package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/nyayasetu/nyayasetu/pkg/log"
)

// Context source modes.
const (
	ModeDocument  = "document"
	ModeRetrieval = "retrieval"
)

type AppConfig struct {
	RuntimePath string `env:"NYAYA_RUNTIME_PATH" envDefault:".nyayasetu"`

	// HTTP transport
	ListenAddr string `env:"HTTP_ADDR" envDefault:":9000"`

	// ContextMode selects where grounding text comes from:
	// "document" (externally parsed document) or "retrieval" (vector search).
	ContextMode string `env:"CONTEXT_MODE" envDefault:"retrieval"`

	// MemoryWindowSize bounds per-user interaction history.
	MemoryWindowSize int `env:"MEMORY_WINDOW_SIZE" envDefault:"10"`

	// PromptTokenBudget caps the context portion of an assembled prompt.
	PromptTokenBudget int `env:"PROMPT_TOKEN_BUDGET" envDefault:"6000"`

	// OutputDir is where rendered PDFs are written.
	OutputDir string `env:"PDF_OUTPUT_DIR" envDefault:"generated_pdfs"`

	// FontPath optionally points at a TTF with Devanagari coverage for
	// Hindi PDF output.
	FontPath string `env:"PDF_FONT_PATH"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) IsDocumentMode() bool {
	return c.ContextMode == ModeDocument
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}
