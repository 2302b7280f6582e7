package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/nyayasetu/nyayasetu/internal/config"
	"github.com/nyayasetu/nyayasetu/internal/providers/contextsrc"
	"github.com/nyayasetu/nyayasetu/internal/providers/llm"
	"github.com/nyayasetu/nyayasetu/internal/render"
	"github.com/nyayasetu/nyayasetu/internal/service/docgen"
	"github.com/nyayasetu/nyayasetu/internal/service/memory"
	"github.com/nyayasetu/nyayasetu/internal/service/pipeline"
	"github.com/nyayasetu/nyayasetu/internal/service/prompt"
	httptransport "github.com/nyayasetu/nyayasetu/internal/transport/http"
	"github.com/nyayasetu/nyayasetu/pkg/log"
	"github.com/nyayasetu/nyayasetu/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)

	// 2. Model provider
	provider, err := llm.NewProvider(ctx, config.NewLLMConfig(ctx))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize LLM provider")
	}

	// 3. Context sources
	// The advisor grounds on the configured mode; the analyzer always reads
	// the externally parsed document.
	advisorSource, err := contextsrc.NewSource(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize context source")
	}
	analyzerSource := contextsrc.NewDocument(config.NewParserConfig(ctx))

	// 4. Conversation memory
	// Each pipeline keeps its own store so advisory turns and document
	// analysis turns for the same user never leak into each other's prompts.
	advisorHistory := memory.NewStore(appCfg.MemoryWindowSize)
	analyzerHistory := memory.NewStore(appCfg.MemoryWindowSize)

	// 5. Pipelines
	advisor := pipeline.New(
		advisorSource,
		provider,
		advisorHistory,
		prompt.NewAdvisor(appCfg.PromptTokenBudget),
		appCfg.IsDocumentMode(),
	)
	analyzer := pipeline.New(
		analyzerSource,
		provider,
		analyzerHistory,
		prompt.NewAnalyzer(appCfg.PromptTokenBudget),
		true,
	)

	// 6. Document generation
	engine, err := render.NewEngine(appCfg.OutputDir, appCfg.FontPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize render engine")
	}
	generator := docgen.NewGenerator(provider, engine)

	// 7. Transport
	services = append(services, httptransport.NewServer(advisor, analyzer, generator, appCfg))

	return services
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
