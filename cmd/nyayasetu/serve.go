package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/nyayasetu/nyayasetu/pkg/log"
	"github.com/nyayasetu/nyayasetu/pkg/srv"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the NyayaSetu HTTP service",
	Long:  `Initializes the model provider, context source, and document generator, then serves the advisory and document-generation API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting nyayasetu")

		services := NewServices(ctx)

		srv.StartServices(ctx, services)

		// Wait for shutdown signal
		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("nyayasetu has been shut down gracefully")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
