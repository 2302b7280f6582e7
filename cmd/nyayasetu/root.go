package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/nyayasetu/nyayasetu/internal/config"
	"github.com/nyayasetu/nyayasetu/pkg/log"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "nyayasetu",
	Short: "NyayaSetu — legal advisory and document generation service",
	Long:  `NyayaSetu answers legal questions grounded in case law or an uploaded document, and generates PIL, RTI, and consumer complaint documents.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
}

func setupLogger(ctx context.Context) (context.Context, func()) {
	isDebug := debug || config.IsDebug()
	return log.NewContextWithLogger(ctx, isDebug)
}
