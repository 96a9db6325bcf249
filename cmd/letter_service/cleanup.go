package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/letter-service/internal/cleanup"
	"github.com/jonathan/letter-service/internal/config"
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Run a single cleanup sweep over the output directory",
	Long:  `Delete generated PDFs older than the configured expiry and exit.`,
	RunE:  runCleanup,
}

func init() {
	rootCmd.AddCommand(cleanupCmd)
}

func runCleanup(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	sweeper := cleanup.NewSweeper(cfg.OutputDir, cfg.PDFExpiry, cfg.CleanupInterval, logger)
	removed := sweeper.Sweep()

	cmd.Printf("Removed %d expired PDF(s) from %s\n", removed, cfg.OutputDir)
	return nil
}
