package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/letter-service/internal/cleanup"
	"github.com/jonathan/letter-service/internal/config"
	"github.com/jonathan/letter-service/internal/registry"
	"github.com/jonathan/letter-service/internal/rendering"
	"github.com/jonathan/letter-service/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for generating and downloading PDF letters.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Load()
	if servePort != 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	renderer, err := rendering.New(rendering.Config{
		TemplatesDir: cfg.TemplatesDir,
		OutputDir:    cfg.OutputDir,
		StaticDir:    cfg.StaticDir,
		Engine:       rendering.NewChromeEngine(cfg.PDFTimeout, logger),
		Logger:       logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	sweeper := cleanup.NewSweeper(cfg.OutputDir, cfg.PDFExpiry, cfg.CleanupInterval, logger)

	srv := server.New(server.Config{
		Port:     cfg.Port,
		Renderer: renderer,
		Registry: registry.New(),
		Sweeper:  sweeper,
		Logger:   logger,
	})

	return srv.Start()
}
