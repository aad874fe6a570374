package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-architect/internal/ai"
	"github.com/jonathan/resume-architect/internal/config"
	"github.com/jonathan/resume-architect/internal/server"
	"github.com/jonathan/resume-architect/internal/store"
)

var (
	servePort    int
	serveConfig  string
	serveDataDir string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for editing, rendering, and exporting the resume document.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	serveCmd.Flags().StringVar(&serveDataDir, "data-dir", "", "Directory for file-based document storage")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	st, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	client, err := openTextService(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to create text service client: %w", err)
	}

	srv, err := server.New(cfg, st, client)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// resolveConfig layers CLI flags over the config file over defaults, then
// fills remaining gaps from the environment.
func resolveConfig() (config.Config, error) {
	cfg := config.Config{Port: servePort, DataDir: serveDataDir}

	if serveConfig != "" {
		fileCfg, err := config.LoadConfig(serveConfig)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	cfg = cfg.MergeWithDefaults(config.DefaultConfig())
	cfg.FromEnv()

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// openStore prefers PostgreSQL when a database URL is configured and falls
// back to file storage otherwise.
func openStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	if cfg.DatabaseURL != "" {
		return store.ConnectPostgres(ctx, cfg.DatabaseURL)
	}
	return store.NewFileStore(cfg.DataDir)
}

// openTextService returns nil when no API key is configured; the server then
// serves every endpoint except the text service ones.
func openTextService(ctx context.Context, cfg config.Config) (ai.Client, error) {
	if cfg.APIKey == "" {
		log.Println("GEMINI_API_KEY not set; text service endpoints disabled")
		return nil, nil
	}
	return ai.NewClient(ctx, ai.DefaultConfig(), cfg.APIKey)
}
