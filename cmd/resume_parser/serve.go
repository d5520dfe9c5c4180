package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/server"
)

var (
	servePort      int
	serveModel     string
	serveOutputDir string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP server that accepts resume uploads on POST /parse and serves
previously parsed outputs on GET /outputs/{name}. An API key enables model
extraction; a DATABASE_URL enables run persistence. Both are optional.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Port to listen on")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "Model override for every tier")
	serveCmd.Flags().StringVar(&serveOutputDir, "output-dir", "", "Directory for parsed output files (default: output)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	flagCfg := config.Config{
		Model:     serveModel,
		OutputDir: serveOutputDir,
		Port:      servePort,
	}
	cfg := flagCfg.MergeWithDefaults(config.FromEnv())

	if cfg.APIKey == "" {
		fmt.Fprintln(os.Stderr, "Warning: GEMINI_API_KEY not set, serving deterministic extraction only")
	}

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		OutputDir:   cfg.OutputDir,
		DatabaseURL: cfg.DatabaseURL,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
