package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/artifacts"
	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/document"
	"github.com/jonathan/resume-parser/internal/llm"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/parsing"
	"github.com/jonathan/resume-parser/internal/schemas"
)

var (
	parseModel     string
	parseAPIKey    string
	parseOutputDir string
	parseConfig    string
	parseVerbose   bool
	parseValidate  bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a resume file into structured JSON",
	Long: `Parse extracts structured candidate data from a resume document (PDF, DOCX
or plain text) and writes it as JSON to the output directory. With an API key
the extraction uses concurrent model calls with per-field fallbacks; without
one it runs the deterministic extractors only.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseModel, "model", "", "Model override for every tier (default: per-tier defaults)")
	parseCmd.Flags().StringVar(&parseAPIKey, "api-key", "", "Gemini API key (default: GEMINI_API_KEY)")
	parseCmd.Flags().StringVar(&parseOutputDir, "output-dir", "", "Directory for the output JSON (default: output)")
	parseCmd.Flags().StringVar(&parseConfig, "config", "", "Path to a JSON config file")
	parseCmd.Flags().BoolVar(&parseVerbose, "verbose", false, "Print a formatted extraction summary")
	parseCmd.Flags().BoolVar(&parseValidate, "validate", false, "Validate the output against the record schema")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	sourcePath := args[0]
	if _, err := os.Stat(sourcePath); err != nil {
		return fmt.Errorf("resume file not found: %s", sourcePath)
	}

	cfg := resolveConfig()
	if parseVerbose {
		cfg.Verbose = true
	}

	// 1. Extract plain text from the document
	text, err := document.ExtractText(sourcePath, "")
	if err != nil {
		return err
	}

	// 2. Build the model client, if configured
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var client llm.Client
	if cfg.APIKey != "" {
		modelConfig := llm.DefaultConfig().WithOverride(cfg.Model)
		client, err = llm.NewClient(ctx, modelConfig, cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create model client: %w", err)
		}
		defer client.Close() //nolint:errcheck
	} else {
		fmt.Println("No API key configured, using deterministic extraction only")
	}

	// 3. Run the extraction pipeline
	record, parseErr := parsing.Parse(ctx, text, parsing.Options{Client: client})
	if parseErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: extraction degraded: %v\n", parseErr)
	}

	// 4. Write the output artifact
	outputPath, err := artifacts.Write(cfg.OutputDir, sourcePath, record)
	if err != nil {
		return err
	}
	fmt.Printf("Parsed resume written to %s\n", outputPath)

	// 5. Validate against the record schema when requested
	if parseValidate {
		if err := validateOutput(outputPath); err != nil {
			return err
		}
		fmt.Println("Output validates against the record schema")
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintRecord(record)
		printer.PrintStatistics(record)
	} else {
		data, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize record: %w", err)
		}
		fmt.Println(string(data))
	}

	return nil
}

// resolveConfig layers flags over the config file over the environment.
func resolveConfig() config.Config {
	cfg := config.Config{
		APIKey:    parseAPIKey,
		Model:     parseModel,
		OutputDir: parseOutputDir,
	}

	if parseConfig != "" {
		if fileCfg, err := config.LoadConfig(parseConfig); err == nil {
			cfg = cfg.MergeWithDefaults(*fileCfg)
			if fileCfg.Verbose {
				cfg.Verbose = true
			}
		} else {
			fmt.Fprintf(os.Stderr, "Warning: could not load config file: %v\n", err)
		}
	}

	return cfg.MergeWithDefaults(config.FromEnv())
}

// validateOutput checks the written artifact against the record schema.
func validateOutput(outputPath string) error {
	schemaPath := schemas.ResolveSchemaPath(schemas.RecordSchemaPath)
	if schemaPath == "" {
		fmt.Fprintln(os.Stderr, "Warning: record schema not found, skipping validation")
		return nil
	}

	if err := schemas.ValidateJSON(schemaPath, outputPath); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("output does not validate against schema: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Warning: could not validate output against schema: %v\n", err)
	}
	return nil
}
