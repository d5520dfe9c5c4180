// Package main provides the entry point for the resume parser CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_parser",
	Short: "Resume Parser",
	Long:  "Resume Parser extracts structured candidate data (contact details, skills, education, work experience) from PDF, DOCX and plain-text resumes using concurrent LLM extraction with deterministic fallbacks.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
