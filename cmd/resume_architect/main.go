// Package main provides the entry point for the Resume Architect HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_architect",
	Short: "Resume Architect HTTP API Server",
	Long:  "Resume Architect serves a single-document resume editor with template-based HTML rendering, PDF printing, and text-service-assisted parsing and rewriting via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
