// Package main provides the entry point for the CV Advisor HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_advisor",
	Short: "CV Advisor HTTP API Server",
	Long:  "CV Advisor accepts a job position and a CV upload, reports skill gaps with templated feedback, and serves filterable job and course catalogs via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
