// Package main provides the entry point for the SPARK portfolio API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "spark_server",
	Short: "SPARK Portfolio API Server",
	Long:  "SPARK Portfolio serves student courses, assessments, and career-relevance evidence, and assembles exportable portfolio documents via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
