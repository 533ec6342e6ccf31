// Package main provides the entry point for the career-tailor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tailor_agent",
	Short: "Career Tailor matching-and-synthesis pipeline",
	Long:  "Career Tailor scores a stored career library against a success profile, synthesizes a canonical markup resume, and renders it into a styled PDF document.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
