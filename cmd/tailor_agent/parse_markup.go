package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-tailor/internal/markup"
)

var parseMarkupCmd = &cobra.Command{
	Use:   "parse-markup",
	Short: "Parse a markup resume back into the intermediate model",
	Long:  "Parses a canonical markup resume into the structured intermediate model used for rendering, and writes the model as JSON.",
	RunE:  runParseMarkup,
}

var (
	parseInput  string
	parseOutput string
)

func init() {
	parseMarkupCmd.Flags().StringVarP(&parseInput, "input", "i", "", "Path to input markup file (required)")
	parseMarkupCmd.Flags().StringVarP(&parseOutput, "out", "o", "", "Path to output intermediate model JSON file (required)")

	if err := parseMarkupCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}
	if err := parseMarkupCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(parseMarkupCmd)
}

func runParseMarkup(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(parseInput)
	if err != nil {
		return fmt.Errorf("failed to read markup file %s: %w", parseInput, err)
	}

	model, err := markup.Parse(string(content))
	if err != nil {
		return fmt.Errorf("failed to parse markup: %w", err)
	}

	if err := writeJSON(parseOutput, model); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Parsed %s into %s\n", parseInput, parseOutput)
	return nil
}
