// Package main implements the tailor_agent CLI for the matching-and-synthesis pipeline.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-tailor/internal/config"
	"github.com/jonathan/career-tailor/internal/llm"
	"github.com/jonathan/career-tailor/internal/matching"
	"github.com/jonathan/career-tailor/internal/observability"
	"github.com/jonathan/career-tailor/internal/schemas"
	"github.com/jonathan/career-tailor/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score career items against a success profile",
	Long:  "Scores accomplishments and library entries against a success profile, producing ranked matches, coverage gaps and a summary as JSON.",
	RunE:  runMatch,
}

var (
	matchProfile  string
	matchItems    string
	matchOutput   string
	matchStrategy string
	matchAPIKey   string
	matchVerbose  bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchProfile, "profile", "p", "", "Path to input SuccessProfile JSON file (required)")
	matchCmd.Flags().StringVarP(&matchItems, "items", "i", "", "Path to input match items JSON file (required)")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output MatchResult JSON file (required)")
	matchCmd.Flags().StringVar(&matchStrategy, "strategy", config.StrategyDeterministic, "Scoring strategy: deterministic or llm")
	matchCmd.Flags().StringVar(&matchAPIKey, "api-key", "", "Gemini API key (llm strategy only; defaults to GEMINI_API_KEY)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a formatted match summary")

	if err := matchCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := matchCmd.MarkFlagRequired("items"); err != nil {
		panic(fmt.Sprintf("failed to mark items flag as required: %v", err))
	}
	if err := matchCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	profile, err := loadProfile(matchProfile)
	if err != nil {
		return err
	}

	itemsContent, err := os.ReadFile(matchItems)
	if err != nil {
		return fmt.Errorf("failed to read items file %s: %w", matchItems, err)
	}
	var items []types.MatchItem
	if err := json.Unmarshal(itemsContent, &items); err != nil {
		return fmt.Errorf("failed to unmarshal items JSON: %w", err)
	}

	scorer, closeScorer, err := buildScorer(ctx, matchStrategy, matchAPIKey)
	if err != nil {
		return err
	}
	defer closeScorer()

	engine := matching.NewEngine(scorer)
	result, err := engine.Match(ctx, profile, items)
	if err != nil {
		return fmt.Errorf("matching failed: %w", err)
	}

	if err := writeJSON(matchOutput, result); err != nil {
		return err
	}

	if matchVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintMatchResult(result)
		printer.PrintGaps(result.Gaps)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Matched %d items (%d gaps) to %s\n", len(result.Matches), len(result.Gaps), matchOutput)
	return nil
}

// loadProfile reads and validates a success profile JSON file, checking it
// against the JSON schema when the schema file can be located.
func loadProfile(path string) (*types.SuccessProfile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.SuccessProfileSchema); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, content); err != nil {
			return nil, fmt.Errorf("profile failed schema validation: %w", err)
		}
	}

	var profile types.SuccessProfile
	if err := json.Unmarshal(content, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile JSON: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid success profile: %w", err)
	}

	return &profile, nil
}

// buildScorer selects the scoring strategy. The returned closer releases the
// LLM client when one was created.
func buildScorer(ctx context.Context, strategy, apiKey string) (matching.Scorer, func(), error) {
	switch strategy {
	case config.StrategyDeterministic, "":
		return matching.NewTagOverlapScorer(), func() {}, nil
	case config.StrategyLLM:
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create scoring client: %w", err)
		}
		return matching.NewLLMScorer(client), func() { _ = client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown scoring strategy %q", strategy)
	}
}

// writeJSON marshals v with indentation and writes it to path, creating the
// parent directory if needed.
func writeJSON(path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output JSON: %w", err)
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
