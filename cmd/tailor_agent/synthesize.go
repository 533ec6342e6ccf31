package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-tailor/internal/structure"
	"github.com/jonathan/career-tailor/internal/synthesis"
	"github.com/jonathan/career-tailor/internal/types"
)

var synthesizeCmd = &cobra.Command{
	Use:   "synthesize",
	Short: "Render ranked matches into the canonical markup document",
	Long:  "Combines ranked matches, skills, education and contact details into the canonical markup resume, honoring a saved resume structure when one is provided.",
	RunE:  runSynthesize,
}

var (
	synthMatches   string
	synthSkills    string
	synthEducation string
	synthContact   string
	synthStructure string
	synthSummary   string
	synthOutput    string
)

func init() {
	synthesizeCmd.Flags().StringVarP(&synthMatches, "matches", "m", "", "Path to input MatchResult JSON file (required)")
	synthesizeCmd.Flags().StringVar(&synthSkills, "skills", "", "Path to input skills JSON file")
	synthesizeCmd.Flags().StringVar(&synthEducation, "education", "", "Path to input education JSON file")
	synthesizeCmd.Flags().StringVarP(&synthContact, "contact", "c", "", "Path to input contact JSON file (required)")
	synthesizeCmd.Flags().StringVar(&synthStructure, "structure", "", "Path to a saved resume structure JSON file (defaults applied when omitted)")
	synthesizeCmd.Flags().StringVar(&synthSummary, "summary", "", "Professional summary text")
	synthesizeCmd.Flags().StringVarP(&synthOutput, "out", "o", "", "Path to output markup file (required)")

	if err := synthesizeCmd.MarkFlagRequired("matches"); err != nil {
		panic(fmt.Sprintf("failed to mark matches flag as required: %v", err))
	}
	if err := synthesizeCmd.MarkFlagRequired("contact"); err != nil {
		panic(fmt.Sprintf("failed to mark contact flag as required: %v", err))
	}
	if err := synthesizeCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(synthesizeCmd)
}

func runSynthesize(_ *cobra.Command, _ []string) error {
	var matchResult types.MatchResult
	if err := readJSONFile(synthMatches, &matchResult); err != nil {
		return err
	}

	var contact types.Contact
	if err := readJSONFile(synthContact, &contact); err != nil {
		return err
	}

	var skills []types.Skill
	if synthSkills != "" {
		if err := readJSONFile(synthSkills, &skills); err != nil {
			return err
		}
	}

	var education []types.Education
	if synthEducation != "" {
		if err := readJSONFile(synthEducation, &education); err != nil {
			return err
		}
	}

	var saved *types.ResumeStructure
	if synthStructure != "" {
		var s types.ResumeStructure
		if err := readJSONFile(synthStructure, &s); err != nil {
			return err
		}
		saved = &s
	}
	resolved, confirmed := structure.Resolve(saved)
	if !confirmed {
		_, _ = fmt.Fprintln(os.Stderr, "No saved structure provided; using the default section plan")
	}

	doc, err := synthesis.Synthesize(synthesis.Input{
		Matches:   matchResult.Matches,
		Skills:    skills,
		Education: education,
		Contact:   contact,
		Structure: resolved,
		Summary:   synthSummary,
	})
	if err != nil {
		return fmt.Errorf("synthesis failed: %w", err)
	}

	if err := writeTextFile(synthOutput, doc); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Wrote markup document to %s\n", synthOutput)
	return nil
}

// readJSONFile reads a JSON file into v.
func readJSONFile(path string, v any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if err := json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return nil
}

// writeTextFile writes content to path, creating the parent directory if
// needed.
func writeTextFile(path, content string) error {
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
