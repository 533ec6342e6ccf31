package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/career-tailor/internal/config"
	"github.com/jonathan/career-tailor/internal/db"
	"github.com/jonathan/career-tailor/internal/observability"
	"github.com/jonathan/career-tailor/internal/pipeline"
	"github.com/jonathan/career-tailor/internal/rendering"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run the full generation pipeline against the stored career library",
	Long:  "Loads the acting user's career library from the database, matches it against a success profile, synthesizes the markup resume, persists it, and optionally renders the PDF document.",
	RunE:  runGenerate,
}

var (
	genProfile    string
	genSummary    string
	genConfigPath string
	genDatabase   string
	genUserID     string
	genStrategy   string
	genAPIKey     string
	genOutDir     string
	genChrome     string
	genRender     bool
	genVerbose    bool
)

func init() {
	generateCmd.Flags().StringVarP(&genProfile, "profile", "p", "", "Path to input SuccessProfile JSON file (required)")
	generateCmd.Flags().StringVar(&genSummary, "summary", "", "Professional summary text")
	generateCmd.Flags().StringVar(&genConfigPath, "config", "", "Path to a JSON config file")
	generateCmd.Flags().StringVar(&genDatabase, "database-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL)")
	generateCmd.Flags().StringVar(&genUserID, "user-id", "", "Acting user UUID (defaults to TAILOR_USER_ID)")
	generateCmd.Flags().StringVar(&genStrategy, "strategy", "", "Scoring strategy: deterministic or llm")
	generateCmd.Flags().StringVar(&genAPIKey, "api-key", "", "Gemini API key (llm strategy only; defaults to GEMINI_API_KEY)")
	generateCmd.Flags().StringVar(&genOutDir, "out-dir", "", "Directory rendered documents are written to")
	generateCmd.Flags().StringVar(&genChrome, "chrome-path", "", "Browser binary override (defaults to CHROME_PATH)")
	generateCmd.Flags().BoolVar(&genRender, "render", false, "Render the PDF document after generation")
	generateCmd.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print a formatted match summary")

	if err := generateCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	userID, err := uuid.Parse(cfg.UserID)
	if err != nil {
		return fmt.Errorf("invalid user id %q: %w", cfg.UserID, err)
	}

	profile, err := loadProfile(genProfile)
	if err != nil {
		return err
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	scorer, closeScorer, err := buildScorer(ctx, cfg.ScoringStrategy, cfg.APIKey)
	if err != nil {
		return err
	}
	defer closeScorer()

	printer := &rendering.PDFPrinter{ChromePath: cfg.ChromePath}
	p := pipeline.New(database, scorer, printer)

	var onProgress pipeline.ProgressCallback
	if cfg.Verbose {
		onProgress = func(event pipeline.ProgressEvent) {
			_, _ = fmt.Fprintf(os.Stderr, "[%s] %s\n", event.Step, event.Message)
		}
	}

	result := p.Generate(ctx, pipeline.GenerateOptions{
		UserID:     userID,
		Profile:    profile,
		Summary:    genSummary,
		OnProgress: onProgress,
	})
	if !result.Success {
		return fmt.Errorf("generation failed (%s): %s", result.ErrorKind, result.Error)
	}

	if cfg.Verbose {
		out := observability.NewPrinter(os.Stdout)
		out.PrintMatchResult(result.Match)
		out.PrintGaps(result.Match.Gaps)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Generated document %s\n", result.DocumentID)
	if !result.StructureConfirmed {
		_, _ = fmt.Fprintln(os.Stdout, "No saved structure; the default section plan was used")
	}

	if genRender {
		renderResult := p.Render(ctx, pipeline.RenderOptions{
			UserID:     userID,
			DocumentID: result.DocumentID,
			OutputDir:  cfg.OutputDir,
		})
		if !renderResult.Success {
			return fmt.Errorf("render failed (%s): %s", renderResult.ErrorKind, renderResult.Error)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Rendered document at %s\n", renderResult.RenderedPath)
	}

	return nil
}

// resolveConfig layers flags over the optional config file over environment
// variables, then validates the result.
func resolveConfig() (config.Config, error) {
	fromFlags := config.Config{
		DatabaseURL:     genDatabase,
		APIKey:          genAPIKey,
		ScoringStrategy: genStrategy,
		OutputDir:       genOutDir,
		ChromePath:      genChrome,
		UserID:          genUserID,
		Verbose:         genVerbose,
	}

	defaults := config.FromEnv()
	if genConfigPath != "" {
		fileCfg, err := config.LoadConfig(genConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		defaults = fileCfg.MergeWithDefaults(defaults)
	}

	cfg := fromFlags.MergeWithDefaults(defaults)
	if cfg.DatabaseURL == "" {
		return config.Config{}, fmt.Errorf("config error: a database URL is required (flag --database-url, config file, or DATABASE_URL)")
	}
	if cfg.UserID == "" {
		return config.Config{}, fmt.Errorf("config error: a user id is required (flag --user-id, config file, or TAILOR_USER_ID)")
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
