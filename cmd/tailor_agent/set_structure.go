package main

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/career-tailor/internal/config"
	"github.com/jonathan/career-tailor/internal/db"
	"github.com/jonathan/career-tailor/internal/types"
)

var setStructureCmd = &cobra.Command{
	Use:   "set-structure",
	Short: "Save the resume structure used for future generations",
	Long:  "Validates and saves a resume structure (section ordering, labels and contact-field set). Subsequent generations use the saved structure instead of the default plan.",
	RunE:  runSetStructure,
}

var (
	setStructInput    string
	setStructDatabase string
	setStructUserID   string
)

func init() {
	setStructureCmd.Flags().StringVarP(&setStructInput, "input", "i", "", "Path to input ResumeStructure JSON file (required)")
	setStructureCmd.Flags().StringVar(&setStructDatabase, "database-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL)")
	setStructureCmd.Flags().StringVar(&setStructUserID, "user-id", "", "Acting user UUID (defaults to TAILOR_USER_ID)")

	if err := setStructureCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}

	rootCmd.AddCommand(setStructureCmd)
}

func runSetStructure(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var structure types.ResumeStructure
	if err := readJSONFile(setStructInput, &structure); err != nil {
		return err
	}
	if err := validator.New().Struct(&structure); err != nil {
		return fmt.Errorf("invalid resume structure: %w", err)
	}

	fromFlags := config.Config{DatabaseURL: setStructDatabase, UserID: setStructUserID}
	cfg := fromFlags.MergeWithDefaults(config.FromEnv())
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("config error: a database URL is required (flag --database-url or DATABASE_URL)")
	}
	userID, err := uuid.Parse(cfg.UserID)
	if err != nil {
		return fmt.Errorf("invalid user id %q: %w", cfg.UserID, err)
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.SaveResumeStructure(ctx, userID, &structure); err != nil {
		return fmt.Errorf("failed to save resume structure: %w", err)
	}

	fmt.Printf("Saved resume structure with %d sections\n", len(structure.Sections))
	return nil
}
