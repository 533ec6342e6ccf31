package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-tailor/internal/markup"
	"github.com/jonathan/career-tailor/internal/rendering"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a markup resume into a styled PDF document",
	Long:  "Parses a canonical markup resume, builds the styled document, prints it with headless Chrome, and writes the PDF under the output directory.",
	RunE:  runRender,
}

var (
	renderInput   string
	renderCompany string
	renderRole    string
	renderOutDir  string
	renderChrome  string
)

func init() {
	renderCmd.Flags().StringVarP(&renderInput, "input", "i", "", "Path to input markup file (required)")
	renderCmd.Flags().StringVar(&renderCompany, "company", "", "Target company (used in the document filename)")
	renderCmd.Flags().StringVar(&renderRole, "role", "", "Target role (used in the document filename)")
	renderCmd.Flags().StringVar(&renderOutDir, "out-dir", "output", "Directory rendered documents are written to")
	renderCmd.Flags().StringVar(&renderChrome, "chrome-path", "", "Browser binary override (defaults to CHROME_PATH)")

	if err := renderCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	content, err := os.ReadFile(renderInput)
	if err != nil {
		return fmt.Errorf("failed to read markup file %s: %w", renderInput, err)
	}

	model, err := markup.Parse(string(content))
	if err != nil {
		return fmt.Errorf("failed to parse markup: %w", err)
	}

	html, err := rendering.BuildHTML(model)
	if err != nil {
		return fmt.Errorf("failed to build document: %w", err)
	}

	chromePath := renderChrome
	if chromePath == "" {
		chromePath = os.Getenv("CHROME_PATH")
	}
	printer := &rendering.PDFPrinter{ChromePath: chromePath}
	pdf, err := printer.Print(ctx, html)
	if err != nil {
		return fmt.Errorf("failed to print document: %w", err)
	}

	filename := rendering.DocumentFilename(model.Name, renderCompany, renderRole, "pdf")
	if _, err := rendering.WriteDocument(renderOutDir, filename, pdf); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Rendered %s\n", filepath.Join(renderOutDir, filename))
	return nil
}
