package rendering

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// printTimeout bounds a single headless-Chrome print.
const printTimeout = 60 * time.Second

// PDFPrinter prints styled document markup to PDF bytes using headless
// Chrome. The zero value is usable; ChromePath overrides the browser binary.
type PDFPrinter struct {
	ChromePath string
}

// Print renders the given HTML document to PDF. The caller's context bounds
// the whole operation; cancellation aborts the print.
func (p *PDFPrinter) Print(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(p.ChromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	printCtx, cancelPrint := context.WithTimeout(browserCtx, printTimeout)
	defer cancelPrint()

	// Chrome needs a navigable URL; stage the document in a temp dir.
	tmpDir, err := os.MkdirTemp("", "career-tailor-")
	if err != nil {
		return nil, &RenderError{Message: "failed to create temp directory", Cause: err}
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	htmlPath := filepath.Join(tmpDir, "resume.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, &RenderError{Message: "failed to stage document", Cause: err}
	}

	var pdf []byte
	err = chromedp.Run(printCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			// US Letter, 8.5in x 11in
			pdf, _, printErr = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.5).
				WithPaperHeight(11).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return nil, &RenderError{Message: "headless print failed", Cause: err}
	}
	return pdf, nil
}
