// Package printing converts rendered resume HTML into PDF bytes using a
// headless Chrome instance driven over the DevTools protocol.
package printing

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 paper dimensions in inches (210mm x 297mm).
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
)

// DefaultTimeout bounds a single print job, including browser startup.
const DefaultTimeout = 60 * time.Second

// Printer renders HTML to PDF through a headless Chrome process. A fresh
// browser context is created per job, so a Printer is safe for concurrent use.
type Printer struct {
	// ChromePath optionally points at a specific Chrome binary. When empty,
	// chromedp locates one on PATH.
	ChromePath string

	// Timeout bounds a single print job. Zero means DefaultTimeout.
	Timeout time.Duration
}

// NewPrinter returns a Printer using the given Chrome binary path.
func NewPrinter(chromePath string) *Printer {
	return &Printer{ChromePath: chromePath, Timeout: DefaultTimeout}
}

// PrintHTML renders the given HTML document to A4 PDF bytes.
func (p *Printer) PrintHTML(ctx context.Context, html string) ([]byte, error) {
	timeout := p.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

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

	// Navigating a file:// URL lets web fonts referenced by the page load
	// normally, unlike injecting the document over the protocol.
	tmpDir, err := os.MkdirTemp("", "resume-print-")
	if err != nil {
		return nil, &PrintError{Message: "failed to create temp dir", Cause: err}
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "resume.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, &PrintError{Message: "failed to write temp HTML", Cause: err}
	}

	var pdfBuf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &PrintError{Message: "headless Chrome print failed", Cause: err}
	}
	return pdfBuf, nil
}
