package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-architect/internal/printing"
	"github.com/jonathan/resume-architect/internal/rendering"
	"github.com/jonathan/resume-architect/internal/store"
	"github.com/jonathan/resume-architect/internal/types"
)

var (
	renderDataDir string
	renderLayout  string
	renderOutput  string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the stored resume to HTML or PDF",
	Long:  `Load the persisted resume document and write it out as an HTML page, or as a PDF when the output path ends in .pdf.`,
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderDataDir, "data-dir", "data", "Directory for file-based document storage")
	renderCmd.Flags().StringVar(&renderLayout, "layout", "", "Template layout override (modern, corporate, creative, minimalist, two-column, artistic)")
	renderCmd.Flags().StringVar(&renderOutput, "output", "resume.html", "Output file path")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	st, err := store.NewFileStore(renderDataDir)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	doc, err := store.LoadDocument(st)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	layout := doc.Layout
	if renderLayout != "" {
		layout = types.Layout(renderLayout)
		if !layout.IsValid() {
			return fmt.Errorf("unknown layout: %s", renderLayout)
		}
	}

	html, err := rendering.RenderLayout(doc, layout)
	if err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}

	if strings.HasSuffix(renderOutput, ".pdf") {
		printer := printing.NewPrinter(os.Getenv("CHROME_PATH"))
		pdf, err := printer.PrintHTML(cmd.Context(), html)
		if err != nil {
			return fmt.Errorf("failed to print PDF: %w", err)
		}
		if err := os.WriteFile(renderOutput, pdf, 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		if err := os.WriteFile(renderOutput, []byte(html), 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	fmt.Printf("Wrote %s\n", renderOutput)
	return nil
}
