// Package extraction turns raw uploaded document bytes into best-effort plain
// text for the resume parsing flow. Plain text and PDF are supported; legacy
// word-processor formats are reported as unsupported without a fallback parse.
package extraction

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// MaxUploadSize caps uploads at 5MB, matching the editor's file picker.
const MaxUploadSize = 5 * 1024 * 1024

// Format identifies the sniffed input format.
type Format string

// Formats recognized by Sniff.
const (
	FormatText   Format = "text"
	FormatPDF    Format = "pdf"
	FormatWord   Format = "word"
	FormatBinary Format = "binary"
)

var (
	pdfMagic = []byte("%PDF")
	// Legacy .doc files use the OLE compound file header; .docx is a zip.
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0}
	zipMagic = []byte("PK\x03\x04")
)

// Sniff identifies the input format from its leading bytes.
func Sniff(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, pdfMagic):
		return FormatPDF
	case bytes.HasPrefix(data, oleMagic), bytes.HasPrefix(data, zipMagic):
		return FormatWord
	case utf8.Valid(data):
		return FormatText
	default:
		return FormatBinary
	}
}

// ExtractText returns best-effort plain text from raw document bytes.
// Word documents and unrecognized binary data fail with
// UnsupportedFormatError; a PDF that yields no text fails with
// ExtractionError.
func ExtractText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", &ExtractionError{Message: "empty upload"}
	}
	if len(data) > MaxUploadSize {
		return "", &ExtractionError{Message: fmt.Sprintf("upload exceeds %d byte limit", MaxUploadSize)}
	}

	switch Sniff(data) {
	case FormatPDF:
		return extractPDF(data)
	case FormatText:
		return string(data), nil
	case FormatWord:
		return "", &UnsupportedFormatError{Format: "doc/docx"}
	default:
		return "", &UnsupportedFormatError{Format: "binary"}
	}
}

// extractPDF walks the PDF page by page, collecting whatever text each page
// yields. Pages that fail to parse are skipped rather than failing the
// document.
func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Message: "failed to open PDF", Cause: err}
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if text == "" {
			continue
		}

		if builder.Len() > 0 {
			builder.WriteString("\n\n")
		}
		builder.WriteString(text)
	}

	if builder.Len() == 0 {
		// Likely an image-based scan with no text layer.
		return "", &ExtractionError{Message: "no text content found in PDF"}
	}
	return builder.String(), nil
}
