package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/resume-architect/internal/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// pageTemplates holds the six layout templates plus shared partials, parsed
// once at startup. A parse failure here is a packaging defect.
var pageTemplates = template.Must(template.New("resume").ParseFS(templateFS, "templates/*.tmpl"))

// Render projects the document into HTML using its own layout. Rendering is a
// pure function of the document: identical input always yields identical
// output, and the document is never mutated.
func Render(doc types.ResumeData) (string, error) {
	return RenderLayout(doc, doc.Layout)
}

// RenderLayout projects the document through an explicit layout, falling back
// to the modern template when the layout is not one of the fixed identifiers.
func RenderLayout(doc types.ResumeData, layout types.Layout) (string, error) {
	if !layout.IsValid() {
		layout = types.LayoutModern
	}

	view := buildPageView(doc, layout)

	var buf strings.Builder
	if err := pageTemplates.ExecuteTemplate(&buf, string(layout), view); err != nil {
		return "", &TemplateError{
			Message: fmt.Sprintf("failed to execute %s template", layout),
			Cause:   err,
		}
	}
	return buf.String(), nil
}
