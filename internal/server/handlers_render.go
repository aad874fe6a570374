package server

import (
	"net/http"

	"github.com/jonathan/resume-architect/internal/rendering"
	"github.com/jonathan/resume-architect/internal/themes"
	"github.com/jonathan/resume-architect/internal/types"
)

// ---------------------------------------------------------------------
// Output Handlers
// ---------------------------------------------------------------------

// handleRender returns the rendered HTML for the current document. An
// optional ?layout= query overrides the document's layout for this response
// without persisting it.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	doc := s.session.Document()

	layout := doc.Layout
	if override := r.URL.Query().Get("layout"); override != "" {
		layout = types.Layout(override)
	}

	html, err := rendering.RenderLayout(doc, layout)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to render document: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(html)); err != nil {
		return
	}
}

// handlePrintPDF renders the current document and prints it to PDF through
// headless Chrome.
func (s *Server) handlePrintPDF(w http.ResponseWriter, r *http.Request) {
	doc := s.session.Document()

	html, err := rendering.Render(doc)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to render document: "+err.Error())
		return
	}

	pdf, err := s.printer.PrintHTML(r.Context(), html)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to print PDF: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		return
	}
}

// ---------------------------------------------------------------------
// Catalog Handlers
// ---------------------------------------------------------------------

func (s *Server) handleListThemes(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"colors": themes.Colors(),
		"fonts":  themes.Fonts(),
	})
}

func (s *Server) handleListLayouts(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"layouts": types.Layouts(),
	})
}
