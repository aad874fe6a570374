package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/jonathan/resume-architect/internal/editor"
	"github.com/jonathan/resume-architect/internal/store"
	"github.com/jonathan/resume-architect/internal/types"
)

// ---------------------------------------------------------------------
// Document Handlers
// ---------------------------------------------------------------------

func (s *Server) handleGetDocument(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.session.Document())
}

// handleReplaceDocument swaps in a whole new document. The body must pass the
// same shape checks as an imported file.
func (s *Server) handleReplaceDocument(w http.ResponseWriter, r *http.Request) {
	s.importDocument(w, r)
}

// handleImport accepts a raw resume JSON file body and replaces the current
// document with it.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	s.importDocument(w, r)
}

func (s *Server) importDocument(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	doc, err := store.DecodeDocument(body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume document: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, s.session.Replace(doc))
}

// handleExport serves the current document as a downloadable JSON file.
func (s *Server) handleExport(w http.ResponseWriter, _ *http.Request) {
	data, err := store.EncodeDocument(s.session.Document())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to encode document: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.json"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		return
	}
}

type UpdatePersonalRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (s *Server) handleUpdatePersonal(w http.ResponseWriter, r *http.Request) {
	var req UpdatePersonalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Field == "" {
		s.errorResponse(w, http.StatusBadRequest, "Field is required")
		return
	}

	doc := s.session.Update(func(d types.ResumeData) types.ResumeData {
		return editor.UpdatePersonalField(d, req.Field, req.Value)
	})
	s.jsonResponse(w, http.StatusOK, doc)
}

func (s *Server) handleUpdateTheme(w http.ResponseWriter, r *http.Request) {
	var patch editor.ThemePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	doc := s.session.Update(func(d types.ResumeData) types.ResumeData {
		return editor.SetTheme(d, patch)
	})
	s.jsonResponse(w, http.StatusOK, doc)
}

type UpdateLayoutRequest struct {
	Layout types.Layout `json:"layout"`
}

func (s *Server) handleUpdateLayout(w http.ResponseWriter, r *http.Request) {
	var req UpdateLayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !req.Layout.IsValid() {
		s.errorResponse(w, http.StatusBadRequest, "Unknown layout: "+string(req.Layout))
		return
	}

	doc := s.session.Update(func(d types.ResumeData) types.ResumeData {
		return editor.SetLayout(d, req.Layout)
	})
	s.jsonResponse(w, http.StatusOK, doc)
}
