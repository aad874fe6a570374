package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-architect/internal/editor"
	"github.com/jonathan/resume-architect/internal/types"
)

// ---------------------------------------------------------------------
// Section Handlers
// ---------------------------------------------------------------------

type AddSectionRequest struct {
	Type types.SectionType `json:"type"`
}

func (s *Server) handleAddSection(w http.ResponseWriter, r *http.Request) {
	var req AddSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Type == "" {
		s.errorResponse(w, http.StatusBadRequest, "Type is required")
		return
	}

	doc := s.session.Update(func(d types.ResumeData) types.ResumeData {
		return editor.AddSection(d, req.Type)
	})
	s.jsonResponse(w, http.StatusOK, doc)
}

// handleRemoveSection removes a section. An unknown id leaves the document
// unchanged and still returns 200 with the current document.
func (s *Server) handleRemoveSection(w http.ResponseWriter, r *http.Request) {
	sectionID := r.PathValue("id")

	doc := s.session.Update(func(d types.ResumeData) types.ResumeData {
		return editor.RemoveSection(d, sectionID)
	})
	s.jsonResponse(w, http.StatusOK, doc)
}

type UpdateTitleRequest struct {
	Title string `json:"title"`
}

func (s *Server) handleUpdateSectionTitle(w http.ResponseWriter, r *http.Request) {
	sectionID := r.PathValue("id")

	var req UpdateTitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	doc := s.session.Update(func(d types.ResumeData) types.ResumeData {
		return editor.UpdateSectionTitle(d, sectionID, req.Title)
	})
	s.jsonResponse(w, http.StatusOK, doc)
}

// handleUpdateSectionContent accepts a raw JSON body and decodes it through
// the section's declared content type, so a list body can never land on a
// text section or vice versa.
func (s *Server) handleUpdateSectionContent(w http.ResponseWriter, r *http.Request) {
	sectionID := r.PathValue("id")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	current := s.session.Document()
	idx := current.SectionIndex(sectionID)
	if idx < 0 {
		// Unknown section id is a no-op.
		s.jsonResponse(w, http.StatusOK, current)
		return
	}

	content, err := types.DecodeContent(current.Sections[idx].Type, body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid content: "+err.Error())
		return
	}

	doc := s.session.Update(func(d types.ResumeData) types.ResumeData {
		return editor.UpdateSectionContent(d, sectionID, content)
	})
	s.jsonResponse(w, http.StatusOK, doc)
}

type SetVisibleRequest struct {
	Visible bool `json:"visible"`
}

func (s *Server) handleSetSectionVisible(w http.ResponseWriter, r *http.Request) {
	sectionID := r.PathValue("id")

	var req SetVisibleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	doc := s.session.Update(func(d types.ResumeData) types.ResumeData {
		return editor.SetSectionVisible(d, sectionID, req.Visible)
	})
	s.jsonResponse(w, http.StatusOK, doc)
}

type ReorderRequest struct {
	MovedID  string `json:"moved_id"`
	TargetID string `json:"target_id"`
}

func (s *Server) handleReorderSections(w http.ResponseWriter, r *http.Request) {
	var req ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	doc := s.session.Update(func(d types.ResumeData) types.ResumeData {
		return editor.ReorderSections(d, req.MovedID, req.TargetID)
	})
	s.jsonResponse(w, http.StatusOK, doc)
}

// ---------------------------------------------------------------------
// List Item Handlers
// ---------------------------------------------------------------------

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	sectionID := r.PathValue("id")

	doc := s.session.Update(func(d types.ResumeData) types.ResumeData {
		return editor.AddListItem(d, sectionID)
	})
	s.jsonResponse(w, http.StatusOK, doc)
}

type UpdateItemRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	sectionID := r.PathValue("id")
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid item index")
		return
	}

	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Field == "" {
		s.errorResponse(w, http.StatusBadRequest, "Field is required")
		return
	}

	doc := s.session.Update(func(d types.ResumeData) types.ResumeData {
		return editor.UpdateListItem(d, sectionID, index, req.Field, req.Value)
	})
	s.jsonResponse(w, http.StatusOK, doc)
}

func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	sectionID := r.PathValue("id")
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid item index")
		return
	}

	doc := s.session.Update(func(d types.ResumeData) types.ResumeData {
		return editor.RemoveListItem(d, sectionID, index)
	})
	s.jsonResponse(w, http.StatusOK, doc)
}
