package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/jonathan/resume-architect/internal/extraction"
)

// ---------------------------------------------------------------------
// Text Service Handlers
// ---------------------------------------------------------------------

type ImproveRequest struct {
	Text string `json:"text"`
}

type ImproveResponse struct {
	ImprovedText string `json:"improved_text"`
}

func (s *Server) handleImprove(w http.ResponseWriter, r *http.Request) {
	if s.ai == nil {
		err := &ErrServiceUnavailable{Service: "text service"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req ImproveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Text == "" {
		s.errorResponse(w, http.StatusBadRequest, "Text is required")
		return
	}

	improved, err := s.ai.Improve(r.Context(), req.Text)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Text service error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ImproveResponse{ImprovedText: improved})
}

type ParseRequest struct {
	Text string `json:"text"`
}

// handleParse sends raw resume text to the text service and, when the
// response validates, replaces the current document with the parsed one.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if s.ai == nil {
		err := &ErrServiceUnavailable{Service: "text service"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Text == "" {
		s.errorResponse(w, http.StatusBadRequest, "Text is required")
		return
	}

	// The service call runs outside the session lock; edits made meanwhile
	// are overwritten when the parsed document lands.
	parsed, err := s.ai.ParseFromRawText(r.Context(), req.Text)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Text service error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, s.session.Replace(parsed))
}

// handleEnhance sends the whole current document to the text service for a
// full rewrite. On any failure the current document is left untouched.
func (s *Server) handleEnhance(w http.ResponseWriter, r *http.Request) {
	if s.ai == nil {
		err := &ErrServiceUnavailable{Service: "text service"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	enhanced, err := s.ai.EnhanceFull(r.Context(), s.session.Document())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Text service error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, s.session.Replace(enhanced))
}

type ExtractTextResponse struct {
	Text string `json:"text"`
}

// handleExtractText turns an uploaded document body into plain text.
// Unsupported formats get 415 so the client can tell the user to convert
// the file.
func (s *Server) handleExtractText(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, extraction.MaxUploadSize+1))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	text, err := extraction.ExtractText(body)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ExtractTextResponse{Text: text})
}
