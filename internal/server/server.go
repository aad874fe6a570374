// Package server provides the HTTP REST API for the resume architect.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/resume-architect/internal/ai"
	"github.com/jonathan/resume-architect/internal/config"
	"github.com/jonathan/resume-architect/internal/printing"
	"github.com/jonathan/resume-architect/internal/store"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      store.Store
	session    *Session
	ai         ai.Client
	printer    *printing.Printer
}

// New creates a new server instance. The text service client is optional;
// when nil the AI endpoints return 503.
func New(cfg config.Config, st store.Store, client ai.Client) (*Server, error) {
	session, err := NewSession(st)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	s := &Server{
		store:   st,
		session: session,
		ai:      client,
		printer: printing.NewPrinter(cfg.ChromePath),
	}

	// Setup router
	mux := http.NewServeMux()

	// Document endpoints
	mux.HandleFunc("GET /document", s.handleGetDocument)
	mux.HandleFunc("PUT /document", s.handleReplaceDocument)
	mux.HandleFunc("POST /document/personal", s.handleUpdatePersonal)
	mux.HandleFunc("PUT /document/theme", s.handleUpdateTheme)
	mux.HandleFunc("PUT /document/layout", s.handleUpdateLayout)

	// Section endpoints
	mux.HandleFunc("POST /document/sections", s.handleAddSection)
	mux.HandleFunc("POST /document/sections/reorder", s.handleReorderSections)
	mux.HandleFunc("DELETE /document/sections/{id}", s.handleRemoveSection)
	mux.HandleFunc("PUT /document/sections/{id}/title", s.handleUpdateSectionTitle)
	mux.HandleFunc("PUT /document/sections/{id}/content", s.handleUpdateSectionContent)
	mux.HandleFunc("PUT /document/sections/{id}/visible", s.handleSetSectionVisible)
	mux.HandleFunc("POST /document/sections/{id}/items", s.handleAddItem)
	mux.HandleFunc("PUT /document/sections/{id}/items/{index}", s.handleUpdateItem)
	mux.HandleFunc("DELETE /document/sections/{id}/items/{index}", s.handleRemoveItem)

	// Output endpoints
	mux.HandleFunc("GET /document/render", s.handleRender)
	mux.HandleFunc("GET /document/pdf", s.handlePrintPDF)
	mux.HandleFunc("GET /document/export", s.handleExport)
	mux.HandleFunc("POST /document/import", s.handleImport)

	// Text service endpoints
	mux.HandleFunc("POST /ai/improve", s.handleImprove)
	mux.HandleFunc("POST /ai/parse", s.handleParse)
	mux.HandleFunc("POST /ai/enhance", s.handleEnhance)
	mux.HandleFunc("POST /extract-text", s.handleExtractText)

	// Catalog endpoints
	mux.HandleFunc("GET /themes", s.handleListThemes)
	mux.HandleFunc("GET /layouts", s.handleListLayouts)
	mux.HandleFunc("GET /health", s.handleHealth)

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Long timeout for PDF printing
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.ai != nil {
		if err := s.ai.Close(); err != nil {
			log.Printf("Error closing text service client: %v", err)
		}
	}
	if err := s.store.Close(); err != nil {
		log.Printf("Error closing store: %v", err)
	}

	log.Println("Server stopped")
	return nil
}

// Handler returns the configured HTTP handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
