// Package server provides the HTTP REST API for the resume architect.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-architect/internal/ai"
	"github.com/jonathan/resume-architect/internal/extraction"
	"github.com/jonathan/resume-architect/internal/printing"
	"github.com/jonathan/resume-architect/internal/rendering"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrServiceUnavailable indicates a required integration is not configured
type ErrServiceUnavailable struct {
	Service string
}

func (e *ErrServiceUnavailable) Error() string {
	return fmt.Sprintf("%s is not configured", e.Service)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	var unavailableErr *ErrServiceUnavailable
	if errors.As(err, &unavailableErr) {
		return http.StatusServiceUnavailable
	}

	var unsupportedErr *extraction.UnsupportedFormatError
	if errors.As(err, &unsupportedErr) {
		return http.StatusUnsupportedMediaType
	}

	var extractionErr *extraction.ExtractionError
	if errors.As(err, &extractionErr) {
		return http.StatusBadRequest
	}

	var serviceErr *ai.ValidationError
	if errors.As(err, &serviceErr) {
		return http.StatusBadGateway
	}

	var templateErr *rendering.TemplateError
	var renderErr *rendering.RenderError
	if errors.As(err, &templateErr) || errors.As(err, &renderErr) {
		return http.StatusInternalServerError
	}

	var printErr *printing.PrintError
	if errors.As(err, &printErr) {
		return http.StatusInternalServerError
	}

	return http.StatusInternalServerError
}
