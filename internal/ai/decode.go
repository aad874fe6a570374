package ai

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-architect/internal/types"
)

//go:embed schemas/parsed_resume.schema.json
var parsedResumeSchema []byte

// Default presentation applied when the service output lacks theme/layout.
var (
	defaultParsedTheme  = types.Theme{Color: "default", Font: "lexend"}
	defaultParsedLayout = types.LayoutModern
)

// ValidationError represents a schema validation failure with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "service output failed validation"
	}
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "service output failed validation: " + strings.Join(parts, "; ")
}

// validateServiceOutput checks the raw JSON the service returned against the
// parsed-resume schema before any of it touches the document.
func validateServiceOutput(raw string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(parsedResumeSchema),
		gojsonschema.NewStringLoader(raw),
	)
	if err != nil {
		return fmt.Errorf("failed to validate service output: %w", err)
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{}
	for _, desc := range result.Errors() {
		verr.Errors = append(verr.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return verr
}

// decodeParsedResume turns a raw parse response into a complete document,
// applying the default theme and layout when the service omits them.
func decodeParsedResume(raw string) (types.ResumeData, error) {
	if err := validateServiceOutput(raw); err != nil {
		return types.ResumeData{}, err
	}

	var doc types.ResumeData
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return types.ResumeData{}, fmt.Errorf("failed to decode parsed resume: %w", err)
	}

	if doc.Theme == (types.Theme{}) {
		doc.Theme = defaultParsedTheme
	}
	if doc.Layout == "" {
		doc.Layout = defaultParsedLayout
	}
	for i := range doc.Sections {
		doc.Sections[i].Visible = true
	}
	return doc, nil
}

// decodeEnhancedResume turns a raw enhance response into a document, keeping
// the original theme and layout if the service dropped them.
func decodeEnhancedResume(raw string, original types.ResumeData) (types.ResumeData, error) {
	if err := validateServiceOutput(raw); err != nil {
		return types.ResumeData{}, err
	}

	var doc types.ResumeData
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return types.ResumeData{}, fmt.Errorf("failed to decode enhanced resume: %w", err)
	}

	if doc.Theme == (types.Theme{}) {
		doc.Theme = original.Theme
	}
	if doc.Layout == "" {
		doc.Layout = original.Layout
	}
	return doc, nil
}
