// Package store persists the resume document as a JSON blob. A Store is a
// plain key-value blob store; the document codec on top performs the minimal
// presence validation the load path requires, substituting the seed document
// for anything unusable.
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-architect/internal/types"
)

// DocumentKey is the blob key under which the session document is persisted.
const DocumentKey = "resume"

// ErrNotFound indicates no blob exists for a key.
var ErrNotFound = errors.New("blob not found")

// Store is a simple key-value blob store.
type Store interface {
	// Load returns the blob for a key, or ErrNotFound.
	Load(key string) ([]byte, error)
	// Save writes the blob for a key, replacing any previous value.
	Save(key string, data []byte) error
	// Close releases any resources held by the store.
	Close() error
}

// documentEnvelope is the presence check applied to loaded and imported
// blobs: the three required top-level fields must be present and non-empty.
// No schema-level field validation happens beyond this; the tagged-union
// section decode enforces content shape separately.
type documentEnvelope struct {
	PersonalInfo json.RawMessage `json:"personalInfo" validate:"required"`
	Sections     json.RawMessage `json:"sections" validate:"required"`
	Theme        json.RawMessage `json:"theme" validate:"required"`
}

var validate = validator.New()

// DecodeDocument parses a JSON blob into a document, rejecting blobs missing
// the required top-level fields.
func DecodeDocument(data []byte) (types.ResumeData, error) {
	var envelope documentEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return types.ResumeData{}, fmt.Errorf("failed to parse document JSON: %w", err)
	}
	if err := validate.Struct(&envelope); err != nil {
		return types.ResumeData{}, fmt.Errorf("document is missing required fields: %w", err)
	}

	var doc types.ResumeData
	if err := json.Unmarshal(data, &doc); err != nil {
		return types.ResumeData{}, fmt.Errorf("failed to decode document: %w", err)
	}
	return doc, nil
}

// EncodeDocument serializes a document to its canonical indented JSON form,
// the same format used for export files.
func EncodeDocument(doc types.ResumeData) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return data, nil
}

// LoadDocument hydrates the session document from the store. A missing or
// invalid blob is discarded in favor of the default seed document; load never
// fails with anything other than a backend error.
func LoadDocument(s Store) (types.ResumeData, error) {
	data, err := s.Load(DocumentKey)
	if errors.Is(err, ErrNotFound) {
		return types.DefaultResume(), nil
	}
	if err != nil {
		return types.ResumeData{}, err
	}

	doc, err := DecodeDocument(data)
	if err != nil {
		// A corrupt blob is not fatal: start from the seed.
		return types.DefaultResume(), nil
	}
	return doc, nil
}

// SaveDocument persists the session document. Called after every mutation.
func SaveDocument(s Store, doc types.ResumeData) error {
	data, err := EncodeDocument(doc)
	if err != nil {
		return err
	}
	return s.Save(DocumentKey, data)
}
