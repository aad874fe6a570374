package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-architect/internal/types"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestFileStore_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save("resume", []byte(`{"a":1}`)))
	data, err := s.Load("resume")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(data))
}

func TestFileStore_MissingKey(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Load("nothing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_SaveReplaces(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save("resume", []byte(`{"v":1}`)))
	require.NoError(t, s.Save("resume", []byte(`{"v":2}`)))

	data, err := s.Load("resume")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":2}`, string(data))
}

func TestDocumentRoundTrip(t *testing.T) {
	doc := types.DefaultResume()

	data, err := EncodeDocument(doc)
	require.NoError(t, err)

	decoded, err := DecodeDocument(data)
	require.NoError(t, err)
	assert.Equal(t, doc, decoded)
}

func TestDecodeDocument_RejectsMissingFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", `{{{`},
		{"empty object", `{}`},
		{"missing theme", `{"personalInfo":{"name":"X"},"sections":[]}`},
		{"missing sections", `{"personalInfo":{"name":"X"},"theme":{"color":"default","font":"inter"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeDocument([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestLoadDocument_SeedWhenEmpty(t *testing.T) {
	s := newTestStore(t)

	doc, err := LoadDocument(s)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultResume(), doc)
}

func TestLoadDocument_SeedWhenCorrupt(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(DocumentKey, []byte(`{"garbage":true}`)))

	doc, err := LoadDocument(s)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultResume(), doc)
}

func TestSaveThenLoadDocument(t *testing.T) {
	s := newTestStore(t)

	doc := types.DefaultResume()
	doc.PersonalInfo.Name = "Saved Name"
	require.NoError(t, SaveDocument(s, doc))

	loaded, err := LoadDocument(s)
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)
}
