package extraction

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSniff(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected Format
	}{
		{"plain text", []byte("John Doe\nSoftware Engineer"), FormatText},
		{"pdf header", []byte("%PDF-1.7 rest of file"), FormatPDF},
		{"legacy doc header", []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1}, FormatWord},
		{"docx zip header", []byte("PK\x03\x04rest"), FormatWord},
		{"invalid utf8", []byte{0xFF, 0xFE, 0x00, 0x01}, FormatBinary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sniff(tt.data))
		})
	}
}

func TestExtractTextPlainText(t *testing.T) {
	input := "Jane Doe\njane@example.com\n\nExperience: things"
	text, err := ExtractText([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, input, text)
}

func TestExtractTextEmpty(t *testing.T) {
	_, err := ExtractText(nil)
	require.Error(t, err)

	var extractionErr *ExtractionError
	assert.True(t, errors.As(err, &extractionErr))
}

func TestExtractTextSizeLimit(t *testing.T) {
	oversized := bytes.Repeat([]byte("a"), MaxUploadSize+1)
	_, err := ExtractText(oversized)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit")
}

func TestExtractTextWordUnsupported(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"legacy doc", []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}},
		{"docx", []byte("PK\x03\x04\x14\x00\x06\x00")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractText(tt.data)
			require.Error(t, err)

			var unsupportedErr *UnsupportedFormatError
			require.True(t, errors.As(err, &unsupportedErr))
			assert.Contains(t, err.Error(), "unsupported")
		})
	}
}

func TestExtractTextBinaryUnsupported(t *testing.T) {
	_, err := ExtractText([]byte{0x00, 0xFF, 0xFE, 0x80, 0x81})
	require.Error(t, err)

	var unsupportedErr *UnsupportedFormatError
	assert.True(t, errors.As(err, &unsupportedErr))
}

func TestExtractTextMalformedPDF(t *testing.T) {
	_, err := ExtractText([]byte("%PDF-1.7 but not actually a valid pdf body"))
	require.Error(t, err)

	var extractionErr *ExtractionError
	require.True(t, errors.As(err, &extractionErr))
	assert.True(t, strings.Contains(err.Error(), "PDF") || strings.Contains(err.Error(), "pdf"))
}
