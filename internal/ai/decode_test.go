package ai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-architect/internal/types"
)

const parsedOutput = `{
	"personalInfo": {
		"name": "John Smith",
		"email": "john@example.com",
		"phone": "555-0100",
		"address": "Portland, OR",
		"linkedin": "",
		"github": ""
	},
	"sections": [
		{
			"id": "summary1",
			"type": "summary",
			"title": "Summary",
			"visible": true,
			"content": "Backend engineer."
		},
		{
			"id": "exp_section",
			"type": "experience",
			"title": "Experience",
			"visible": true,
			"content": [
				{
					"id": "exp1",
					"title": "Engineer",
					"company": "Acme",
					"location": "Remote",
					"startDate": "2020",
					"endDate": "2023",
					"description": "- Built services"
				}
			]
		}
	]
}`

func TestDecodeParsedResume_AppliesDefaults(t *testing.T) {
	doc, err := decodeParsedResume(parsedOutput)
	require.NoError(t, err)

	assert.Equal(t, "John Smith", doc.PersonalInfo.Name)
	require.Len(t, doc.Sections, 2)
	assert.Equal(t, types.TextContent("Backend engineer."), doc.Sections[0].Content)

	// The service omits theme and layout; the adapter fills the defaults.
	assert.Equal(t, types.Theme{Color: "default", Font: "lexend"}, doc.Theme)
	assert.Equal(t, types.LayoutModern, doc.Layout)

	for _, s := range doc.Sections {
		assert.True(t, s.Visible)
	}
}

func TestDecodeParsedResume_KeepsProvidedTheme(t *testing.T) {
	var withTheme map[string]any
	require.NoError(t, json.Unmarshal([]byte(parsedOutput), &withTheme))
	withTheme["theme"] = map[string]string{"color": "teal", "font": "inter"}
	withTheme["layout"] = "artistic"
	raw, err := json.Marshal(withTheme)
	require.NoError(t, err)

	doc, err := decodeParsedResume(string(raw))
	require.NoError(t, err)
	assert.Equal(t, types.Theme{Color: "teal", Font: "inter"}, doc.Theme)
	assert.Equal(t, types.LayoutArtistic, doc.Layout)
}

func TestDecodeParsedResume_RejectsInvalidOutput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing personalInfo", `{"sections":[]}`},
		{"unknown section type", `{"personalInfo":{"name":"X"},"sections":[{"id":"s1","type":"hobbies","title":"H","visible":true,"content":"x"}]}`},
		{"item without id", `{"personalInfo":{"name":"X"},"sections":[{"id":"s1","type":"experience","title":"E","visible":true,"content":[{"title":"Engineer"}]}]}`},
		{"section without id", `{"personalInfo":{"name":"X"},"sections":[{"type":"summary","title":"S","visible":true,"content":"x"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeParsedResume(tt.raw)
			require.Error(t, err)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestDecodeEnhancedResume_KeepsOriginalPresentation(t *testing.T) {
	original := types.DefaultResume()
	original.Theme = types.Theme{Color: "ocean", Font: "poppins"}
	original.Layout = types.LayoutCreative

	doc, err := decodeEnhancedResume(parsedOutput, original)
	require.NoError(t, err)
	assert.Equal(t, original.Theme, doc.Theme)
	assert.Equal(t, original.Layout, doc.Layout)
}

func TestCleanJSONBlock(t *testing.T) {
	assert.Equal(t, `{"a":1}`, cleanJSONBlock("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanJSONBlock("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanJSONBlock(`{"a":1}`))
}

func TestPrompts_EmbedInput(t *testing.T) {
	assert.Contains(t, improvePrompt("my summary"), "my summary")
	assert.Contains(t, parsePrompt("raw resume text"), "raw resume text")
	assert.Contains(t, enhancePrompt(`{"doc":true}`), `{"doc":true}`)
	// The parse prompt pins the section vocabulary the registry understands.
	assert.Contains(t, parsePrompt("x"), "certifications")
}
