// Package ai wraps the external text-improvement service. The rest of the
// system consumes it as a black box: text in, improved or structured text
// out, or failure — a failed call always leaves the document untouched.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/resume-architect/internal/types"
)

// Client is an abstraction over the text service provider
type Client interface {
	// Improve rewrites resume text for readability, clarity, and impact.
	Improve(ctx context.Context, text string) (string, error)
	// ParseFromRawText structures raw resume text into a document, with
	// default theme and layout applied when the service omits them.
	ParseFromRawText(ctx context.Context, text string) (types.ResumeData, error)
	// EnhanceFull rewrites every section of the document in place,
	// preserving its structure.
	EnhanceFull(ctx context.Context, doc types.ResumeData) (types.ResumeData, error)
	// Close releases any resources held by the client
	Close() error
}

// Config holds the model configuration for the text service.
type Config struct {
	Model string
}

// DefaultConfig returns the default Gemini configuration.
func DefaultConfig() *Config {
	return &Config{Model: "gemini-2.5-flash"}
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewClient creates a new text service client.
func NewClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultConfig()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// Improve rewrites resume text for readability, clarity, and impact.
func (c *GeminiClient) Improve(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text to improve")
	}

	improved, err := c.generate(ctx, improvePrompt(text), false)
	if err != nil {
		return "", err
	}
	improved = strings.TrimSpace(improved)
	if improved == "" {
		return "", fmt.Errorf("no usable output from text service")
	}
	return improved, nil
}

// ParseFromRawText structures raw resume text into a document.
func (c *GeminiClient) ParseFromRawText(ctx context.Context, text string) (types.ResumeData, error) {
	if strings.TrimSpace(text) == "" {
		return types.ResumeData{}, fmt.Errorf("no text to parse")
	}

	raw, err := c.generate(ctx, parsePrompt(text), true)
	if err != nil {
		return types.ResumeData{}, err
	}
	return decodeParsedResume(raw)
}

// EnhanceFull rewrites every section of the document, preserving structure.
func (c *GeminiClient) EnhanceFull(ctx context.Context, doc types.ResumeData) (types.ResumeData, error) {
	encoded, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return types.ResumeData{}, err
	}

	raw, err := c.generate(ctx, enhancePrompt(string(encoded)), true)
	if err != nil {
		return types.ResumeData{}, err
	}

	enhanced, err := decodeEnhancedResume(raw, doc)
	if err != nil {
		return types.ResumeData{}, err
	}
	return enhanced, nil
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// generate runs one model call, optionally in JSON mode.
func (c *GeminiClient) generate(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	model := c.client.GenerativeModel(c.config.Model)
	model.SetTemperature(0.1) // Low temperature for consistent output
	if jsonMode {
		model.ResponseMIMEType = "application/json"
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", err
	}
	if jsonMode {
		text = cleanJSONBlock(text)
	}
	return text, nil
}

// extractTextFromResponse extracts text from a Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}

// cleanJSONBlock removes markdown code block wrappers from JSON
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
