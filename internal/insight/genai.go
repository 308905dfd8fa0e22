// ABOUTME: Transport backed by the google.golang.org/genai SDK.
// ABOUTME: Same single generateContent round trip as the REST transport.
package insight

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// GenAIGenerator calls Gemini through the official SDK.
type GenAIGenerator struct {
	client *genai.Client
	model  string
}

var _ Generator = (*GenAIGenerator)(nil)

// NewGenAIGenerator creates an SDK client. baseURL uses the same form as the
// REST transport; a trailing API version segment is split off for the SDK.
func NewGenAIGenerator(ctx context.Context, apiKey, model, baseURL string, httpClient *http.Client) (*GenAIGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("genai API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if baseURL != "" {
		root, version := splitAPIVersion(baseURL)
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: root, APIVersion: version}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GenAIGenerator{client: client, model: model}, nil
}

// Generate sends prompt and returns the first candidate's first text part.
func (g *GenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrNoText
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 || content.Parts[0] == nil || content.Parts[0].Text == "" {
		return "", ErrNoText
	}
	return content.Parts[0].Text, nil
}

// splitAPIVersion turns "https://host/v1beta" into ("https://host/", "v1beta").
func splitAPIVersion(baseURL string) (string, string) {
	trimmed := strings.TrimRight(baseURL, "/")
	i := strings.LastIndex(trimmed, "/")
	if i < 0 {
		return baseURL, ""
	}
	last := trimmed[i+1:]
	if !strings.HasPrefix(last, "v1") {
		return trimmed + "/", ""
	}
	return trimmed[:i+1], last
}
