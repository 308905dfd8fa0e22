// ABOUTME: Direct REST transport for the Gemini generateContent endpoint.
// ABOUTME: One POST per call; any non-2xx status is returned as an error.
package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Defaults for the Gemini API.
const (
	DefaultModel   = "gemini-2.0-flash"
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
)

// Doer sends an HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RESTGenerator calls generateContent over plain HTTP.
type RESTGenerator struct {
	apiKey  string
	model   string
	baseURL string
	client  Doer
}

var _ Generator = (*RESTGenerator)(nil)

// NewRESTGenerator creates a REST transport. Empty model, baseURL or client
// fall back to the defaults.
func NewRESTGenerator(apiKey, model, baseURL string, client Doer) *RESTGenerator {
	if model == "" {
		model = DefaultModel
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &RESTGenerator{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

type restPart struct {
	Text string `json:"text"`
}

type restContent struct {
	Parts []restPart `json:"parts"`
}

type restRequest struct {
	Contents []restContent `json:"contents"`
}

type restResponse struct {
	Candidates []struct {
		Content restContent `json:"content"`
	} `json:"candidates"`
}

// Generate sends prompt and returns the first candidate's first text part.
func (g *RESTGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(restRequest{
		Contents: []restContent{{Parts: []restPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, url.QueryEscape(g.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		// url.Error repeats the endpoint, which carries the key.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("request failed with status code %d", resp.StatusCode)
	}

	var parsed restResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", ErrNoText
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", ErrNoText
	}
	text := parsed.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}
