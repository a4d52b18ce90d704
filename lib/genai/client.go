// Package genai wraps the external text-generation HTTP API. The service
// is a presentation enhancement only: callers must be able to answer
// without it, so failures are reported as typed sentinel errors the
// dispatcher can branch on instead of bubbling raw HTTP errors.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	// ErrRateLimited signals a transient 429: the caller may retry once
	// after a short backoff.
	ErrRateLimited = errors.New("generation service rate limited")

	// ErrQuotaExhausted signals the account quota is spent. Retrying is
	// pointless; callers must degrade immediately.
	ErrQuotaExhausted = errors.New("generation service quota exhausted")
)

// Generator produces a natural-language answer for a prompt. The HTTP
// client implements it; tests substitute fakes.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Client calls the generation REST endpoint.
type Client struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a generation client. An empty endpoint selects the
// default public API URL.
func NewClient(apiKey, endpoint string) *Client {
	if endpoint == "" {
		endpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"
	}
	return &Client{
		apiKey:   apiKey,
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends the prompt and returns the first candidate text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil && resp.StatusCode == http.StatusOK {
		return "", err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to candidate extraction
	case http.StatusTooManyRequests:
		if parsed.Error != nil && parsed.Error.Status == "RESOURCE_EXHAUSTED" {
			return "", ErrQuotaExhausted
		}
		return "", ErrRateLimited
	case http.StatusForbidden:
		return "", ErrQuotaExhausted
	default:
		return "", fmt.Errorf("generation request failed with status %d", resp.StatusCode)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("generation response contained no candidates")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
