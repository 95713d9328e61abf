// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gemini is a thin client for the Gemini generateContent API. The
// OCR cleaner and the song suggester each construct their own client; no
// adapter reaches into another's state.
//
// See docs/ARCHITECTURE § LLM Adapters.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultModel is the generative model used when none is configured.
const DefaultModel = "gemini-2.5-flash-lite-preview-06-17"

// apiBase is the Gemini models endpoint. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://generativelanguage.googleapis.com/v1beta/models"

// ErrNoAPIKey is returned when the client has no key configured. Callers
// treat it as a degraded (empty) adapter, never as a fatal condition.
var ErrNoAPIKey = errors.New("gemini API key not configured")

// GenerationConfig carries the sampling parameters for one call. The
// values are part of each adapter's contract.
type GenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// Client calls the generateContent endpoint for a single model.
type Client struct {
	APIKey string
	Model  string
	HTTP   *http.Client
}

// Configured reports whether the client can make calls.
func (c *Client) Configured() bool {
	return c != nil && c.APIKey != ""
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateContent sends the prompt and returns the first candidate's text.
func (c *Client) GenerateContent(ctx context.Context, prompt string, gen GenerationConfig) (string, error) {
	if !c.Configured() {
		return "", ErrNoAPIKey
	}

	model := c.Model
	if model == "" {
		model = DefaultModel
	}

	reqBody := generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: gen,
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", apiBase, model, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling Gemini API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Gemini API returned %d: %s", resp.StatusCode, string(body))
	}

	var gResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gResp); err != nil {
		return "", fmt.Errorf("decoding Gemini response: %w", err)
	}

	if len(gResp.Candidates) == 0 || len(gResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("Gemini API returned no candidates")
	}
	return gResp.Candidates[0].Content.Parts[0].Text, nil
}
