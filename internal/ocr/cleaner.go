// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ocr

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"

	"go.uber.org/zap"

	"github.com/pdiddy/chronicle/internal/gemini"
)

// cleanGeneration are the sampling parameters for OCR cleanup. Low
// temperature keeps the model close to the source text.
var cleanGeneration = gemini.GenerationConfig{
	Temperature:     0.1,
	TopK:            40,
	TopP:            0.95,
	MaxOutputTokens: 8192,
}

// cleaningPromptTmpl instructs the model to repair scanner artifacts while
// keeping period-appropriate vocabulary.
var cleaningPromptTmpl = template.Must(template.New("cleaning").Parse(`You are cleaning OCR text from "{{.Newspaper}}" published in {{.Year}}.

The OCR text below is full of errors from scanning old newspapers. Clean it up to be readable while using vocabulary and writing style that would be believable for a {{.Year}} newspaper.

Be aggressive about fixing:
- Character recognition errors (thc→the, w0rd→word, etc.)
- Broken words and spacing
- Missing punctuation
- Line break issues
- Nonsensical text fragments

Use authentic {{.Year}} newspaper language and style. Make it sound like a real newspaper article from that era.

Return only the cleaned text:

{{.Text}}
`))

// Cleaner repairs raw OCR text. Implementations must return the input
// unchanged rather than fail.
type Cleaner interface {
	Clean(ctx context.Context, raw, newspaper, dateIssued string) (string, error)
}

// GeminiCleaner cleans OCR text through the LLM. Without an API key, or on
// any API failure, it returns the raw text unchanged.
type GeminiCleaner struct {
	Client *gemini.Client
	Log    *zap.Logger
}

// Clean returns the cleaned text, or raw when cleanup is unavailable.
func (c *GeminiCleaner) Clean(ctx context.Context, raw, newspaper, dateIssued string) (string, error) {
	if !c.Client.Configured() {
		return raw, nil
	}

	var buf bytes.Buffer
	err := cleaningPromptTmpl.Execute(&buf, struct {
		Newspaper, Year, Text string
	}{newspaper, issueYear(dateIssued), raw})
	if err != nil {
		return raw, fmt.Errorf("rendering cleaning prompt: %w", err)
	}

	cleaned, err := c.Client.GenerateContent(ctx, buf.String(), cleanGeneration)
	if err != nil {
		c.log().Warn("OCR cleanup failed, keeping raw text", zap.String("newspaper", newspaper), zap.Error(err))
		return raw, nil
	}
	if strings.TrimSpace(cleaned) == "" {
		c.log().Warn("OCR cleanup returned empty text, keeping raw", zap.String("newspaper", newspaper))
		return raw, nil
	}
	return cleaned, nil
}

// issueYear extracts the year from a YYYY-MM-DD date_issued value.
func issueYear(dateIssued string) string {
	if i := strings.Index(dateIssued, "-"); i > 0 {
		return dateIssued[:i]
	}
	if dateIssued != "" {
		return dateIssued
	}
	return "unknown"
}

func (c *GeminiCleaner) log() *zap.Logger {
	if c.Log == nil {
		return zap.NewNop()
	}
	return c.Log
}
