// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ocr enriches a single historical article: fetch page metadata,
// pull the raw OCR scan, and run it through the LLM cleaner with
// period-appropriate prompting. Cleanup is best-effort; metadata and text
// retrieval are not.
//
// See docs/ARCHITECTURE § OCR Enrichment.
package ocr

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pdiddy/chronicle/pkg/types"
)

// PageSource serves page metadata and raw OCR text for the historical-US
// archive. *news.LOCAdapter is the production implementation.
type PageSource interface {
	PageDetails(ctx context.Context, articleID string) (types.PageDetails, error)
	PageText(ctx context.Context, textURL string) (string, error)
}

// Pipeline produces unified page records for article identifiers.
type Pipeline struct {
	Pages   PageSource
	Cleaner Cleaner
	Log     *zap.Logger
}

// Enrich fetches and cleans the page behind articleID. A metadata or OCR
// fetch failure returns an error (the caller reports "article not found");
// a cleaner failure silently falls back to the raw text.
func (p *Pipeline) Enrich(ctx context.Context, articleID string) (*types.PageRecord, error) {
	details, err := p.Pages.PageDetails(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("fetching page metadata for %s: %w", articleID, err)
	}
	if details.TextURL == "" {
		return nil, fmt.Errorf("page %s has no OCR text", articleID)
	}

	raw, err := p.Pages.PageText(ctx, details.TextURL)
	if err != nil {
		return nil, fmt.Errorf("fetching OCR text for %s: %w", articleID, err)
	}

	cleaned := raw
	if p.Cleaner != nil {
		cleaned, err = p.Cleaner.Clean(ctx, raw, details.NewspaperName, details.DateIssued)
		if err != nil {
			p.log().Warn("cleaner failed, keeping raw OCR",
				zap.String("article_id", articleID),
				zap.Error(err))
			cleaned = raw
		}
	}

	return &types.PageRecord{
		ArticleID:     articleID,
		NewspaperName: details.NewspaperName,
		DateIssued:    details.DateIssued,
		Sequence:      details.Sequence,
		RawText:       raw,
		CleanedText:   cleaned,
		PDFURL:        details.PDFURL,
		ImageURL:      details.ImageURL,
	}, nil
}

func (p *Pipeline) log() *zap.Logger {
	if p.Log == nil {
		return zap.NewNop()
	}
	return p.Log
}
