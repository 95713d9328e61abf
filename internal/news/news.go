// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package news federates date-based article queries across heterogeneous
// newspaper archives. Era routing picks the adapters, historical adapters
// run concurrently, and every adapter failure is captured and treated as an
// empty result: partial information beats none.
//
// See docs/ARCHITECTURE § News Federation.
package news

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/pdiddy/chronicle/internal/era"
	"github.com/pdiddy/chronicle/pkg/types"
)

// DefaultMaxArticles caps the federator output.
const DefaultMaxArticles = 10

// Adapter queries a single newspaper archive for one date. Each adapter
// (Trove, Chronicling America, Guardian) implements this interface per the
// Strategy pattern.
type Adapter interface {
	Name() string
	Source() types.SourceTag
	FetchForDate(ctx context.Context, d era.Date) ([]types.Article, error)
}

// Fetcher routes a date to the adapters that can serve it and merges their
// output. It holds no state between calls and is safe for concurrent use.
type Fetcher struct {
	// Historical adapters fan out together for historic years. Output
	// keeps this slice's order regardless of completion order.
	Historical []Adapter

	// Modern serves years from 1999 onwards and leads the gap-year
	// fallback chain.
	Modern Adapter

	// MaxArticles caps the merged output (default 10).
	MaxArticles int

	Log *zap.Logger
}

// FetchForDate returns the articles published on d, tagged with their
// source, capped at MaxArticles. It never returns an error: failed
// adapters contribute nothing.
func (f *Fetcher) FetchForDate(ctx context.Context, d era.Date) []types.Article {
	var articles []types.Article

	switch era.NewsEraFor(d.Year) {
	case era.NewsHistoric:
		articles = f.fanOut(ctx, d)

	case era.NewsModern:
		articles = f.call(ctx, f.Modern, d)

	default: // gap years: modern first, historical fallback
		articles = f.call(ctx, f.Modern, d)
		if len(articles) == 0 {
			for _, a := range f.Historical {
				articles = append(articles, f.call(ctx, a, d)...)
			}
		}
	}

	return f.cap(articles)
}

// fanOut queries all historical adapters concurrently. Results land in a
// slot per adapter so the merged order follows f.Historical, not
// completion order.
func (f *Fetcher) fanOut(ctx context.Context, d era.Date) []types.Article {
	results := make([][]types.Article, len(f.Historical))

	var wg sync.WaitGroup
	for i, a := range f.Historical {
		wg.Add(1)
		go func(i int, a Adapter) {
			defer wg.Done()
			results[i] = f.call(ctx, a, d)
		}(i, a)
	}
	wg.Wait()

	var merged []types.Article
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged
}

// call invokes one adapter and tags its articles. Errors are logged and
// become an empty result.
func (f *Fetcher) call(ctx context.Context, a Adapter, d era.Date) []types.Article {
	if a == nil {
		return nil
	}

	articles, err := a.FetchForDate(ctx, d)
	if err != nil {
		f.log().Warn("news adapter failed",
			zap.String("adapter", a.Name()),
			zap.String("date", d.String()),
			zap.Error(err))
		return nil
	}

	tag := a.Source()
	for i := range articles {
		articles[i].Source = tag
	}
	return articles
}

func (f *Fetcher) cap(articles []types.Article) []types.Article {
	max := f.MaxArticles
	if max <= 0 {
		max = DefaultMaxArticles
	}
	if len(articles) > max {
		articles = articles[:max]
	}
	return articles
}

func (f *Fetcher) log() *zap.Logger {
	if f.Log == nil {
		return zap.NewNop()
	}
	return f.Log
}
