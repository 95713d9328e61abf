// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package daily is the thin driver tying the federators together: pick or
// accept a date, fetch its news with retry-by-substitution, fetch its
// music, and hand back a digest. Upstream coverage is sparse, so a
// deterministic second-chance date beats random retries; the substitution
// chain is bounded at two extra attempts.
//
// See docs/ARCHITECTURE § Driver.
package daily

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/chronicle/internal/era"
	"github.com/pdiddy/chronicle/pkg/types"
)

// NewsFetcher is the news federator surface the driver needs.
type NewsFetcher interface {
	FetchForDate(ctx context.Context, d era.Date) []types.Article
}

// MusicFetcher is the music federator surface the driver needs.
type MusicFetcher interface {
	FetchForDate(ctx context.Context, date string) types.MusicResult
}

// Digest is everything the world read and listened to on one date.
type Digest struct {
	Date     era.Date          `json:"date" yaml:"date"`
	Source   types.SourceInfo  `json:"source" yaml:"source"`
	Articles []types.Article   `json:"articles" yaml:"articles"`
	Music    types.MusicResult `json:"music" yaml:"music"`
}

// Service drives digest assembly. Rand and Now are injectable for tests.
// A Service is not safe for concurrent use; construct one per request.
type Service struct {
	News  NewsFetcher
	Music MusicFetcher
	Rand  *rand.Rand
	Now   func() time.Time
	Log   *zap.Logger
}

// DigestForDate fetches news (with substitution fallback) and music for d.
// The returned digest carries the date that actually produced articles,
// which may differ from the input.
func (s *Service) DigestForDate(ctx context.Context, d era.Date) Digest {
	d = d.ClampDay()
	articles, got := s.fetchWithFallback(ctx, d)

	digest := Digest{
		Date:     got,
		Source:   era.SourceInfoFor(got.Year),
		Articles: articles,
	}
	if s.Music != nil {
		digest.Music = s.Music.FetchForDate(ctx, got.String())
	}
	return digest
}

// RandomDigest picks a uniform random date across the archive span and
// builds its digest.
func (s *Service) RandomDigest(ctx context.Context) Digest {
	return s.DigestForDate(ctx, era.RandomDate(s.rand(), s.now().Year()))
}

// fetchWithFallback applies the retry-by-substitution policy: the original
// date, then mid-June of the same year, then one resample within the same
// era bucket. Exactly two substitutions, no more.
func (s *Service) fetchWithFallback(ctx context.Context, d era.Date) ([]types.Article, era.Date) {
	articles := s.News.FetchForDate(ctx, d)
	if len(articles) > 0 || ctx.Err() != nil {
		return articles, d
	}

	second := era.Date{Year: d.Year, Month: 6, Day: 15}
	s.log().Info("no articles, substituting mid-year date",
		zap.String("from", d.String()), zap.String("to", second.String()))
	articles = s.News.FetchForDate(ctx, second)
	if len(articles) > 0 || ctx.Err() != nil {
		return articles, second
	}

	r := s.rand()
	third := era.Date{
		Year:  era.ResampleYear(r, d.Year, s.now().Year()),
		Month: 1 + r.Intn(12),
		Day:   1 + r.Intn(28),
	}
	s.log().Info("still no articles, resampling within era",
		zap.String("from", second.String()), zap.String("to", third.String()))
	return s.News.FetchForDate(ctx, third), third
}

func (s *Service) rand() *rand.Rand {
	if s.Rand == nil {
		s.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s.Rand
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Service) log() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}
