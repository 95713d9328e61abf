// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package music federates popular-song lookups for a date: the year-end
// chart provider leads, the LLM suggester tops up, and every candidate is
// resolved to a streamable video reference. Resolver failures never abort
// the run; they become failed entries in the result.
//
// See docs/ARCHITECTURE § Music Federation.
package music

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/pdiddy/chronicle/internal/era"
	"github.com/pdiddy/chronicle/pkg/types"
)

const (
	// DefaultMaxSongs is the number of songs fetched per date.
	DefaultMaxSongs = 5

	// DefaultThreshold is the resolver similarity floor.
	DefaultThreshold = 0.7

	// resolveInterval is the courtesy wait between successive video
	// searches.
	resolveInterval = time.Second
)

// VideoFinder resolves one song to a video reference.
type VideoFinder interface {
	Find(ctx context.Context, title, artist string, threshold float64) (types.VideoMatch, error)
}

// Fetcher assembles the MusicResult for a date. It holds no state between
// calls and is safe for concurrent use.
type Fetcher struct {
	Chart   ChartAdapter
	Suggest Suggester
	Videos  VideoFinder

	// MaxSongs and Threshold default to DefaultMaxSongs and
	// DefaultThreshold when zero.
	MaxSongs  int
	Threshold float64

	// Limiter paces the resolve loop; nil installs a one-per-second
	// limiter. Tests inject rate.NewLimiter(rate.Inf, 1).
	Limiter *rate.Limiter

	Log *zap.Logger
}

// FetchForDate returns the popular songs for a YYYY-MM-DD date string with
// each song resolved to a video. All failures are folded into the result;
// the method never panics outward and never returns an error value.
func (f *Fetcher) FetchForDate(ctx context.Context, date string) (result types.MusicResult) {
	defer func() {
		if r := recover(); r != nil {
			f.log().Error("music fetch panicked", zap.String("date", date), zap.Any("panic", r))
			result = types.MusicResult{Success: false, Date: date, Error: fmt.Sprintf("Service error: %v", r)}
		}
	}()

	d, err := era.ParseDate(date)
	if err != nil {
		return types.MusicResult{Success: false, Error: fmt.Sprintf("invalid date %q: %v", date, err)}
	}

	if era.MusicEraFor(d.Year) == era.MusicNone {
		return types.MusicResult{
			Success: false,
			Date:    date,
			Error:   fmt.Sprintf("no music data available before %d", era.MusicStartYear),
		}
	}

	songs := f.gatherSongs(ctx, d)
	if len(songs) == 0 {
		return types.MusicResult{
			Success: false,
			Date:    date,
			Error:   fmt.Sprintf("no popular songs found for %s", date),
		}
	}

	results, err := f.resolveAll(ctx, songs)
	if err != nil {
		// Cancelled mid-loop: no partial result.
		return types.MusicResult{Success: false, Date: date, Error: err.Error()}
	}

	successes := 0
	for _, r := range results {
		if r.Status == types.ResolutionSuccess {
			successes++
		}
	}

	return types.MusicResult{
		Success:         true,
		Date:            date,
		TotalSongs:      len(songs),
		SuccessfulFinds: successes,
		Results:         results,
	}
}

// gatherSongs pulls ranked chart entries first, then tops up from the LLM
// suggester. Chart entries keep rank order; LLM entries follow in the
// order the model returned them.
func (f *Fetcher) gatherSongs(ctx context.Context, d era.Date) []types.Song {
	max := f.MaxSongs
	if max <= 0 {
		max = DefaultMaxSongs
	}

	var songs []types.Song
	if era.MusicEraFor(d.Year) == era.MusicCharted && f.Chart != nil {
		songs = f.fromChart(ctx, d.Year, max)
	}

	if remaining := max - len(songs); remaining > 0 && f.Suggest != nil {
		suggested, err := f.Suggest.SuggestSongs(ctx, d, remaining)
		if err != nil {
			f.log().Warn("song suggester failed", zap.String("date", d.String()), zap.Error(err))
		}
		songs = append(songs, suggested...)
	}
	if len(songs) > max {
		songs = songs[:max]
	}
	return songs
}

// fromChart fetches the year-end hot chart, falling back to the pop chart
// when the primary is empty or unavailable.
func (f *Fetcher) fromChart(ctx context.Context, year, max int) []types.Song {
	entries, err := f.Chart.YearEndChart(ctx, year, ChartHot100)
	if err != nil {
		f.log().Warn("chart fetch failed", zap.Int("year", year), zap.String("chart", ChartHot100), zap.Error(err))
	}
	if len(entries) == 0 {
		entries, err = f.Chart.YearEndChart(ctx, year, ChartPopSongs)
		if err != nil {
			f.log().Warn("chart fetch failed", zap.Int("year", year), zap.String("chart", ChartPopSongs), zap.Error(err))
		}
	}

	if len(entries) > max {
		entries = entries[:max]
	}

	songs := make([]types.Song, 0, len(entries))
	for _, e := range entries {
		songs = append(songs, types.Song{
			Title:  e.Title,
			Artist: e.Artist,
			Year:   year,
			Rank:   e.Rank,
			Reason: fmt.Sprintf("Ranked #%d on Billboard Hot 100 in %d", e.Rank, year),
			Source: types.SourceBillboard,
		})
	}
	return songs
}

// resolveAll resolves every song in input order, pacing calls through the
// limiter. Returns an error only when the context is cancelled.
func (f *Fetcher) resolveAll(ctx context.Context, songs []types.Song) ([]types.SongResolution, error) {
	limiter := f.Limiter
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Every(resolveInterval), 1)
	}
	threshold := f.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	results := make([]types.SongResolution, 0, len(songs))
	for _, song := range songs {
		if err := limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("resolve loop cancelled: %w", err)
		}

		match, err := f.Videos.Find(ctx, song.Title, song.Artist, threshold)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("resolve loop cancelled: %w", ctx.Err())
			}
			f.log().Warn("song resolution failed",
				zap.String("title", song.Title),
				zap.String("artist", song.Artist),
				zap.Error(err))
			results = append(results, types.SongResolution{
				Song:   song,
				Status: types.ResolutionFailed,
				Error:  err.Error(),
			})
			continue
		}

		m := match
		results = append(results, types.SongResolution{
			Song:   song,
			Status: types.ResolutionSuccess,
			Video:  &m,
		})
	}
	return results, nil
}

func (f *Fetcher) log() *zap.Logger {
	if f.Log == nil {
		return zap.NewNop()
	}
	return f.Log
}
