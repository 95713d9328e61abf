// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package music

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"golang.org/x/time/rate"

	"github.com/pdiddy/chronicle/internal/era"
	"github.com/pdiddy/chronicle/pkg/types"
)

// --- mocks ---

type mockChart struct {
	charts map[string][]types.ChartEntry
	err    error
	calls  []string
}

func (m *mockChart) YearEndChart(_ context.Context, year int, chart string) ([]types.ChartEntry, error) {
	m.calls = append(m.calls, chart)
	if m.err != nil {
		return nil, m.err
	}
	return m.charts[chart], nil
}

type mockSuggester struct {
	songs []types.Song
	err   error
	gotN  int
}

func (m *mockSuggester) SuggestSongs(_ context.Context, _ era.Date, n int) ([]types.Song, error) {
	m.gotN = n
	if m.err != nil {
		return nil, m.err
	}
	if len(m.songs) > n {
		return m.songs[:n], nil
	}
	return m.songs, nil
}

type mockFinder struct {
	failFor map[string]bool
	calls   int
}

func (m *mockFinder) Find(_ context.Context, title, _ string, _ float64) (types.VideoMatch, error) {
	m.calls++
	if m.failFor[title] {
		return types.VideoMatch{}, fmt.Errorf("no suitable match found for %q", title)
	}
	return types.VideoMatch{ID: "vid-" + title, Similarity: 0.9}, nil
}

func chartEntries(n int) []types.ChartEntry {
	out := make([]types.ChartEntry, n)
	for i := range out {
		out[i] = types.ChartEntry{Title: fmt.Sprintf("Chart Song %d", i+1), Artist: "Chart Artist", Rank: i + 1}
	}
	return out
}

func testFetcher(chart ChartAdapter, suggest Suggester, videos VideoFinder) *Fetcher {
	return &Fetcher{
		Chart:   chart,
		Suggest: suggest,
		Videos:  videos,
		Limiter: rate.NewLimiter(rate.Inf, 1),
	}
}

// --- FetchForDate ---

func TestFetchForDateCharted(t *testing.T) {
	chart := &mockChart{charts: map[string][]types.ChartEntry{ChartHot100: chartEntries(5)}}
	finder := &mockFinder{}
	f := testFetcher(chart, &mockSuggester{}, finder)

	result := f.FetchForDate(context.Background(), "1975-10-31")

	if !result.Success {
		t.Fatalf("Success = false: %s", result.Error)
	}
	if result.TotalSongs != 5 || result.SuccessfulFinds != 5 {
		t.Errorf("TotalSongs = %d, SuccessfulFinds = %d, want 5 and 5", result.TotalSongs, result.SuccessfulFinds)
	}
	if len(result.Results) != 5 {
		t.Fatalf("got %d results", len(result.Results))
	}

	first := result.Results[0]
	if first.Song.Rank != 1 {
		t.Errorf("first song rank = %d, want 1", first.Song.Rank)
	}
	if first.Song.Source != types.SourceBillboard {
		t.Errorf("first song source = %q", first.Song.Source)
	}
	if first.Song.Reason != "Ranked #1 on Billboard Hot 100 in 1975" {
		t.Errorf("first song reason = %q", first.Song.Reason)
	}
	if first.Video == nil || first.Video.ID != "vid-Chart Song 1" {
		t.Errorf("first video = %+v", first.Video)
	}
}

func TestFetchForDateChartTopUp(t *testing.T) {
	chart := &mockChart{charts: map[string][]types.ChartEntry{ChartHot100: chartEntries(2)}}
	suggest := &mockSuggester{songs: []types.Song{
		{Title: "LLM Song A", Artist: "A", Source: types.SourceGemini},
		{Title: "LLM Song B", Artist: "B", Source: types.SourceGemini},
		{Title: "LLM Song C", Artist: "C", Source: types.SourceGemini},
	}}
	f := testFetcher(chart, suggest, &mockFinder{})

	result := f.FetchForDate(context.Background(), "1975-10-31")

	if result.TotalSongs != 5 {
		t.Fatalf("TotalSongs = %d, want 5", result.TotalSongs)
	}
	if suggest.gotN != 3 {
		t.Errorf("suggester asked for %d songs, want 3", suggest.gotN)
	}
	// Chart songs lead, suggestions follow.
	if result.Results[0].Song.Source != types.SourceBillboard {
		t.Errorf("result[0] source = %q", result.Results[0].Song.Source)
	}
	if result.Results[2].Song.Source != types.SourceGemini {
		t.Errorf("result[2] source = %q", result.Results[2].Song.Source)
	}
}

func TestFetchForDateUnchartedUsesSuggesterOnly(t *testing.T) {
	chart := &mockChart{charts: map[string][]types.ChartEntry{ChartHot100: chartEntries(5)}}
	suggest := &mockSuggester{songs: []types.Song{
		{Title: "Fifties Song", Artist: "Crooner", Source: types.SourceGemini},
	}}
	f := testFetcher(chart, suggest, &mockFinder{})

	result := f.FetchForDate(context.Background(), "1955-03-12")

	if len(chart.calls) != 0 {
		t.Errorf("chart called %v for an uncharted year", chart.calls)
	}
	if !result.Success || result.TotalSongs != 1 {
		t.Errorf("result = %+v", result)
	}
}

func TestFetchForDateBeforeMusicData(t *testing.T) {
	f := testFetcher(&mockChart{}, &mockSuggester{}, &mockFinder{})
	result := f.FetchForDate(context.Background(), "1945-05-08")

	if result.Success {
		t.Fatal("Success = true for a pre-1950 date")
	}
	if !strings.Contains(result.Error, "no music data available before 1950") {
		t.Errorf("Error = %q", result.Error)
	}
}

func TestFetchForDateInvalid(t *testing.T) {
	f := testFetcher(&mockChart{}, &mockSuggester{}, &mockFinder{})
	result := f.FetchForDate(context.Background(), "not-a-date")

	if result.Success {
		t.Fatal("Success = true for invalid date")
	}
	if !strings.Contains(result.Error, "invalid date") {
		t.Errorf("Error = %q", result.Error)
	}
}

func TestFetchForDateNoSongsFound(t *testing.T) {
	f := testFetcher(&mockChart{}, &mockSuggester{}, &mockFinder{})
	result := f.FetchForDate(context.Background(), "1975-10-31")

	if result.Success {
		t.Fatal("Success = true with no songs")
	}
	if !strings.Contains(result.Error, "no popular songs found for 1975-10-31") {
		t.Errorf("Error = %q", result.Error)
	}
}

func TestFetchForDatePartialResolution(t *testing.T) {
	chart := &mockChart{charts: map[string][]types.ChartEntry{ChartHot100: chartEntries(3)}}
	finder := &mockFinder{failFor: map[string]bool{"Chart Song 2": true}}
	f := testFetcher(chart, &mockSuggester{}, finder)

	result := f.FetchForDate(context.Background(), "1980-06-01")

	if !result.Success {
		t.Fatalf("Success = false: %s", result.Error)
	}
	if result.SuccessfulFinds != 2 {
		t.Errorf("SuccessfulFinds = %d, want 2", result.SuccessfulFinds)
	}

	failed := result.Results[1]
	if failed.Status != types.ResolutionFailed {
		t.Errorf("result[1] status = %q", failed.Status)
	}
	if failed.Video != nil {
		t.Errorf("failed resolution carries a video: %+v", failed.Video)
	}
	if failed.Error == "" {
		t.Error("failed resolution has no error text")
	}
	// Counts stay consistent with the per-entry statuses.
	if result.TotalSongs != len(result.Results) {
		t.Errorf("TotalSongs = %d, len(Results) = %d", result.TotalSongs, len(result.Results))
	}
}

func TestFetchForDateCancelled(t *testing.T) {
	chart := &mockChart{charts: map[string][]types.ChartEntry{ChartHot100: chartEntries(3)}}
	f := testFetcher(chart, &mockSuggester{}, &mockFinder{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := f.FetchForDate(ctx, "1980-06-01")
	if result.Success {
		t.Fatal("Success = true after cancellation")
	}
	if len(result.Results) != 0 {
		t.Errorf("got %d partial results after cancellation", len(result.Results))
	}
}

type panickyFinder struct{}

func (panickyFinder) Find(_ context.Context, _, _ string, _ float64) (types.VideoMatch, error) {
	panic("index out of range")
}

func TestFetchForDateRecoversPanic(t *testing.T) {
	chart := &mockChart{charts: map[string][]types.ChartEntry{ChartHot100: chartEntries(1)}}
	f := testFetcher(chart, &mockSuggester{}, panickyFinder{})

	result := f.FetchForDate(context.Background(), "1980-06-01")
	if result.Success {
		t.Fatal("Success = true after panic")
	}
	if !strings.HasPrefix(result.Error, "Service error:") {
		t.Errorf("Error = %q", result.Error)
	}
}

// --- chart fallback ---

func TestFromChartFallsBackToPopSongs(t *testing.T) {
	chart := &mockChart{charts: map[string][]types.ChartEntry{
		ChartPopSongs: chartEntries(2),
	}}
	f := testFetcher(chart, nil, &mockFinder{})

	songs := f.fromChart(context.Background(), 1960, 5)

	if len(chart.calls) != 2 || chart.calls[0] != ChartHot100 || chart.calls[1] != ChartPopSongs {
		t.Errorf("chart calls = %v", chart.calls)
	}
	if len(songs) != 2 {
		t.Errorf("got %d songs", len(songs))
	}
}

func TestFromChartCapsAtMax(t *testing.T) {
	chart := &mockChart{charts: map[string][]types.ChartEntry{ChartHot100: chartEntries(100)}}
	f := testFetcher(chart, nil, &mockFinder{})

	if songs := f.fromChart(context.Background(), 1975, 5); len(songs) != 5 {
		t.Errorf("got %d songs, want 5", len(songs))
	}
}

func TestGatherSongsCapsOverlongSuggestions(t *testing.T) {
	// A suggester that ignores n must not push the total past MaxSongs.
	suggest := &overlongSuggester{}
	f := testFetcher(&mockChart{}, suggest, &mockFinder{})
	f.MaxSongs = 3

	songs := f.gatherSongs(context.Background(), era.Date{Year: 1975, Month: 6, Day: 1})
	if len(songs) != 3 {
		t.Errorf("got %d songs, want capped at 3", len(songs))
	}
}

type overlongSuggester struct{}

func (overlongSuggester) SuggestSongs(_ context.Context, _ era.Date, n int) ([]types.Song, error) {
	songs := make([]types.Song, n+4)
	for i := range songs {
		songs[i] = types.Song{Title: fmt.Sprintf("S%d", i), Artist: "A", Source: types.SourceGemini}
	}
	return songs, nil
}

func TestGatherSongsSuggesterFailureIsNonFatal(t *testing.T) {
	chart := &mockChart{charts: map[string][]types.ChartEntry{ChartHot100: chartEntries(2)}}
	suggest := &mockSuggester{err: errors.New("llm down")}
	f := testFetcher(chart, suggest, &mockFinder{})

	songs := f.gatherSongs(context.Background(), era.Date{Year: 1975, Month: 6, Day: 1})
	if len(songs) != 2 {
		t.Errorf("got %d songs, want the 2 chart songs", len(songs))
	}
}
