// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package daily

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/pdiddy/chronicle/internal/era"
	"github.com/pdiddy/chronicle/pkg/types"
)

// scriptedNews returns canned article sets per date string; unknown dates
// are empty. It records every date it was asked for.
type scriptedNews struct {
	byDate map[string][]types.Article
	asked  []string
}

func (s *scriptedNews) FetchForDate(_ context.Context, d era.Date) []types.Article {
	s.asked = append(s.asked, d.String())
	return s.byDate[d.String()]
}

type recordingMusic struct {
	gotDate string
}

func (m *recordingMusic) FetchForDate(_ context.Context, date string) types.MusicResult {
	m.gotDate = date
	return types.MusicResult{Success: true, Date: date}
}

func fixedNow() time.Time {
	return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
}

func testService(news *scriptedNews, music *recordingMusic) *Service {
	return &Service{
		News:  news,
		Music: music,
		Rand:  rand.New(rand.NewSource(42)),
		Now:   fixedNow,
	}
}

func TestDigestForDateFirstTry(t *testing.T) {
	news := &scriptedNews{byDate: map[string][]types.Article{
		"1912-04-15": {{Title: "TITANIC SINKS"}},
	}}
	music := &recordingMusic{}
	svc := testService(news, music)

	digest := svc.DigestForDate(context.Background(), era.Date{Year: 1912, Month: 4, Day: 15})

	if len(news.asked) != 1 {
		t.Errorf("news asked %v, want single attempt", news.asked)
	}
	if digest.Date.String() != "1912-04-15" {
		t.Errorf("digest date = %s", digest.Date)
	}
	if len(digest.Articles) != 1 {
		t.Errorf("got %d articles", len(digest.Articles))
	}
	if digest.Source.Name != "Trove & Library of Congress" {
		t.Errorf("source = %q", digest.Source.Name)
	}
	if music.gotDate != "1912-04-15" {
		t.Errorf("music fetched for %q", music.gotDate)
	}
}

func TestDigestForDateMidYearSubstitution(t *testing.T) {
	news := &scriptedNews{byDate: map[string][]types.Article{
		"1912-06-15": {{Title: "SUMMER NEWS"}},
	}}
	music := &recordingMusic{}
	svc := testService(news, music)

	digest := svc.DigestForDate(context.Background(), era.Date{Year: 1912, Month: 1, Day: 3})

	want := []string{"1912-01-03", "1912-06-15"}
	if len(news.asked) != 2 || news.asked[0] != want[0] || news.asked[1] != want[1] {
		t.Errorf("news asked %v, want %v", news.asked, want)
	}
	// The digest carries the date that produced articles, and music
	// follows it.
	if digest.Date.String() != "1912-06-15" {
		t.Errorf("digest date = %s", digest.Date)
	}
	if music.gotDate != "1912-06-15" {
		t.Errorf("music fetched for %q", music.gotDate)
	}
}

func TestDigestForDateResampleStaysInEra(t *testing.T) {
	news := &scriptedNews{byDate: map[string][]types.Article{}}
	svc := testService(news, &recordingMusic{})

	svc.DigestForDate(context.Background(), era.Date{Year: 1912, Month: 1, Day: 3})

	// Exactly three attempts: original, mid-June, one era resample.
	if len(news.asked) != 3 {
		t.Fatalf("news asked %v, want 3 attempts", news.asked)
	}
	third, err := era.ParseDate(news.asked[2])
	if err != nil {
		t.Fatalf("third attempt %q: %v", news.asked[2], err)
	}
	if era.NewsEraFor(third.Year) != era.NewsHistoric {
		t.Errorf("resample year %d left the historic era", third.Year)
	}
	if third.Day > 28 {
		t.Errorf("resample day = %d", third.Day)
	}
}

func TestDigestForDateClampsDay(t *testing.T) {
	news := &scriptedNews{byDate: map[string][]types.Article{
		"1900-01-28": {{Title: "A"}},
	}}
	svc := testService(news, &recordingMusic{})

	digest := svc.DigestForDate(context.Background(), era.Date{Year: 1900, Month: 1, Day: 31})
	if digest.Date.Day != 28 {
		t.Errorf("day = %d, want clamped to 28", digest.Date.Day)
	}
}

func TestDigestForDateNilMusic(t *testing.T) {
	news := &scriptedNews{byDate: map[string][]types.Article{
		"1900-01-01": {{Title: "A"}},
	}}
	svc := &Service{News: news, Rand: rand.New(rand.NewSource(1)), Now: fixedNow}

	digest := svc.DigestForDate(context.Background(), era.Date{Year: 1900, Month: 1, Day: 1})
	if digest.Music.Success {
		t.Error("music result set without a music fetcher")
	}
}

func TestRandomDigest(t *testing.T) {
	news := &scriptedNews{byDate: map[string][]types.Article{}}
	svc := testService(news, &recordingMusic{})

	digest := svc.RandomDigest(context.Background())

	if digest.Date.Year < era.ArchiveStartYear || digest.Date.Year > fixedNow().Year() {
		t.Errorf("random year %d out of range", digest.Date.Year)
	}
	if digest.Date.Day > 28 {
		t.Errorf("random day = %d", digest.Date.Day)
	}
}

func TestFetchWithFallbackStopsOnCancel(t *testing.T) {
	news := &scriptedNews{byDate: map[string][]types.Article{}}
	svc := testService(news, &recordingMusic{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc.DigestForDate(ctx, era.Date{Year: 1912, Month: 1, Day: 3})
	if len(news.asked) != 1 {
		t.Errorf("news asked %v after cancellation, want single attempt", news.asked)
	}
}
