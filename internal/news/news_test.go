// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package news

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/pdiddy/chronicle/internal/era"
	"github.com/pdiddy/chronicle/pkg/types"
)

// --- mock adapter ---

type mockAdapter struct {
	name     string
	source   types.SourceTag
	articles []types.Article
	err      error
	delay    time.Duration
	calls    int
}

func (m *mockAdapter) Name() string            { return m.name }
func (m *mockAdapter) Source() types.SourceTag { return m.source }

func (m *mockAdapter) FetchForDate(_ context.Context, _ era.Date) ([]types.Article, error) {
	m.calls++
	if m.delay > 0 {
		time.Sleep(m.delay)
	}
	return m.articles, m.err
}

func articlesNamed(names ...string) []types.Article {
	out := make([]types.Article, len(names))
	for i, n := range names {
		out[i] = types.Article{Title: n}
	}
	return out
}

func TestFetchForDateHistoric(t *testing.T) {
	trove := &mockAdapter{name: "trove", source: types.SourceTrove, articles: articlesNamed("au1", "au2")}
	loc := &mockAdapter{name: "loc", source: types.SourceLOC, articles: articlesNamed("us1")}
	guardian := &mockAdapter{name: "guardian", source: types.SourceGuardian, articles: articlesNamed("uk1")}

	f := &Fetcher{Historical: []Adapter{trove, loc}, Modern: guardian}
	got := f.FetchForDate(context.Background(), era.Date{Year: 1912, Month: 4, Day: 15})

	if len(got) != 3 {
		t.Fatalf("got %d articles, want 3", len(got))
	}
	if guardian.calls != 0 {
		t.Errorf("modern adapter called %d times for historic date", guardian.calls)
	}
	for _, a := range got[:2] {
		if a.Source != types.SourceTrove {
			t.Errorf("article %q source = %q, want %q", a.Title, a.Source, types.SourceTrove)
		}
	}
	if got[2].Source != types.SourceLOC {
		t.Errorf("article %q source = %q, want %q", got[2].Title, got[2].Source, types.SourceLOC)
	}
}

// Merged output must follow the Historical slice order even when the
// first adapter finishes last.
func TestFetchForDateHistoricStableOrder(t *testing.T) {
	trove := &mockAdapter{name: "trove", source: types.SourceTrove, articles: articlesNamed("au1"), delay: 30 * time.Millisecond}
	loc := &mockAdapter{name: "loc", source: types.SourceLOC, articles: articlesNamed("us1")}

	f := &Fetcher{Historical: []Adapter{trove, loc}}
	got := f.FetchForDate(context.Background(), era.Date{Year: 1900, Month: 1, Day: 1})

	if len(got) != 2 {
		t.Fatalf("got %d articles, want 2", len(got))
	}
	if got[0].Title != "au1" || got[1].Title != "us1" {
		t.Errorf("order = [%q, %q], want [au1, us1]", got[0].Title, got[1].Title)
	}
}

func TestFetchForDateHistoricPartialFailure(t *testing.T) {
	trove := &mockAdapter{name: "trove", source: types.SourceTrove, err: errors.New("boom")}
	loc := &mockAdapter{name: "loc", source: types.SourceLOC, articles: articlesNamed("us1")}

	f := &Fetcher{Historical: []Adapter{trove, loc}}
	got := f.FetchForDate(context.Background(), era.Date{Year: 1900, Month: 1, Day: 1})

	if len(got) != 1 || got[0].Title != "us1" {
		t.Fatalf("got %+v, want the single loc article", got)
	}
}

func TestFetchForDateModern(t *testing.T) {
	trove := &mockAdapter{name: "trove", source: types.SourceTrove, articles: articlesNamed("au1")}
	guardian := &mockAdapter{name: "guardian", source: types.SourceGuardian, articles: articlesNamed("uk1")}

	f := &Fetcher{Historical: []Adapter{trove}, Modern: guardian}
	got := f.FetchForDate(context.Background(), era.Date{Year: 2020, Month: 6, Day: 1})

	if len(got) != 1 || got[0].Title != "uk1" {
		t.Fatalf("got %+v, want the guardian article", got)
	}
	if trove.calls != 0 {
		t.Errorf("historical adapter called %d times for modern date", trove.calls)
	}
}

func TestFetchForDateGapFallback(t *testing.T) {
	tests := []struct {
		name       string
		modern     []types.Article
		historical []types.Article
		wantTitles []string
		wantCalls  int // historical adapter calls
	}{
		{
			name:       "modern has results",
			modern:     articlesNamed("uk1"),
			historical: articlesNamed("au1"),
			wantTitles: []string{"uk1"},
			wantCalls:  0,
		},
		{
			name:       "modern empty, historical fallback",
			modern:     nil,
			historical: articlesNamed("au1"),
			wantTitles: []string{"au1"},
			wantCalls:  1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hist := &mockAdapter{name: "trove", source: types.SourceTrove, articles: tt.historical}
			guardian := &mockAdapter{name: "guardian", source: types.SourceGuardian, articles: tt.modern}

			f := &Fetcher{Historical: []Adapter{hist}, Modern: guardian}
			got := f.FetchForDate(context.Background(), era.Date{Year: 1980, Month: 6, Day: 1})

			if len(got) != len(tt.wantTitles) {
				t.Fatalf("got %d articles, want %d", len(got), len(tt.wantTitles))
			}
			for i, want := range tt.wantTitles {
				if got[i].Title != want {
					t.Errorf("article[%d] = %q, want %q", i, got[i].Title, want)
				}
			}
			if hist.calls != tt.wantCalls {
				t.Errorf("historical calls = %d, want %d", hist.calls, tt.wantCalls)
			}
		})
	}
}

func TestFetchForDateCap(t *testing.T) {
	var many []types.Article
	for i := 0; i < 8; i++ {
		many = append(many, types.Article{Title: fmt.Sprintf("a%d", i)})
	}
	trove := &mockAdapter{name: "trove", source: types.SourceTrove, articles: many}
	loc := &mockAdapter{name: "loc", source: types.SourceLOC, articles: many}

	f := &Fetcher{Historical: []Adapter{trove, loc}}
	if got := f.FetchForDate(context.Background(), era.Date{Year: 1900, Month: 1, Day: 1}); len(got) != DefaultMaxArticles {
		t.Errorf("got %d articles, want capped at %d", len(got), DefaultMaxArticles)
	}

	f.MaxArticles = 3
	if got := f.FetchForDate(context.Background(), era.Date{Year: 1900, Month: 1, Day: 1}); len(got) != 3 {
		t.Errorf("got %d articles, want capped at 3", len(got))
	}
}

func TestFetchForDateNilModern(t *testing.T) {
	f := &Fetcher{}
	if got := f.FetchForDate(context.Background(), era.Date{Year: 2020, Month: 1, Day: 1}); len(got) != 0 {
		t.Errorf("got %d articles from empty fetcher, want 0", len(got))
	}
}
