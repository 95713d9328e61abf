// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package video

import (
	"context"
	"fmt"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"go.uber.org/zap"

	"github.com/pdiddy/chronicle/pkg/types"
)

// Canonical URL templates keyed by video id.
const (
	embedURLTemplate     = "https://www.youtube.com/embed/%s"
	thumbnailURLTemplate = "https://img.youtube.com/vi/%s/mqdefault.jpg"
)

const (
	// DefaultThreshold is the similarity floor below which a best match
	// is rejected.
	DefaultThreshold = 0.7

	// DefaultMaxCandidates caps the search results considered per song.
	DefaultMaxCandidates = 5
)

// Resolver maps a (title, artist) pair to a canonical video reference.
// Search-result titles are noisy ("(Official Video)", uploader suffixes),
// so exact equality is useless; a word-overlap-gated similarity floor
// accepts what a human would.
type Resolver struct {
	Searcher      Searcher
	MaxCandidates int
	Log           *zap.Logger
}

// Find searches for the song and returns the best-matching video.
// threshold <= 0 falls back to DefaultThreshold. The returned error states
// why no video qualified; it is informational, never fatal to callers.
func (r *Resolver) Find(ctx context.Context, title, artist string, threshold float64) (types.VideoMatch, error) {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	max := r.MaxCandidates
	if max <= 0 {
		max = DefaultMaxCandidates
	}

	query := strings.ToLower(strings.TrimSpace(title))
	if artist != "" {
		query = strings.ToLower(strings.TrimSpace(title + " " + artist))
	}

	candidates, err := r.Searcher.Search(ctx, query, max)
	if err != nil {
		return types.VideoMatch{}, err
	}
	if len(candidates) == 0 {
		return types.VideoMatch{}, fmt.Errorf("no videos found for %q", title)
	}

	best, score := bestMatch(query, candidates)
	if best == nil || score < threshold {
		return types.VideoMatch{}, fmt.Errorf("no suitable match found for %q (best score %.2f, threshold %.2f)", title, score, threshold)
	}

	r.log().Debug("resolved song",
		zap.String("query", query),
		zap.String("video", best.Title),
		zap.Float64("score", score))

	return types.VideoMatch{
		ID:           best.ID,
		Title:        best.Title,
		Uploader:     best.Uploader,
		Duration:     best.Duration,
		ViewCount:    best.ViewCount,
		URL:          best.URL,
		EmbedURL:     fmt.Sprintf(embedURLTemplate, best.ID),
		ThumbnailURL: fmt.Sprintf(thumbnailURLTemplate, best.ID),
		Similarity:   score,
	}, nil
}

// bestMatch scores every eligible candidate against the query and returns
// the highest scorer. Ties keep the earliest candidate. Candidates sharing
// no word with the query are ineligible regardless of their n-gram score.
func bestMatch(query string, candidates []Candidate) (*Candidate, float64) {
	metric := metrics.NewSorensenDice()

	var best *Candidate
	bestScore := 0.0
	for i := range candidates {
		candTitle := strings.ToLower(candidates[i].Title)
		if !sharesWord(query, candTitle) {
			continue
		}
		score := strutil.Similarity(query, candTitle, metric)
		if best == nil || score > bestScore {
			best = &candidates[i]
			bestScore = score
		}
	}
	return best, bestScore
}

// sharesWord reports whether a and b have at least one word in common.
// Both inputs are already lowercased.
func sharesWord(a, b string) bool {
	words := make(map[string]bool)
	for _, w := range strings.Fields(a) {
		words[trimPunct(w)] = true
	}
	for _, w := range strings.Fields(b) {
		if w = trimPunct(w); w != "" && words[w] {
			return true
		}
	}
	return false
}

// trimPunct strips surrounding punctuation so "rhapsody" matches
// "(rhapsody)" and "rhapsody,".
func trimPunct(w string) string {
	return strings.Trim(w, "()[]{}.,!?:;\"'-")
}

func (r *Resolver) log() *zap.Logger {
	if r.Log == nil {
		return zap.NewNop()
	}
	return r.Log
}
