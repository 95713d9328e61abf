// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package video resolves (title, artist) pairs to streamable video
// references by fuzzy-matching video-search results.
//
// See docs/ARCHITECTURE § Video Resolution.
package video

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/pdiddy/chronicle/internal/toolrun"
)

// DefaultBin is the video-search tool binary.
const DefaultBin = "yt-dlp"

// Candidate is one normalized video-search result.
type Candidate struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Uploader  string  `json:"uploader"`
	Duration  float64 `json:"duration"`
	ViewCount int64   `json:"view_count"`
	URL       string  `json:"webpage_url"`
}

// Searcher queries a video-search tool for candidates.
type Searcher interface {
	Search(ctx context.Context, query string, max int) ([]Candidate, error)
}

// YtDlpSearcher searches YouTube through the yt-dlp tool, which prints one
// JSON object per result line.
type YtDlpSearcher struct {
	Runner toolrun.Runner
	Bin    string
	Log    *zap.Logger
}

// Search runs a ytsearch query capped at max results. Unparseable output
// lines are skipped, not fatal.
func (s *YtDlpSearcher) Search(ctx context.Context, query string, max int) ([]Candidate, error) {
	if max <= 0 {
		max = 5
	}
	bin := s.Bin
	if bin == "" {
		bin = DefaultBin
	}

	args := []string{
		"--dump-json",
		"--no-playlist",
		"--max-downloads", fmt.Sprintf("%d", max),
		"--extractor-args", "youtube:skip=dash",
		fmt.Sprintf("ytsearch%d:%s", max, query),
	}

	out, err := s.runner().Output(ctx, bin, args...)
	if err != nil {
		return nil, fmt.Errorf("video search failed: %w", err)
	}

	var candidates []Candidate
	scanner := bufio.NewScanner(bytes.NewReader(out))
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var c Candidate
		if err := json.Unmarshal(line, &c); err != nil {
			s.log().Debug("skipping unparseable search result", zap.Error(err))
			continue
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

func (s *YtDlpSearcher) runner() toolrun.Runner {
	if s.Runner == nil {
		return toolrun.ExecRunner{}
	}
	return s.Runner
}

func (s *YtDlpSearcher) log() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}
