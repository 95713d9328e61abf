// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package music

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"go.uber.org/zap"

	"github.com/pdiddy/chronicle/internal/era"
	"github.com/pdiddy/chronicle/internal/gemini"
	"github.com/pdiddy/chronicle/pkg/types"
)

// suggestGeneration are the sampling parameters for song suggestion. They
// are part of the adapter contract.
var suggestGeneration = gemini.GenerationConfig{
	Temperature:     0.3,
	TopK:            40,
	TopP:            0.95,
	MaxOutputTokens: 2048,
}

// songsPromptTmpl asks the model for songs popular around a date, returned
// as a bare JSON array so the response can be machine-parsed.
var songsPromptTmpl = template.Must(template.New("songs").Parse(`You are a music historian. For the date {{.Month}}/{{.Day}}/{{.Year}}, provide exactly {{.Count}} songs that were popular in the United States around that time.

IMPORTANT: Return ONLY a JSON array of objects with this exact structure:
[
  {
    "title": "Song Title",
    "artist": "Artist Name",
    "year": {{.Year}},
    "reason": "Brief reason why this song was popular"
  }
]

Guidelines:
- Focus on songs that were actually popular/released around {{.Year}} (±2 years)
- Choose songs that would be findable on YouTube today
- Include a mix of different genres and artists
- Make sure the song titles and artist names are accurate
- The "reason" should be brief (1-2 sentences max)
- Avoid songs that are too obscure or hard to find

Return ONLY the JSON array, no other text:
`))

// Suggester proposes candidate songs for a date when the chart provider
// comes up short.
type Suggester interface {
	SuggestSongs(ctx context.Context, d era.Date, n int) ([]types.Song, error)
}

// GeminiSuggester asks the LLM for popular songs. A missing API key or any
// parse failure degrades to an empty list; the federator treats both the
// same way.
type GeminiSuggester struct {
	Client *gemini.Client
	Log    *zap.Logger
}

// suggestedSong is one element of the model's JSON array response.
type suggestedSong struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Year   int    `json:"year"`
	Reason string `json:"reason"`
}

// SuggestSongs returns up to n songs popular around d, tagged as
// LLM-sourced. Entries missing a title or artist are discarded.
func (s *GeminiSuggester) SuggestSongs(ctx context.Context, d era.Date, n int) ([]types.Song, error) {
	if !s.Client.Configured() {
		return nil, nil
	}

	var buf bytes.Buffer
	err := songsPromptTmpl.Execute(&buf, struct {
		Month, Day, Year, Count int
	}{d.Month, d.Day, d.Year, n})
	if err != nil {
		return nil, fmt.Errorf("rendering songs prompt: %w", err)
	}

	text, err := s.Client.GenerateContent(ctx, buf.String(), suggestGeneration)
	if err != nil {
		return nil, fmt.Errorf("suggesting songs: %w", err)
	}

	return parseSongs(text, d, s.log()), nil
}

// parseSongs extracts the first JSON array from the model response and
// validates each entry.
func parseSongs(text string, d era.Date, log *zap.Logger) []types.Song {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		log.Warn("no JSON array in suggestion response")
		return nil
	}

	var raw []suggestedSong
	if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err != nil {
		log.Warn("parsing suggestion response", zap.Error(err))
		return nil
	}

	var songs []types.Song
	for _, r := range raw {
		title := strings.TrimSpace(r.Title)
		artist := strings.TrimSpace(r.Artist)
		if title == "" || artist == "" {
			continue
		}
		year := r.Year
		if year == 0 {
			year = d.Year
		}
		songs = append(songs, types.Song{
			Title:  title,
			Artist: artist,
			Year:   year,
			Reason: strings.TrimSpace(r.Reason),
			Source: types.SourceGemini,
		})
	}
	return songs
}

func (s *GeminiSuggester) log() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}
