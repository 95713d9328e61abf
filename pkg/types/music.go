// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ChartEntry is one ranked song from a year-end chart, ordered by rank
// ascending in the adapter output.
type ChartEntry struct {
	Title  string `json:"title" yaml:"title"`
	Artist string `json:"artist" yaml:"artist"`
	Rank   int    `json:"rank" yaml:"rank"`
	Image  string `json:"image,omitempty" yaml:"image,omitempty"`
	Chart  string `json:"chart_name,omitempty" yaml:"chart_name,omitempty"`
	Year   int    `json:"year,omitempty" yaml:"year,omitempty"`
}

// Song is a candidate song for a date, from either the chart provider or
// the LLM suggester. Title and Artist are always non-empty.
type Song struct {
	Title  string    `json:"title" yaml:"title"`
	Artist string    `json:"artist" yaml:"artist"`
	Year   int       `json:"year" yaml:"year"`
	Rank   int       `json:"rank,omitempty" yaml:"rank,omitempty"`
	Reason string    `json:"reason,omitempty" yaml:"reason,omitempty"`
	Source SourceTag `json:"source" yaml:"source"`
}

// ResolutionStatus reports how a song-to-video resolution ended.
type ResolutionStatus string

const (
	ResolutionSuccess ResolutionStatus = "success"
	ResolutionFailed  ResolutionStatus = "failed"
)

// VideoMatch is a resolved, streamable video reference for a song.
type VideoMatch struct {
	ID           string  `json:"video_id" yaml:"video_id"`
	Title        string  `json:"video_title" yaml:"video_title"`
	Uploader     string  `json:"uploader" yaml:"uploader"`
	Duration     float64 `json:"duration" yaml:"duration"`
	ViewCount    int64   `json:"view_count,omitempty" yaml:"view_count,omitempty"`
	URL          string  `json:"video_url" yaml:"video_url"`
	EmbedURL     string  `json:"embed_url" yaml:"embed_url"`
	ThumbnailURL string  `json:"thumbnail_url" yaml:"thumbnail_url"`

	// Similarity is the fuzzy-match score in [0, 1]; at least the resolver
	// threshold for any match that was accepted.
	Similarity float64 `json:"similarity_score" yaml:"similarity_score"`
}

// SongResolution pairs a candidate song with the outcome of its video
// resolution. Video is set only when Status is ResolutionSuccess.
type SongResolution struct {
	Song   Song             `json:"original_song" yaml:"original_song"`
	Status ResolutionStatus `json:"status" yaml:"status"`
	Error  string           `json:"error,omitempty" yaml:"error,omitempty"`
	Video  *VideoMatch      `json:"video,omitempty" yaml:"video,omitempty"`
}

// MusicResult is the music federator output for one date.
type MusicResult struct {
	Success         bool             `json:"success" yaml:"success"`
	Error           string           `json:"error,omitempty" yaml:"error,omitempty"`
	Date            string           `json:"date,omitempty" yaml:"date,omitempty"`
	TotalSongs      int              `json:"total_songs" yaml:"total_songs"`
	SuccessfulFinds int              `json:"successful_finds" yaml:"successful_finds"`
	Results         []SongResolution `json:"results,omitempty" yaml:"results,omitempty"`
}
