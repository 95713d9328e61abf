// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by adapters that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout (default 30s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "chronicle/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// NewsConfig holds settings for the news federator and its adapters.
type NewsConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxArticles caps the federator output (default 10).
	MaxArticles int `json:"max_articles" yaml:"max_articles"`

	// TroveAPIKey authenticates against the Australian archive. The
	// upstream accepts "demo" for unauthenticated testing.
	TroveAPIKey string `json:"trove_api_key,omitempty" yaml:"trove_api_key,omitempty"`

	// GuardianAPIKey authenticates against the modern news archive.
	// When empty the modern adapter degrades to always-empty.
	GuardianAPIKey string `json:"guardian_api_key,omitempty" yaml:"guardian_api_key,omitempty"`
}

// GeminiConfig holds settings for the LLM adapters (OCR cleaner and song
// suggester). A missing APIKey degrades each adapter, never fails it.
type GeminiConfig struct {
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Model is the generative model identifier.
	Model string `json:"model" yaml:"model"`
}

// MusicConfig holds settings for the music federator.
type MusicConfig struct {
	// MaxSongs is the number of songs requested per date (default 5).
	MaxSongs int `json:"max_songs" yaml:"max_songs"`

	// SimilarityThreshold is the resolver acceptance floor (default 0.7).
	SimilarityThreshold float64 `json:"similarity_threshold" yaml:"similarity_threshold"`

	// ResolveDelay is the courtesy wait between successive video searches
	// (default 1s).
	ResolveDelay time.Duration `json:"resolve_delay" yaml:"resolve_delay"`

	// PythonPath and ChartScript locate the year-end chart helper script.
	PythonPath  string `json:"python_path" yaml:"python_path"`
	ChartScript string `json:"chart_script" yaml:"chart_script"`
}

// VideoConfig holds settings for the video-search adapter and resolver.
type VideoConfig struct {
	// BinPath is the yt-dlp binary (default "yt-dlp").
	BinPath string `json:"bin_path" yaml:"bin_path"`

	// MaxCandidates is the search-result cap per song (default 5).
	MaxCandidates int `json:"max_candidates" yaml:"max_candidates"`
}

// DumpConfig controls the optional diagnostic dump sink. An empty Dir
// disables dumping entirely.
type DumpConfig struct {
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`
}

// Config groups all component configurations.
type Config struct {
	News   NewsConfig   `json:"news" yaml:"news"`
	Music  MusicConfig  `json:"music" yaml:"music"`
	Video  VideoConfig  `json:"video" yaml:"video"`
	Gemini GeminiConfig `json:"gemini" yaml:"gemini"`
	Dump   DumpConfig   `json:"dump" yaml:"dump"`
}
