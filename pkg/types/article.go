// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the chronicle engine.
// Every record here is a value produced by a federator or pipeline and is
// not mutated after construction.
//
// See docs/ARCHITECTURE § Data Structures.
package types

// SourceTag identifies which upstream produced an article or song.
type SourceTag string

const (
	// SourceTrove is the Australian historical-newspaper archive (1803-1963).
	SourceTrove SourceTag = "Trove"

	// SourceLOC is the Library of Congress Chronicling America archive.
	SourceLOC SourceTag = "Library of Congress"

	// SourceGuardian is the modern news archive (1999 onwards).
	SourceGuardian SourceTag = "Guardian"

	// SourceBillboard is the year-end chart provider.
	SourceBillboard SourceTag = "Billboard"

	// SourceGemini marks records suggested or cleaned by the LLM.
	SourceGemini SourceTag = "Gemini"
)

// Article is a normalized news article. Adapters map their upstream shapes
// into this record; raw upstream JSON never leaves an adapter.
type Article struct {
	Title         string    `json:"title" yaml:"title"`
	URL           string    `json:"url" yaml:"url"`
	Abstract      string    `json:"abstract" yaml:"abstract"`
	Byline        string    `json:"byline,omitempty" yaml:"byline,omitempty"`
	Section       string    `json:"section,omitempty" yaml:"section,omitempty"`
	Subsection    string    `json:"subsection,omitempty" yaml:"subsection,omitempty"`
	PublishedDate string    `json:"published_date,omitempty" yaml:"published_date,omitempty"`
	Source        SourceTag `json:"source" yaml:"source"`

	// Historical-archive fields, empty for modern sources.
	Newspaper string   `json:"newspaper,omitempty" yaml:"newspaper,omitempty"`
	Page      string   `json:"page,omitempty" yaml:"page,omitempty"`
	ArticleID string   `json:"article_id,omitempty" yaml:"article_id,omitempty"`
	State     []string `json:"state,omitempty" yaml:"state,omitempty"`
	City      []string `json:"city,omitempty" yaml:"city,omitempty"`
}

// SourceInfo describes the upstream sources serving a given year bucket.
// It is derived purely from the year, never from fetched content.
type SourceInfo struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	URL         string `json:"url,omitempty" yaml:"url,omitempty"`
}
