// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/chronicle/pkg/types"
)

// writeJSON writes v as indented JSON to w.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeYAML writes v as a YAML document to w.
func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(v)
}

// formatArticles writes articles as a human-readable table.
func formatArticles(w io.Writer, articles []types.Article, info types.SourceInfo) {
	if len(articles) == 0 {
		fmt.Fprintln(w, "No articles found.")
		return
	}

	fmt.Fprintf(w, "Source: %s - %s\n\n", info.Name, info.Description)
	fmt.Fprintf(w, "%-3s  %-60s  %-20s  %s\n", "#", "Title", "Source", "Section")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for i, a := range articles {
		title := a.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		fmt.Fprintf(w, "%-3d  %-60s  %-20s  %s\n", i+1, title, a.Source, a.Section)
	}
	fmt.Fprintf(w, "\n%d articles\n", len(articles))
}

// formatMusic writes a music result as a human-readable listing.
func formatMusic(w io.Writer, result types.MusicResult) {
	if !result.Success {
		fmt.Fprintf(w, "No music: %s\n", result.Error)
		return
	}

	fmt.Fprintf(w, "Songs for %s (%d/%d resolved)\n\n", result.Date, result.SuccessfulFinds, result.TotalSongs)
	for i, r := range result.Results {
		label := fmt.Sprintf("%d. %s - %s [%s]", i+1, r.Song.Title, r.Song.Artist, r.Song.Source)
		if r.Song.Rank > 0 {
			label += fmt.Sprintf(" (rank #%d)", r.Song.Rank)
		}
		fmt.Fprintln(w, label)

		if r.Status == types.ResolutionSuccess {
			fmt.Fprintf(w, "   %s (score %.2f)\n", r.Video.EmbedURL, r.Video.Similarity)
		} else {
			fmt.Fprintf(w, "   not resolved: %s\n", r.Error)
		}
	}
}
