// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package music

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pdiddy/chronicle/internal/dump"
	"github.com/pdiddy/chronicle/internal/toolrun"
	"github.com/pdiddy/chronicle/pkg/types"
)

// Chart names accepted by the year-end chart provider.
const (
	ChartHot100   = "hot-100"
	ChartPopSongs = "pop-songs"
)

// ChartAdapter fetches a ranked year-end chart.
type ChartAdapter interface {
	YearEndChart(ctx context.Context, year int, chart string) ([]types.ChartEntry, error)
}

// BillboardAdapter runs the billboard helper script, which prints the
// year-end chart as a single JSON object on stdout.
type BillboardAdapter struct {
	Runner toolrun.Runner
	// Python is the interpreter path (default "python3"); Script locates
	// the helper.
	Python string
	Script string
	Dump   *dump.Sink
}

// chartOutput is the helper script's stdout protocol.
type chartOutput struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	ChartName string `json:"chart_name"`
	Year      int    `json:"year"`
	Entries   []struct {
		Title  string `json:"title"`
		Artist string `json:"artist"`
		Rank   int    `json:"rank"`
		Image  string `json:"image"`
	} `json:"entries"`
}

// YearEndChart returns the chart entries for year, ordered by rank
// ascending as the provider emits them.
func (a *BillboardAdapter) YearEndChart(ctx context.Context, year int, chart string) ([]types.ChartEntry, error) {
	python := a.Python
	if python == "" {
		python = "python3"
	}
	if a.Script == "" {
		return nil, fmt.Errorf("chart script path not configured")
	}

	out, err := a.runner().Output(ctx, python, a.Script, strconv.Itoa(year), chart)
	if err != nil {
		return nil, fmt.Errorf("chart script failed: %w", err)
	}

	var co chartOutput
	if err := json.Unmarshal(out, &co); err != nil {
		return nil, fmt.Errorf("parsing chart output: %w", err)
	}

	a.Dump.Write("billboard", fmt.Sprintf("response_%d_%s", year, chart), co)

	if !co.Success {
		return nil, fmt.Errorf("chart provider error: %s", co.Error)
	}

	entries := make([]types.ChartEntry, 0, len(co.Entries))
	for _, e := range co.Entries {
		entries = append(entries, types.ChartEntry{
			Title:  e.Title,
			Artist: e.Artist,
			Rank:   e.Rank,
			Image:  e.Image,
			Chart:  co.ChartName,
			Year:   co.Year,
		})
	}
	return entries, nil
}

func (a *BillboardAdapter) runner() toolrun.Runner {
	if a.Runner == nil {
		return toolrun.ExecRunner{}
	}
	return a.Runner
}
