// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/chronicle/internal/dump"
	"github.com/pdiddy/chronicle/internal/era"
	"github.com/pdiddy/chronicle/pkg/types"
)

// troveAPIBase is the Trove search endpoint. Declared as a var so tests
// can substitute an httptest server.
var troveAPIBase = "https://api.trove.nla.gov.au/v2/result"

// troveZone restricts queries to digitized newspapers.
const troveZone = "newspaper"

// TroveAdapter queries the National Library of Australia's Trove archive,
// which covers Australian newspapers from 1803.
type TroveAdapter struct {
	Client *http.Client
	// APIKey authenticates requests; Trove accepts "demo" for testing.
	APIKey    string
	UserAgent string
	Dump      *dump.Sink
}

// Name returns the adapter identifier.
func (a *TroveAdapter) Name() string { return "trove" }

// Source returns the tag applied to this adapter's articles.
func (a *TroveAdapter) Source() types.SourceTag { return types.SourceTrove }

// FetchForDate queries the newspaper zone for articles dated d.
func (a *TroveAdapter) FetchForDate(ctx context.Context, d era.Date) ([]types.Article, error) {
	key := a.APIKey
	if key == "" {
		key = "demo"
	}

	params := url.Values{
		"key":      {key},
		"zone":     {troveZone},
		"q":        {"date:" + d.String()},
		"n":        {"10"},
		"encoding": {"json"},
		"include":  {"articletext"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, troveAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", a.UserAgent)

	resp, err := a.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("Trove API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Trove API returned HTTP %d", resp.StatusCode)
	}

	var tr troveResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("parsing Trove response: %w", err)
	}

	a.Dump.Write("trove", "response_"+d.String(), tr)

	var articles []types.Article
	for _, zone := range tr.Response.Zone {
		for _, rec := range zone.Records.Article {
			title := rec.Heading
			if title == "" {
				title = "No Title"
			}
			abstract := rec.Snippet
			if abstract == "" {
				abstract = rec.Heading
			}
			articles = append(articles, types.Article{
				Title:         title,
				URL:           rec.TroveURL,
				Abstract:      abstract,
				Section:       rec.Category,
				Subsection:    rec.Subcategory,
				PublishedDate: rec.Date,
				Newspaper:     rec.Title.Value,
				Page:          rec.Page,
				ArticleID:     rec.ID,
			})
		}
	}
	return articles, nil
}

func (a *TroveAdapter) client() *http.Client {
	if a.Client == nil {
		return http.DefaultClient
	}
	return a.Client
}

// Trove API JSON structures. The newspaper title arrives as an object
// holding the masthead id and display value.
type troveResponse struct {
	Response struct {
		Zone []troveZoneResult `json:"zone"`
	} `json:"response"`
}

type troveZoneResult struct {
	Records struct {
		Article []troveArticle `json:"article"`
	} `json:"records"`
}

type troveArticle struct {
	ID          string       `json:"id"`
	Heading     string       `json:"heading"`
	TroveURL    string       `json:"troveUrl"`
	Snippet     string       `json:"snippet"`
	Category    string       `json:"category"`
	Subcategory string       `json:"subcategory"`
	Date        string       `json:"date"`
	Page        string       `json:"page"`
	Title       troveJournal `json:"title"`
}

type troveJournal struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}
