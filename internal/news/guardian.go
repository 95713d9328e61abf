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

// guardianAPIBase is the Guardian content search endpoint. Declared as a
// var so tests can substitute an httptest server.
var guardianAPIBase = "https://content.guardianapis.com/search"

// guardianFields are the extra article fields requested per result.
const guardianFields = "headline,trailText,byline,sectionName,webUrl,lastModified"

// GuardianAdapter queries the Guardian content API, which covers
// international news from 1999 onwards. Without an API key the adapter
// degrades to always-empty rather than failing the federator.
type GuardianAdapter struct {
	Client    *http.Client
	APIKey    string
	UserAgent string
	Dump      *dump.Sink
}

// Name returns the adapter identifier.
func (a *GuardianAdapter) Name() string { return "guardian" }

// Source returns the tag applied to this adapter's articles.
func (a *GuardianAdapter) Source() types.SourceTag { return types.SourceGuardian }

// FetchForDate returns up to 10 articles published on d, newest first.
func (a *GuardianAdapter) FetchForDate(ctx context.Context, d era.Date) ([]types.Article, error) {
	if a.APIKey == "" {
		return nil, nil
	}

	params := url.Values{
		"api-key":     {a.APIKey},
		"from-date":   {d.String()},
		"to-date":     {d.String()},
		"page-size":   {"10"},
		"show-fields": {guardianFields},
		"show-tags":   {"contributor,series"},
		"order-by":    {"newest"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, guardianAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", a.UserAgent)

	resp, err := a.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("Guardian API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Guardian API returned HTTP %d", resp.StatusCode)
	}

	var gr guardianResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, fmt.Errorf("parsing Guardian response: %w", err)
	}

	a.Dump.Write("guardian", "response_"+d.String(), gr)

	var articles []types.Article
	for _, item := range gr.Response.Results {
		title := item.WebTitle
		if title == "" {
			title = "No Title"
		}
		abstract := item.Fields.TrailText
		if abstract == "" {
			abstract = item.WebTitle
		}
		articles = append(articles, types.Article{
			Title:         title,
			URL:           item.WebURL,
			Abstract:      abstract,
			Byline:        item.Fields.Byline,
			Section:       item.SectionName,
			PublishedDate: item.WebPublicationDate,
		})
	}
	return articles, nil
}

func (a *GuardianAdapter) client() *http.Client {
	if a.Client == nil {
		return http.DefaultClient
	}
	return a.Client
}

// Guardian API JSON structures.
type guardianResponse struct {
	Response struct {
		Status  string           `json:"status"`
		Results []guardianResult `json:"results"`
	} `json:"response"`
}

type guardianResult struct {
	WebTitle           string `json:"webTitle"`
	WebURL             string `json:"webUrl"`
	SectionName        string `json:"sectionName"`
	WebPublicationDate string `json:"webPublicationDate"`
	Fields             struct {
		TrailText string `json:"trailText"`
		Byline    string `json:"byline"`
	} `json:"fields"`
}
