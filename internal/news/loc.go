// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/chronicle/internal/dump"
	"github.com/pdiddy/chronicle/internal/era"
	"github.com/pdiddy/chronicle/internal/httputil"
	"github.com/pdiddy/chronicle/pkg/types"
)

// locAPIBase is the Chronicling America root. Declared as a var so tests
// can substitute an httptest server; page-detail URLs are derived from it.
var locAPIBase = "https://chroniclingamerica.loc.gov"

// locArticleRoute is the internal route articles link to instead of the
// upstream, so the OCR enrichment pipeline can intercept the id.
const locArticleRoute = "/loc_article/"

// LOCAdapter queries the Library of Congress Chronicling America archive
// of digitized American newspapers. Beyond date search it also serves the
// page metadata and raw OCR text that the enrichment pipeline consumes.
type LOCAdapter struct {
	Client    *http.Client
	UserAgent string
	Dump      *dump.Sink
}

// Name returns the adapter identifier.
func (a *LOCAdapter) Name() string { return "chronicling_america" }

// Source returns the tag applied to this adapter's articles.
func (a *LOCAdapter) Source() types.SourceTag { return types.SourceLOC }

// FetchForDate searches pages published on d, ordered by upstream
// relevance.
func (a *LOCAdapter) FetchForDate(ctx context.Context, d era.Date) ([]types.Article, error) {
	params := url.Values{
		"dateFilterType": {"range"},
		"date1":          {d.String()},
		"date2":          {d.String()},
		"rows":           {"10"},
		"format":         {"json"},
		"sort":           {"relevance"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, locAPIBase+"/search/pages/results?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", a.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, a.client(), req, 0)
	if err != nil {
		return nil, fmt.Errorf("LOC API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("LOC API returned HTTP %d", resp.StatusCode)
	}

	var lr locSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return nil, fmt.Errorf("parsing LOC response: %w", err)
	}

	a.Dump.Write("loc", "response_"+d.String(), lr)

	var articles []types.Article
	for _, item := range lr.Items {
		title := item.Title
		if title == "" {
			title = "No Title"
		}
		abstract := truncate(item.OCREng, 200)
		if abstract == "" {
			abstract = title
		}
		articles = append(articles, types.Article{
			Title: title,
			// The URL points at the internal article route, not the
			// upstream; the enrichment pipeline resolves it.
			URL:           locArticleRoute + strings.Trim(item.ID, "/"),
			Abstract:      abstract,
			Section:       item.Section,
			PublishedDate: item.Date,
			Newspaper:     item.TitleNormal,
			Page:          item.Page,
			ArticleID:     strings.Trim(item.ID, "/"),
			State:         item.State,
			City:          item.City,
		})
	}
	return articles, nil
}

// PageDetails fetches the metadata record for one scanned page. articleID
// is the LCCN path, e.g. "lccn/sn91068402/1895-02-28/ed-1/seq-2".
func (a *LOCAdapter) PageDetails(ctx context.Context, articleID string) (types.PageDetails, error) {
	reqURL := locAPIBase + "/" + strings.Trim(articleID, "/") + ".json"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return types.PageDetails{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", a.UserAgent)

	resp, err := a.client().Do(req)
	if err != nil {
		return types.PageDetails{}, fmt.Errorf("LOC page request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.PageDetails{}, fmt.Errorf("LOC page returned HTTP %d", resp.StatusCode)
	}

	var page locPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return types.PageDetails{}, fmt.Errorf("parsing LOC page: %w", err)
	}

	a.Dump.Write("loc", "page_"+strings.ReplaceAll(strings.Trim(articleID, "/"), "/", "_"), page)

	return types.PageDetails{
		NewspaperName: page.Title.Name,
		DateIssued:    page.Issue.DateIssued,
		Sequence:      page.Sequence,
		PDFURL:        page.PDF,
		ImageURL:      page.JP2,
		TextURL:       page.Text,
	}, nil
}

// PageText fetches raw OCR text from the URL named in the page metadata.
// The body is force-interpreted as UTF-8; old scans carry stray bytes.
func (a *LOCAdapter) PageText(ctx context.Context, textURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, textURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "text/plain; charset=utf-8")
	req.Header.Set("User-Agent", a.UserAgent)

	resp, err := a.client().Do(req)
	if err != nil {
		return "", fmt.Errorf("LOC OCR request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("LOC OCR returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading OCR body: %w", err)
	}
	return string(body), nil
}

func (a *LOCAdapter) client() *http.Client {
	if a.Client == nil {
		return http.DefaultClient
	}
	return a.Client
}

// truncate shortens s to max characters, ellipsized.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// Chronicling America JSON structures.
type locSearchResponse struct {
	TotalItems int       `json:"totalItems"`
	Items      []locItem `json:"items"`
}

type locItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	TitleNormal string   `json:"title_normal"`
	OCREng      string   `json:"ocr_eng"`
	Date        string   `json:"date"`
	Section     string   `json:"section"`
	Page        string   `json:"page"`
	State       []string `json:"state"`
	City        []string `json:"city"`
}

type locPage struct {
	Title struct {
		Name string `json:"name"`
	} `json:"title"`
	Issue struct {
		DateIssued string `json:"date_issued"`
	} `json:"issue"`
	Sequence int    `json:"sequence"`
	PDF      string `json:"pdf"`
	JP2      string `json:"jp2"`
	Text     string `json:"text"`
}
