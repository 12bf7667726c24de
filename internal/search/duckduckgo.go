// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/a9austin/sdr-sourcer/internal/httputil"
	"github.com/a9austin/sdr-sourcer/internal/parse"
	"github.com/a9austin/sdr-sourcer/pkg/types"
)

// ddgAPIBase is the DuckDuckGo HTML endpoint. Declared as a var so tests
// can substitute an httptest server.
var ddgAPIBase = "https://html.duckduckgo.com/html/"

// DuckDuckGoEngine scrapes the DuckDuckGo HTML results page. It needs no
// API key, at the cost of thinner LinkedIn indexing, and serves as the
// fallback when no SerpAPI key is configured.
type DuckDuckGoEngine struct {
	Client *http.Client
}

// Name returns the engine identifier.
func (e *DuckDuckGoEngine) Name() string { return "duckduckgo" }

// Search runs one query against the HTML endpoint and extracts result
// titles, snippets, and links.
func (e *DuckDuckGoEngine) Search(ctx context.Context, query string, cfg types.SearchConfig) ([]parse.Result, error) {
	params := url.Values{"q": {translateQuery(query)}}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ddgAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, e.Client, req, cfg.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("DuckDuckGo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("DuckDuckGo returned HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing DuckDuckGo response: %w", err)
	}

	max := cfg.ResultsPerQuery
	if max <= 0 {
		max = 15
	}

	var results []parse.Result
	doc.Find("div.result").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		anchor := s.Find("a.result__a").First()
		href, ok := anchor.Attr("href")
		if !ok {
			return true
		}
		results = append(results, parse.Result{
			Title:   strings.TrimSpace(anchor.Text()),
			Snippet: strings.TrimSpace(s.Find(".result__snippet").First().Text()),
			Link:    resolveRedirect(href),
		})
		return len(results) < max
	})

	return results, nil
}

// translateQuery rewrites Google X-Ray syntax for DuckDuckGo, which handles
// the site: operator poorly on LinkedIn: the operator becomes a plain
// domain term and quoted phrases become bare words.
func translateQuery(q string) string {
	q = strings.ReplaceAll(q, "site:", "")
	q = strings.ReplaceAll(q, `"`, "")
	return strings.Join(strings.Fields(q), " ")
}

// resolveRedirect unwraps DuckDuckGo's /l/?uddg=<target> redirect links.
func resolveRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}
