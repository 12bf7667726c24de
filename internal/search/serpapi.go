// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/a9austin/sdr-sourcer/internal/httputil"
	"github.com/a9austin/sdr-sourcer/internal/parse"
	"github.com/a9austin/sdr-sourcer/pkg/types"
)

// serpAPIBase is the SerpAPI search endpoint. Declared as a var so tests
// can substitute an httptest server.
var serpAPIBase = "https://serpapi.com/search.json"

// SerpAPIEngine queries Google through SerpAPI. It is the preferred engine:
// Google indexes LinkedIn profiles well and SerpAPI handles the scraping.
type SerpAPIEngine struct {
	Client *http.Client
	APIKey string
}

// Name returns the engine identifier.
func (e *SerpAPIEngine) Name() string { return "serpapi" }

// Search runs one Google query and returns the organic results. HTTP 429
// that survives the bounded retries is reported as ErrQuotaExhausted, as is
// a SerpAPI error message about the monthly search allowance.
func (e *SerpAPIEngine) Search(ctx context.Context, query string, cfg types.SearchConfig) ([]parse.Result, error) {
	num := cfg.ResultsPerQuery
	if num <= 0 {
		num = 15
	}

	params := url.Values{
		"q":       {query},
		"num":     {fmt.Sprintf("%d", num)},
		"api_key": {e.APIKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, serpAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, e.Client, req, cfg.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("SerpAPI request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrQuotaExhausted
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("SerpAPI returned HTTP %d", resp.StatusCode)
	}

	var sr serpResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing SerpAPI response: %w", err)
	}

	if sr.Error != "" {
		if strings.Contains(strings.ToLower(sr.Error), "out of searches") {
			return nil, ErrQuotaExhausted
		}
		return nil, fmt.Errorf("SerpAPI error: %s", sr.Error)
	}

	results := make([]parse.Result, 0, len(sr.OrganicResults))
	for _, r := range sr.OrganicResults {
		results = append(results, parse.Result{
			Title:   r.Title,
			Snippet: r.Snippet,
			Link:    r.Link,
		})
	}
	return results, nil
}

// SerpAPI JSON structures.
type serpResponse struct {
	Error          string       `json:"error"`
	OrganicResults []serpResult `json:"organic_results"`
}

type serpResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}
