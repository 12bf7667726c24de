// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const ddgBody = `<html><body>
<div class="result">
  <h2><a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fwww.linkedin.com%2Fin%2Fjanedoe">Jane Doe - SDR at Acme | LinkedIn</a></h2>
  <a class="result__snippet">BYU 2024 grad, Varsity athlete, Sales</a>
</div>
<div class="result">
  <h2><a class="result__a" href="https://www.linkedin.com/in/john-smith-42">John Smith | LinkedIn</a></h2>
  <a class="result__snippet">Account Executive at Podium. Lehi, Utah.</a>
</div>
</body></html>`

func TestDuckDuckGoSearch(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Write([]byte(ddgBody))
	}))
	defer ts.Close()

	oldBase := ddgAPIBase
	ddgAPIBase = ts.URL
	defer func() { ddgAPIBase = oldBase }()

	e := &DuckDuckGoEngine{Client: ts.Client()}
	results, err := e.Search(context.Background(), `site:linkedin.com/in "Class of 2024" Utah`, testCfg())
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}

	if gotQuery != "linkedin.com/in Class of 2024 Utah" {
		t.Errorf("translated query = %q", gotQuery)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].Link != "https://www.linkedin.com/in/janedoe" {
		t.Errorf("redirect link not unwrapped: %q", results[0].Link)
	}
	if results[0].Title != "Jane Doe - SDR at Acme | LinkedIn" {
		t.Errorf("Title = %q", results[0].Title)
	}
	if results[1].Link != "https://www.linkedin.com/in/john-smith-42" {
		t.Errorf("direct link = %q", results[1].Link)
	}
}

func TestDuckDuckGoRespectsResultLimit(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(ddgBody))
	}))
	defer ts.Close()

	oldBase := ddgAPIBase
	ddgAPIBase = ts.URL
	defer func() { ddgAPIBase = oldBase }()

	cfg := testCfg()
	cfg.ResultsPerQuery = 1

	e := &DuckDuckGoEngine{Client: ts.Client()}
	results, err := e.Search(context.Background(), "query", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Errorf("len(results) = %d, want 1", len(results))
	}
}

func TestDuckDuckGoHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	oldBase := ddgAPIBase
	ddgAPIBase = ts.URL
	defer func() { ddgAPIBase = oldBase }()

	e := &DuckDuckGoEngine{Client: ts.Client()}
	if _, err := e.Search(context.Background(), "query", testCfg()); err == nil {
		t.Error("Search should fail on HTTP 403")
	}
}

func TestTranslateQuery(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`site:linkedin.com/in "Student Athlete" "2024" Utah`, "linkedin.com/in Student Athlete 2024 Utah"},
		{"plain words", "plain words"},
	}
	for _, tt := range tests {
		if got := translateQuery(tt.in); got != tt.want {
			t.Errorf("translateQuery(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
