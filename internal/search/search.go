// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search queries web search engines and returns raw result hits.
// Engines are interchangeable behind the Engine interface so the pipeline
// can be tested without network access.
package search

import (
	"context"
	"errors"
	"net/http"

	"github.com/a9austin/sdr-sourcer/internal/parse"
	"github.com/a9austin/sdr-sourcer/pkg/types"
)

// ErrQuotaExhausted is returned when the search API reports that the
// account's search quota is used up. The pipeline halts the batch early on
// this error; already-processed records are preserved.
var ErrQuotaExhausted = errors.New("search quota exhausted")

// Engine performs one web search. Implementations exist for SerpAPI
// (Google) and DuckDuckGo.
type Engine interface {
	Name() string
	Search(ctx context.Context, query string, cfg types.SearchConfig) ([]parse.Result, error)
}

// Select picks the engine for a run: SerpAPI when a key is configured,
// otherwise DuckDuckGo.
func Select(cfg types.SearchConfig, client *http.Client) Engine {
	if cfg.SerpAPIKey != "" {
		return &SerpAPIEngine{Client: client, APIKey: cfg.SerpAPIKey}
	}
	return &DuckDuckGoEngine{Client: client}
}
