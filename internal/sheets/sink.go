// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sheets

import (
	"context"
	"fmt"

	"github.com/a9austin/sdr-sourcer/pkg/types"
)

// AppendSink adapts a RowAppender to the pipeline sink interface. URLs
// already present in the sheet get their Role Fit and Date Added refreshed
// in place; new candidates are appended.
type AppendSink struct {
	client RowAppender
	known  map[string]int
}

// NewAppendSink reads the sheet's existing URLs so appends can become
// in-place updates for candidates re-sourced by a later run.
func NewAppendSink(ctx context.Context, client RowAppender) (*AppendSink, error) {
	known, err := client.ExistingURLs(ctx)
	if err != nil {
		return nil, fmt.Errorf("preloading sheet URLs: %w", err)
	}
	return &AppendSink{client: client, known: known}, nil
}

// Known returns the sheet's URL set for session preload.
func (s *AppendSink) Known() map[string]bool {
	urls := make(map[string]bool, len(s.known))
	for u := range s.known {
		urls[u] = true
	}
	return urls
}

// Name returns the sink identifier.
func (s *AppendSink) Name() string { return "sheet" }

// Append writes or refreshes one candidate row.
func (s *AppendSink) Append(ctx context.Context, c *types.Candidate) error {
	if row, ok := s.known[c.LinkedInURL]; ok {
		return s.client.Touch(ctx, row, c)
	}
	return s.client.Append(ctx, c)
}
