// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sink writes accepted candidates to their destinations: the local
// CSV backup and the Google Sheet. Destinations sit behind the Sink
// interface so the pipeline can be tested with fakes.
package sink

import (
	"context"

	"github.com/a9austin/sdr-sourcer/pkg/types"
)

// Sink appends one candidate row to a destination.
type Sink interface {
	Name() string
	Append(ctx context.Context, c *types.Candidate) error
}
