// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sink

import (
	"context"
	"fmt"

	"github.com/a9austin/sdr-sourcer/pkg/types"
)

// MultiSink fans one append across several sinks in order. A failure in a
// Required sink aborts the append; BestEffort failures are reported through
// Warnf and the remaining sinks still run. The CSV backup is required, the
// spreadsheet is best effort, so a Sheets outage never loses a candidate.
type MultiSink struct {
	Required   []Sink
	BestEffort []Sink
	Warnf      func(format string, args ...interface{})
}

// Name returns the sink identifier.
func (m *MultiSink) Name() string { return "multi" }

// Append writes the candidate to every sink.
func (m *MultiSink) Append(ctx context.Context, c *types.Candidate) error {
	for _, s := range m.Required {
		if err := s.Append(ctx, c); err != nil {
			return fmt.Errorf("%s sink: %w", s.Name(), err)
		}
	}
	for _, s := range m.BestEffort {
		if err := s.Append(ctx, c); err != nil && m.Warnf != nil {
			m.Warnf("%s sink failed for %s: %v", s.Name(), c.LinkedInURL, err)
		}
	}
	return nil
}
