// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sink

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a9austin/sdr-sourcer/pkg/types"
)

type recordingSink struct {
	name string
	err  error
	got  []*types.Candidate
}

func (r *recordingSink) Name() string { return r.name }

func (r *recordingSink) Append(_ context.Context, c *types.Candidate) error {
	if r.err != nil {
		return r.err
	}
	r.got = append(r.got, c)
	return nil
}

func TestMultiSinkWritesAll(t *testing.T) {
	csv := &recordingSink{name: "csv"}
	sheet := &recordingSink{name: "sheet"}
	m := &MultiSink{Required: []Sink{csv}, BestEffort: []Sink{sheet}}

	c := &types.Candidate{LinkedInURL: "https://www.linkedin.com/in/a"}
	require.NoError(t, m.Append(context.Background(), c))
	assert.Len(t, csv.got, 1)
	assert.Len(t, sheet.got, 1)
}

func TestMultiSinkRequiredFailureAborts(t *testing.T) {
	csv := &recordingSink{name: "csv", err: errors.New("disk full")}
	sheet := &recordingSink{name: "sheet"}
	m := &MultiSink{Required: []Sink{csv}, BestEffort: []Sink{sheet}}

	err := m.Append(context.Background(), &types.Candidate{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "csv sink")
	assert.Empty(t, sheet.got)
}

func TestMultiSinkBestEffortFailureWarnsAndContinues(t *testing.T) {
	csv := &recordingSink{name: "csv"}
	sheet := &recordingSink{name: "sheet", err: errors.New("quota")}

	var warnings []string
	m := &MultiSink{
		Required:   []Sink{csv},
		BestEffort: []Sink{sheet},
		Warnf: func(format string, args ...interface{}) {
			warnings = append(warnings, fmt.Sprintf(format, args...))
		},
	}

	c := &types.Candidate{LinkedInURL: "https://www.linkedin.com/in/a"}
	require.NoError(t, m.Append(context.Background(), c))
	assert.Len(t, csv.got, 1)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "sheet sink failed")
}
