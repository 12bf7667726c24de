// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sheets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a9austin/sdr-sourcer/pkg/types"
)

type fakeAppender struct {
	urls     map[string]int
	appended []*types.Candidate
	touched  map[int]*types.Candidate
}

func (f *fakeAppender) Append(_ context.Context, c *types.Candidate) error {
	f.appended = append(f.appended, c)
	return nil
}

func (f *fakeAppender) ExistingURLs(_ context.Context) (map[string]int, error) {
	return f.urls, nil
}

func (f *fakeAppender) Touch(_ context.Context, row int, c *types.Candidate) error {
	if f.touched == nil {
		f.touched = make(map[int]*types.Candidate)
	}
	f.touched[row] = c
	return nil
}

func TestAppendSinkAppendsNewURLs(t *testing.T) {
	f := &fakeAppender{urls: map[string]int{"https://www.linkedin.com/in/known": 2}}
	s, err := NewAppendSink(context.Background(), f)
	require.NoError(t, err)

	c := &types.Candidate{LinkedInURL: "https://www.linkedin.com/in/fresh"}
	require.NoError(t, s.Append(context.Background(), c))
	assert.Len(t, f.appended, 1)
	assert.Empty(t, f.touched)
}

func TestAppendSinkTouchesKnownURLs(t *testing.T) {
	f := &fakeAppender{urls: map[string]int{"https://www.linkedin.com/in/known": 5}}
	s, err := NewAppendSink(context.Background(), f)
	require.NoError(t, err)

	c := &types.Candidate{LinkedInURL: "https://www.linkedin.com/in/known"}
	require.NoError(t, s.Append(context.Background(), c))
	assert.Empty(t, f.appended)
	assert.Same(t, c, f.touched[5])
}

func TestAppendSinkKnown(t *testing.T) {
	f := &fakeAppender{urls: map[string]int{"https://www.linkedin.com/in/known": 5}}
	s, err := NewAppendSink(context.Background(), f)
	require.NoError(t, err)

	assert.Equal(t, map[string]bool{"https://www.linkedin.com/in/known": true}, s.Known())
}
