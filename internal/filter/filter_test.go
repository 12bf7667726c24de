// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a9austin/sdr-sourcer/pkg/types"
)

func TestTooSenior(t *testing.T) {
	tests := []struct {
		name     string
		headline string
		want     bool
	}{
		{"vp", "VP of Sales, 10 years SaaS experience", true},
		{"director", "Sales Director at Domo", true},
		{"chief", "Chief Revenue Officer", true},
		{"head of", "Head of Business Development", true},
		{"enterprise", "Enterprise Account Manager", true},
		{"plain sdr", "SDR at Acme", false},
		{"new grad", "BYU Class of 2024, seeking sales roles", false},
		{"empty", "", false},
		{"founder override", "Founder and former VP of Sales", false},
		{"owner override", "Owner, Director of a small pest control shop", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TooSenior(tt.headline))
		})
	}
}

func TestExistingSDR(t *testing.T) {
	tests := []struct {
		name     string
		headline string
		snippet  string
		want     bool
	}{
		{"sdr title", "SDR at Podium", "", true},
		{"bdr title", "BDR | Tech Sales", "", true},
		{"spelled out", "Sales Development Representative", "", true},
		{"signal in snippet", "Sales professional", "Currently an SDR at Weave", true},
		{"fresh grad", "Utah State 2024, Varsity Captain", "", false},
		{"empty headline ignores snippet", "", "SDR at Weave", false},
		{"founder override", "Founder, former SDR", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExistingSDR(tt.headline, tt.snippet))
		})
	}
}

func TestInRegion(t *testing.T) {
	ch := NewChain()
	tests := []struct {
		name     string
		headline string
		snippet  string
		want     bool
	}{
		{"city", "Bartender", "Salt Lake City, looking for sales roles", true},
		{"college", "BYU 2024 grad, Varsity athlete, Sales", "", true},
		{"company", "AE at Qualtrics", "", true},
		{"state abbrev", "Sales rep", "Lehi, UT, United States", true},
		{"no signal", "Account Executive at Salesforce", "San Francisco Bay Area", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ch.InRegion(tt.headline, tt.snippet))
		})
	}
}

func TestChainAccept(t *testing.T) {
	ch := NewChain()

	tests := []struct {
		name       string
		candidate  types.Candidate
		role       types.RoleType
		wantOK     bool
		wantReason string
	}{
		{
			name:      "clean sdr candidate",
			candidate: types.Candidate{Headline: "BYU 2024 grad, Varsity athlete, Sales"},
			role:      types.TypeSDR,
			wantOK:    true,
		},
		{
			name:       "seniority rejects regardless of region",
			candidate:  types.Candidate{Headline: "VP of Sales at Qualtrics, Provo"},
			role:       types.TypeSDR,
			wantOK:     false,
			wantReason: RejectSenior,
		},
		{
			name:       "existing sdr rejected on sdr queries",
			candidate:  types.Candidate{Headline: "SDR at Weave", Snippet: "Lehi, Utah"},
			role:       types.TypeSDR,
			wantOK:     false,
			wantReason: RejectExistingSDR,
		},
		{
			name:      "existing sdr allowed on ae queries",
			candidate: types.Candidate{Headline: "SDR ready for AE", Snippet: "Lehi, Utah"},
			role:      types.TypeAE,
			wantOK:    true,
		},
		{
			name:       "no region signal",
			candidate:  types.Candidate{Headline: "Recent graduate seeking sales roles"},
			role:       types.TypeSDR,
			wantOK:     false,
			wantReason: RejectNonRegion,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := ch.Accept(&tt.candidate, tt.role)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestChainSDRFilterFlag(t *testing.T) {
	ch := NewChain()
	ch.SkipSDRFilterForAE = false

	c := &types.Candidate{Headline: "SDR ready for AE", Snippet: "Lehi, Utah"}
	ok, reason := ch.Accept(c, types.TypeAE)
	assert.False(t, ok)
	assert.Equal(t, RejectExistingSDR, reason)
}

func TestLoadKeywords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keywords.yaml")
	require.NoError(t, os.WriteFile(path, []byte("region:\n  - \\bboise\\b\n  - \\bidaho\\b\n"), 0o644))

	ch := NewChain()
	require.NoError(t, ch.LoadKeywords(path))

	assert.True(t, ch.InRegion("Sales rep in Boise", ""))
	assert.False(t, ch.InRegion("Sales rep in Provo, Utah", ""))
}

func TestLoadKeywordsErrors(t *testing.T) {
	ch := NewChain()

	assert.Error(t, ch.LoadKeywords(filepath.Join(t.TempDir(), "missing.yaml")))

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("region:\n  - '['\n"), 0o644))
	assert.Error(t, ch.LoadKeywords(bad))
}
