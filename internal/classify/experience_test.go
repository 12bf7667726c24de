// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"strconv"
	"testing"
	"time"
)

func TestYearsExplicit(t *testing.T) {
	tests := []struct {
		headline string
		want     string
	}{
		{"5 years of experience in SaaS", "5"},
		{"3+ years experience", "3+"},
		{"2-3 years in tech sales", "2-3"},
		{"4 years in saas", "4"},
		{"2 years sales at Podium", "2"},
	}
	for _, tt := range tests {
		if got := Years(tt.headline); got != tt.want {
			t.Errorf("Years(%q) = %q, want %q", tt.headline, got, tt.want)
		}
	}
}

func TestYearsFromGraduation(t *testing.T) {
	now := time.Now().Year()

	headline := "BYU Class of " + strconv.Itoa(now-2) + ", Marketing"
	if got, want := Years(headline), "2"; got != want {
		t.Errorf("Years(%q) = %q, want %q", headline, got, want)
	}

	current := "Class of " + strconv.Itoa(now)
	if got := Years(current); got != "<1" {
		t.Errorf("Years(%q) = %q, want <1", current, got)
	}

	// Future and ancient years are ignored.
	if got := Years("Class of 1999"); got != "" {
		t.Errorf("Years for 1999 grad = %q, want empty", got)
	}
}

func TestYearsTitleBuckets(t *testing.T) {
	tests := []struct {
		headline string
		want     string
	}{
		{"Sales Intern at Domo", "<1"},
		{"SDR at Weave", "1-2"},
		{"Account Executive at Entrata", "2-4"},
		{"Senior Account Executive", "4+"},
		{"Sales Manager, Vivint", "4+"},
	}
	for _, tt := range tests {
		if got := Years(tt.headline); got != tt.want {
			t.Errorf("Years(%q) = %q, want %q", tt.headline, got, tt.want)
		}
	}
}

func TestYearsTenure(t *testing.T) {
	if got := Years("3 yrs at Qualtrics"); got != "3" {
		t.Errorf("Years tenure = %q, want 3", got)
	}

	now := time.Now().Year()
	headline := "At Lucid since " + strconv.Itoa(now-4)
	if got := Years(headline); got != "4" {
		t.Errorf("Years(%q) = %q, want 4", headline, got)
	}
}

func TestYearsSeasonedFallback(t *testing.T) {
	if got := Years("Proven sales professional"); got != "3+" {
		t.Errorf("Years = %q, want 3+", got)
	}
}

func TestYearsUnknown(t *testing.T) {
	for _, headline := range []string{"", "Photographer in Moab", "Sales professional"} {
		if got := Years(headline); got != "" {
			t.Errorf("Years(%q) = %q, want empty", headline, got)
		}
	}
}
