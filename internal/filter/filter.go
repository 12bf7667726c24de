// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package filter rejects unwanted candidates with a chain of pure text
// predicates. Each predicate is text in, boolean out, so rules can be
// tested independently; the chain short-circuits on the first rejection.
package filter

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/a9austin/sdr-sourcer/pkg/types"
)

// TooSenior reports whether a headline carries an executive title that is
// too senior for SDR/AE roles. Founders and owners are always allowed.
func TooSenior(headline string) bool {
	if headline == "" {
		return false
	}
	text := strings.ToLower(headline)
	if anyMatch(allowedTitles, text) {
		return false
	}
	return anyMatch(excludedTitles, text)
}

// ExistingSDR reports whether the headline or snippet indicates the person
// already holds an SDR/BDR title. Founders and owners are always allowed.
func ExistingSDR(headline, snippet string) bool {
	if headline == "" {
		return false
	}
	text := strings.ToLower(headline + " " + snippet)
	if anyMatch(allowedTitles, text) {
		return false
	}
	return anyMatch(existingSDRTitles, text)
}

// Chain applies the predicate rules in sequence. The region keyword set is
// carried on the chain so it can be overridden per run.
type Chain struct {
	region []*regexp.Regexp

	// SkipSDRFilterForAE loosens the existing-SDR rule for AE-tagged
	// queries: promotion candidates pass through and the classifier labels
	// them instead.
	SkipSDRFilterForAE bool
}

// NewChain builds a chain with the default Utah region keyword set.
func NewChain() *Chain {
	return &Chain{region: compile(defaultRegionKeywords...), SkipSDRFilterForAE: true}
}

// InRegion reports whether headline or snippet carries a target-region
// signal (location, college, or local company).
func (ch *Chain) InRegion(headline, snippet string) bool {
	return anyMatch(ch.region, strings.ToLower(headline+" "+snippet))
}

// Rejection names for run statistics.
const (
	RejectSenior      = "too_senior"
	RejectExistingSDR = "existing_sdr"
	RejectNonRegion   = "non_region"
)

// Accept runs the chain against a candidate sourced by a query of the given
// role type. It returns false plus the name of the rejecting rule. The
// predicates are independent, so rule order only decides which name is
// reported, never the accept/reject outcome.
func (ch *Chain) Accept(c *types.Candidate, queryRole types.RoleType) (bool, string) {
	if TooSenior(c.Headline) {
		return false, RejectSenior
	}
	if ch.sdrFilterApplies(queryRole) && ExistingSDR(c.Headline, c.Snippet) {
		return false, RejectExistingSDR
	}
	if !ch.InRegion(c.Headline, c.Snippet) {
		return false, RejectNonRegion
	}
	return true, ""
}

func (ch *Chain) sdrFilterApplies(queryRole types.RoleType) bool {
	if queryRole == types.TypeAE && ch.SkipSDRFilterForAE {
		return false
	}
	return queryRole == types.TypeSDR || !ch.SkipSDRFilterForAE
}

// keywordFile is the YAML shape for region keyword overrides.
type keywordFile struct {
	Region []string `yaml:"region"`
}

// LoadKeywords replaces the chain's region keyword set with patterns from a
// YAML file ({region: [pattern, ...]}). Patterns are Go regular expressions
// matched against lowercased text.
func (ch *Chain) LoadKeywords(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading keyword file: %w", err)
	}
	var kf keywordFile
	if err := yaml.Unmarshal(data, &kf); err != nil {
		return fmt.Errorf("parsing keyword file: %w", err)
	}
	if len(kf.Region) == 0 {
		return fmt.Errorf("keyword file %s has no region patterns", path)
	}

	region := make([]*regexp.Regexp, len(kf.Region))
	for i, p := range kf.Region {
		re, err := regexp.Compile(p)
		if err != nil {
			return fmt.Errorf("invalid region pattern %q: %w", p, err)
		}
		region[i] = re
	}
	ch.region = region
	return nil
}
