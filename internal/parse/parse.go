// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse turns raw search-result items into candidate records.
// Parsing is best-effort text heuristics: malformed titles degrade to an
// empty name or headline rather than failing.
package parse

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/a9austin/sdr-sourcer/pkg/types"
)

// Result is one raw search hit as returned by a search engine.
type Result struct {
	Title   string
	Snippet string
	Link    string
}

// Search-result titles follow the convention "Name - Headline | LinkedIn".
var (
	linkedInSuffix = regexp.MustCompile(`(?i)\s*[|\-–]\s*LinkedIn.*$`)
	titleSeparator = regexp.MustCompile(`\s*[-–]\s*`)

	profilePath = regexp.MustCompile(`linkedin\.com/in/([^/?#]+)`)

	// Trailing disambiguation codes on profile slugs: -a1b2c3d4e, -42.
	slugHexSuffix = regexp.MustCompile(`-[a-f0-9]{5,}$`)
	slugNumSuffix = regexp.MustCompile(`-\d+$`)
)

const maxHeadline = 200

// Candidate parses a raw hit into a candidate record. It returns false when
// the link is not a LinkedIn profile URL; such hits are dropped, not errors.
// RoleFit is left unset for the classifier.
func Candidate(hit Result, sourceQuery string) (*types.Candidate, bool) {
	cleaned, ok := CleanURL(hit.Link)
	if !ok {
		return nil, false
	}

	c := &types.Candidate{
		LinkedInURL: cleaned,
		Snippet:     strings.TrimSpace(hit.Snippet),
		SourceQuery: sourceQuery,
	}

	if title := linkedInSuffix.ReplaceAllString(hit.Title, ""); title != "" {
		parts := titleSeparator.Split(title, 2)
		c.FullName = strings.TrimSpace(parts[0])
		if len(parts) > 1 {
			c.Headline = strings.TrimSpace(parts[1])
		}
	}

	if c.FullName == "" {
		c.FullName = nameFromURL(cleaned)
	}

	if c.Headline == "" && c.Snippet != "" {
		headline := strings.Join(strings.Fields(c.Snippet), " ")
		if r := []rune(headline); len(r) > maxHeadline {
			headline = string(r[:maxHeadline]) + "..."
		}
		c.Headline = headline
	}

	return c, true
}

// CleanURL normalizes a LinkedIn profile link into the dedup key form:
// unescaped, query string and fragment stripped, lowercased, trailing slash
// trimmed. The second return value is false for non-profile links.
func CleanURL(link string) (string, bool) {
	if !profilePath.MatchString(strings.ToLower(link)) {
		return "", false
	}

	if unescaped, err := url.QueryUnescape(link); err == nil {
		link = unescaped
	}
	if i := strings.IndexAny(link, "?#"); i >= 0 {
		link = link[:i]
	}
	return strings.TrimSuffix(strings.ToLower(link), "/"), true
}

// nameFromURL derives a display name from the profile slug: the trailing
// disambiguation code is chopped and hyphens become spaces
// ("jane-doe-1a2b3c4d5" -> "Jane Doe").
func nameFromURL(cleaned string) string {
	m := profilePath.FindStringSubmatch(cleaned)
	if m == nil {
		return ""
	}
	slug := slugHexSuffix.ReplaceAllString(m[1], "")
	slug = slugNumSuffix.ReplaceAllString(slug, "")
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.TrimSpace(strings.Join(words, " "))
}
