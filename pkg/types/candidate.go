// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the sdr-sourcer pipeline:
// candidate records, query specs, and per-stage configuration.
package types

import "time"

// RoleFit labels which sales role a candidate best matches. It is derived
// by the classifier from headline text, never supplied at parse time.
type RoleFit string

const (
	// RoleSDR marks entry-level sales development candidates.
	RoleSDR RoleFit = "SDR"

	// RoleAE marks experienced account-executive candidates.
	RoleAE RoleFit = "AE"

	// RoleSDRAE marks candidates with signals for both roles, typically
	// SDRs ready to promote into a closing role.
	RoleSDRAE RoleFit = "SDR/AE"

	// RoleUnknown means the headline carried no role signal. Unknown
	// candidates are still written for manual review.
	RoleUnknown RoleFit = "UNKNOWN"
)

// Candidate is one parsed and classified lead.
type Candidate struct {
	// FullName is the person's name extracted from the result title or the
	// profile URL slug. May be empty when the title is unparsable.
	FullName string `json:"full_name" yaml:"full_name"`

	// LinkedInURL is the cleaned profile URL. It is the dedup key: at most
	// one record per normalized URL reaches a sink. Required.
	LinkedInURL string `json:"linkedin_url" yaml:"linkedin_url"`

	// Headline is the profile headline from the title remainder or snippet.
	Headline string `json:"headline" yaml:"headline"`

	// Snippet is the raw search-result snippet, kept for filtering signals.
	Snippet string `json:"snippet,omitempty" yaml:"snippet,omitempty"`

	// YearsExperience is a textual estimate like "2", "3+", or "<1",
	// filled by the experience command. Empty until estimated.
	YearsExperience string `json:"years_experience,omitempty" yaml:"years_experience,omitempty"`

	// RoleFit is the classifier's label.
	RoleFit RoleFit `json:"role_fit" yaml:"role_fit"`

	// Notes is free text for the recruiter.
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`

	// Email and Phone are usually empty at sourcing time.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
	Phone string `json:"phone,omitempty" yaml:"phone,omitempty"`

	// DateAdded is when the candidate was first written.
	DateAdded time.Time `json:"date_added" yaml:"date_added"`

	// Status is a free-form downstream field (NEW, CONTACTED, REJECTED, ...).
	Status string `json:"status,omitempty" yaml:"status,omitempty"`

	// AIDraft is an optional generated outreach message.
	AIDraft string `json:"ai_draft,omitempty" yaml:"ai_draft,omitempty"`

	// SourceQuery is the search query that surfaced this candidate.
	SourceQuery string `json:"source_query,omitempty" yaml:"source_query,omitempty"`
}

// Header is the fixed column order shared by the spreadsheet and the local
// CSV backup.
var Header = []string{
	"Full Name", "LinkedIn URL", "Headline", "Years of Experience",
	"Role Fit", "Notes", "Email", "Phone", "Date Added", "Status", "AI Draft",
}

const dateFormat = "2006-01-02"

// Row renders the candidate in the fixed 11-column order.
func (c *Candidate) Row() []string {
	date := ""
	if !c.DateAdded.IsZero() {
		date = c.DateAdded.Format(dateFormat)
	}
	return []string{
		c.FullName, c.LinkedInURL, c.Headline, c.YearsExperience,
		string(c.RoleFit), c.Notes, c.Email, c.Phone, date, c.Status, c.AIDraft,
	}
}
