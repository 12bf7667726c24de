// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import "regexp"

// Executive titles too senior for SDR/AE roles. Founder and owner are
// explicitly allowed (allowedTitles wins).
var excludedTitles = compile(
	`\bvp\b`,
	`\bvice president\b`,
	`\bdirector\b`,
	`\bhead of\b`,
	`\bchief\b`,
	`\bceo\b`,
	`\bcro\b`,
	`\bcoo\b`,
	`\bcfo\b`,
	`\bcmo\b`,
	`\bcto\b`,
	`\bsvp\b`,
	`\bevp\b`,
	`\bsenior vice president\b`,
	`\bexecutive vice president\b`,
	`\bgeneral manager\b`,
	`\bgm\b`,
	`\bpresident\b`,
	`\bpartner\b`,
	`\bprincipal\b`,
	`\bmanaging director\b`,
	`\benterprise\b`,
)

var allowedTitles = compile(
	`\bfounder\b`,
	`\bowner\b`,
	`\bco-founder\b`,
	`\bcofounder\b`,
)

// Existing SDR/BDR titles. SDR sourcing wants fresh candidates, not people
// already in the seat.
var existingSDRTitles = compile(
	`\bsdr\b`,
	`\bbdr\b`,
	`\bsales development representative\b`,
	`\bbusiness development representative\b`,
	`\bsales development\b`,
	`\bbusiness development rep\b`,
	`\blead development representative\b`,
	`\bldr\b`,
	`\bmarket development representative\b`,
	`\bmdr\b`,
)

// defaultRegionKeywords signal a Utah connection: locations, colleges, and
// local tech companies. The set is tunable via LoadKeywords.
var defaultRegionKeywords = []string{
	// Locations.
	`\butah\b`,
	`\bsalt lake city\b`,
	`\bslc\b`,
	`\bprovo\b`,
	`\bogden\b`,
	`\borem\b`,
	`\blehi\b`,
	`\bsandy\b`,
	`\bdraper\b`,
	`\bst\.?\s*george\b`,
	`\blogan\b`,
	`\bpark city\b`,
	`\bsilicon slopes\b`,
	`,\s*ut\b`,
	`\but\s*,`,
	`\bbountiful\b`,
	`\bmurray\b`,
	`\blayton\b`,
	`\bclearfield\b`,
	`\bamerican fork\b`,
	`\bpleasant grove\b`,
	`\bspanish fork\b`,
	`\bspringville\b`,
	`\bherriman\b`,
	`\briverton\b`,
	`\btooele\b`,

	// Colleges.
	`\bbyu\b`,
	`\bbrigham young\b`,
	`\butah state\b`,
	`\buniversity of utah\b`,
	`\bu of u\b`,
	`\bweber state\b`,
	`\buvu\b`,
	`\butah valley\b`,
	`\bsouthern utah\b`,
	`\bdixie state\b`,
	`\butah tech\b`,
	`\bsnow college\b`,
	`\bslcc\b`,
	`\bsalt lake community\b`,
	`\bensign college\b`,

	// Tech companies headquartered in the region.
	`\bqualtrics\b`,
	`\bpluralsight\b`,
	`\bpodium\b`,
	`\blucid\b`,
	`\bdomo\b`,
	`\bentrata\b`,
	`\bweave\b`,
	`\bdivvy\b`,
	`\binstructure\b`,
	`\bvivint\b`,
	`\bhealthequity\b`,
	`\brecursion\b`,
	`\bworkfront\b`,
	`\bbamboohr\b`,
	`\bworkstream\b`,
}

func compile(patterns ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		res[i] = regexp.MustCompile(p)
	}
	return res
}

func anyMatch(res []*regexp.Regexp, text string) bool {
	for _, re := range res {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
