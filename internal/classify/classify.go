// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify labels candidates by role fit and estimates years of
// experience from headline text. Classification never rejects: a headline
// with no signal gets RoleUnknown and is still written for manual review.
package classify

import (
	"regexp"
	"strings"

	"github.com/a9austin/sdr-sourcer/pkg/types"
)

// sdrIndicators signal entry-level fit: fresh graduates, athletes,
// door-to-door reps, and hospitality pivoters.
var sdrIndicators = compile(
	`\bsdr\b`,
	`\bbdr\b`,
	`\bsales development\b`,
	`\bbusiness development representative\b`,
	`\boutbound\b`,
	`\bcold calling\b`,
	`\blead generation\b`,
	`\bprospecting\b`,
	`\bstudent athlete\b`,
	`\bncaa\b`,
	`\bdoor.?to.?door\b`,
	`\bd2d\b`,
	`\brecent graduate\b`,
	`\bentry.?level\b`,
	`\bintern\b`,
	`\brestaurant\b`,
	`\bbartender\b`,
	`\bserver\b`,
)

// aeIndicators signal closing experience.
var aeIndicators = compile(
	`\baccount executive\b`,
	`\bae\b`,
	`\bclosing\b`,
	`\bfull.?cycle\b`,
	`\bmid.?market\b`,
	`\bsmb\b`,
	`\bquota\b`,
	`\b\$\d+[mk]\b`,
	`\bclosed\b`,
	`\bsaas\b`,
	`\b\d\+?\s*years?\b`,
	`\bsenior\s*(account|sales)\b`,
)

// Role maps a headline to a role-fit label by keyword-set membership: a hit
// in both sets is SDR/AE, a hit in one set is that role, no hits is Unknown.
// Match counts beyond the first are irrelevant.
func Role(headline string) types.RoleFit {
	text := strings.ToLower(headline)

	sdr := anyMatch(sdrIndicators, text)
	ae := anyMatch(aeIndicators, text)

	switch {
	case sdr && ae:
		return types.RoleSDRAE
	case sdr:
		return types.RoleSDR
	case ae:
		return types.RoleAE
	default:
		return types.RoleUnknown
	}
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
