// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Years estimation walks four heuristics in order: explicit year counts,
// graduation years, title buckets, then company-tenure hints. The result
// is a display string like "2", "3+", "2-4", or "<1"; empty means unknown.

var explicitYears = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*\+?\s*years?\s+(?:of\s+)?(?:experience|exp)`),
	regexp.MustCompile(`(\d+)\s*-\s*(\d+)\s*years?`),
	regexp.MustCompile(`(\d+)\s*\+?\s*years?\s+in\s+(?:sales|saas|tech|b2b)`),
	regexp.MustCompile(`(\d+)\s*\+\s*years?`),
	regexp.MustCompile(`(\d+)\s*years?\s+(?:sales|saas|b2b|account)`),
}

var gradYears = []*regexp.Regexp{
	regexp.MustCompile(`class of ['"]?(\d{4})`),
	regexp.MustCompile(`graduated?\s*[:\-]?\s*(\d{4})`),
	regexp.MustCompile(`['](\d{2})\b`),
	regexp.MustCompile(`\b(20[12]\d)\s+(?:graduate|grad|alumni)`),
}

// titleBuckets maps role titles to typical experience ranges, checked in
// order from junior to senior.
var titleBuckets = []struct {
	re       *regexp.Regexp
	estimate string
}{
	{regexp.MustCompile(`\b(intern|internship)\b`), "<1"},
	{regexp.MustCompile(`\bstudent\b`), "<1"},
	{regexp.MustCompile(`\bentry.?level\b`), "<1"},
	{regexp.MustCompile(`\brecent\s+grad`), "<1"},
	{regexp.MustCompile(`\bsenior\s+(account\s+executive|ae|sdr)\b`), "4+"},
	{regexp.MustCompile(`\b(smb|enterprise)\s+account\s+executive\b`), "3-5"},
	{regexp.MustCompile(`\bteam\s+lead\b`), "3+"},
	{regexp.MustCompile(`\bsales\s+manager\b`), "4+"},
	{regexp.MustCompile(`\b(sdr|bdr)\b`), "1-2"},
	{regexp.MustCompile(`\bjunior\b`), "1-2"},
	{regexp.MustCompile(`\bassociate\b`), "1-2"},
	{regexp.MustCompile(`\baccount\s+executive\b`), "2-4"},
	{regexp.MustCompile(`\bae\b`), "2-4"},
	{regexp.MustCompile(`\bmid.?market\b`), "2-4"},
}

var (
	tenureYearsAt = regexp.MustCompile(`(\d+)\s*(?:yr|year)s?\s+at\b`)
	tenureSince   = regexp.MustCompile(`since\s+(\d{4})\b`)

	salesRole       = regexp.MustCompile(`\b(sales|account|business\s+development)\b`)
	seasonedSignals = regexp.MustCompile(`\b(proven|experienced|seasoned|successful)\b`)
)

// Years estimates years of experience from a headline. It returns an empty
// string when no heuristic applies; callers treat that as "leave blank".
func Years(headline string) string {
	if headline == "" {
		return ""
	}
	text := strings.ToLower(headline)
	now := time.Now().Year()

	for _, re := range explicitYears {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if len(m) > 2 && m[2] != "" {
			return m[1] + "-" + m[2]
		}
		if strings.Contains(m[0], "+") {
			return m[1] + "+"
		}
		return m[1]
	}

	for _, re := range gradYears {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		year, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if len(m[1]) == 2 {
			year += 2000
		}
		if year < 2015 || year > now {
			continue
		}
		if exp := now - year; exp > 0 {
			return strconv.Itoa(exp)
		}
		return "<1"
	}

	for _, b := range titleBuckets {
		if b.re.MatchString(text) {
			return b.estimate
		}
	}

	if m := tenureYearsAt.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := tenureSince.FindStringSubmatch(text); m != nil {
		if year, err := strconv.Atoi(m[1]); err == nil && year <= now {
			return fmt.Sprintf("%d", now-year)
		}
	}

	if salesRole.MatchString(text) && seasonedSignals.MatchString(text) {
		return "3+"
	}
	return ""
}
