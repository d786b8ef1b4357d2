// Package dates detects literal date-like phrases in meeting text.
// Detection is a stateless regex sweep over fixed date shapes; matches
// are returned untyped, in document order, with no normalization -
// turning "next Friday" into a calendar date is the caller's concern.
package dates

import (
	"regexp"
	"sort"
)

// datePatterns is the fixed shape set: numeric separators, full and
// abbreviated month names with optional ordinal suffixes, relative
// weekday phrases, and bare relative terms.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`),
	regexp.MustCompile(`(?i)\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4}\b`),
	regexp.MustCompile(`(?i)\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4}\b`),
	regexp.MustCompile(`(?i)\b(?:next|this)\s+(?:Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday)\b`),
	regexp.MustCompile(`(?i)\b(?:tomorrow|today|yesterday)\b`),
}

// Detect returns every literal date-like substring found in text, in
// document order.
func Detect(text string) []string {
	type match struct {
		start int
		text  string
	}

	var found []match
	for _, pattern := range datePatterns {
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			found = append(found, match{start: loc[0], text: text[loc[0]:loc[1]]})
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].start < found[j].start
	})

	out := make([]string, 0, len(found))
	for _, m := range found {
		out = append(out, m.text)
	}
	return out
}
