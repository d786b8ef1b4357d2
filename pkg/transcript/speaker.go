package transcript

import "strings"

// UnknownSpeaker is assigned when no speaker prefix can be detected.
const UnknownSpeaker = "Unknown"

// maxSpeakerPrefixLen bounds how long a colon-delimited prefix may be
// before it stops looking like a speaker name.
const maxSpeakerPrefixLen = 50

// SplitSpeaker applies the colon-prefix speaker heuristic to an utterance
// body: if the text contains a colon and the portion before the first
// colon is shorter than 50 characters, that prefix is taken as the
// speaker name and stripped from the text. Otherwise the speaker is
// "Unknown" and the text is returned unchanged.
//
// The heuristic is intentionally permissive and has documented false
// positives: a sentence whose first colon appears within the first 50
// characters ("Note: budgets are due") is misread as a speaker label.
// The threshold is deliberate behavior carried over from the upstream
// design, not a bug to fix.
func SplitSpeaker(body string) (speaker, text string) {
	idx := strings.Index(body, ":")
	if idx < 0 || idx >= maxSpeakerPrefixLen {
		return UnknownSpeaker, body
	}
	return strings.TrimSpace(body[:idx]), strings.TrimSpace(body[idx+1:])
}
