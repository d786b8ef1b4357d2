// Package transcript provides parsing for meeting transcript files.
// Two textual formats are supported: caption files with time-range cue
// markers (WebVTT-style) and plain line-per-utterance files. Both produce
// the same ordered Utterance sequence.
package transcript

import (
	"io"
	"strings"
)

// Utterance is one speaker turn extracted from a transcript.
// Utterances are immutable once created; the parser output preserves
// transcript order.
type Utterance struct {
	Speaker   string `json:"speaker"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp,omitempty"`
}

// Parser parses transcript text into an ordered utterance sequence.
// Parsing is lenient: malformed content degrades to default values
// (speaker "Unknown", empty text) and never produces an error. Errors
// are only returned for failures reading from r.
type Parser interface {
	Parse(r io.Reader) ([]Utterance, error)
}

// WordCount returns the number of whitespace-separated words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
