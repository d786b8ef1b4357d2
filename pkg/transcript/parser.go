package transcript

import (
	"path/filepath"
	"strings"
)

// ParserForFile selects a parser based on file extension convention:
// ".vtt" files use the caption format, anything else the plain format.
func ParserForFile(filename string) Parser {
	if strings.EqualFold(filepath.Ext(filename), ".vtt") {
		return NewCaptionParser()
	}
	return NewPlainParser()
}

// FullText joins all utterance texts with single spaces, in transcript
// order. Downstream extraction (action items, dates) operates on this.
func FullText(utterances []Utterance) string {
	parts := make([]string, 0, len(utterances))
	for _, u := range utterances {
		if u.Text == "" {
			continue
		}
		parts = append(parts, u.Text)
	}
	return strings.Join(parts, " ")
}
