package transcript

import (
	"bufio"
	"io"
	"strings"
)

// PlainParser parses plain-text transcripts: one utterance per non-empty
// line, with the same colon-prefix speaker heuristic as the caption
// format. Plain transcripts carry no timestamps.
type PlainParser struct{}

// NewPlainParser creates a parser for plain-text transcripts.
func NewPlainParser() *PlainParser {
	return &PlainParser{}
}

// Parse reads plain transcript content and returns the utterance sequence.
func (p *PlainParser) Parse(r io.Reader) ([]Utterance, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	utterances := make([]Utterance, 0)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		speaker, text := SplitSpeaker(line)
		utterances = append(utterances, Utterance{
			Speaker: speaker,
			Text:    text,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return utterances, nil
}
