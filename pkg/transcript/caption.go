package transcript

import (
	"bufio"
	"io"
	"strings"
)

// cueMarker identifies a caption time-range line, e.g.
// "00:00:10.000 --> 00:00:15.000".
const cueMarker = "-->"

// CaptionParser parses caption-format transcripts (WebVTT-style).
// A line containing a time-range marker opens a cue; all following
// non-empty, non-marker lines up to the next marker (or end of input)
// are joined with single spaces to form the cue body. The speaker
// heuristic (see SplitSpeaker) is then applied to the body.
type CaptionParser struct{}

// NewCaptionParser creates a parser for caption-format transcripts.
func NewCaptionParser() *CaptionParser {
	return &CaptionParser{}
}

// Parse reads caption content and returns the utterance sequence.
// A cue with no body text yields an utterance with empty text rather
// than being dropped. Empty input yields an empty sequence.
func (p *CaptionParser) Parse(r io.Reader) ([]Utterance, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	utterances := make([]Utterance, 0)

	var inCue bool
	var timestamp string
	var body []string

	flush := func() {
		if !inCue {
			return
		}
		speaker, text := SplitSpeaker(strings.Join(body, " "))
		utterances = append(utterances, Utterance{
			Speaker:   speaker,
			Text:      text,
			Timestamp: timestamp,
		})
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.Contains(line, cueMarker) {
			flush()
			inCue = true
			timestamp = line
			body = body[:0]
			continue
		}

		if line == "" || !inCue {
			continue
		}

		body = append(body, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	flush()

	return utterances, nil
}
