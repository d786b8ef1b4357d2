// Package engagement derives a time-windowed engagement signal from an
// utterance sequence. Windows group a fixed count of consecutive
// utterances; the "minute" labels are synthetic (window index x a
// configured size constant), not real elapsed time. Timestamps in
// transcripts are not guaranteed parseable, so utterance count stands in
// as the time proxy - a documented approximation, not a defect.
package engagement

import (
	"fmt"

	"github.com/otherjamesbrown/meetmind/pkg/sentiment"
	"github.com/otherjamesbrown/meetmind/pkg/transcript"
)

// Defaults for window construction.
const (
	// DefaultWindowUtterances is the number of consecutive utterances per window.
	DefaultWindowUtterances = 10

	// DefaultWindowMinutes is the synthetic label size in minutes.
	DefaultWindowMinutes = 5
)

// Window is one engagement window over consecutive utterances.
type Window struct {
	Label        string   `json:"window"`
	SpeakerCount int      `json:"speaker_count"`
	WordCount    int      `json:"word_count"`
	AvgSentiment float64  `json:"avg_sentiment"`
	Engagement   float64  `json:"engagement_score"`
	Speakers     []string `json:"speakers"`
}

// Windower builds engagement windows using a sentiment scorer for the
// per-utterance scores that feed the window average.
type Windower struct {
	scorer        *sentiment.Scorer
	perWindow     int
	windowMinutes int
}

// NewWindower creates a windower. Non-positive sizes fall back to the
// defaults (10 utterances per window, 5-minute labels).
func NewWindower(scorer *sentiment.Scorer, perWindow, windowMinutes int) *Windower {
	if scorer == nil {
		scorer = sentiment.NewScorer(nil)
	}
	if perWindow <= 0 {
		perWindow = DefaultWindowUtterances
	}
	if windowMinutes <= 0 {
		windowMinutes = DefaultWindowMinutes
	}
	return &Windower{scorer: scorer, perWindow: perWindow, windowMinutes: windowMinutes}
}

// Windows groups the utterances into windows of the configured size,
// flushing a shorter final window at sequence end. Per window: word count
// is the sum of utterance word counts, speakers the distinct speaker
// names, avg sentiment the mean of per-utterance scores, and
//
//	engagement = clamp(speakers*10 + words/10 + avgSentiment/2, 0, 100)
func (w *Windower) Windows(utterances []transcript.Utterance) []Window {
	windows := make([]Window, 0, (len(utterances)+w.perWindow-1)/w.perWindow)

	for start := 0; start < len(utterances); start += w.perWindow {
		end := start + w.perWindow
		if end > len(utterances) {
			end = len(utterances)
		}
		windows = append(windows, w.build(utterances[start:end], len(windows)))
	}

	return windows
}

// build aggregates one window from its utterance slice.
func (w *Windower) build(slice []transcript.Utterance, index int) Window {
	seen := make(map[string]bool)
	speakers := make([]string, 0, len(slice))
	wordCount := 0
	sentimentSum := 0.0

	for _, u := range slice {
		wordCount += transcript.WordCount(u.Text)
		if !seen[u.Speaker] {
			seen[u.Speaker] = true
			speakers = append(speakers, u.Speaker)
		}
		sentimentSum += w.scorer.Analyze(u.Text).Score
	}

	avgSentiment := sentimentSum / float64(len(slice))
	engagement := float64(len(speakers))*10 + float64(wordCount)/10 + avgSentiment/2

	return Window{
		Label:        w.label(index),
		SpeakerCount: len(speakers),
		WordCount:    wordCount,
		AvgSentiment: avgSentiment,
		Engagement:   clamp(engagement, 0, 100),
		Speakers:     speakers,
	}
}

// label produces the synthetic minute-range label for a window index,
// e.g. "0-5 min", "5-10 min".
func (w *Windower) label(index int) string {
	start := index * w.windowMinutes
	return fmt.Sprintf("%d-%d min", start, start+w.windowMinutes)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
