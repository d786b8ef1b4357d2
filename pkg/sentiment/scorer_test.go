package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otherjamesbrown/meetmind/pkg/transcript"
)

func TestAnalyze_Empty(t *testing.T) {
	r := NewScorer(nil).Analyze("")
	assert.Equal(t, 0.0, r.Score)
	assert.Equal(t, Neutral, r.Classification)
	assert.Equal(t, 0, r.WordCount)
	assert.Equal(t, 0.0, r.RawScore)
}

func TestAnalyze_IntensifierOneTokenLookback(t *testing.T) {
	s := NewScorer(nil)

	// "very" multiplies the adjacent "good" hit by 1.5.
	r := s.Analyze("very good")
	assert.Equal(t, 1.5, r.RawScore)
	assert.Equal(t, 2, r.WordCount)
	assert.InDelta(t, 75.0, r.Score, 1e-9)
	assert.Equal(t, Positive, r.Classification)

	// One token back only: with a word in between, no multiplier applies.
	r = s.Analyze("very truly good")
	assert.Equal(t, 1.0, r.RawScore)
}

func TestAnalyze_NegationFlips(t *testing.T) {
	s := NewScorer(nil)

	r := s.Analyze("not good")
	// "not" flips the positive hit; "not" is itself not in the negative set.
	assert.Equal(t, -1.0, r.RawScore)
	assert.True(t, r.Score < 0, "negated positive must net negative")
	assert.NotEqual(t, Positive, r.Classification)

	// Negation also flips negative hits back to positive contributions.
	r = s.Analyze("not bad")
	// "no"/"not" quirk: "no" is both a negation trigger and a negative
	// word; here "not" is only a trigger, so raw = +1.
	assert.Equal(t, 1.0, r.RawScore)
}

func TestAnalyze_PunctuationStripped(t *testing.T) {
	s := NewScorer(nil)
	r := s.Analyze("great!")
	assert.Equal(t, 1.0, r.RawScore)
	assert.Equal(t, 1, r.WordCount)
	assert.Equal(t, 100.0, r.Score)
}

func TestAnalyze_ClampBounds(t *testing.T) {
	s := NewScorer(nil)

	// "absolutely" scores as a positive word itself and intensifies
	// "perfect": +1 + 1*2.0 = 3.0, clamped to 100 after normalization.
	r := s.Analyze("absolutely perfect")
	assert.Equal(t, 3.0, r.RawScore)
	assert.Equal(t, 100.0, r.Score)

	r = s.Analyze("extremely terrible")
	assert.Equal(t, -2.0, r.RawScore)
	assert.Equal(t, -100.0, r.Score)
}

func TestAnalyze_NormalizedByLength(t *testing.T) {
	s := NewScorer(nil)

	short := s.Analyze("good")
	long := s.Analyze("good but padded with many many other neutral words here")

	assert.Equal(t, short.RawScore, long.RawScore)
	assert.Greater(t, short.Score, long.Score)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, Positive, Classify(20))
	assert.Equal(t, Neutral, Classify(19.9))
	assert.Equal(t, Neutral, Classify(-19.9))
	assert.Equal(t, Negative, Classify(-20))
}

func TestShouldNotify(t *testing.T) {
	send, kind := ShouldNotify(80)
	assert.True(t, send)
	assert.Equal(t, NotifyPositive, kind)

	send, kind = ShouldNotify(-80)
	assert.True(t, send)
	assert.Equal(t, NotifyNegative, kind)

	send, kind = ShouldNotify(79.9)
	assert.False(t, send)
	assert.Equal(t, NotifyNone, kind)

	send, kind = ShouldNotify(-79.9)
	assert.False(t, send)
	assert.Equal(t, NotifyNone, kind)
}

func TestAnalyzeParticipants_CombinedPass(t *testing.T) {
	s := NewScorer(nil)
	utterances := []transcript.Utterance{
		{Speaker: "Alice", Text: "This is great"},
		{Speaker: "Bob", Text: "I have a concern"},
		{Speaker: "Alice", Text: "really great progress"},
	}

	results := s.AnalyzeParticipants(utterances, []string{"Alice", "Bob", "Carol"})
	require.Len(t, results, 3)

	alice := results["Alice"]
	assert.Equal(t, 2, alice.TotalStatements)
	// Combined text is "This is great really great progress": 6 words,
	// raw = 1 + 1.5 + 1 = 3.5, score = 3.5/6*100.
	assert.InDelta(t, 3.5/6*100, alice.Score, 1e-9)
	assert.InDelta(t, 3.0, alice.AvgWordsPerStatement, 1e-9)

	bob := results["Bob"]
	assert.Equal(t, 1, bob.TotalStatements)
	assert.True(t, bob.Score < 0)

	// Silent participants get a zero, neutral result.
	carol := results["Carol"]
	assert.Zero(t, carol.Score)
	assert.Equal(t, Neutral, carol.Classification)
	assert.Zero(t, carol.TotalStatements)
}
