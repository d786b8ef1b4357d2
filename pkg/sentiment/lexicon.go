// Package sentiment provides lexicon-based sentiment scoring for meeting
// text. Scoring is word-count-normalized so results are comparable across
// utterances of different length.
package sentiment

// Lexicon holds the fixed word sets the scorer matches tokens against.
// Lexicons are immutable configuration: build one at startup (usually via
// DefaultLexicon) and inject it into the scorer. Nothing mutates a
// Lexicon after construction.
type Lexicon struct {
	Positive     map[string]bool
	Negative     map[string]bool
	Intensifiers map[string]float64
	Negations    map[string]bool
}

// DefaultLexicon returns the stock lexicon. The word sets, intensifier
// multipliers, and negation triggers must not be altered: scores are
// numerically comparable across deployments only if every instance uses
// the same data.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		Positive: wordSet(
			"excellent", "great", "good", "wonderful", "fantastic", "amazing",
			"awesome", "brilliant", "outstanding", "superb", "love", "perfect",
			"agree", "yes", "definitely", "absolutely", "congratulations", "success",
			"achievement", "progress", "improve", "benefit", "opportunity", "excited",
			"happy", "pleased", "satisfied", "grateful", "thank", "appreciate",
		),
		Negative: wordSet(
			"bad", "terrible", "awful", "horrible", "poor", "disappointing",
			"unfortunate", "problem", "issue", "concern", "worried", "anxious",
			"difficult", "challenge", "struggle", "fail", "failure", "mistake",
			"error", "wrong", "disagree", "no", "never", "cannot", "impossible",
			"frustrated", "angry", "upset", "unhappy", "dissatisfied", "delay",
		),
		Intensifiers: map[string]float64{
			"very":       1.5,
			"really":     1.5,
			"extremely":  2.0,
			"absolutely": 2.0,
			"completely": 2.0,
			"totally":    2.0,
			"highly":     1.5,
		},
		Negations: wordSet("not", "no", "never", "n't", "neither", "nor", "none"),
	}
}

func wordSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
