package sentiment

import (
	"strings"
	"unicode"
)

// Classification buckets a normalized sentiment score.
type Classification string

const (
	Positive Classification = "positive"
	Neutral  Classification = "neutral"
	Negative Classification = "negative"
)

// Classification thresholds on the normalized score.
const (
	positiveThreshold = 20.0
	negativeThreshold = -20.0
)

// Notification thresholds (see ShouldNotify).
const (
	notifyPositiveThreshold = 80.0
	notifyNegativeThreshold = -80.0
)

// Result is the outcome of scoring one text. Score is the normalized
// value in [-100, 100]; RawScore is the unnormalized signed lexicon sum.
type Result struct {
	Score          float64        `json:"score"`
	Classification Classification `json:"classification"`
	RawScore       float64        `json:"raw_score"`
	WordCount      int            `json:"word_count"`
}

// Scorer scores text against an injected lexicon.
type Scorer struct {
	lexicon *Lexicon
}

// NewScorer creates a scorer over the given lexicon. A nil lexicon falls
// back to DefaultLexicon.
func NewScorer(lexicon *Lexicon) *Scorer {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	return &Scorer{lexicon: lexicon}
}

// Analyze scores a text. Tokens are lower-cased whitespace splits; set
// membership is tested on the punctuation-stripped token. For each token,
// the immediately preceding token (and only that one - look-back is
// exactly one token, not a window) supplies an intensifier multiplier
// (default 1.0) and a negation flag. A positive-set hit contributes
// +1 x multiplier, a negative-set hit -1 x multiplier, with the sign
// flipped under negation.
//
// The normalized score is raw/wordCount x 100 clamped to [-100, 100];
// an empty text scores 0 and classifies neutral.
func (s *Scorer) Analyze(text string) Result {
	words := strings.Fields(strings.ToLower(text))
	wordCount := len(words)

	var raw float64
	for i, word := range words {
		clean := stripPunctuation(word)

		negated := false
		multiplier := 1.0
		if i > 0 {
			prev := stripPunctuation(words[i-1])
			if s.lexicon.Negations[prev] {
				negated = true
			}
			if m, ok := s.lexicon.Intensifiers[prev]; ok {
				multiplier = m
			}
		}

		sign := 1.0
		if negated {
			sign = -1.0
		}

		switch {
		case s.lexicon.Positive[clean]:
			raw += 1.0 * multiplier * sign
		case s.lexicon.Negative[clean]:
			raw += -1.0 * multiplier * sign
		}
	}

	score := 0.0
	if wordCount > 0 {
		score = clamp(raw/float64(wordCount)*100, -100, 100)
	}

	return Result{
		Score:          score,
		Classification: Classify(score),
		RawScore:       raw,
		WordCount:      wordCount,
	}
}

// Classify buckets a normalized score: >= 20 positive, <= -20 negative,
// otherwise neutral.
func Classify(score float64) Classification {
	switch {
	case score >= positiveThreshold:
		return Positive
	case score <= negativeThreshold:
		return Negative
	default:
		return Neutral
	}
}

// NotificationKind is the kind of sentiment notification to send.
type NotificationKind string

const (
	NotifyPositive NotificationKind = "positive"
	NotifyNegative NotificationKind = "negative"
	NotifyNone     NotificationKind = "none"
)

// ShouldNotify is the pure notification-policy decision exposed to
// external notifiers: extreme scores (>= 80 or <= -80) warrant a
// notification of the matching kind. The core never sends anything.
func ShouldNotify(score float64) (bool, NotificationKind) {
	switch {
	case score >= notifyPositiveThreshold:
		return true, NotifyPositive
	case score <= notifyNegativeThreshold:
		return true, NotifyNegative
	default:
		return false, NotifyNone
	}
}

// stripPunctuation removes everything except letters, digits, and
// underscores, mirroring a \w character-class filter.
func stripPunctuation(word string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}
		return -1
	}, word)
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
