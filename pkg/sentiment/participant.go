package sentiment

import (
	"strings"

	"github.com/otherjamesbrown/meetmind/pkg/transcript"
)

// ParticipantResult is the sentiment summary for one participant.
type ParticipantResult struct {
	Score                float64        `json:"sentiment_score"`
	Classification       Classification `json:"classification"`
	TotalStatements      int            `json:"total_statements"`
	AvgWordsPerStatement float64        `json:"avg_words_per_statement"`
}

// AnalyzeParticipants scores each named participant's combined speech.
// All of a participant's utterance texts are concatenated with single
// spaces and scored in one pass - deliberately not an average of
// per-utterance scores, so long statements weigh in proportionally.
// Participants with no utterances get a zero, neutral result.
func (s *Scorer) AnalyzeParticipants(utterances []transcript.Utterance, names []string) map[string]ParticipantResult {
	texts := make(map[string][]string, len(names))
	for _, u := range utterances {
		texts[u.Speaker] = append(texts[u.Speaker], u.Text)
	}

	results := make(map[string]ParticipantResult, len(names))
	for _, name := range names {
		spoken := texts[name]
		if len(spoken) == 0 {
			results[name] = ParticipantResult{Classification: Neutral}
			continue
		}

		combined := strings.Join(spoken, " ")
		r := s.Analyze(combined)
		results[name] = ParticipantResult{
			Score:                r.Score,
			Classification:       r.Classification,
			TotalStatements:      len(spoken),
			AvgWordsPerStatement: float64(r.WordCount) / float64(len(spoken)),
		}
	}

	return results
}
