package participants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otherjamesbrown/meetmind/pkg/transcript"
)

func TestAggregate_Counts(t *testing.T) {
	utterances := []transcript.Utterance{
		{Speaker: "Alice", Text: "Good morning everyone"},
		{Speaker: "Bob", Text: "Morning"},
		{Speaker: "Alice", Text: "Let's get started with the agenda"},
		{Speaker: "Unknown", Text: ""},
	}

	set := Aggregate(utterances)
	require.Equal(t, 3, set.Len())

	alice := set.Get("Alice")
	require.NotNil(t, alice)
	assert.Equal(t, 2, alice.SpeakingCount)
	assert.Equal(t, 9, alice.TotalWords)

	bob := set.Get("Bob")
	require.NotNil(t, bob)
	assert.Equal(t, 1, bob.SpeakingCount)
	assert.Equal(t, 1, bob.TotalWords)

	unknown := set.Get("Unknown")
	require.NotNil(t, unknown)
	assert.Equal(t, 1, unknown.SpeakingCount)
	assert.Equal(t, 0, unknown.TotalWords)
}

func TestAggregate_TotalInvariants(t *testing.T) {
	utterances := []transcript.Utterance{
		{Speaker: "A", Text: "one two three"},
		{Speaker: "B", Text: "four"},
		{Speaker: "A", Text: ""},
		{Speaker: "C", Text: "five six"},
		{Speaker: "B", Text: "seven eight nine ten"},
	}

	set := Aggregate(utterances)

	totalSpeaking, totalWords := 0, 0
	for _, p := range set.All() {
		totalSpeaking += p.SpeakingCount
		totalWords += p.TotalWords
	}

	wantWords := 0
	for _, u := range utterances {
		wantWords += transcript.WordCount(u.Text)
	}

	assert.Equal(t, len(utterances), totalSpeaking)
	assert.Equal(t, wantWords, totalWords)
}

func TestAggregate_FirstObservedOrder(t *testing.T) {
	utterances := []transcript.Utterance{
		{Speaker: "Carol", Text: "x"},
		{Speaker: "Alice", Text: "y"},
		{Speaker: "Carol", Text: "z"},
		{Speaker: "Bob", Text: "w"},
	}

	set := Aggregate(utterances)
	assert.Equal(t, []string{"Carol", "Alice", "Bob"}, set.Names())
}

func TestAggregate_Deterministic(t *testing.T) {
	utterances := []transcript.Utterance{
		{Speaker: "A", Text: "hello there"},
		{Speaker: "B", Text: "hi"},
		{Speaker: "A", Text: "bye"},
	}

	first := Aggregate(utterances)
	second := Aggregate(utterances)

	require.Equal(t, first.Names(), second.Names())
	for _, name := range first.Names() {
		assert.Equal(t, *first.Get(name), *second.Get(name))
	}
}

func TestRegister(t *testing.T) {
	set := NewSet()
	p := set.Register("Alice", "PM", "alice@example.com")
	assert.Equal(t, "PM", p.Role)
	assert.Equal(t, "alice@example.com", p.Email)
	assert.Zero(t, p.SpeakingCount)

	// Email format is deliberately not validated.
	q := set.Register("Bob", "", "not-an-email")
	assert.Equal(t, "not-an-email", q.Email)

	// Re-registration keeps existing fields when blank.
	set.Register("Alice", "", "")
	assert.Equal(t, "PM", set.Get("Alice").Role)
	assert.Equal(t, "alice@example.com", set.Get("Alice").Email)
}
