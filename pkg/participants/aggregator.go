// Package participants derives per-speaker statistics from an utterance
// sequence and holds participant registration details (role, email).
package participants

import (
	"github.com/otherjamesbrown/meetmind/pkg/transcript"
)

// Participant holds per-speaker statistics and registration details.
// Name is the key; SpeakingCount and TotalWords are maintained by
// Aggregate, Role and Email only by registration updates. Email format
// is never validated here - that is the caller's concern.
type Participant struct {
	Name          string `json:"name"`
	SpeakingCount int    `json:"speaking_count"`
	TotalWords    int    `json:"total_words"`
	Role          string `json:"role,omitempty"`
	Email         string `json:"email,omitempty"`
}

// Set is a collection of participants keyed by name, preserving the
// order in which speakers were first observed. Iteration order matters
// for downstream task assignment.
type Set struct {
	byName map[string]*Participant
	order  []string
}

// NewSet creates an empty participant set.
func NewSet() *Set {
	return &Set{byName: make(map[string]*Participant)}
}

// Aggregate performs a single pass over the utterance sequence, creating
// a participant the first time each speaker is observed and accumulating
// speaking count and whitespace-split word totals. Pure accumulation:
// identical input always yields identical counts.
func Aggregate(utterances []transcript.Utterance) *Set {
	set := NewSet()
	for _, u := range utterances {
		p := set.getOrCreate(u.Speaker)
		p.SpeakingCount++
		p.TotalWords += transcript.WordCount(u.Text)
	}
	return set
}

// getOrCreate looks up a participant by name, creating it lazily.
func (s *Set) getOrCreate(name string) *Participant {
	if p, ok := s.byName[name]; ok {
		return p
	}
	p := &Participant{Name: name}
	s.byName[name] = p
	s.order = append(s.order, name)
	return p
}

// Get returns the participant with the given name, or nil.
func (s *Set) Get(name string) *Participant {
	return s.byName[name]
}

// Names returns participant names in first-observed order.
func (s *Set) Names() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// All returns participants in first-observed order.
func (s *Set) All() []*Participant {
	out := make([]*Participant, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.byName[name])
	}
	return out
}

// Len returns the number of participants.
func (s *Set) Len() int {
	return len(s.order)
}

// Register updates registration details (role, email) for the named
// participant, creating it with zero counts if not yet observed.
func (s *Set) Register(name, role, email string) *Participant {
	p := s.getOrCreate(name)
	if role != "" {
		p.Role = role
	}
	if email != "" {
		p.Email = email
	}
	return p
}
