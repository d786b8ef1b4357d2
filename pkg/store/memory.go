package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	mmerrors "github.com/otherjamesbrown/meetmind/pkg/errors"
	"github.com/otherjamesbrown/meetmind/pkg/participants"
	"github.com/otherjamesbrown/meetmind/pkg/pipeline"
)

// Memory is an in-process Repository. It is the default backend for
// one-shot CLI runs and for tests.
type Memory struct {
	mu       sync.RWMutex
	analyses map[string]*pipeline.Analysis
	people   map[string]*participants.Participant
	order    []string // meeting IDs in insertion order
}

// NewMemory creates an empty in-memory repository.
func NewMemory() *Memory {
	return &Memory{
		analyses: make(map[string]*pipeline.Analysis),
		people:   make(map[string]*participants.Participant),
	}
}

// SaveAnalysis stores the analysis keyed by meeting ID. Saving the same
// meeting ID again overwrites the previous record.
func (m *Memory) SaveAnalysis(_ context.Context, analysis *pipeline.Analysis) error {
	if analysis.MeetingID == "" {
		return fmt.Errorf("%w: analysis has no meeting ID", mmerrors.ErrValidation)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.analyses[analysis.MeetingID]; !exists {
		m.order = append(m.order, analysis.MeetingID)
	}
	m.analyses[analysis.MeetingID] = analysis
	return nil
}

// GetAnalysis returns the stored analysis for meetingID.
func (m *Memory) GetAnalysis(_ context.Context, meetingID string) (*pipeline.Analysis, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	analysis, ok := m.analyses[meetingID]
	if !ok {
		return nil, fmt.Errorf("%w: analysis %s", mmerrors.ErrNotFound, meetingID)
	}
	return analysis, nil
}

// ListAnalyses returns summaries of all stored analyses in insertion
// order.
func (m *Memory) ListAnalyses(_ context.Context) ([]AnalysisSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	summaries := make([]AnalysisSummary, 0, len(m.order))
	for _, id := range m.order {
		a := m.analyses[id]
		summaries = append(summaries, AnalysisSummary{
			MeetingID:    a.MeetingID,
			Title:        a.Title,
			Date:         a.Date,
			Participants: len(a.Participants),
			ActionItems:  len(a.ActionItems),
		})
	}
	return summaries, nil
}

// RegisterParticipant adds or updates a directory entry keyed by name.
func (m *Memory) RegisterParticipant(_ context.Context, p *participants.Participant) error {
	if p.Name == "" {
		return fmt.Errorf("%w: participant has no name", mmerrors.ErrValidation)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.people[p.Name]
	if !ok {
		clone := *p
		m.people[p.Name] = &clone
		return nil
	}
	if p.Role != "" {
		existing.Role = p.Role
	}
	if p.Email != "" {
		existing.Email = p.Email
	}
	return nil
}

// GetParticipant returns the directory entry for name.
func (m *Memory) GetParticipant(_ context.Context, name string) (*participants.Participant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.people[name]
	if !ok {
		return nil, fmt.Errorf("%w: participant %s", mmerrors.ErrNotFound, name)
	}
	clone := *p
	return &clone, nil
}

// ListParticipants returns all directory entries sorted by name.
func (m *Memory) ListParticipants(_ context.Context) ([]*participants.Participant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*participants.Participant, 0, len(m.people))
	for _, p := range m.people {
		clone := *p
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
