package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mmerrors "github.com/otherjamesbrown/meetmind/pkg/errors"
	"github.com/otherjamesbrown/meetmind/pkg/participants"
	"github.com/otherjamesbrown/meetmind/pkg/pipeline"
)

func TestMemorySaveAndGetAnalysis(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	analysis := &pipeline.Analysis{MeetingID: "m-1", Title: "Sync", Date: "2026-08-01T10:00:00Z"}
	require.NoError(t, m.SaveAnalysis(ctx, analysis))

	got, err := m.GetAnalysis(ctx, "m-1")
	require.NoError(t, err)
	assert.Equal(t, "Sync", got.Title)

	_, err = m.GetAnalysis(ctx, "missing")
	assert.ErrorIs(t, err, mmerrors.ErrNotFound)
}

func TestMemorySaveAnalysisRequiresID(t *testing.T) {
	m := NewMemory()
	err := m.SaveAnalysis(context.Background(), &pipeline.Analysis{Title: "No ID"})
	assert.ErrorIs(t, err, mmerrors.ErrValidation)
}

func TestMemoryListAnalysesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.SaveAnalysis(ctx, &pipeline.Analysis{MeetingID: "m-1", Title: "First"}))
	require.NoError(t, m.SaveAnalysis(ctx, &pipeline.Analysis{MeetingID: "m-2", Title: "Second"}))
	// Overwriting keeps the original position.
	require.NoError(t, m.SaveAnalysis(ctx, &pipeline.Analysis{MeetingID: "m-1", Title: "First v2"}))

	summaries, err := m.ListAnalyses(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "m-1", summaries[0].MeetingID)
	assert.Equal(t, "First v2", summaries[0].Title)
	assert.Equal(t, "m-2", summaries[1].MeetingID)
}

func TestMemoryRegisterParticipantUpsert(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.RegisterParticipant(ctx, &participants.Participant{
		Name: "Alice", Role: "Engineer", Email: "alice@example.com",
	}))
	// Blank fields keep the stored values.
	require.NoError(t, m.RegisterParticipant(ctx, &participants.Participant{
		Name: "Alice", Role: "Staff Engineer",
	}))

	got, err := m.GetParticipant(ctx, "Alice")
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", got.Role)
	assert.Equal(t, "alice@example.com", got.Email)
}

func TestMemoryRegisterParticipantRequiresName(t *testing.T) {
	m := NewMemory()
	err := m.RegisterParticipant(context.Background(), &participants.Participant{Role: "Engineer"})
	assert.ErrorIs(t, err, mmerrors.ErrValidation)
}

func TestMemoryListParticipantsSorted(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.RegisterParticipant(ctx, &participants.Participant{Name: "Carol"}))
	require.NoError(t, m.RegisterParticipant(ctx, &participants.Participant{Name: "Alice"}))
	require.NoError(t, m.RegisterParticipant(ctx, &participants.Participant{Name: "Bob"}))

	people, err := m.ListParticipants(ctx)
	require.NoError(t, err)
	require.Len(t, people, 3)
	assert.Equal(t, "Alice", people[0].Name)
	assert.Equal(t, "Bob", people[1].Name)
	assert.Equal(t, "Carol", people[2].Name)
}

func TestMemoryGetParticipantReturnsCopy(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.RegisterParticipant(ctx, &participants.Participant{Name: "Alice", Role: "Engineer"}))

	got, err := m.GetParticipant(ctx, "Alice")
	require.NoError(t, err)
	got.Role = "mutated"

	again, err := m.GetParticipant(ctx, "Alice")
	require.NoError(t, err)
	assert.Equal(t, "Engineer", again.Role)
}
