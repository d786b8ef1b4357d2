// Package store persists meeting analyses and the participant
// directory. The memory implementation backs CLI runs without external
// services; the postgres implementation is used when a database DSN is
// configured, optionally fronted by a Redis read-through cache.
package store

import (
	"context"

	"github.com/otherjamesbrown/meetmind/pkg/participants"
	"github.com/otherjamesbrown/meetmind/pkg/pipeline"
)

// AnalysisSummary is the list-view projection of a stored analysis.
type AnalysisSummary struct {
	MeetingID    string `json:"meeting_id"`
	Title        string `json:"title"`
	Date         string `json:"date"`
	Participants int    `json:"participants"`
	ActionItems  int    `json:"action_items"`
}

// Repository stores meeting analyses and registered participants.
type Repository interface {
	SaveAnalysis(ctx context.Context, analysis *pipeline.Analysis) error
	GetAnalysis(ctx context.Context, meetingID string) (*pipeline.Analysis, error)
	ListAnalyses(ctx context.Context) ([]AnalysisSummary, error)

	RegisterParticipant(ctx context.Context, p *participants.Participant) error
	GetParticipant(ctx context.Context, name string) (*participants.Participant, error)
	ListParticipants(ctx context.Context) ([]*participants.Participant, error)
}
