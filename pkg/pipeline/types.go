// Package pipeline composes the transcript analytics stages into a
// single meeting analysis pass: parse, aggregate participants, score
// sentiment, window engagement, extract and assign action items, and
// detect dates.
package pipeline

import (
	"github.com/otherjamesbrown/meetmind/pkg/actions"
	"github.com/otherjamesbrown/meetmind/pkg/engagement"
	"github.com/otherjamesbrown/meetmind/pkg/participants"
	"github.com/otherjamesbrown/meetmind/pkg/sentiment"
	"github.com/otherjamesbrown/meetmind/pkg/transcript"
)

// Meeting identifies the transcript to analyze. Filename selects the
// transcript format by extension (.vtt means caption format). Date is an
// optional ISO-8601 string; when empty the analysis timestamp is used.
type Meeting struct {
	Title    string `json:"title"`
	Date     string `json:"date,omitempty"`
	Filename string `json:"filename"`
}

// Notification is a sentiment notification decision for one participant.
// The core only decides; sending is the external notifier's job.
type Notification struct {
	Participant string                     `json:"participant"`
	Score       float64                    `json:"score"`
	Kind        sentiment.NotificationKind `json:"kind"`
}

// Analysis is the complete result of one pipeline run. It is finalized
// when Analyze returns and not mutated afterwards.
type Analysis struct {
	MeetingID            string                                 `json:"meeting_id"`
	Title                string                                 `json:"title"`
	Date                 string                                 `json:"date"`
	Utterances           []transcript.Utterance                 `json:"utterances"`
	Participants         []*participants.Participant            `json:"participants"`
	ParticipantSentiment map[string]sentiment.ParticipantResult `json:"participant_sentiments"`
	ActionItems          []actions.ActionItem                   `json:"action_items"`
	DetectedDates        []string                               `json:"detected_dates"`
	Engagement           []engagement.Window                    `json:"engagement_heatmap"`
	Notifications        []Notification                         `json:"notifications,omitempty"`
}
