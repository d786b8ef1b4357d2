package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	mmerrors "github.com/otherjamesbrown/meetmind/pkg/errors"
	"github.com/otherjamesbrown/meetmind/pkg/logging"
	"github.com/otherjamesbrown/meetmind/pkg/participants"
	"github.com/otherjamesbrown/meetmind/pkg/pipeline"
)

// schema holds the tables this repository owns. Analyses are stored as
// JSONB documents alongside the columns needed for list queries.
const schema = `
CREATE TABLE IF NOT EXISTS meeting_analyses (
	meeting_id   TEXT PRIMARY KEY,
	title        TEXT NOT NULL,
	meeting_date TEXT NOT NULL,
	analysis     JSONB NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS participants (
	name       TEXT PRIMARY KEY,
	role       TEXT NOT NULL DEFAULT '',
	email      TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Postgres is a Repository backed by PostgreSQL.
type Postgres struct {
	pool   *pgxpool.Pool
	logger logging.Logger
}

// NewPostgres creates the repository and ensures its schema exists.
func NewPostgres(ctx context.Context, pool *pgxpool.Pool, logger logging.Logger) (*Postgres, error) {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &Postgres{
		pool:   pool,
		logger: logger.With(logging.F("component", "postgres_store")),
	}, nil
}

// SaveAnalysis upserts the full analysis document.
func (p *Postgres) SaveAnalysis(ctx context.Context, analysis *pipeline.Analysis) error {
	if analysis.MeetingID == "" {
		return fmt.Errorf("%w: analysis has no meeting ID", mmerrors.ErrValidation)
	}

	doc, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("marshaling analysis: %w", err)
	}

	query := `
		INSERT INTO meeting_analyses (meeting_id, title, meeting_date, analysis)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (meeting_id) DO UPDATE SET
			title = EXCLUDED.title,
			meeting_date = EXCLUDED.meeting_date,
			analysis = EXCLUDED.analysis
	`
	if _, err := p.pool.Exec(ctx, query, analysis.MeetingID, analysis.Title, analysis.Date, doc); err != nil {
		p.logger.Error("Failed to save analysis",
			logging.Err(err),
			logging.F("meeting_id", analysis.MeetingID))
		return fmt.Errorf("saving analysis: %w", err)
	}

	p.logger.Debug("Analysis saved",
		logging.F("meeting_id", analysis.MeetingID),
		logging.F("title", analysis.Title))
	return nil
}

// GetAnalysis loads one analysis document by meeting ID.
func (p *Postgres) GetAnalysis(ctx context.Context, meetingID string) (*pipeline.Analysis, error) {
	var doc []byte
	err := p.pool.QueryRow(ctx,
		`SELECT analysis FROM meeting_analyses WHERE meeting_id = $1`,
		meetingID,
	).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: analysis %s", mmerrors.ErrNotFound, meetingID)
	}
	if err != nil {
		return nil, fmt.Errorf("loading analysis: %w", err)
	}

	var analysis pipeline.Analysis
	if err := json.Unmarshal(doc, &analysis); err != nil {
		return nil, fmt.Errorf("unmarshaling analysis %s: %w", meetingID, err)
	}
	return &analysis, nil
}

// ListAnalyses returns summaries ordered by creation time.
func (p *Postgres) ListAnalyses(ctx context.Context) ([]AnalysisSummary, error) {
	query := `
		SELECT meeting_id, title, meeting_date,
		       jsonb_array_length(COALESCE(analysis->'participants', '[]'::jsonb)),
		       jsonb_array_length(COALESCE(analysis->'action_items', '[]'::jsonb))
		FROM meeting_analyses
		ORDER BY created_at
	`
	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing analyses: %w", err)
	}
	defer rows.Close()

	var summaries []AnalysisSummary
	for rows.Next() {
		var s AnalysisSummary
		if err := rows.Scan(&s.MeetingID, &s.Title, &s.Date, &s.Participants, &s.ActionItems); err != nil {
			return nil, fmt.Errorf("scanning analysis summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// RegisterParticipant upserts a directory entry. Blank role or email in
// the update keeps the stored value.
func (p *Postgres) RegisterParticipant(ctx context.Context, participant *participants.Participant) error {
	if participant.Name == "" {
		return fmt.Errorf("%w: participant has no name", mmerrors.ErrValidation)
	}

	query := `
		INSERT INTO participants (name, role, email)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET
			role = CASE WHEN EXCLUDED.role = '' THEN participants.role ELSE EXCLUDED.role END,
			email = CASE WHEN EXCLUDED.email = '' THEN participants.email ELSE EXCLUDED.email END,
			updated_at = NOW()
	`
	if _, err := p.pool.Exec(ctx, query, participant.Name, participant.Role, participant.Email); err != nil {
		p.logger.Error("Failed to register participant",
			logging.Err(err),
			logging.F("name", participant.Name))
		return fmt.Errorf("registering participant: %w", err)
	}
	return nil
}

// GetParticipant returns the directory entry for name.
func (p *Postgres) GetParticipant(ctx context.Context, name string) (*participants.Participant, error) {
	var participant participants.Participant
	err := p.pool.QueryRow(ctx,
		`SELECT name, role, email FROM participants WHERE name = $1`,
		name,
	).Scan(&participant.Name, &participant.Role, &participant.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: participant %s", mmerrors.ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("loading participant: %w", err)
	}
	return &participant, nil
}

// ListParticipants returns all directory entries sorted by name.
func (p *Postgres) ListParticipants(ctx context.Context) ([]*participants.Participant, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT name, role, email FROM participants ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing participants: %w", err)
	}
	defer rows.Close()

	var out []*participants.Participant
	for rows.Next() {
		var participant participants.Participant
		if err := rows.Scan(&participant.Name, &participant.Role, &participant.Email); err != nil {
			return nil, fmt.Errorf("scanning participant: %w", err)
		}
		out = append(out, &participant)
	}
	return out, rows.Err()
}
