package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/otherjamesbrown/meetmind/pkg/actions"
	"github.com/otherjamesbrown/meetmind/pkg/dates"
	"github.com/otherjamesbrown/meetmind/pkg/engagement"
	"github.com/otherjamesbrown/meetmind/pkg/logging"
	"github.com/otherjamesbrown/meetmind/pkg/participants"
	"github.com/otherjamesbrown/meetmind/pkg/sentiment"
	"github.com/otherjamesbrown/meetmind/pkg/transcript"
)

// tracerName is the instrumentation scope for pipeline spans.
const tracerName = "github.com/otherjamesbrown/meetmind/pkg/pipeline"

// DefaultMaxTextLength caps the combined transcript text fed to the
// regex extraction stages. All operations are CPU-bound; the cap bounds
// pipeline latency for pathological inputs.
const DefaultMaxTextLength = 1 << 20

// Analyzer runs the full analysis pipeline over one transcript.
type Analyzer struct {
	scorer     *sentiment.Scorer
	windower   *engagement.Windower
	logger     logging.Logger
	metrics    *Metrics
	tracer     trace.Tracer
	maxTextLen int
}

// Option configures the analyzer.
type Option func(*Analyzer)

// WithLogger sets a custom logger.
func WithLogger(logger logging.Logger) Option {
	return func(a *Analyzer) { a.logger = logger }
}

// WithMetrics sets a custom metrics set. Nil disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(a *Analyzer) { a.metrics = m }
}

// WithLexicon sets a custom sentiment lexicon.
func WithLexicon(lex *sentiment.Lexicon) Option {
	return func(a *Analyzer) { a.scorer = sentiment.NewScorer(lex) }
}

// WithWindowing overrides the engagement window sizes: utterances per
// window and synthetic label minutes.
func WithWindowing(perWindow, windowMinutes int) Option {
	return func(a *Analyzer) {
		a.windower = engagement.NewWindower(a.scorer, perWindow, windowMinutes)
	}
}

// WithMaxTextLength caps the combined text length fed to extraction.
func WithMaxTextLength(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.maxTextLen = n
		}
	}
}

// New creates an analyzer with the default lexicon and windowing.
func New(opts ...Option) *Analyzer {
	scorer := sentiment.NewScorer(nil)
	a := &Analyzer{
		scorer:     scorer,
		windower:   engagement.NewWindower(scorer, 0, 0),
		logger:     logging.NewNopLogger(),
		tracer:     otel.Tracer(tracerName),
		maxTextLen: DefaultMaxTextLength,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With(logging.F("component", "pipeline"))
	return a
}

// Analyze parses the transcript read from r and derives the full
// analysis. The format is selected from meeting.Filename. Only reader
// failures produce an error; malformed transcript content degrades to
// default values inside the parser.
func (a *Analyzer) Analyze(ctx context.Context, meeting Meeting, r io.Reader) (*Analysis, error) {
	ctx, span := a.tracer.Start(ctx, "pipeline.analyze",
		trace.WithAttributes(
			attribute.String("meeting.title", meeting.Title),
			attribute.String("meeting.filename", meeting.Filename),
		))
	defer span.End()

	a.logger.Info("starting analysis",
		logging.F("title", meeting.Title),
		logging.F("filename", meeting.Filename))

	// Stage 1: parse transcript.
	var utterances []transcript.Utterance
	err := a.stage(ctx, "parse", func() error {
		var parseErr error
		utterances, parseErr = transcript.ParserForFile(meeting.Filename).Parse(r)
		return parseErr
	})
	if err != nil {
		a.count("failed")
		return nil, fmt.Errorf("parsing transcript: %w", err)
	}
	if a.metrics != nil {
		a.metrics.UtterancesTotal.Add(float64(len(utterances)))
	}
	span.SetAttributes(attribute.Int("transcript.utterances", len(utterances)))

	// Stage 2: per-speaker aggregation.
	var set *participants.Set
	a.stage(ctx, "participants", func() error {
		set = participants.Aggregate(utterances)
		return nil
	})

	// Stage 3: participant sentiment.
	var participantSentiment map[string]sentiment.ParticipantResult
	a.stage(ctx, "sentiment", func() error {
		participantSentiment = a.scorer.AnalyzeParticipants(utterances, set.Names())
		return nil
	})

	fullText := transcript.FullText(utterances)
	if len(fullText) > a.maxTextLen {
		fullText = fullText[:a.maxTextLen]
	}

	// Stage 4: action items with owner assignment.
	var items []actions.ActionItem
	a.stage(ctx, "actions", func() error {
		items = actions.Assign(actions.Extract(fullText), set.Names(), fullText)
		return nil
	})
	if a.metrics != nil {
		a.metrics.ActionItemsTotal.Add(float64(len(items)))
	}

	// Stage 5: calendar date detection.
	var detectedDates []string
	a.stage(ctx, "dates", func() error {
		detectedDates = dates.Detect(fullText)
		return nil
	})

	// Stage 6: engagement windows.
	var windows []engagement.Window
	a.stage(ctx, "engagement", func() error {
		windows = a.windower.Windows(utterances)
		return nil
	})

	// Notification decisions, surfaced for external notifiers.
	notifications := a.decideNotifications(set.Names(), participantSentiment)

	date := meeting.Date
	if date == "" {
		date = time.Now().UTC().Format(time.RFC3339)
	}

	analysis := &Analysis{
		MeetingID:            uuid.NewString(),
		Title:                meeting.Title,
		Date:                 date,
		Utterances:           utterances,
		Participants:         set.All(),
		ParticipantSentiment: participantSentiment,
		ActionItems:          items,
		DetectedDates:        detectedDates,
		Engagement:           windows,
		Notifications:        notifications,
	}

	a.count("completed")
	a.logger.Info("analysis completed",
		logging.F("meeting_id", analysis.MeetingID),
		logging.F("utterances", len(utterances)),
		logging.F("participants", set.Len()),
		logging.F("action_items", len(items)),
		logging.F("dates", len(detectedDates)),
		logging.F("windows", len(windows)))

	return analysis, nil
}

// stage runs fn inside a child span and records its latency.
func (a *Analyzer) stage(ctx context.Context, name string, fn func() error) error {
	_, span := a.tracer.Start(ctx, "pipeline."+name)
	defer span.End()

	start := time.Now()
	err := fn()
	elapsed := time.Since(start)

	if a.metrics != nil {
		a.metrics.StageSeconds.WithLabelValues(name).Observe(elapsed.Seconds())
	}
	a.logger.Debug("stage completed",
		logging.F("stage", name),
		logging.F("duration", elapsed))

	return err
}

// decideNotifications applies the notification policy to each
// participant's sentiment score, in participant order.
func (a *Analyzer) decideNotifications(names []string, results map[string]sentiment.ParticipantResult) []Notification {
	var notifications []Notification
	for _, name := range names {
		result, ok := results[name]
		if !ok {
			continue
		}
		send, kind := sentiment.ShouldNotify(result.Score)
		if !send {
			continue
		}
		notifications = append(notifications, Notification{
			Participant: name,
			Score:       result.Score,
			Kind:        kind,
		})
		if a.metrics != nil {
			a.metrics.NotificationsTotal.WithLabelValues(string(kind)).Inc()
		}
	}
	return notifications
}

// count records an analysis outcome.
func (a *Analyzer) count(status string) {
	if a.metrics != nil {
		a.metrics.AnalysesTotal.WithLabelValues(status).Inc()
	}
}
