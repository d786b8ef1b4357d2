package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/otherjamesbrown/meetmind/pkg/logging"
	"github.com/otherjamesbrown/meetmind/pkg/participants"
	"github.com/otherjamesbrown/meetmind/pkg/pipeline"
)

// DefaultCacheTTL is how long cached analyses stay valid.
const DefaultCacheTTL = 24 * time.Hour

// Cached is a read-through Redis cache in front of another Repository.
// Only GetAnalysis reads are cached; analyses are immutable once saved,
// so the cache never needs invalidation beyond TTL expiry. Cache
// failures degrade to the underlying repository.
type Cached struct {
	inner  Repository
	client *redis.Client
	ttl    time.Duration
	logger logging.Logger
}

// NewCached wraps inner with a Redis read-through cache.
func NewCached(inner Repository, client *redis.Client, ttl time.Duration, logger logging.Logger) *Cached {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cached{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger.With(logging.F("component", "store_cache")),
	}
}

func analysisKey(meetingID string) string {
	return "meetmind:analysis:" + meetingID
}

// SaveAnalysis writes through to the underlying repository and primes
// the cache.
func (c *Cached) SaveAnalysis(ctx context.Context, analysis *pipeline.Analysis) error {
	if err := c.inner.SaveAnalysis(ctx, analysis); err != nil {
		return err
	}
	c.prime(ctx, analysis)
	return nil
}

// GetAnalysis returns the cached analysis when present, loading and
// caching from the underlying repository otherwise.
func (c *Cached) GetAnalysis(ctx context.Context, meetingID string) (*pipeline.Analysis, error) {
	data, err := c.client.Get(ctx, analysisKey(meetingID)).Bytes()
	if err == nil {
		var analysis pipeline.Analysis
		if unmarshalErr := json.Unmarshal(data, &analysis); unmarshalErr == nil {
			return &analysis, nil
		}
		// Corrupt cache entry; fall through to the repository.
		c.client.Del(ctx, analysisKey(meetingID))
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("Cache read failed",
			logging.Err(err),
			logging.F("meeting_id", meetingID))
	}

	analysis, err := c.inner.GetAnalysis(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	c.prime(ctx, analysis)
	return analysis, nil
}

func (c *Cached) prime(ctx context.Context, analysis *pipeline.Analysis) {
	data, err := json.Marshal(analysis)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, analysisKey(analysis.MeetingID), data, c.ttl).Err(); err != nil {
		c.logger.Warn("Cache write failed",
			logging.Err(err),
			logging.F("meeting_id", analysis.MeetingID))
	}
}

// ListAnalyses delegates to the underlying repository.
func (c *Cached) ListAnalyses(ctx context.Context) ([]AnalysisSummary, error) {
	return c.inner.ListAnalyses(ctx)
}

// RegisterParticipant delegates to the underlying repository.
func (c *Cached) RegisterParticipant(ctx context.Context, p *participants.Participant) error {
	return c.inner.RegisterParticipant(ctx, p)
}

// GetParticipant delegates to the underlying repository.
func (c *Cached) GetParticipant(ctx context.Context, name string) (*participants.Participant, error) {
	return c.inner.GetParticipant(ctx, name)
}

// ListParticipants delegates to the underlying repository.
func (c *Cached) ListParticipants(ctx context.Context) ([]*participants.Participant, error) {
	return c.inner.ListParticipants(ctx)
}
