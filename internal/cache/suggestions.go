package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/actuallystonmai/recipe-service/internal/metrics"
)

const DefaultSuggestionTTL = 24 * time.Hour

// SuggestionStore keeps the last ranked suggestion ids of every session.
type SuggestionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSuggestionStore(client *redis.Client, ttl time.Duration) *SuggestionStore {
	if ttl <= 0 {
		ttl = DefaultSuggestionTTL
	}
	return &SuggestionStore{client: client, ttl: ttl}
}

func buildKey(sessionID string) string {
	return fmt.Sprintf("suggest:session:%s", sessionID)
}

// Get returns the stored ids in rank order. A session that never asked for
// suggestions, or whose entry expired, has an empty set.
func (s *SuggestionStore) Get(ctx context.Context, sessionID string) ([]int64, error) {
	key := buildKey(sessionID)
	val, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.RecordSuggestionStore("get", "miss")
		return []int64{}, nil
	}
	if err != nil {
		metrics.RecordSuggestionStore("get", "error")
		return nil, fmt.Errorf("get suggestions %s: %w", key, err)
	}

	var ids []int64
	if err := json.Unmarshal(val, &ids); err != nil {
		metrics.RecordSuggestionStore("get", "error")
		return nil, fmt.Errorf("unmarshal suggestions %s: %w", key, err)
	}
	if ids == nil {
		ids = []int64{}
	}
	metrics.RecordSuggestionStore("get", "hit")
	return ids, nil
}

// Set replaces the session's set and restarts its TTL.
func (s *SuggestionStore) Set(ctx context.Context, sessionID string, ids []int64) error {
	if ids == nil {
		ids = []int64{}
	}
	key := buildKey(sessionID)
	val, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal suggestions: %w", err)
	}

	if err := s.client.Set(ctx, key, val, s.ttl).Err(); err != nil {
		metrics.RecordSuggestionStore("set", "error")
		return fmt.Errorf("set suggestions %s: %w", key, err)
	}
	metrics.RecordSuggestionStore("set", "ok")
	return nil
}

func (s *SuggestionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
