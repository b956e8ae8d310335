package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/npc-engine/pkg/actor"
)

const agentKeyPrefix = "agent:"

// DefaultSnapshotTTL is how long a saved agent snapshot lives.
const DefaultSnapshotTTL = 24 * time.Hour

// RedisStore implements Store using Redis.
type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration
}

// Ensure RedisStore implements the Store interface
var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a Redis-backed snapshot store.
func NewRedisStore(redisURL string, logger *slog.Logger) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	return &RedisStore{
		client: redis.NewClient(opt),
		logger: logger,
		ttl:    DefaultSnapshotTTL,
	}, nil
}

// WithTTL overrides the snapshot TTL. Returns the store for chaining.
func (s *RedisStore) WithTTL(ttl time.Duration) *RedisStore {
	s.ttl = ttl
	return s
}

func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	if err := s.client.Close(); err != nil {
		return fmt.Errorf("failed to close redis client: %w", err)
	}
	return nil
}

// SaveAgent serializes the agent to JSON under its ID.
func (s *RedisStore) SaveAgent(ctx context.Context, a *actor.Agent) error {
	if a == nil || a.ID == "" {
		return fmt.Errorf("agent with non-empty ID required")
	}
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to marshal agent: %w", err)
	}
	if err := s.client.Set(ctx, agentKeyPrefix+a.ID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save agent %s: %w", a.ID, err)
	}
	if s.logger != nil {
		s.logger.Debug("Agent snapshot saved", "agent", a.ID)
	}
	return nil
}

// LoadAgent restores an agent from its snapshot. The attribute actor is
// rebuilt during unmarshal; the dialogue graph must be reattached by the
// caller.
func (s *RedisStore) LoadAgent(ctx context.Context, id string) (*actor.Agent, error) {
	data, err := s.client.Get(ctx, agentKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load agent %s: %w", id, err)
	}
	var a actor.Agent
	if err := json.Unmarshal([]byte(data), &a); err != nil {
		return nil, fmt.Errorf("failed to unmarshal agent %s: %w", id, err)
	}
	return &a, nil
}

func (s *RedisStore) DeleteAgent(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, agentKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete agent %s: %w", id, err)
	}
	return nil
}

func (s *RedisStore) ListAgentIDs(ctx context.Context) ([]string, error) {
	keys, err := s.client.Keys(ctx, agentKeyPrefix+"*").Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	ids := make([]string, 0, len(keys))
	for _, key := range keys {
		ids = append(ids, strings.TrimPrefix(key, agentKeyPrefix))
	}
	return ids, nil
}
