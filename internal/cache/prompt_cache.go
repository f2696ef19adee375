package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/frontdeskai/receptionist-core/internal/models"
)

const (
	activeKeyPrefix = "prompt:active:"
	defaultTTL      = 24 * time.Hour
	connectTimeout  = 5 * time.Second
)

// PromptCache keeps the active prompt artifact per business in Redis so the
// telephony layer can fetch it without touching Postgres on every call.
// The cache is strictly an accelerator: the database stays the store of
// record and every method degrades to a miss when Redis is unreachable.
type PromptCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPromptCache connects to Redis at addr. A failed ping returns a cache
// that reports misses instead of an error, so callers can run without Redis.
func NewPromptCache(addr, password string, db int) *PromptCache {
	if addr == "" {
		return &PromptCache{ttl: defaultTTL}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", addr).
			Msg("redis unavailable, prompt cache disabled")
		return &PromptCache{ttl: defaultTTL}
	}

	log.Info().Str("addr", addr).Msg("prompt cache connected")
	return &PromptCache{client: client, ttl: defaultTTL}
}

// Enabled reports whether a live Redis connection backs the cache.
func (c *PromptCache) Enabled() bool {
	return c != nil && c.client != nil
}

// SetActive stores the artifact under the business's active-prompt key.
func (c *PromptCache) SetActive(ctx context.Context, artifact *models.PromptArtifact) error {
	if !c.Enabled() {
		return nil
	}

	payload, err := json.Marshal(artifact)
	if err != nil {
		return fmt.Errorf("failed to encode artifact for cache: %w", err)
	}
	return c.client.Set(ctx, activeKey(artifact.BusinessID), payload, c.ttl).Err()
}

// GetActive returns the cached active artifact, or nil on a miss.
func (c *PromptCache) GetActive(ctx context.Context, businessID uuid.UUID) (*models.PromptArtifact, error) {
	if !c.Enabled() {
		return nil, nil
	}

	payload, err := c.client.Get(ctx, activeKey(businessID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt cache: %w", err)
	}

	var artifact models.PromptArtifact
	if err := json.Unmarshal(payload, &artifact); err != nil {
		// A corrupt entry is treated as a miss; the next store overwrites it.
		log.Warn().Err(err).Str("business_id", businessID.String()).
			Msg("discarding corrupt prompt cache entry")
		return nil, nil
	}
	return &artifact, nil
}

// Invalidate drops the cached artifact for a business.
func (c *PromptCache) Invalidate(ctx context.Context, businessID uuid.UUID) error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Del(ctx, activeKey(businessID)).Err()
}

// Close releases the Redis connection.
func (c *PromptCache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}

func activeKey(businessID uuid.UUID) string {
	return activeKeyPrefix + businessID.String()
}
