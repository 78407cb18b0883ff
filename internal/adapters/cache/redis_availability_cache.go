package cache

import (
	"context"
	"dormdash-route-service/internal/domain"
	"dormdash-route-service/internal/platform/obs"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const availabilityKeyPrefix = "dormdash:availability:"

// RedisAvailabilityCache is a Redis-backed cache of mover availability.
// Values are the same JSON document stored in the movers table.
type RedisAvailabilityCache struct {
	Client *redis.Client
	Log    *zap.Logger
}

func NewRedisAvailabilityCache(client *redis.Client, log *zap.Logger) *RedisAvailabilityCache {
	return &RedisAvailabilityCache{Client: client, Log: log}
}

func availabilityKey(moverID uuid.UUID) string {
	return availabilityKeyPrefix + moverID.String()
}

// Fetch cached availability for one mover.
func (c *RedisAvailabilityCache) Get(
	ctx context.Context,
	moverID uuid.UUID,
) (_ domain.Availability, _ bool, err error) {
	defer obs.Time(ctx, c.Log, "availability.cache.Get")(&err)

	if c.Client == nil {
		return nil, false, errors.New("availability cache: client is nil")
	}

	raw, err := c.Client.Get(ctx, availabilityKey(moverID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get availability cache: %w", err)
	}

	var a domain.Availability
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, false, fmt.Errorf("get availability cache: decode mover %s: %w", moverID, err)
	}

	return a, true, nil
}

// Store availability for one mover.
func (c *RedisAvailabilityCache) Set(
	ctx context.Context,
	moverID uuid.UUID,
	availability domain.Availability,
	ttl time.Duration,
) error {
	if c.Client == nil {
		return errors.New("availability cache: client is nil")
	}

	payload, err := json.Marshal(availability)
	if err != nil {
		return fmt.Errorf("set availability cache: encode mover %s: %w", moverID, err)
	}

	if err := c.Client.Set(ctx, availabilityKey(moverID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("set availability cache: mover %s: %w", moverID, err)
	}

	return nil
}

// Invalidate drops the cached entry for one mover.
func (c *RedisAvailabilityCache) Invalidate(ctx context.Context, moverID uuid.UUID) error {
	if c.Client == nil {
		return errors.New("availability cache: client is nil")
	}

	if err := c.Client.Del(ctx, availabilityKey(moverID)).Err(); err != nil {
		return fmt.Errorf("invalidate availability cache: mover %s: %w", moverID, err)
	}
	return nil
}
