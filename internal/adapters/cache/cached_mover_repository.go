package cache

import (
	"context"
	"dormdash-route-service/internal/domain"
	"dormdash-route-service/internal/ports"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CachedMoverRepository serves availability from a cache before falling
// back to the wrapped repository.
//
// Cache failures never fail a lookup; they are logged and the base
// repository answers instead. Missing movers are not cached.
type CachedMoverRepository struct {
	base  ports.MoverRepository
	cache ports.AvailabilityCache
	ttl   time.Duration
	log   *zap.Logger
}

func NewCachedMoverRepository(
	base ports.MoverRepository,
	cache ports.AvailabilityCache,
	ttl time.Duration,
	log *zap.Logger,
) *CachedMoverRepository {
	return &CachedMoverRepository{base: base, cache: cache, ttl: ttl, log: log}
}

func (r *CachedMoverRepository) GetAvailability(ctx context.Context, moverID uuid.UUID) (domain.Availability, error) {
	a, ok, err := r.cache.Get(ctx, moverID)
	if err != nil {
		r.log.Warn("availability cache read failed", zap.String("mover_id", moverID.String()), zap.Error(err))
	}
	if ok {
		return a, nil
	}

	a, err = r.base.GetAvailability(ctx, moverID)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, moverID, a, r.ttl); err != nil {
		r.log.Warn("availability cache write failed", zap.String("mover_id", moverID.String()), zap.Error(err))
	}

	return a, nil
}
