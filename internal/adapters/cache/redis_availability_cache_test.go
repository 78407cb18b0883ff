package cache

import (
	"context"
	"dormdash-route-service/internal/domain"
	"dormdash-route-service/internal/ports"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var mondayNineToFive = domain.Availability{
	domain.Monday: {{Start: "09:00", End: "17:00"}},
}

func newTestCache(t *testing.T) (*RedisAvailabilityCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisAvailabilityCache(client, zap.NewNop()), mr
}

func TestRedisAvailabilityCacheRoundTrip(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	moverID := uuid.New()

	_, ok, err := c.Get(ctx, moverID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, moverID, mondayNineToFive, time.Minute))

	got, ok, err := c.Get(ctx, moverID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, mondayNineToFive, got)

	raw, err := mr.Get("dormdash:availability:" + moverID.String())
	require.NoError(t, err)
	assert.JSONEq(t, `{"MON":[["09:00","17:00"]]}`, raw)
}

func TestRedisAvailabilityCacheExpires(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	moverID := uuid.New()

	require.NoError(t, c.Set(ctx, moverID, mondayNineToFive, time.Minute))
	mr.FastForward(2 * time.Minute)

	_, ok, err := c.Get(ctx, moverID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisAvailabilityCacheInvalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	moverID := uuid.New()

	require.NoError(t, c.Set(ctx, moverID, mondayNineToFive, time.Minute))
	require.NoError(t, c.Invalidate(ctx, moverID))

	_, ok, err := c.Get(ctx, moverID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisAvailabilityCacheCorruptValue(t *testing.T) {
	c, mr := newTestCache(t)
	moverID := uuid.New()

	require.NoError(t, mr.Set("dormdash:availability:"+moverID.String(), "{not json"))

	_, ok, err := c.Get(context.Background(), moverID)
	assert.Error(t, err)
	assert.False(t, ok)
}

type countingMoverRepo struct {
	availability domain.Availability
	err          error
	calls        int
}

func (r *countingMoverRepo) GetAvailability(_ context.Context, _ uuid.UUID) (domain.Availability, error) {
	r.calls++
	return r.availability, r.err
}

var _ ports.MoverRepository = (*countingMoverRepo)(nil)

func TestCachedMoverRepositoryReadThrough(t *testing.T) {
	c, _ := newTestCache(t)
	base := &countingMoverRepo{availability: mondayNineToFive}
	repo := NewCachedMoverRepository(base, c, time.Minute, zap.NewNop())
	ctx := context.Background()
	moverID := uuid.New()

	for range 3 {
		got, err := repo.GetAvailability(ctx, moverID)
		require.NoError(t, err)
		assert.Equal(t, mondayNineToFive, got)
	}
	assert.Equal(t, 1, base.calls)
}

func TestCachedMoverRepositoryDoesNotCacheMissingMover(t *testing.T) {
	c, mr := newTestCache(t)
	base := &countingMoverRepo{err: domain.ErrMoverNotFound}
	repo := NewCachedMoverRepository(base, c, time.Minute, zap.NewNop())
	moverID := uuid.New()

	_, err := repo.GetAvailability(context.Background(), moverID)
	assert.ErrorIs(t, err, domain.ErrMoverNotFound)
	assert.False(t, mr.Exists("dormdash:availability:"+moverID.String()))
}

func TestCachedMoverRepositoryFallsThroughWhenRedisIsDown(t *testing.T) {
	c, mr := newTestCache(t)
	mr.Close()

	base := &countingMoverRepo{availability: mondayNineToFive}
	repo := NewCachedMoverRepository(base, c, time.Minute, zap.NewNop())

	got, err := repo.GetAvailability(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, mondayNineToFive, got)
	assert.Equal(t, 1, base.calls)
}

func TestCachedMoverRepositoryPropagatesBaseFailure(t *testing.T) {
	c, _ := newTestCache(t)
	boom := errors.New("connection reset")
	repo := NewCachedMoverRepository(&countingMoverRepo{err: boom}, c, time.Minute, zap.NewNop())

	_, err := repo.GetAvailability(context.Background(), uuid.New())
	assert.ErrorIs(t, err, boom)
}
