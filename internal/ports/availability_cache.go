package ports

import (
	"context"
	"dormdash-route-service/internal/domain"
	"time"

	"github.com/google/uuid"
)

// Optional read-through cache in front of a MoverRepository.
type AvailabilityCache interface {
	// Return the cached availability and whether it was present.
	Get(ctx context.Context, moverID uuid.UUID) (domain.Availability, bool, error)
	// Store availability for ttl.
	Set(ctx context.Context, moverID uuid.UUID, availability domain.Availability, ttl time.Duration) error
}
