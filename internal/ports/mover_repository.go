package ports

import (
	"context"
	"dormdash-route-service/internal/domain"

	"github.com/google/uuid"
)

// Port: a boundary for looking up mover schedules.
type MoverRepository interface {
	// Return the mover's weekly availability.
	// Implementations return domain.ErrMoverNotFound when the mover or its
	// availability record does not exist.
	GetAvailability(ctx context.Context, moverID uuid.UUID) (domain.Availability, error)
}
