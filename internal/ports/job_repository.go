package ports

import (
	"context"
	"dormdash-route-service/internal/domain"
)

// Port: a boundary for retrieving jobs open for movers to accept.
type JobRepository interface {
	// Retrieve every job currently in AVAILABLE status.
	ListAvailableJobs(ctx context.Context) ([]*domain.Job, error)
}
