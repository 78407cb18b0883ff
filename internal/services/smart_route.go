package services

import (
	"context"
	"dormdash-route-service/internal/domain"
	"dormdash-route-service/internal/platform/obs"
	"dormdash-route-service/internal/ports"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrRouteCalculation is the single fault surfaced to callers when
	// inputs cannot be loaded or a finished route breaks its invariants.
	ErrRouteCalculation = errors.New("route calculation failed")

	ErrInvalidMaxDuration = errors.New("max duration must be a positive number")
)

type SmartRouteRequest struct {
	MoverID            string
	CurrentLocation    domain.Coordinates
	MaxDurationMinutes *float64
}

// SmartRoutePlanner loads a mover's availability and the open jobs, then
// runs PlanRoute over them. It is safe for concurrent use.
type SmartRoutePlanner struct {
	jobs   ports.JobRepository
	movers ports.MoverRepository
	cfg    PlannerConfig
	now    func() time.Time
	log    *zap.Logger
}

func NewSmartRoutePlanner(
	jobs ports.JobRepository,
	movers ports.MoverRepository,
	cfg PlannerConfig,
	log *zap.Logger,
) *SmartRoutePlanner {
	return &SmartRoutePlanner{
		jobs:   jobs,
		movers: movers,
		cfg:    cfg,
		now:    time.Now,
		log:    log,
	}
}

// WithClock replaces the planner's time source.
func (p *SmartRoutePlanner) WithClock(now func() time.Time) *SmartRoutePlanner {
	p.now = now
	return p
}

// Plan computes the smart route for req.
//
// A malformed or unknown mover ID yields an empty route, not an error.
// Repository failures are reported as ErrRouteCalculation.
func (p *SmartRoutePlanner) Plan(ctx context.Context, req SmartRouteRequest) (_ *domain.SmartRoute, err error) {
	defer obs.Time(ctx, p.log, "planner.Plan")(&err)
	started := time.Now()

	if req.MaxDurationMinutes != nil && !(*req.MaxDurationMinutes > 0) {
		return nil, fmt.Errorf("plan smart route: %w: got %v", ErrInvalidMaxDuration, *req.MaxDurationMinutes)
	}

	moverID, parseErr := uuid.Parse(req.MoverID)
	if parseErr != nil {
		p.log.Info("malformed mover id, returning empty route",
			zap.String("req_id", obs.RequestID(ctx)),
			zap.String("mover_id", req.MoverID),
		)
		obs.RecordPlan(obs.OutcomeEmpty, 0, time.Since(started).Seconds())
		return domain.EmptySmartRoute(req.CurrentLocation), nil
	}

	availability, jobs, err := p.loadInputs(ctx, moverID)
	if err != nil {
		obs.RecordPlan(obs.OutcomeFailed, 0, time.Since(started).Seconds())
		return nil, fmt.Errorf("%w: %w", ErrRouteCalculation, err)
	}

	route := PlanRoute(p.cfg, req.CurrentLocation, p.now(), jobs, availability, req.MaxDurationMinutes)

	if err := p.checkRoute(route); err != nil {
		obs.RecordPlan(obs.OutcomeFailed, 0, time.Since(started).Seconds())
		return nil, fmt.Errorf("%w: %w", ErrRouteCalculation, err)
	}

	outcome := obs.OutcomePlanned
	if len(route.Route) == 0 {
		outcome = obs.OutcomeEmpty
	}
	obs.RecordPlan(outcome, len(route.Route), time.Since(started).Seconds())

	p.log.Info("smart route planned",
		zap.String("req_id", obs.RequestID(ctx)),
		zap.String("mover_id", moverID.String()),
		zap.Int("jobs_available", len(jobs)),
		zap.Int("jobs_selected", route.Metrics.TotalJobs),
		zap.Float64("total_earnings", route.Metrics.TotalEarnings),
		zap.Int("total_duration_min", route.Metrics.TotalDuration),
	)

	return route, nil
}

// loadInputs fetches availability and open jobs concurrently.
// A missing mover is reported as nil availability.
func (p *SmartRoutePlanner) loadInputs(ctx context.Context, moverID uuid.UUID) (domain.Availability, []*domain.Job, error) {
	var (
		availability domain.Availability
		jobs         []*domain.Job
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a, err := p.movers.GetAvailability(gctx, moverID)
		if errors.Is(err, domain.ErrMoverNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("load inputs: get availability for mover %s: %w", moverID, err)
		}
		availability = a
		return nil
	})

	g.Go(func() error {
		j, err := p.jobs.ListAvailableJobs(gctx)
		if err != nil {
			return fmt.Errorf("load inputs: list available jobs: %w", err)
		}
		jobs = j
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return availability, jobs, nil
}

// checkRoute guards the route invariants before the result leaves the
// service: unique jobs in non-decreasing scheduled order.
func (p *SmartRoutePlanner) checkRoute(route *domain.SmartRoute) error {
	seen := make(map[string]struct{}, len(route.Route))
	for i, e := range route.Route {
		if _, ok := seen[e.Job.JobID]; ok {
			return fmt.Errorf("check route: job %q selected twice", e.Job.JobID)
		}
		seen[e.Job.JobID] = struct{}{}

		if i > 0 && e.EstimatedStartTime.Before(route.Route[i-1].EstimatedStartTime) {
			return fmt.Errorf("check route: entry %d scheduled before entry %d", i, i-1)
		}
	}
	return nil
}
