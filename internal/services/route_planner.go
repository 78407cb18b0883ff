package services

import (
	"dormdash-route-service/internal/domain"
	"time"
)

// Plan a smart route for a mover.
//
// PlanRoute is a pure function of its inputs: it performs no I/O and keeps
// no state, so concurrent calls for different movers never interact.
// Whenever nothing can be planned (no availability, no jobs, no job with
// usable coordinates, no job inside a slot) it returns an empty route with
// zero metrics and the start location echoed back.
func PlanRoute(
	cfg PlannerConfig,
	start domain.Coordinates,
	now time.Time,
	jobs []*domain.Job,
	availability domain.Availability,
	maxDurationMinutes *float64,
) *domain.SmartRoute {
	if availability.Empty() || len(jobs) == 0 {
		return domain.EmptySmartRoute(start)
	}

	candidates := cfg.eligibleCandidates(jobs, availability)
	if len(candidates) == 0 {
		return domain.EmptySmartRoute(start)
	}

	route := buildRoute(cfg, start, now, candidates, availability, maxDurationMinutes)

	return &domain.SmartRoute{
		Route:         route,
		Metrics:       ComputeMetrics(route),
		StartLocation: start,
	}
}

// eligibleCandidates drops jobs with missing pickup or dropoff coordinates
// and jobs whose scheduled start falls outside every slot of its weekday,
// then attaches the derived planning attributes. Repeated job IDs keep
// their first occurrence.
func (c PlannerConfig) eligibleCandidates(jobs []*domain.Job, availability domain.Availability) []scoredJob {
	seen := make(map[string]struct{}, len(jobs))
	out := make([]scoredJob, 0, len(jobs))

	for _, job := range jobs {
		if job == nil || !job.HasValidLocations() {
			continue
		}
		if _, ok := seen[job.JobID]; ok {
			continue
		}
		if !c.startsWithinAvailability(availability, job.ScheduledTime) {
			continue
		}

		seen[job.JobID] = struct{}{}
		out = append(out, c.score(job))
	}

	return out
}
