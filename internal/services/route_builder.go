package services

import (
	"cmp"
	"dormdash-route-service/internal/domain"
	"math"
	"slices"
	"time"
)

// leg describes travelling from the simulated current position to a candidate.
type leg struct {
	distanceKm    float64
	travelMinutes float64
	arrival       time.Time
}

// Build a route using a greedy, time-ordered selection.
//
// Candidates are sorted once by scheduled time. Each step takes the earliest
// candidate that the simulated mover can reach on time, that fits an
// availability slot, and that keeps active time (travel + job, never
// waiting) within the optional budget. The clock then jumps to the job's
// scheduled start plus its duration and the position moves to the job's
// pickup point. Skipped candidates are reconsidered on later steps; the
// loop ends when none is feasible. There is no backtracking or lookahead.
func buildRoute(
	cfg PlannerConfig,
	start domain.Coordinates,
	now time.Time,
	candidates []scoredJob,
	availability domain.Availability,
	maxDurationMinutes *float64,
) []domain.RouteEntry {
	remaining := slices.Clone(candidates)
	slices.SortStableFunc(remaining, func(a, b scoredJob) int {
		if c := a.scheduled.Compare(b.scheduled); c != 0 {
			return c
		}
		// Tie-breaker keeps equal start times deterministic.
		return cmp.Compare(a.job.JobID, b.job.JobID)
	})

	currentTime := now
	currentLocation := start
	activeMinutes := 0.0

	route := []domain.RouteEntry{}

	for len(remaining) > 0 {
		selected := -1
		var selectedLeg leg
		var nextActive float64

		// remaining is sorted, so the first feasible candidate is the earliest.
		for i, c := range remaining {
			l := cfg.legTo(currentLocation, currentTime, c)

			if l.arrival.After(c.scheduled) {
				continue
			}
			if !cfg.fitsAvailability(availability, c.scheduled, c.durationMinutes) {
				continue
			}
			active := activeMinutes + l.travelMinutes + c.durationMinutes
			if maxDurationMinutes != nil && active > *maxDurationMinutes {
				continue
			}

			selected = i
			selectedLeg = l
			nextActive = active
			break
		}

		if selected < 0 {
			break
		}
		best := remaining[selected]

		route = append(route, domain.RouteEntry{
			Job:                    *best.job,
			EstimatedStartTime:     best.scheduled,
			EstimatedDuration:      int(math.Round(best.durationMinutes)),
			DistanceFromPrevious:   round(selectedLeg.distanceKm, 1),
			TravelTimeFromPrevious: int(math.Round(selectedLeg.travelMinutes)),
		})

		// Waiting between arrival and the scheduled start is idle time:
		// it moves the clock but never counts toward the budget.
		currentTime = best.scheduled.Add(minutes(best.durationMinutes))
		currentLocation = best.job.Pickup.Coordinates
		activeMinutes = nextActive

		remaining = slices.Delete(remaining, selected, selected+1)
	}

	return route
}

func (c PlannerConfig) legTo(from domain.Coordinates, at time.Time, to scoredJob) leg {
	d := DistanceKm(from, to.job.Pickup.Coordinates)
	travel := c.TravelMinutes(d)
	return leg{
		distanceKm:    d,
		travelMinutes: travel,
		arrival:       at.Add(minutes(travel)),
	}
}

func minutes(m float64) time.Duration {
	return time.Duration(m * float64(time.Minute))
}
