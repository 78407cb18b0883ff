package domain

import "time"

// Represents a single selected job in a smart route.
// A RouteEntry carries the leg that led to the job (distance and travel
// time from the previous stop, or from the start location for the first
// entry) and the job's estimated working duration.
type RouteEntry struct {
	Job                    Job
	EstimatedStartTime     time.Time
	EstimatedDuration      int     // minutes
	DistanceFromPrevious   float64 // km, one decimal
	TravelTimeFromPrevious int     // minutes
}

// Aggregate totals for a finished route.
// TotalDuration counts travel and job time only; idle waiting before a
// job's scheduled start is excluded.
type RouteMetrics struct {
	TotalEarnings   float64
	TotalJobs       int
	TotalDistance   float64
	TotalDuration   int
	EarningsPerHour float64
}

// Represents the planned route for a single mover.
// A SmartRoute is the output of the route planner and is immutable once built.
type SmartRoute struct {
	Route         []RouteEntry
	Metrics       RouteMetrics
	StartLocation Coordinates
}

// EmptySmartRoute is the result returned when nothing can be planned.
func EmptySmartRoute(start Coordinates) *SmartRoute {
	return &SmartRoute{
		Route:         []RouteEntry{},
		Metrics:       RouteMetrics{},
		StartLocation: start,
	}
}
