package services

import "dormdash-route-service/internal/domain"

// ComputeMetrics summarizes a finished route.
// It is a pure function of the entries; waiting time is not represented in
// a RouteEntry and so never reaches TotalDuration.
func ComputeMetrics(route []domain.RouteEntry) domain.RouteMetrics {
	if len(route) == 0 {
		return domain.RouteMetrics{}
	}

	var earnings, distance float64
	var duration int
	for _, e := range route {
		earnings += e.Job.Price
		distance += e.DistanceFromPrevious
		duration += e.EstimatedDuration + e.TravelTimeFromPrevious
	}

	m := domain.RouteMetrics{
		TotalEarnings: round(earnings, 2),
		TotalJobs:     len(route),
		TotalDistance: round(distance, 2),
		TotalDuration: duration,
	}
	if m.TotalDuration > 0 {
		m.EarningsPerHour = round(m.TotalEarnings/float64(m.TotalDuration)*60, 2)
	}

	return m
}
