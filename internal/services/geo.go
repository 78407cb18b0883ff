package services

import (
	"dormdash-route-service/internal/domain"
	"math"
)

// EarthRadiusKm is the mean radius of Earth in kilometers.
const EarthRadiusKm = 6371.0

// DistanceKm returns the great-circle (Haversine) distance between two points.
func DistanceKm(from, to domain.Coordinates) float64 {
	dLat := degToRad(to.Lat - from.Lat)
	dLon := degToRad(to.Lon - from.Lon)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat +
		math.Cos(degToRad(from.Lat))*math.Cos(degToRad(to.Lat))*sinLon*sinLon

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// TravelMinutes estimates driving time for distanceKm at the configured
// average speed.
func (c PlannerConfig) TravelMinutes(distanceKm float64) float64 {
	return distanceKm / c.AverageSpeedKmh * 60
}

// JobDurationMinutes estimates on-site working time from job volume.
func (c PlannerConfig) JobDurationMinutes(volume float64) float64 {
	return c.BaseJobMinutes + volume*c.PerCubicMeterMinutes
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
