package dto

import (
	"dormdash-route-service/internal/domain"
	"time"
)

// SmartRouteQuery is the query string of GET /movers/{moverID}/smart-route.
type SmartRouteQuery struct {
	CurrentLat  *float64 `query:"currentLat" validate:"required,latitude"`
	CurrentLon  *float64 `query:"currentLon" validate:"required,longitude"`
	MaxDuration *float64 `query:"maxDuration" validate:"omitempty,gt=0"`
}

type LocationResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type AddressResponse struct {
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

type RouteEntryResponse struct {
	JobID                  string          `json:"jobId"`
	OrderID                string          `json:"orderId"`
	StudentID              string          `json:"studentId"`
	JobType                string          `json:"jobType"`
	Volume                 float64         `json:"volume"`
	Price                  float64         `json:"price"`
	PickupAddress          AddressResponse `json:"pickupAddress"`
	DropoffAddress         AddressResponse `json:"dropoffAddress"`
	ScheduledTime          string          `json:"scheduledTime"`
	EstimatedStartTime     string          `json:"estimatedStartTime"`
	EstimatedDuration      int             `json:"estimatedDuration"`
	DistanceFromPrevious   float64         `json:"distanceFromPrevious"`
	TravelTimeFromPrevious int             `json:"travelTimeFromPrevious"`
}

type RouteMetricsResponse struct {
	TotalEarnings   float64 `json:"totalEarnings"`
	TotalJobs       int     `json:"totalJobs"`
	TotalDistance   float64 `json:"totalDistance"`
	TotalDuration   int     `json:"totalDuration"`
	EarningsPerHour float64 `json:"earningsPerHour"`
}

type SmartRouteResponse struct {
	Route         []RouteEntryResponse `json:"route"`
	Metrics       RouteMetricsResponse `json:"metrics"`
	StartLocation LocationResponse     `json:"startLocation"`
}

// Timestamps are rendered in UTC as RFC 3339.
func isoTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func NewAddressResponse(a domain.Address) AddressResponse {
	return AddressResponse{Label: a.Label, Lat: a.Coordinates.Lat, Lon: a.Coordinates.Lon}
}

func NewSmartRouteResponse(r *domain.SmartRoute) SmartRouteResponse {
	res := SmartRouteResponse{
		Route: make([]RouteEntryResponse, 0, len(r.Route)),
		Metrics: RouteMetricsResponse{
			TotalEarnings:   r.Metrics.TotalEarnings,
			TotalJobs:       r.Metrics.TotalJobs,
			TotalDistance:   r.Metrics.TotalDistance,
			TotalDuration:   r.Metrics.TotalDuration,
			EarningsPerHour: r.Metrics.EarningsPerHour,
		},
		StartLocation: LocationResponse{Lat: r.StartLocation.Lat, Lon: r.StartLocation.Lon},
	}

	for _, e := range r.Route {
		res.Route = append(res.Route, RouteEntryResponse{
			JobID:                  e.Job.JobID,
			OrderID:                e.Job.OrderID,
			StudentID:              e.Job.StudentID,
			JobType:                string(e.Job.Type),
			Volume:                 e.Job.Volume,
			Price:                  e.Job.Price,
			PickupAddress:          NewAddressResponse(e.Job.Pickup),
			DropoffAddress:         NewAddressResponse(e.Job.Dropoff),
			ScheduledTime:          isoTime(e.Job.ScheduledTime),
			EstimatedStartTime:     isoTime(e.EstimatedStartTime),
			EstimatedDuration:      e.EstimatedDuration,
			DistanceFromPrevious:   e.DistanceFromPrevious,
			TravelTimeFromPrevious: e.TravelTimeFromPrevious,
		})
	}

	return res
}
