package domain

import "time"

type JobType string

const (
	JobTypeStorage JobType = "STORAGE"
	JobTypeReturn  JobType = "RETURN"
)

type JobStatus string

const (
	JobStatusAvailable JobStatus = "AVAILABLE"
	JobStatusAccepted  JobStatus = "ACCEPTED"
	JobStatusCompleted JobStatus = "COMPLETED"
	JobStatusCancelled JobStatus = "CANCELLED"
)

// Address is a geocoded location with its display label.
type Address struct {
	Label       string
	Coordinates Coordinates
}

// Represents a single pickup or return task tied to a student order.
// Jobs are read-only input to route planning; the planner never mutates them.
type Job struct {
	JobID         string
	OrderID       string
	StudentID     string
	Type          JobType
	Status        JobStatus
	Volume        float64 // cubic meters
	Price         float64
	Pickup        Address
	Dropoff       Address
	ScheduledTime time.Time
}

// HasValidLocations reports whether both pickup and dropoff are geocoded.
func (j *Job) HasValidLocations() bool {
	if j == nil {
		return false
	}
	return j.Pickup.Coordinates.Valid() && j.Dropoff.Coordinates.Valid()
}
