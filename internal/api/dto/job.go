package dto

import "dormdash-route-service/internal/domain"

type JobResponse struct {
	JobID          string          `json:"jobId"`
	OrderID        string          `json:"orderId"`
	StudentID      string          `json:"studentId"`
	JobType        string          `json:"jobType"`
	Status         string          `json:"status"`
	Volume         float64         `json:"volume"`
	Price          float64         `json:"price"`
	PickupAddress  AddressResponse `json:"pickupAddress"`
	DropoffAddress AddressResponse `json:"dropoffAddress"`
	ScheduledTime  string          `json:"scheduledTime"`
}

type ListJobsResponse struct {
	Jobs []JobResponse `json:"jobs"`
}

func NewListJobsResponse(jobs []*domain.Job) ListJobsResponse {
	res := ListJobsResponse{Jobs: make([]JobResponse, 0, len(jobs))}
	for _, j := range jobs {
		if j == nil {
			continue
		}
		res.Jobs = append(res.Jobs, JobResponse{
			JobID:          j.JobID,
			OrderID:        j.OrderID,
			StudentID:      j.StudentID,
			JobType:        string(j.Type),
			Status:         string(j.Status),
			Volume:         j.Volume,
			Price:          j.Price,
			PickupAddress:  NewAddressResponse(j.Pickup),
			DropoffAddress: NewAddressResponse(j.Dropoff),
			ScheduledTime:  isoTime(j.ScheduledTime),
		})
	}
	return res
}
