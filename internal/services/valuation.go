package services

import (
	"dormdash-route-service/internal/domain"
	"time"
)

// scoredJob is a candidate job with its derived planning attributes.
// It lives only for the duration of one planning run.
type scoredJob struct {
	job             *domain.Job
	scheduled       time.Time
	durationMinutes float64
	valueScore      float64
}

// ValueScore returns earnings per minute of job time.
//
// The score is informational: route construction orders candidates by
// scheduled time and never consults it.
func ValueScore(price float64, durationMinutes float64) float64 {
	if durationMinutes <= 0 {
		return 0
	}
	return price / durationMinutes
}

func (c PlannerConfig) score(job *domain.Job) scoredJob {
	duration := c.JobDurationMinutes(job.Volume)
	return scoredJob{
		job:             job,
		scheduled:       job.ScheduledTime,
		durationMinutes: duration,
		valueScore:      ValueScore(job.Price, duration),
	}
}
