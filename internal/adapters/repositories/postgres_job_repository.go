package repositories

import (
	"context"
	"database/sql"
	"dormdash-route-service/internal/domain"
	"errors"
	"fmt"
)

// Postgres-backed implementation of the JobRepository port.
type PostgresJobRepository struct{ DB *sql.DB }

func NewPostgresJobRepository(db *sql.DB) *PostgresJobRepository {
	return &PostgresJobRepository{DB: db}
}

// Return all jobs open for acceptance, earliest first.
// NULL coordinates scan as zero and are filtered out by the planner.
func (r *PostgresJobRepository) ListAvailableJobs(ctx context.Context) ([]*domain.Job, error) {
	if r.DB == nil {
		return nil, errors.New("postgres job repository: DB is nil")
	}

	query := `
	SELECT
		id,
		order_id,
		student_id,
		job_type,
		status,
		volume,
		price,
		pickup_label,
		pickup_lat,
		pickup_lon,
		dropoff_label,
		dropoff_lat,
		dropoff_lon,
		scheduled_time
	FROM jobs
	WHERE status = $1
	ORDER BY scheduled_time, id;
	`
	rows, err := r.DB.QueryContext(ctx, query, string(domain.JobStatusAvailable))
	if err != nil {
		return nil, fmt.Errorf("list available jobs: query jobs table: %w", err)
	}
	defer rows.Close()

	jobs := make([]*domain.Job, 0, 64)
	for rows.Next() {
		var (
			j                      domain.Job
			jobType, status        string
			pickupLat, pickupLon   sql.NullFloat64
			dropoffLat, dropoffLon sql.NullFloat64
		)
		err := rows.Scan(
			&j.JobID,
			&j.OrderID,
			&j.StudentID,
			&jobType,
			&status,
			&j.Volume,
			&j.Price,
			&j.Pickup.Label,
			&pickupLat,
			&pickupLon,
			&j.Dropoff.Label,
			&dropoffLat,
			&dropoffLon,
			&j.ScheduledTime,
		)
		if err != nil {
			return nil, fmt.Errorf("list available jobs: scan row: %w", err)
		}

		j.Type = domain.JobType(jobType)
		j.Status = domain.JobStatus(status)
		j.Pickup.Coordinates = domain.Coordinates{Lat: pickupLat.Float64, Lon: pickupLon.Float64}
		j.Dropoff.Coordinates = domain.Coordinates{Lat: dropoffLat.Float64, Lon: dropoffLon.Float64}

		jobs = append(jobs, &j)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list available jobs: row iteration: %w", err)
	}

	return jobs, nil
}
