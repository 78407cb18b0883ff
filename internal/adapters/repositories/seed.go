package repositories

import (
	"context"
	"database/sql"
	"dormdash-route-service/internal/domain"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

type MoverSeed struct {
	MoverID      string              `json:"mover_id"`
	Name         string              `json:"name"`
	Availability domain.Availability `json:"availability"`
}

type AddressSeed struct {
	Label string   `json:"label"`
	Lat   *float64 `json:"lat"`
	Lon   *float64 `json:"lon"`
}

type JobSeed struct {
	JobID         string      `json:"job_id"`
	OrderID       string      `json:"order_id"`
	StudentID     string      `json:"student_id"`
	JobType       string      `json:"job_type"`
	Status        string      `json:"status"`
	Volume        float64     `json:"volume"`
	Price         float64     `json:"price"`
	Pickup        AddressSeed `json:"pickup"`
	Dropoff       AddressSeed `json:"dropoff"`
	ScheduledTime time.Time   `json:"scheduled_time"`
}

type SeedFile struct {
	Movers []MoverSeed `json:"movers"`
	Jobs   []JobSeed   `json:"jobs"`
}

// LoadSeed reads and validates a seed file without touching the database.
func LoadSeed(jsonPath string) (*SeedFile, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load seed: read %q: %w", jsonPath, err)
	}

	var data SeedFile
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("load seed: parse json: %w", err)
	}

	for i, m := range data.Movers {
		if _, err := uuid.Parse(m.MoverID); err != nil {
			return nil, fmt.Errorf("load seed: mover at index %d: invalid mover_id %q: %w", i+1, m.MoverID, err)
		}
		for day, slots := range m.Availability {
			if !day.Valid() {
				return nil, fmt.Errorf("load seed: mover at index %d: unknown weekday %q", i+1, day)
			}
			for _, s := range slots {
				if _, _, err := s.Bounds(); err != nil {
					return nil, fmt.Errorf("load seed: mover at index %d: %s: %w", i+1, day, err)
				}
			}
		}
	}

	for i := range data.Jobs {
		j := &data.Jobs[i]
		j.JobID = strings.TrimSpace(j.JobID)
		if j.JobID == "" {
			return nil, fmt.Errorf("load seed: job at index %d: job_id cannot be empty", i+1)
		}
		switch domain.JobType(j.JobType) {
		case domain.JobTypeStorage, domain.JobTypeReturn:
		default:
			return nil, fmt.Errorf("load seed: job %q: invalid job_type %q", j.JobID, j.JobType)
		}
		if j.Status == "" {
			j.Status = string(domain.JobStatusAvailable)
		}
		if j.Volume <= 0 {
			return nil, fmt.Errorf("load seed: job %q: volume must be positive", j.JobID)
		}
		if j.Price <= 0 {
			return nil, fmt.Errorf("load seed: job %q: price must be positive", j.JobID)
		}
		if j.ScheduledTime.IsZero() {
			return nil, fmt.Errorf("load seed: job %q: scheduled_time is required", j.JobID)
		}
	}

	return &data, nil
}

// SeedFromJSON upserts the movers and jobs of a seed file.
func SeedFromJSON(ctx context.Context, db *sql.DB, jsonPath string) error {
	if db == nil {
		return errors.New("seed: DB is nil")
	}

	data, err := LoadSeed(jsonPath)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	moverStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO movers (id, name, availability)
	VALUES ($1, $2, $3)
	ON CONFLICT (id) DO UPDATE
	SET name = EXCLUDED.name,
		availability = EXCLUDED.availability;
	`)
	if err != nil {
		return fmt.Errorf("seed: prepare mover insert: %w", err)
	}
	defer moverStmt.Close()

	for _, m := range data.Movers {
		var availability any
		if m.Availability != nil {
			b, err := json.Marshal(m.Availability)
			if err != nil {
				return fmt.Errorf("seed: encode availability for mover %s: %w", m.MoverID, err)
			}
			availability = string(b)
		}

		if _, err := moverStmt.ExecContext(ctx, m.MoverID, m.Name, availability); err != nil {
			return fmt.Errorf("seed: insert mover_id=%s: %w", m.MoverID, err)
		}
	}

	jobStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO jobs (
		id, order_id, student_id, job_type, status, volume, price,
		pickup_label, pickup_lat, pickup_lon,
		dropoff_label, dropoff_lat, dropoff_lon,
		scheduled_time
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	ON CONFLICT (id) DO UPDATE
	SET order_id = EXCLUDED.order_id,
		student_id = EXCLUDED.student_id,
		job_type = EXCLUDED.job_type,
		status = EXCLUDED.status,
		volume = EXCLUDED.volume,
		price = EXCLUDED.price,
		pickup_label = EXCLUDED.pickup_label,
		pickup_lat = EXCLUDED.pickup_lat,
		pickup_lon = EXCLUDED.pickup_lon,
		dropoff_label = EXCLUDED.dropoff_label,
		dropoff_lat = EXCLUDED.dropoff_lat,
		dropoff_lon = EXCLUDED.dropoff_lon,
		scheduled_time = EXCLUDED.scheduled_time;
	`)
	if err != nil {
		return fmt.Errorf("seed: prepare job insert: %w", err)
	}
	defer jobStmt.Close()

	for _, j := range data.Jobs {
		_, err := jobStmt.ExecContext(ctx,
			j.JobID, j.OrderID, j.StudentID, j.JobType, j.Status, j.Volume, j.Price,
			j.Pickup.Label, j.Pickup.Lat, j.Pickup.Lon,
			j.Dropoff.Label, j.Dropoff.Lat, j.Dropoff.Lon,
			j.ScheduledTime,
		)
		if err != nil {
			return fmt.Errorf("seed: insert job_id=%s: %w", j.JobID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: commit tx: %w", err)
	}

	return nil
}
