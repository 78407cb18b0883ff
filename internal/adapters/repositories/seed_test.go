package repositories

import (
	"dormdash-route-service/internal/domain"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeed(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadSeed(t *testing.T) {
	path := writeSeed(t, `{
		"movers": [
			{
				"mover_id": "5f0c6a52-2f0e-4c43-9a59-5d3c1f1f4a10",
				"name": "Sam",
				"availability": {"MON": [["09:00", "17:00"]], "SAT": [["10:00", "12:00"], ["13:00", "18:00"]]}
			}
		],
		"jobs": [
			{
				"job_id": " job-1 ",
				"order_id": "order-1",
				"student_id": "student-1",
				"job_type": "STORAGE",
				"volume": 1,
				"price": 50,
				"pickup": {"label": "UBC Totem Park", "lat": 49.2606, "lon": -123.246},
				"dropoff": {"label": "DormDash Warehouse", "lat": null, "lon": -123.1},
				"scheduled_time": "2026-10-19T11:00:00-07:00"
			}
		]
	}`)

	data, err := LoadSeed(path)
	require.NoError(t, err)

	require.Len(t, data.Movers, 1)
	assert.Equal(t, []domain.TimeSlot{{Start: "09:00", End: "17:00"}}, data.Movers[0].Availability[domain.Monday])
	assert.Len(t, data.Movers[0].Availability[domain.Saturday], 2)

	require.Len(t, data.Jobs, 1)
	job := data.Jobs[0]
	assert.Equal(t, "job-1", job.JobID)
	assert.Equal(t, "AVAILABLE", job.Status)
	assert.Nil(t, job.Dropoff.Lat)
	require.NotNil(t, job.Pickup.Lat)
	assert.Equal(t, 49.2606, *job.Pickup.Lat)
}

func TestLoadSeedRejectsInvalidData(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"movers": [`},
		{"bad mover id", `{"movers": [{"mover_id": "mover-1"}]}`},
		{"unknown weekday", `{"movers": [{"mover_id": "5f0c6a52-2f0e-4c43-9a59-5d3c1f1f4a10", "availability": {"MONDAY": [["09:00", "17:00"]]}}]}`},
		{"bad slot", `{"movers": [{"mover_id": "5f0c6a52-2f0e-4c43-9a59-5d3c1f1f4a10", "availability": {"MON": [["17:00", "09:00"]]}}]}`},
		{"slot not a pair", `{"movers": [{"mover_id": "5f0c6a52-2f0e-4c43-9a59-5d3c1f1f4a10", "availability": {"MON": [["09:00"]]}}]}`},
		{"empty job id", `{"jobs": [{"job_id": " ", "job_type": "STORAGE", "volume": 1, "price": 1, "scheduled_time": "2026-10-19T11:00:00Z"}]}`},
		{"bad job type", `{"jobs": [{"job_id": "j", "job_type": "MOVE", "volume": 1, "price": 1, "scheduled_time": "2026-10-19T11:00:00Z"}]}`},
		{"zero volume", `{"jobs": [{"job_id": "j", "job_type": "RETURN", "volume": 0, "price": 1, "scheduled_time": "2026-10-19T11:00:00Z"}]}`},
		{"zero price", `{"jobs": [{"job_id": "j", "job_type": "RETURN", "volume": 1, "price": 0, "scheduled_time": "2026-10-19T11:00:00Z"}]}`},
		{"missing scheduled time", `{"jobs": [{"job_id": "j", "job_type": "RETURN", "volume": 1, "price": 1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSeed(writeSeed(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadSeedMissingFile(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestDecodeAvailability(t *testing.T) {
	a, err := decodeAvailability(nil)
	require.NoError(t, err)
	assert.Nil(t, a)

	a, err = decodeAvailability([]byte("null"))
	require.NoError(t, err)
	assert.Nil(t, a)

	a, err = decodeAvailability([]byte(`{"TUE": [["08:00", "12:30"]]}`))
	require.NoError(t, err)
	assert.Equal(t, domain.Availability{domain.Tuesday: {{Start: "08:00", End: "12:30"}}}, a)

	_, err = decodeAvailability([]byte(`{"TUE": "all day"}`))
	assert.Error(t, err)
}
