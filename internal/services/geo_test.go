package services

import (
	"dormdash-route-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	ubc := domain.Coordinates{Lat: 49.2606, Lon: -123.2460}
	downtown := domain.Coordinates{Lat: 49.2827, Lon: -123.1207}

	t.Run("identical points", func(t *testing.T) {
		assert.Equal(t, 0.0, DistanceKm(ubc, ubc))
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.InDelta(t, DistanceKm(ubc, downtown), DistanceKm(downtown, ubc), 1e-9)
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		a := domain.Coordinates{Lat: 10, Lon: 20}
		b := domain.Coordinates{Lat: 11, Lon: 20}
		assert.InDelta(t, 111.195, DistanceKm(a, b), 0.001)
	})

	t.Run("ubc to downtown", func(t *testing.T) {
		assert.InDelta(t, 9.42, DistanceKm(ubc, downtown), 0.05)
	})

	t.Run("triangle inequality", func(t *testing.T) {
		burnaby := domain.Coordinates{Lat: 49.2488, Lon: -122.9805}
		direct := DistanceKm(ubc, burnaby)
		via := DistanceKm(ubc, downtown) + DistanceKm(downtown, burnaby)
		assert.LessOrEqual(t, direct, via+1e-9)
	})
}

func TestTravelAndJobDuration(t *testing.T) {
	cfg := DefaultPlannerConfig()

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"travel zero", cfg.TravelMinutes(0), 0},
		{"travel 40km at 40kmh", cfg.TravelMinutes(40), 60},
		{"travel 10km", cfg.TravelMinutes(10), 15},
		{"job volume 0", cfg.JobDurationMinutes(0), 30},
		{"job volume 1", cfg.JobDurationMinutes(1), 45},
		{"job volume 10", cfg.JobDurationMinutes(10), 180},
		{"job volume 2.5", cfg.JobDurationMinutes(2.5), 67.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.got, 1e-9)
		})
	}
}

func TestTravelMinutesUsesConfiguredSpeed(t *testing.T) {
	cfg := DefaultPlannerConfig()
	cfg.AverageSpeedKmh = 60

	assert.InDelta(t, 10.0, cfg.TravelMinutes(10), 1e-9)
}
