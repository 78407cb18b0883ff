package services

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultAverageSpeedKmh      = 40.0
	DefaultPerCubicMeterMinutes = 15.0
	DefaultBaseJobMinutes       = 30.0
	DefaultProximityWeight      = 0.3
)

// PlannerConfig holds the injected constants used by route planning.
type PlannerConfig struct {
	AverageSpeedKmh      float64
	PerCubicMeterMinutes float64
	BaseJobMinutes       float64

	// ProximityWeight is accepted from configuration but not read by the
	// greedy selection; selection is driven by scheduled time only.
	ProximityWeight float64

	// Location is the time zone used to derive a job's weekday and
	// time of day when matching availability slots.
	Location *time.Location
}

func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		AverageSpeedKmh:      DefaultAverageSpeedKmh,
		PerCubicMeterMinutes: DefaultPerCubicMeterMinutes,
		BaseJobMinutes:       DefaultBaseJobMinutes,
		ProximityWeight:      DefaultProximityWeight,
		Location:             time.UTC,
	}
}

func (c PlannerConfig) Validate() error {
	if c.AverageSpeedKmh <= 0 {
		return fmt.Errorf("planner config: average speed must be positive, got %v", c.AverageSpeedKmh)
	}
	if c.PerCubicMeterMinutes < 0 {
		return fmt.Errorf("planner config: per cubic meter minutes must not be negative, got %v", c.PerCubicMeterMinutes)
	}
	if c.BaseJobMinutes <= 0 {
		return fmt.Errorf("planner config: base job minutes must be positive, got %v", c.BaseJobMinutes)
	}
	if c.Location == nil {
		return errors.New("planner config: location must be non-nil")
	}
	return nil
}

func (c PlannerConfig) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}
