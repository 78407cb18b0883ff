package config

import (
	"dormdash-route-service/internal/services"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Config is the process configuration read from the environment.
type Config struct {
	Port        string
	DatabaseURL string
	LogLevel    string
	SeedPath    string

	MigrateOnStart bool

	// RedisAddr is empty when the availability cache is disabled.
	RedisAddr            string
	AvailabilityCacheTTL time.Duration

	Planner services.PlannerConfig
}

// Load reads Config from the environment. DATABASE_URL is required.
func Load() (Config, error) {
	var errs []error

	cfg := Config{
		Port:        Get("PORT", "8080"),
		DatabaseURL: Get("DATABASE_URL", ""),
		LogLevel:    Get("LOG_LEVEL", "info"),
		SeedPath:    Get("SEED_PATH", "data/seeds/dormdash.json"),
		RedisAddr:   Get("REDIS_ADDR", ""),
	}

	if cfg.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}

	var err error
	if cfg.MigrateOnStart, err = getBool("MIGRATE_ON_START", true); err != nil {
		errs = append(errs, err)
	}
	if cfg.AvailabilityCacheTTL, err = getDuration("AVAILABILITY_CACHE_TTL", 5*time.Minute); err != nil {
		errs = append(errs, err)
	}

	planner := services.DefaultPlannerConfig()
	if planner.AverageSpeedKmh, err = getFloat("AVERAGE_SPEED_KMH", services.DefaultAverageSpeedKmh); err != nil {
		errs = append(errs, err)
	}
	if planner.PerCubicMeterMinutes, err = getFloat("PER_CUBIC_METER_MINUTES", services.DefaultPerCubicMeterMinutes); err != nil {
		errs = append(errs, err)
	}
	if planner.BaseJobMinutes, err = getFloat("BASE_JOB_TIME_MINUTES", services.DefaultBaseJobMinutes); err != nil {
		errs = append(errs, err)
	}
	if planner.ProximityWeight, err = getFloat("PROXIMITY_WEIGHT", services.DefaultProximityWeight); err != nil {
		errs = append(errs, err)
	}

	tz := Get("PLANNER_TIMEZONE", "America/Vancouver")
	if planner.Location, err = time.LoadLocation(tz); err != nil {
		errs = append(errs, fmt.Errorf("PLANNER_TIMEZONE: %w", err))
		planner.Location = time.UTC
	}

	if err := planner.Validate(); err != nil {
		errs = append(errs, err)
	}
	cfg.Planner = planner

	if len(errs) > 0 {
		return Config{}, fmt.Errorf("load config: %w", errors.Join(errs...))
	}
	return cfg, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: want a number, got %q", key, v)
	}
	return f, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: want a duration like 5m, got %q", key, v)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: must not be negative, got %s", key, d)
	}
	return d, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: want true or false, got %q", key, v)
	}
	return b, nil
}
