package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultLogFile  = "simulation.log"
	DefaultLogLevel = "info"
)

// Config holds the simulator settings read from the environment.
type Config struct {
	Steps          int
	StepsSet       bool
	Seed           int64
	SeedSet        bool
	LogFile        string
	LogLevel       string
	StepsPerSecond float64
	Fixtures       string
}

// Load reads .env.local, if present, and then the SIM_* environment variables.
func Load() (Config, error) {
	_ = godotenv.Load(".env.local")
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		LogFile:  getEnv("SIM_LOG_FILE", DefaultLogFile),
		LogLevel: getEnv("SIM_LOG_LEVEL", DefaultLogLevel),
		Fixtures: os.Getenv("SIM_FIXTURES"),
	}

	var errs []error

	if v := os.Getenv("SIM_STEPS"); v != "" {
		steps, err := strconv.Atoi(v)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("SIM_STEPS: %w", err))
		case steps < 0:
			errs = append(errs, fmt.Errorf("SIM_STEPS: must not be negative, got %d", steps))
		default:
			cfg.Steps, cfg.StepsSet = steps, true
		}
	}

	if v := os.Getenv("SIM_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("SIM_SEED: %w", err))
		} else {
			cfg.Seed, cfg.SeedSet = seed, true
		}
	}

	if v := os.Getenv("SIM_STEPS_PER_SECOND"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("SIM_STEPS_PER_SECOND: %w", err))
		case rate < 0:
			errs = append(errs, fmt.Errorf("SIM_STEPS_PER_SECOND: must not be negative, got %v", rate))
		default:
			cfg.StepsPerSecond = rate
		}
	}

	return cfg, errors.Join(errs...)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
