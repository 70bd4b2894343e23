// SPDX-License-Identifier: MIT

// Package config loads the command-line defaults from the environment and
// an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the run parameters of the torus tool.
type Config struct {
	Points      int     `validate:"min=3"`
	OuterRadius float64 `validate:"gt=0"`
	InnerRadius float64 `validate:"gt=0,ltfield=OuterRadius"`
	Seed        int64
	Landmarks   int `validate:"min=1,ltefield=Points"`
	Prime       int `validate:"min=2"`

	LogFile  string
	Debug    bool
	CacheTTL time.Duration `validate:"gte=0"`
}

var validate = validator.New()

// Load reads files (".env" when none is given) into the process
// environment, then resolves every setting with its fallback. A missing
// file is not an error.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg := &Config{
		Points:      getEnvAsInt("TOPO_POINTS", 10000),
		OuterRadius: getEnvAsFloat("TOPO_OUTER_RADIUS", 5),
		InnerRadius: getEnvAsFloat("TOPO_INNER_RADIUS", 2),
		Seed:        int64(getEnvAsInt("TOPO_SEED", 1)),
		Landmarks:   getEnvAsInt("TOPO_LANDMARKS", 100),
		Prime:       getEnvAsInt("TOPO_PRIME", 41),
		LogFile:     getEnv("TOPO_LOG_FILE", "toruscoords.log"),
		Debug:       getEnvAsBool("TOPO_DEBUG", false),
		CacheTTL:    getEnvAsDuration("TOPO_CACHE_TTL", 30*time.Minute),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field ranges. Call it again after flag overrides.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}

	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	if value, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return value
	}

	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}

	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return value
	}

	return fallback
}
