package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config describes runtime settings loaded from environment variables.
type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	StorageBackend  string        `env:"STORAGE_BACKEND" envDefault:"file"`
	StorageFile     string        `env:"STORAGE_FILE" envDefault:"localstorage.json"`
	RedisURL        string        `env:"REDIS_URL"`
	RedisPrefix     string        `env:"REDIS_PREFIX" envDefault:"taskboard:"`
	DatabaseURL     string        `env:"DATABASE_URL"`
	RateLimitRPS    float64       `env:"RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst  int           `env:"RATE_LIMIT_BURST" envDefault:"20"`
	RateLimitTTL    time.Duration `env:"RATE_LIMIT_TTL" envDefault:"10m"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogJSON         bool          `env:"LOG_JSON" envDefault:"false"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Load reads configuration from environment variables, applying defaults when necessary.
// A .env file in the working directory, if present, is read first and never
// overrides variables that are already set.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		Port:            "8080",
		StorageBackend:  BackendFile,
		StorageFile:     "localstorage.json",
		RedisPrefix:     "taskboard:",
		RateLimitRPS:    10,
		RateLimitBurst:  20,
		RateLimitTTL:    10 * time.Minute,
		LogLevel:        "info",
		ShutdownTimeout: 5 * time.Second,
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}

	if backend := os.Getenv("STORAGE_BACKEND"); backend != "" {
		cfg.StorageBackend = backend
	}

	if file := os.Getenv("STORAGE_FILE"); file != "" {
		cfg.StorageFile = file
	}

	cfg.RedisURL = os.Getenv("REDIS_URL")
	if prefix, ok := os.LookupEnv("REDIS_PREFIX"); ok {
		cfg.RedisPrefix = prefix
	}
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")

	if rps := os.Getenv("RATE_LIMIT_RPS"); rps != "" {
		value, err := strconv.ParseFloat(rps, 64)
		if err != nil {
			return nil, fmt.Errorf("parse RATE_LIMIT_RPS: %w", err)
		}
		cfg.RateLimitRPS = value
	}

	if burst := os.Getenv("RATE_LIMIT_BURST"); burst != "" {
		value, err := strconv.Atoi(burst)
		if err != nil {
			return nil, fmt.Errorf("parse RATE_LIMIT_BURST: %w", err)
		}
		cfg.RateLimitBurst = value
	}

	if ttl := os.Getenv("RATE_LIMIT_TTL"); ttl != "" {
		dur, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("parse RATE_LIMIT_TTL: %w", err)
		}
		cfg.RateLimitTTL = dur
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	if js := os.Getenv("LOG_JSON"); js != "" {
		value, err := strconv.ParseBool(js)
		if err != nil {
			return nil, fmt.Errorf("parse LOG_JSON: %w", err)
		}
		cfg.LogJSON = value
	}

	if timeout := os.Getenv("SHUTDOWN_TIMEOUT"); timeout != "" {
		dur, err := time.ParseDuration(timeout)
		if err != nil {
			return nil, fmt.Errorf("parse SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownTimeout = dur
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageBackend {
	case BackendFile:
	case BackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required for storage backend %q", c.StorageBackend)
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for storage backend %q", c.StorageBackend)
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}
	return nil
}
