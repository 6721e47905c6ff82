package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "STORAGE_BACKEND", "STORAGE_FILE", "REDIS_URL", "REDIS_PREFIX", "DATABASE_URL",
		"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "RATE_LIMIT_TTL", "LOG_LEVEL", "LOG_JSON", "SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT_TTL", "1m")
	t.Setenv("LOG_JSON", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Port)
	}

	if cfg.RateLimitTTL != time.Minute {
		t.Fatalf("expected rate limit TTL 1m, got %s", cfg.RateLimitTTL)
	}

	if !cfg.LogJSON {
		t.Fatalf("expected JSON logging")
	}

	if cfg.StorageBackend != BackendFile || cfg.StorageFile != "localstorage.json" {
		t.Fatalf("unexpected storage defaults: %q %q", cfg.StorageBackend, cfg.StorageFile)
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=7070\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Chdir(dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "7070" {
		t.Fatalf("expected port from .env, got %q", cfg.Port)
	}
	os.Unsetenv("PORT")
}

func TestLoadMalformedDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("BAD-KEY=1\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Chdir(dir)

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for malformed .env")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad rps", map[string]string{"RATE_LIMIT_RPS": "fast"}},
		{"bad burst", map[string]string{"RATE_LIMIT_BURST": "1.5"}},
		{"bad shutdown timeout", map[string]string{"SHUTDOWN_TIMEOUT": "soon"}},
		{"unknown backend", map[string]string{"STORAGE_BACKEND": "cookies"}},
		{"redis without url", map[string]string{"STORAGE_BACKEND": "redis"}},
		{"postgres without dsn", map[string]string{"STORAGE_BACKEND": "postgres"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
