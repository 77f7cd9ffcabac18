package config

import (
	"strings"
	"testing"
	"time"
)

var configEnv = []string{
	"LOG_LEVEL", "LOG_FORMAT", "MCP_HOST", "PORT", "DB_DRIVER", "DATABASE_URL",
	"HH_BASE_URL", "HH_USER_AGENT", "HH_REQUESTS_PER_SECOND", "HH_PAGE_SIZE",
	"INGEST_PACING", "REDIS_URL", "REDIS_TTL", "CATALOG_PATH", "EMPLOYERS_FILE",
	"GOOGLE_SHEETS_CREDENTIALS_PATH",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnv {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/navigator")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Database.Driver != "pgx" || cfg.Port != "8080" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.HH.PageSize != 20 || cfg.Ingest.Pacing != 500*time.Millisecond {
		t.Fatalf("unexpected ingest defaults: %+v", cfg)
	}
	if cfg.EmployersFile != "employers.txt" {
		t.Fatalf("EmployersFile = %q", cfg.EmployersFile)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "file:navigator.db")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("HH_PAGE_SIZE", "50")
	t.Setenv("HH_REQUESTS_PER_SECOND", "0")
	t.Setenv("INGEST_PACING", "2s")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("REDIS_TTL", "1h")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Database.Driver != "sqlite" || cfg.HH.PageSize != 50 || cfg.HH.RequestsPerSecond != 0 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Ingest.Pacing != 2*time.Second || cfg.Redis.TTL != time.Hour || cfg.Redis.URL == "" {
		t.Fatalf("unexpected durations: %+v", cfg)
	}
	if cfg.LogFormat != "console" {
		t.Fatalf("LogFormat = %q", cfg.LogFormat)
	}
}

func TestLoadAggregatesProblems(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("HH_PAGE_SIZE", "-1")
	t.Setenv("INGEST_PACING", "soon")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}

	msg := err.Error()
	for _, want := range []string{"DATABASE_URL", "DB_DRIVER", "HH_PAGE_SIZE", "INGEST_PACING"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("error %q does not mention %s", msg, want)
		}
	}
}
