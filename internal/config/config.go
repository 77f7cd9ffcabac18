package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config contains runtime settings for the CLI and the MCP server
type Config struct {
	LogLevel  string
	LogFormat string // json or console
	Host      string // default 0.0.0.0
	Port      string // default PORT env or 8080

	Database struct {
		Driver string // pgx or sqlite
		URL    string
	}

	HH struct {
		BaseURL           string
		UserAgent         string
		RequestsPerSecond float64
		PageSize          int
	} // HeadHunter API settings

	Ingest struct {
		Pacing time.Duration
	}

	Redis struct {
		URL string
		TTL time.Duration
	} // optional resolution cache

	CatalogPath   string
	EmployersFile string

	Sheets struct {
		CredentialsPath string
	}
}

// Load populates config from environment variables
func Load() (Config, error) {
	cfg := Config{
		LogLevel:      "info",
		LogFormat:     "json",
		Host:          "0.0.0.0",
		Port:          "8080",
		EmployersFile: "employers.txt",
	}
	cfg.Database.Driver = "pgx"
	cfg.HH.RequestsPerSecond = 5
	cfg.HH.PageSize = 20
	cfg.Ingest.Pacing = 500 * time.Millisecond
	cfg.Redis.TTL = 7 * 24 * time.Hour

	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.LogFormat, "LOG_FORMAT")
	setString(&cfg.Host, "MCP_HOST")
	setString(&cfg.Port, "PORT")
	setString(&cfg.Database.Driver, "DB_DRIVER")
	cfg.Database.URL = os.Getenv("DATABASE_URL")
	setString(&cfg.HH.BaseURL, "HH_BASE_URL")
	setString(&cfg.HH.UserAgent, "HH_USER_AGENT")
	cfg.Redis.URL = os.Getenv("REDIS_URL")
	cfg.CatalogPath = os.Getenv("CATALOG_PATH")
	setString(&cfg.EmployersFile, "EMPLOYERS_FILE")
	cfg.Sheets.CredentialsPath = os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH")

	var invalidVars []string

	if v := os.Getenv("HH_REQUESTS_PER_SECOND"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil || n < 0 {
			invalidVars = append(invalidVars, "HH_REQUESTS_PER_SECOND")
		} else {
			cfg.HH.RequestsPerSecond = n
		}
	}

	if v := os.Getenv("HH_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			invalidVars = append(invalidVars, "HH_PAGE_SIZE")
		} else {
			cfg.HH.PageSize = n
		}
	}

	if v := os.Getenv("INGEST_PACING"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			invalidVars = append(invalidVars, "INGEST_PACING")
		} else {
			cfg.Ingest.Pacing = d
		}
	}

	if v := os.Getenv("REDIS_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			invalidVars = append(invalidVars, "REDIS_TTL")
		} else {
			cfg.Redis.TTL = d
		}
	}

	switch cfg.Database.Driver {
	case "pgx", "sqlite":
	default:
		invalidVars = append(invalidVars, "DB_DRIVER")
	}

	var missingVars []string

	if cfg.Database.URL == "" {
		missingVars = append(missingVars, "DATABASE_URL")
	}

	var problems []string
	if len(missingVars) > 0 {
		problems = append(problems, fmt.Sprintf("missing required environment variables: %s", strings.Join(missingVars, ", ")))
	}
	if len(invalidVars) > 0 {
		problems = append(problems, fmt.Sprintf("invalid environment variables: %s", strings.Join(invalidVars, ", ")))
	}
	if len(problems) > 0 {
		return cfg, fmt.Errorf("%s", strings.Join(problems, "; "))
	}

	return cfg, nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
