package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultPort           = "8080"
	defaultReportSchedule = "@daily"
)

var ErrDatabaseURLNotSet = errors.New("DATABASE_URL not set")

type Config struct {
	DatabaseURL    string
	Port           string
	JWTSecret      string
	AdminEmail     string
	AdminPassword  string
	ReportSchedule string
	AllowedOrigins []string
}

// Load reads the environment after merging the given dotenv files (".env"
// when none are named). Variables already set in the process win.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: could not load env file: %v", err)
	}

	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		Port:           getenv("PORT", defaultPort),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AdminEmail:     os.Getenv("ADMIN_EMAIL"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		ReportSchedule: getenv("OCCUPANCY_REPORT_SCHEDULE", defaultReportSchedule),
		AllowedOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS", "*")),
	}
	if cfg.DatabaseURL == "" {
		return nil, ErrDatabaseURLNotSet
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
