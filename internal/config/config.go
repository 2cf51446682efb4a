package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	DatabaseURL         string
	LogLevel            string
	JWTSecret           string
	ProjectID           string
	Region              string
	VertexModel         string
	AITimeout           time.Duration
	DashboardInsightTTL time.Duration
	BudgetInsightTTL    time.Duration
}

func New() *Config {
	// Local development reads .env; in deployed environments the file is
	// absent and the variables come from the runtime.
	_ = godotenv.Load()

	return &Config{
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		LogLevel:            os.Getenv("LOGLEVEL"),
		JWTSecret:           os.Getenv("JWTSECRET"),
		ProjectID:           os.Getenv("PROJECTID"),
		Region:              os.Getenv("REGION"),
		VertexModel:         getEnv("VERTEXMODEL", "gemini-2.0-flash"),
		AITimeout:           getDuration("AITIMEOUT", 30*time.Second),
		DashboardInsightTTL: getDuration("DASHBOARDINSIGHTTTL", 48*time.Hour),
		BudgetInsightTTL:    getDuration("BUDGETINSIGHTTTL", 72*time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
