package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	Server struct {
		Port         string
		ReadTimeout  time.Duration
		WriteTimeout time.Duration
	}

	Location struct {
		Latitude     float64
		Longitude    float64
		LookbackDays int
	}

	Archive struct {
		BaseURL string
		Timeout time.Duration
	}

	Analysis struct {
		AnomalyThreshold float64
	}

	Scheduler struct {
		CronSpec string
	}

	CircuitBreaker struct {
		Timeout time.Duration
	}
}

func LoadConfig() (*Config, error) {
	// Load .env file if exists
	if err := godotenv.Load(); err != nil {
		zap.L().Info("No .env file found, using environment variables")
	}

	cfg := &Config{}

	// Server configuration
	cfg.Server.Port = getEnv("PORT", "8080")
	cfg.Server.ReadTimeout = parseDuration(getEnv("READ_TIMEOUT", "10s"))
	cfg.Server.WriteTimeout = parseDuration(getEnv("WRITE_TIMEOUT", "10s"))

	// Location configuration (defaults to Hyderabad, India)
	cfg.Location.Latitude = parseFloat(getEnv("LATITUDE", "17.3850"))
	cfg.Location.Longitude = parseFloat(getEnv("LONGITUDE", "78.4867"))
	cfg.Location.LookbackDays = parseInt(getEnv("LOOKBACK_DAYS", "7"))

	// Archive API configuration
	cfg.Archive.BaseURL = getEnv("ARCHIVE_URL", "https://archive-api.open-meteo.com/v1/archive")
	cfg.Archive.Timeout = parseDuration(getEnv("ARCHIVE_TIMEOUT", "10s"))

	// Analysis configuration
	cfg.Analysis.AnomalyThreshold = parseFloat(getEnv("ANOMALY_THRESHOLD", "10"))

	// Scheduler configuration
	cfg.Scheduler.CronSpec = getEnv("REPORT_CRON", "0 * * * *")

	// Circuit breaker configuration
	cfg.CircuitBreaker.Timeout = parseDuration(getEnv("CIRCUIT_BREAKER_TIMEOUT", "30s"))

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(value string) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		zap.L().Warn("Failed to parse duration", zap.String("value", value), zap.Error(err))
		return 0
	}
	return duration
}

func parseInt(value string) int {
	intValue, err := strconv.Atoi(value)
	if err != nil {
		zap.L().Warn("Failed to parse int", zap.String("value", value), zap.Error(err))
		return 0
	}
	return intValue
}

func parseFloat(value string) float64 {
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		zap.L().Warn("Failed to parse float", zap.String("value", value), zap.Error(err))
		return 0
	}
	return floatValue
}
