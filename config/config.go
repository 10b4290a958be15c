package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Config holds everything main needs to boot the service. Values come from
// the environment, which godotenv may have populated from .env beforehand.
type Config struct {
	Port         string
	GinMode      string
	LogLevel     string
	DBDriver     string
	DBDSN        string
	MaxOpenConns int
	MaxIdleConns int
	SeedData     bool
	SeedFile     string
	CORSOrigin   string
	RateLimit    int
	RateInterval time.Duration
	WriteBurst   int
}

// Default returns the development configuration: a local sqlite file.
func Default() Config {
	return Config{
		Port:         "8080",
		GinMode:      "debug",
		LogLevel:     "info",
		DBDriver:     DriverSQLite,
		DBDSN:        "reviews.db",
		MaxOpenConns: 10,
		MaxIdleConns: 5,
		CORSOrigin:   "*",
		RateLimit:    50,
		RateInterval: time.Second,
		WriteBurst:   20,
	}
}

// Load reads the configuration from environment variables, falling back to
// Default for anything unset or unparsable.
func Load() Config {
	cfg := Default()

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.GinMode = getEnv("GIN_MODE", cfg.GinMode)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.DBDriver = strings.ToLower(getEnv("DB_DRIVER", cfg.DBDriver))
	cfg.DBDSN = getEnv("DB_DSN", cfg.DBDSN)
	cfg.MaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", cfg.MaxOpenConns)
	cfg.MaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", cfg.MaxIdleConns)
	cfg.SeedData = getEnvBool("SEED_DATA", cfg.SeedData)
	cfg.SeedFile = getEnv("SEED_FILE", cfg.SeedFile)
	cfg.CORSOrigin = getEnv("CORS_ORIGIN", cfg.CORSOrigin)
	cfg.RateLimit = getEnvInt("RATE_LIMIT", cfg.RateLimit)
	cfg.RateInterval = time.Duration(getEnvInt("RATE_INTERVAL", int(cfg.RateInterval/time.Second))) * time.Second
	cfg.WriteBurst = getEnvInt("WRITE_BURST", cfg.WriteBurst)

	return cfg
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}
