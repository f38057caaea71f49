package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

const defaultDSN = "host=localhost user=postgres password=postgres dbname=fuelstation port=5432 sslmode=disable"

type Config struct {
	HTTPPort         string
	DatabaseDSN      string
	JWTSecret        string
	CORSOrigins      string
	LogLevel         string
	PriceTablePath   string
	ExpensePolicy    string
	TrendDefaultDays int
	DigestSchedule   string
	Timezone         string
	Location         *time.Location
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:      getEnv("DATABASE_DSN", defaultDSN),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		CORSOrigins:      getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		PriceTablePath:   getEnv("PRICE_TABLE_PATH", "./prices.yaml"),
		ExpensePolicy:    getEnv("EXPENSE_POLICY", "informational"),
		TrendDefaultDays: getEnvInt("TREND_DEFAULT_DAYS", 7),
		DigestSchedule:   os.Getenv("DIGEST_SCHEDULE"),
		Timezone:         getEnv("TIMEZONE", "Africa/Lagos"),
	}
	if _, set := os.LookupEnv("DIGEST_SCHEDULE"); !set {
		cfg.DigestSchedule = "0 6 * * *"
	}

	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET is not set; it is required in every environment.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET must be at least 32 characters long.")
	}
	if cfg.DatabaseDSN == defaultDSN {
		log.Println("[WARN] DATABASE_DSN is using the local default; set your own Postgres connection for production.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS is using the local default; set your own domain for production.")
	}
	if cfg.TrendDefaultDays <= 0 {
		log.Printf("[WARN] TREND_DEFAULT_DAYS=%d is not positive, using 7", cfg.TrendDefaultDays)
		cfg.TrendDefaultDays = 7
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Printf("[WARN] unknown TIMEZONE %q, falling back to UTC: %v", cfg.Timezone, err)
		loc = time.UTC
	}
	cfg.Location = loc

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[WARN] %s=%q is not a number, using %d", key, v, def)
		return def
	}
	return n
}
