package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimit describes one rate-limiting bucket.
type RateLimit struct {
	MaxRequests int
	Window      time.Duration
}

// Config is built once at process start and passed by reference; it is never
// mutated afterwards.
type Config struct {
	Port        string
	Environment string

	DatabaseDSN string

	JWTSecret string
	JWTExpiry time.Duration

	AcceptedOrigins []string

	RedisAddr     string
	RedisPassword string

	AuthRateLimit  RateLimit
	WriteRateLimit RateLimit

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

func New() *Config {
	return &Config{
		Port:        getString("PORT", "8080"),
		Environment: getString("ENVIRONMENT", "development"),

		DatabaseDSN: buildDSN(),

		JWTSecret: getString("JWT_SECRET", ""),
		JWTExpiry: getDuration("JWT_EXPIRY", 4*time.Hour),

		AcceptedOrigins: splitList(getString("ACCEPTED_ORIGINS", "")),

		RedisAddr:     getString("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getString("REDIS_PASSWORD", ""),

		// Windows and limits mirror the public site's abuse profile: auth
		// endpoints 20/15min, project writes 10/15min.
		AuthRateLimit: RateLimit{
			MaxRequests: getInt("AUTH_RATE_LIMIT_MAX", 20),
			Window:      getDuration("AUTH_RATE_LIMIT_WINDOW", 15*time.Minute),
		},
		WriteRateLimit: RateLimit{
			MaxRequests: getInt("WRITE_RATE_LIMIT_MAX", 10),
			Window:      getDuration("WRITE_RATE_LIMIT_WINDOW", 15*time.Minute),
		},

		ReadTimeout:  getDuration("READ_TIMEOUT", 30*time.Second),
		WriteTimeout: getDuration("WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:  getDuration("IDLE_TIMEOUT", 120*time.Second),
	}
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func buildDSN() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		getString("DB_HOST", "localhost"),
		getString("DB_USER", "postgres"),
		getString("DB_PASSWORD", ""),
		getString("DB_NAME", "portfolio"),
		getString("DB_PORT", "5432"),
		getString("DB_SSLMODE", "disable"),
	)
}

func getString(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	s, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}
	return asInt
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	s, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return defaultValue
	}
	return d
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
