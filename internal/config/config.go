package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	ServerPort string
	// DatabaseURL is a Postgres DSN.
	DatabaseURL string

	JWTSecret          string
	JWTExpirationHours int64

	GroqAPIKey  string
	GroqModel   string
	GroqBaseURL string
	GroqTimeout time.Duration

	LogLevel  string
	LogFormat string
	GinMode   string
}

// Load builds Config from the environment with defaults. Call
// godotenv.Load first if a .env file should be honored.
func Load() (*Config, error) {
	expHours, err := getEnvInt("JWT_EXPIRATION_HOURS", 24)
	if err != nil {
		return nil, err
	}
	if expHours <= 0 {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be positive, got %d", expHours)
	}
	timeoutSecs, err := getEnvInt("GROQ_TIMEOUT_SECONDS", 60)
	if err != nil {
		return nil, err
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = dsnFromParts()
	}

	return &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		DatabaseURL:        dsn,
		JWTSecret:          getEnv("JWT_SECRET_KEY", "jwtsecret"),
		JWTExpirationHours: expHours,
		GroqAPIKey:         os.Getenv("GROQ_API_KEY"),
		GroqModel:          getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
		GroqBaseURL:        getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		GroqTimeout:        time.Duration(timeoutSecs) * time.Second,
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "json"),
		GinMode:            os.Getenv("GIN_MODE"),
	}, nil
}

// dsnFromParts assembles a postgres URL from DB_HOST, DB_PORT, DB_USER,
// DB_PASSWORD and DB_NAME.
func dsnFromParts() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(getEnv("DB_USER", "postgres"), os.Getenv("DB_PASSWORD")),
		Host:     net.JoinHostPort(getEnv("DB_HOST", "localhost"), getEnv("DB_PORT", "5432")),
		Path:     "/" + getEnv("DB_NAME", "marketai"),
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}
