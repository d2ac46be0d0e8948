// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"shopku-api/pkg/db"
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort    string
	JWTSecret     string
	JWTTTL        time.Duration
	MigrationsDir string // empty disables startup migrations
	DB            db.Config
}

// LoadConfig loads configuration from environment variables.
// It returns an AppConfig instance or an error if any variable is invalid.
func LoadConfig() (*AppConfig, error) {
	serverPort := getEnv("SERVER_PORT", "8080")

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "dev-secret" // Local development only
	}
	jwtTTLMinutes, err := strconv.Atoi(getEnv("JWT_TTL_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL_MINUTES: %w", err)
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	return &AppConfig{
		ServerPort:    serverPort,
		JWTSecret:     jwtSecret,
		JWTTTL:        time.Duration(jwtTTLMinutes) * time.Minute,
		MigrationsDir: os.Getenv("MIGRATIONS_DIR"),
		DB: db.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "user"),
			Password: getEnv("DB_PASSWORD", "password"),
			DBName:   getEnv("DB_NAME", "shopkudb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
