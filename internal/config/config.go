package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	CORS       CORSConfig
	MarketData MarketDataConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// MarketDataConfig holds price-fetching configuration
type MarketDataConfig struct {
	StockBaseURL  string
	CryptoBaseURL string
	RelayURL      string        // public CORS relay; empty disables the fallback
	FetchDelay    time.Duration // pause between tickers to respect rate limits
	SyncSchedule  string        // cron spec for background sync; empty disables it
	CredentialKey string        // fernet key sealing the stored API token
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/horizon60.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost")),
		},
		MarketData: MarketDataConfig{
			StockBaseURL:  getEnv("STOCK_API_URL", ""),
			CryptoBaseURL: getEnv("CRYPTO_API_URL", ""),
			RelayURL:      getEnv("CORS_RELAY_URL", ""),
			FetchDelay:    getEnvDuration("PRICE_FETCH_DELAY_MS", 1200) * time.Millisecond,
			SyncSchedule:  getEnv("PRICE_SYNC_SCHEDULE", ""),
			CredentialKey: getEnv("CREDENTIAL_KEY", ""),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvDuration reads an integer environment variable as a time.Duration
// unit count, falling back to the default on missing or bad values.
func getEnvDuration(key string, defaultValue int64) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return time.Duration(defaultValue)
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n < 0 {
		return time.Duration(defaultValue)
	}
	return time.Duration(n)
}

// splitList splits a comma-separated environment value into trimmed entries.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
