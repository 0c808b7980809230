package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"finvault/internal/logger"
)

// Config holds application configuration
type Config struct {
	// Server
	Env                string
	Port               string
	CORSAllowedOrigins []string
	RateLimit          string

	// Database
	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	DBSQLitePath  string
	DBLockTimeout time.Duration

	// Identity used when a request carries no X-User-ID header.
	DefaultUserID string
}

var appConfig *Config

// Load reads configuration from the environment, after merging an optional .env file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Get().Debug(".env file not found, using environment only")
	}

	v := viper.New()
	v.SetDefault("ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "finvault")
	v.SetDefault("DB_PASSWORD", "finvault")
	v.SetDefault("DB_NAME", "finvault")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_SQLITE_PATH", "finvault.db")
	v.SetDefault("DB_LOCK_TIMEOUT", "5s")
	v.SetDefault("DEFAULT_USER_ID", "00000000-0000-7000-8000-000000000001")
	v.AutomaticEnv()

	config := &Config{
		Env:           v.GetString("ENV"),
		Port:          v.GetString("PORT"),
		RateLimit:     v.GetString("RATE_LIMIT"),
		DBDriver:      strings.ToLower(v.GetString("DB_DRIVER")),
		DBHost:        v.GetString("DB_HOST"),
		DBPort:        v.GetString("DB_PORT"),
		DBUser:        v.GetString("DB_USER"),
		DBPassword:    v.GetString("DB_PASSWORD"),
		DBName:        v.GetString("DB_NAME"),
		DBSSLMode:     v.GetString("DB_SSLMODE"),
		DBSQLitePath:  v.GetString("DB_SQLITE_PATH"),
		DefaultUserID: v.GetString("DEFAULT_USER_ID"),
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			config.CORSAllowedOrigins = append(config.CORSAllowedOrigins, origin)
		}
	}

	lockTimeout, err := time.ParseDuration(v.GetString("DB_LOCK_TIMEOUT"))
	if err != nil {
		logger.Get().Warnf("invalid DB_LOCK_TIMEOUT %q, falling back to 5s", v.GetString("DB_LOCK_TIMEOUT"))
		lockTimeout = 5 * time.Second
	}
	config.DBLockTimeout = lockTimeout

	switch config.DBDriver {
	case "postgres", "sqlite":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (use postgres or sqlite)", config.DBDriver)
	}

	if config.DefaultUserID == "" {
		return nil, fmt.Errorf("DEFAULT_USER_ID must not be empty")
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration, loading it on first use.
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			logger.Get().Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}
