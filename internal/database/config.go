package database

import (
	"fmt"
	"time"

	"finvault/internal/config"
)

// Config holds database configuration
type Config struct {
	Driver      string
	Host        string
	Port        string
	User        string
	Password    string
	DBName      string
	SSLMode     string
	SQLitePath  string
	LockTimeout time.Duration
}

// NewConfig derives the database configuration from the application configuration.
func NewConfig(cfg *config.Config) *Config {
	return &Config{
		Driver:      cfg.DBDriver,
		Host:        cfg.DBHost,
		Port:        cfg.DBPort,
		User:        cfg.DBUser,
		Password:    cfg.DBPassword,
		DBName:      cfg.DBName,
		SSLMode:     cfg.DBSSLMode,
		SQLitePath:  cfg.DBSQLitePath,
		LockTimeout: cfg.DBLockTimeout,
	}
}

// DSN returns the PostgreSQL connection string. lock_timeout is sent as a
// runtime parameter so a blocked SELECT ... FOR UPDATE fails instead of
// waiting forever.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s lock_timeout=%d",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode, c.LockTimeout.Milliseconds())
}

// MigrationURL returns the URL form used by golang-migrate.
func (c *Config) MigrationURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}
