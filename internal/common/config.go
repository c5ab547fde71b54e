package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Enrich    EnrichConfig
	Scheduler SchedulerConfig
	Ingest    IngestConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// EnrichConfig holds enrichment-collaborator configuration
type EnrichConfig struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// SchedulerConfig holds scheduler-loop configuration
type SchedulerConfig struct {
	TickInterval    time.Duration
	ReclaimInterval time.Duration
	StaleTimeout    time.Duration
	MaxRetries      int
	Workers         int
	JobTimeout      time.Duration
}

// IngestConfig holds file-ingestion configuration
type IngestConfig struct {
	WatchDir string // optional drop directory; empty disables the watcher
	OwnerID  string // owner assigned to watched files
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Enrich: EnrichConfig{
			URL:     getEnv("ENRICH_URL", ""),
			APIKey:  getEnv("ENRICH_API_KEY", ""),
			Timeout: getEnvAsDuration("ENRICH_TIMEOUT", 5*time.Minute),
		},
		Scheduler: SchedulerConfig{
			TickInterval:    getEnvAsDuration("SCHED_TICK_INTERVAL", 2*time.Minute),
			ReclaimInterval: getEnvAsDuration("SCHED_RECLAIM_INTERVAL", 5*time.Minute),
			StaleTimeout:    getEnvAsDuration("SCHED_STALE_TIMEOUT", 30*time.Minute),
			MaxRetries:      getEnvAsInt("JOB_MAX_RETRIES", 3),
			Workers:         getEnvAsInt("WORKERS", 4),
			JobTimeout:      getEnvAsDuration("JOB_TIMEOUT", 10*time.Minute),
		},
		Ingest: IngestConfig{
			WatchDir: getEnv("WATCH_DIR", ""),
			OwnerID:  getEnv("WATCH_OWNER_ID", ""),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Enrich.URL == "" {
		return NewAppError("CONFIG_ERROR", "ENRICH_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Ingest.WatchDir != "" && c.Ingest.OwnerID == "" {
		return NewAppError("CONFIG_ERROR", "WATCH_OWNER_ID is required when WATCH_DIR is set", ErrInvalidInput)
	}
	return nil
}
