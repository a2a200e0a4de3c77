package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageMongo  = "mongo"
	StorageMemory = "memory"
)

type Config struct {
	Server  ServerConfig
	Mongo   MongoConfig
	Breaker BreakerConfig
	App     AppConfig
}

type ServerConfig struct {
	Port            string
	AllowedOrigin   string
	MaxPageLimit    int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type MongoConfig struct {
	URI                string
	Database           string
	ProjectsCollection string
	ContactsCollection string
	Timeout            time.Duration
}

type BreakerConfig struct {
	Timeout     time.Duration
	MaxFailures uint32
}

type AppConfig struct {
	Storage  string
	LogLevel string
	LogFile  string
	Version  string
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds the config from the environment without touching .env.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "5000"),
			AllowedOrigin:   getEnv("CORS_ALLOWED_ORIGIN", "*"),
			MaxPageLimit:    getEnvAsInt("MAX_PAGE_LIMIT", 100),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Mongo: MongoConfig{
			URI:                getEnv("MONGO_URI", "mongodb://localhost:27017/portfolio"),
			Database:           getEnv("MONGO_DB_NAME", "portfolio"),
			ProjectsCollection: getEnv("MONGO_PROJECTS_COLLECTION", "projects"),
			ContactsCollection: getEnv("MONGO_CONTACTS_COLLECTION", "contacts"),
			Timeout:            getEnvAsDuration("DB_TIMEOUT", 10*time.Second),
		},
		Breaker: BreakerConfig{
			Timeout:     getEnvAsDuration("BREAKER_TIMEOUT", 5*time.Second),
			MaxFailures: uint32(getEnvAsInt("BREAKER_MAX_FAILURES", 3)),
		},
		App: AppConfig{
			Storage:  getEnv("STORAGE_BACKEND", StorageMongo),
			LogLevel: getEnv("LOG_LEVEL", "info"),
			LogFile:  getEnv("LOG_FILE", ""),
			Version:  getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("SERVER_PORT must be numeric, got %q", c.Server.Port)
	}
	if c.Server.MaxPageLimit < 1 {
		return fmt.Errorf("MAX_PAGE_LIMIT must be positive, got %d", c.Server.MaxPageLimit)
	}
	switch c.App.Storage {
	case StorageMongo:
		if c.Mongo.URI == "" || c.Mongo.Database == "" {
			return fmt.Errorf("MONGO_URI and MONGO_DB_NAME are required for the mongo backend")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", StorageMongo, StorageMemory, c.App.Storage)
	}
	if c.Breaker.MaxFailures == 0 {
		return fmt.Errorf("BREAKER_MAX_FAILURES must be positive")
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
