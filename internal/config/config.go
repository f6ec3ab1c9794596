package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environments recognised by APP_ENV.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// devSessionSecret signs cookies outside production when SESSION_SECRET is unset.
const devSessionSecret = "eden-garden-development-session-secret"

// Config holds all application configuration.
type Config struct {
	Env       string
	Server    ServerConfig
	Database  DatabaseConfig
	Logger    LoggerConfig
	Session   SessionConfig
	RateLimit RateLimitConfig
	Seed      SeedConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
	// TrustProxy takes the client address from X-Forwarded-For and
	// X-Real-IP. Enable only behind a proxy that overwrites them.
	TrustProxy bool
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	URL             string // DATABASE_URL or POSTGRES_URL, overrides the discrete fields
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	SSLMode         string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// SessionConfig holds the admin session cookie configuration.
type SessionConfig struct {
	Secret        string
	CookieName    string
	TTL           time.Duration
	CookieSecure  bool
	PruneInterval time.Duration
}

// RateLimitConfig holds the login rate limiter configuration.
type RateLimitConfig struct {
	Backend     string // "memory" or "redis"
	RedisURL    string
	Window      time.Duration
	MaxAttempts int
}

// SeedConfig holds the seeding configuration shared by cmd/seed and the seed endpoint.
type SeedConfig struct {
	Secret        string
	Source        string // "file" or "s3"
	File          string
	S3            S3Config
	AdminEmail    string
	AdminPassword string
}

// S3Config holds AWS S3 configuration for the seed document.
type S3Config struct {
	Bucket string
	Region string
	Key    string
}

// LoadEnvFiles loads variables from the given dotenv files without overriding
// variables already present. Missing files are skipped.
func LoadEnvFiles(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	env := getEnv("APP_ENV", EnvDevelopment)

	sessionSecret := getEnv("SESSION_SECRET", "")
	if sessionSecret == "" && env != EnvProduction {
		sessionSecret = devSessionSecret
	}

	cfg := &Config{
		Env: env,
		Server: ServerConfig{
			Host:       getEnv("SERVER_HOST", "0.0.0.0"),
			Port:       getEnvAsInt("SERVER_PORT", 3000),
			TrustProxy: getEnvAsBool("TRUST_PROXY", false),
		},
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", getEnv("POSTGRES_URL", "")),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "edengarden"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 10),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 2),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Session: SessionConfig{
			Secret:        sessionSecret,
			CookieName:    getEnv("SESSION_COOKIE_NAME", "eden.sid"),
			TTL:           getEnvAsDuration("SESSION_TTL", 24*time.Hour),
			CookieSecure:  getEnvAsBool("SESSION_COOKIE_SECURE", false),
			PruneInterval: getEnvAsDuration("SESSION_PRUNE_INTERVAL", 15*time.Minute),
		},
		RateLimit: RateLimitConfig{
			Backend:     getEnv("RATE_LIMIT_BACKEND", "memory"),
			RedisURL:    getEnv("REDIS_URL", ""),
			Window:      getEnvAsDuration("LOGIN_RATE_WINDOW", 15*time.Minute),
			MaxAttempts: getEnvAsInt("LOGIN_RATE_MAX", 5),
		},
		Seed: SeedConfig{
			Secret: getEnv("SEED_SECRET", ""),
			Source: getEnv("SEED_SOURCE", "file"),
			File:   getEnv("SEED_FILE", "data/seed.json"),
			S3: S3Config{
				Bucket: getEnv("SEED_S3_BUCKET", ""),
				Region: getEnv("SEED_S3_REGION", "eu-west-3"),
				Key:    getEnv("SEED_S3_KEY", "seed/seed.json"),
			},
			AdminEmail:    getEnv("ADMIN_EMAIL", ""),
			AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Env != EnvDevelopment && c.Env != EnvProduction {
		return fmt.Errorf("invalid environment: %s (must be development or production)", c.Env)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.URL == "" {
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}

		if c.Database.Port < 1 || c.Database.Port > 65535 {
			return fmt.Errorf("invalid database port: %d", c.Database.Port)
		}

		if c.Database.User == "" {
			return fmt.Errorf("database user is required")
		}

		if c.Database.Database == "" {
			return fmt.Errorf("database name is required")
		}
	}

	if c.Database.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be at least 1")
	}

	if c.Database.MinConnections < 1 {
		return fmt.Errorf("database min connections must be at least 1")
	}

	if c.Database.MinConnections > c.Database.MaxConnections {
		return fmt.Errorf("database min connections cannot exceed max connections")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.Session.Secret == "" {
		return fmt.Errorf("session secret is required in production")
	}

	if c.Session.CookieName == "" {
		return fmt.Errorf("session cookie name is required")
	}

	if c.Session.TTL <= 0 {
		return fmt.Errorf("session TTL must be positive")
	}

	if c.Session.PruneInterval <= 0 {
		return fmt.Errorf("session prune interval must be positive")
	}

	switch c.RateLimit.Backend {
	case "memory":
	case "redis":
		if c.RateLimit.RedisURL == "" {
			return fmt.Errorf("redis URL is required when the redis rate limit backend is selected")
		}
	default:
		return fmt.Errorf("invalid rate limit backend: %s (must be memory or redis)", c.RateLimit.Backend)
	}

	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("login rate window must be positive")
	}

	if c.RateLimit.MaxAttempts < 1 {
		return fmt.Errorf("login rate max must be at least 1")
	}

	switch c.Seed.Source {
	case "file":
	case "s3":
		if c.Seed.S3.Bucket == "" {
			return fmt.Errorf("S3 bucket is required when the seed source is s3")
		}
		if c.Seed.S3.Region == "" {
			return fmt.Errorf("S3 region is required when the seed source is s3")
		}
	default:
		return fmt.Errorf("invalid seed source: %s (must be file or s3)", c.Seed.Source)
	}

	return nil
}

// IsProduction reports whether the application runs in production.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	if c.URL != "" {
		return c.URL
	}
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
		sslMode,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration accepts Go durations ("15m") or a bare number of seconds.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	return defaultValue
}
