package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the full configuration of one service process, populated from
// environment variables.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Messages MessagesConfig
	Registry RegistryConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
}

type DatabaseConfig struct {
	URL      string
	User     string
	Password string

	MaxConns          int
	MinConns          int
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration

	MaxRetries     int
	RetryDelay     time.Duration
	ConnectTimeout time.Duration
}

type RedisConfig struct {
	Host     string // empty disables caching
	Password string
	DB       int
}

// MessagesConfig locates the message bundles, mirroring the
// basename/encoding pair of a Java MessageSource.
type MessagesConfig struct {
	Basename string
	Encoding string
}

type RegistryConfig struct {
	URL      string // empty disables heartbeats
	Interval time.Duration
}

// Defaults are the per-service values Load starts from.
type Defaults struct {
	Port        string
	DatabaseURL string
}

// Load reads the configuration for the named service.
func Load(serviceName string, d Defaults) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        serviceName,
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("SERVER_PORT", d.Port),
		},
		Database: DatabaseConfig{
			URL:      getEnv("DB_URL", d.DatabaseURL),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),

			MaxConns:          getEnvInt("DB_MAX_CONNS", 25),
			MinConns:          getEnvInt("DB_MIN_CONNS", 5),
			MaxConnLifetime:   getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
			MaxConnIdleTime:   getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
			HealthCheckPeriod: getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),

			MaxRetries:     getEnvInt("DB_MAX_RETRIES", 5),
			RetryDelay:     getEnvDuration("DB_RETRY_DELAY", time.Second),
			ConnectTimeout: getEnvDuration("DB_CONNECT_TIMEOUT", 10*time.Second),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Messages: MessagesConfig{
			Basename: getEnv("MESSAGE_BASENAME", "i18n.messages"),
			Encoding: getEnv("MESSAGE_ENCODING", "UTF-8"),
		},
		Registry: RegistryConfig{
			URL:      getEnv("SERVICE_REGISTRY_URL", ""),
			Interval: getEnvDuration("SERVICE_REGISTRY_INTERVAL", 30*time.Second),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if !strings.EqualFold(c.Messages.Encoding, "UTF-8") {
		return fmt.Errorf("unsupported message encoding %q, only UTF-8 is supported", c.Messages.Encoding)
	}
	if c.Database.URL == "" {
		return fmt.Errorf("DB_URL must be set")
	}
	if c.App.Environment == "production" && c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD must be set in production")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
