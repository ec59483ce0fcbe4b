package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/yukikurage/volunteer-directory-api/internal/constants"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

type Config struct {
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	RedisEnabled  bool
	RedisHost     string
	RedisPort     string
	RedisPassword string

	SessionSecret string
	GinMode       string
	Port          string
	LogLevel      string

	LookupCacheTTL      time.Duration
	SearchTrimOverfetch bool

	BootstrapModeratorUsername string
	BootstrapModeratorPassword string
}

// Load reads configuration from the environment, falling back to a .env file
// in the working directory when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		DBDriver:   getEnv("DB_DRIVER", DriverPostgres),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "volunteer"),
		DBPassword: getEnv("DB_PASSWORD", "volunteer"),
		DBName:     getEnv("DB_NAME", "volunteer_directory"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisEnabled:  getEnvAsBool("REDIS_ENABLED", true),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		SessionSecret: getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),

		LookupCacheTTL:      getEnvAsDuration("LOOKUP_CACHE_TTL", constants.DefaultLookupCacheTTL),
		SearchTrimOverfetch: getEnvAsBool("SEARCH_TRIM_OVERFETCH", false),

		BootstrapModeratorUsername: getEnv("BOOTSTRAP_MODERATOR_USERNAME", ""),
		BootstrapModeratorPassword: getEnv("BOOTSTRAP_MODERATOR_PASSWORD", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverPostgres, DriverMySQL:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}

	if c.DBHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}

	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if (c.BootstrapModeratorUsername == "") != (c.BootstrapModeratorPassword == "") {
		return fmt.Errorf("BOOTSTRAP_MODERATOR_USERNAME and BOOTSTRAP_MODERATOR_PASSWORD must be set together")
	}

	return nil
}

// RedisAddr returns host:port of the Redis server.
func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
