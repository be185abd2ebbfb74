package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Artifact source names
const (
	ArtifactSourceFile     = "file"
	ArtifactSourcePostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Artifacts  ArtifactConfig
	PostgreSQL PostgreSQLConfig
	Logging    LoggingConfig
	Metrics    MetricsConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            int
	Host            string
	GinMode         string
	AllowedOrigins  []string
	AllowedMethods  []string
	AllowedHeaders  []string
	ShutdownTimeout int // seconds
	StaticDir       string
	MaxBodyBytes    int64 // request body cap for POST endpoints
}

// ArtifactConfig describes where the column schema and the trained model live
type ArtifactConfig struct {
	Source      string // "file" or "postgres"
	Dir         string
	ColumnsFile string
	ModelFile   string
	ModelName   string // row key used by the postgres source
}

// PostgreSQLConfig holds PostgreSQL database configuration
type PostgreSQLConfig struct {
	DSN                string // full connection string, preferred when set
	Host               string
	Port               int
	User               string
	Password           string
	Database           string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level      string
	Format     string // "json" or "console"
	File       string // empty means stderr
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// MetricsConfig holds Prometheus exposition settings
type MetricsConfig struct {
	Enabled bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnvAsInt("SERVER_PORT", 5000),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:         getEnv("GIN_MODE", "release"),
			AllowedOrigins:  getEnvAsList("CORS_ALLOWED_ORIGINS", "*"),
			AllowedMethods:  getEnvAsList("CORS_ALLOWED_METHODS", "GET,POST,OPTIONS"),
			AllowedHeaders:  getEnvAsList("CORS_ALLOWED_HEADERS", "Content-Type,Authorization"),
			ShutdownTimeout: getEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 10),
			StaticDir:       getEnv("STATIC_DIR", "./cmd/server/web/dist"),
			MaxBodyBytes:    int64(getEnvAsInt("SERVER_MAX_BODY_BYTES", 1<<20)),
		},
		Artifacts: ArtifactConfig{
			Source:      strings.ToLower(getEnv("ARTIFACT_SOURCE", ArtifactSourceFile)),
			Dir:         getEnv("ARTIFACT_DIR", "./artifacts"),
			ColumnsFile: getEnv("ARTIFACT_COLUMNS_FILE", "columns.json"),
			ModelFile:   getEnv("ARTIFACT_MODEL_FILE", "banglore_home_prices_model.json"),
			ModelName:   getEnv("ARTIFACT_MODEL_NAME", "banglore_home_prices"),
		},
		PostgreSQL: PostgreSQLConfig{
			DSN:                getEnv("DATABASE_URL", getEnv("POSTGRESQL_URI", getEnv("PG_DSN", ""))),
			Host:               getEnv("PG_HOST", "localhost"),
			Port:               getEnvAsInt("PG_PORT", 5432),
			User:               getEnv("PG_USER", "postgres"),
			Password:           getEnv("PG_PASSWORD", ""),
			Database:           getEnv("PG_DATABASE", "home_prices"),
			SSLMode:            getEnv("PG_SSLMODE", "disable"),
			MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 5),
			MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 2),
		},
		Logging: LoggingConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			File:       getEnv("LOG_FILE", ""),
			MaxSizeMB:  getEnvAsInt("LOG_MAX_SIZE_MB", 100),
			MaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 3),
			MaxAgeDays: getEnvAsInt("LOG_MAX_AGE_DAYS", 28),
		},
		Metrics: MetricsConfig{
			Enabled: getEnvAsBool("METRICS_ENABLED", true),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that have no sensible fallback
func (c *Config) Validate() error {
	switch c.Artifacts.Source {
	case ArtifactSourceFile, ArtifactSourcePostgres:
	default:
		return fmt.Errorf("unknown ARTIFACT_SOURCE %q (want %q or %q)",
			c.Artifacts.Source, ArtifactSourceFile, ArtifactSourcePostgres)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid SERVER_PORT %d", c.Server.Port)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("invalid SERVER_MAX_BODY_BYTES %d", c.Server.MaxBodyBytes)
	}
	return nil
}

// GetPostgreSQLDSN returns PostgreSQL connection string. Assembled values
// are quoted so that empty or space-containing fields survive lib/pq's
// key=value parser.
func (c *Config) GetPostgreSQLDSN() string {
	if c.PostgreSQL.DSN != "" {
		return c.PostgreSQL.DSN
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		quoteDSNValue(c.PostgreSQL.Host),
		c.PostgreSQL.Port,
		quoteDSNValue(c.PostgreSQL.User),
		quoteDSNValue(c.PostgreSQL.Password),
		quoteDSNValue(c.PostgreSQL.Database),
		quoteDSNValue(c.PostgreSQL.SSLMode),
	)
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// quoteDSNValue wraps v in single quotes, escaping backslashes and quotes.
func quoteDSNValue(v string) string {
	return "'" + dsnEscaper.Replace(v) + "'"
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default %t", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsList(key, defaultValue string) []string {
	parts := strings.Split(getEnv(key, defaultValue), ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	return values
}
