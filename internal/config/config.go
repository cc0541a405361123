package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBMaxConns int

	// CatalogConfig is the path of the item catalog JSON synced on startup.
	CatalogConfig string

	// LogDir is where session log files are written.
	LogDir string

	// CORSAllowedOrigins lists origins allowed to call the API from a
	// browser. "*" allows any origin (the game client is served separately).
	CORSAllowedOrigins []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:      getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:     getEnv("LOG_FORMAT", DefaultLogFormat),
		ServiceName:   getEnv("SERVICE_NAME", DefaultServiceName),
		Version:       getEnv("VERSION", DefaultVersion),
		Environment:   getEnv("ENVIRONMENT", DefaultEnvironment),
		DBUser:        getEnv("DB_USER", DefaultDBUser),
		DBPassword:    getEnv("DB_PASSWORD", DefaultDBPassword),
		DBHost:        getEnv("DB_HOST", DefaultDBHost),
		DBPort:        getEnv("DB_PORT", DefaultDBPort),
		DBName:        getEnv("DB_NAME", DefaultDBName),
		CatalogConfig: getEnv("CATALOG_CONFIG", DefaultCatalogConfig),
		LogDir:        getEnv("LOG_DIR", DefaultLogDir),
	}

	portStr := getEnv("PORT", DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	maxConnsStr := getEnv("DB_MAX_CONNS", DefaultDBMaxConns)
	maxConns, err := strconv.Atoi(maxConnsStr)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS value: %w", err)
	}
	cfg.DBMaxConns = maxConns

	origins := getEnv("CORS_ALLOWED_ORIGINS", DefaultCORSAllowedOrigins)
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
