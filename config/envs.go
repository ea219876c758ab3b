package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/nbutton23/zxcvbn-go"
)

const minSecretStrengthScore = 3

var (
	ErrMissingSecret = errors.New("JWT_SECRET is not set")
	ErrWeakSecret    = errors.New("JWT_SECRET is too weak")
)

// Config holds the application's configuration values.
type Config struct {
	HostIP          string // Host IP for the server
	RESTPort        int    // Port for the REST API
	GinMode         string // Mode for the Gin framework (e.g., release, debug, test)
	RedisAddr       string // host:port of the image cache, empty disables caching
	RedisPassword   string // Password for the image cache
	CacheTTLSeconds int    // Lifetime of a cached image
	DBHost          string // Hostname or IP address for the database, empty disables records
	DBPort          int    // Port number for the database
	DBUser          string // Username for the database
	DBPassword      string // Password for the database
	DBName          string // Name of the database
	JWTSecret       string // Secret key for JWT signing
	JWTIssuer       string // Issuer claim for JWTs
	MaxDimension    int    // Largest width or height the API accepts
	OutputFormat    string // Default image format of the CLI
}

// Load reads the configuration from the environment, after loading a .env
// file when one is present. Every value has a default so the CLI works
// without any setup.
func Load() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[APP] [INFO] .env file could not be loaded: %v", err)
	}

	return Config{
		HostIP:          getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:        getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:         getEnvWithDefault("GIN_MODE", "release"),
		RedisAddr:       getEnvWithDefault("REDIS_ADDR", ""),
		RedisPassword:   getEnvWithDefault("REDIS_PASS", ""),
		CacheTTLSeconds: getEnvAsIntWithDefault("CACHE_TTL", 3600),
		DBHost:          getEnvWithDefault("DB_HOST", ""),
		DBPort:          getEnvAsIntWithDefault("DB_PORT", 27017),
		DBUser:          getEnvWithDefault("DB_USER", ""),
		DBPassword:      getEnvWithDefault("DB_PASS", ""),
		DBName:          getEnvWithDefault("DB_NAME", "vinom_maze"),
		JWTSecret:       getEnvWithDefault("JWT_SECRET", ""),
		JWTIssuer:       getEnvWithDefault("JWT_ISSUER", "vinom-maze"),
		MaxDimension:    getEnvAsIntWithDefault("MAX_DIMENSION", 2000),
		OutputFormat:    getEnvWithDefault("OUTPUT_FORMAT", "png"),
	}
}

// ValidateServer checks the values the HTTP server cannot run without.
func (c Config) ValidateServer() error {
	if c.JWTSecret == "" {
		return ErrMissingSecret
	}
	if result := zxcvbn.PasswordStrength(c.JWTSecret, []string{c.JWTIssuer}); result.Score < minSecretStrengthScore {
		return fmt.Errorf("%w: score %d, need %d", ErrWeakSecret, result.Score, minSecretStrengthScore)
	}
	if c.RESTPort <= 0 || c.RESTPort > 65535 {
		return fmt.Errorf("REST_PORT %d is out of range", c.RESTPort)
	}
	return nil
}

// MongoURI returns the connection string of the record store, or "" when
// no database is configured.
func (c Config) MongoURI() string {
	if c.DBHost == "" {
		return ""
	}
	if c.DBUser == "" {
		return fmt.Sprintf("mongodb://%s:%v", c.DBHost, c.DBPort)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%v", c.DBUser, c.DBPassword, c.DBHost, c.DBPort)
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable, logging and
// falling back to the default when it cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[APP] [WARNING] Environment variable %s must be an integer: %v", key, err)
		return defaultValue
	}
	return value
}
