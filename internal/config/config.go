package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port        int
	Environment string
	CORSOrigins []string

	// MongoDB configuration
	MongoURI          string
	MongoDatabase     string
	MongoTransactions bool

	// Redis configuration, empty URI keeps revoked tokens in memory
	RedisURI      string
	RedisPassword string
	RedisDB       int

	// Authentication
	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int

	// Patients
	DefaultPhoneRegion string

	// Observability
	LogLevel        string
	TracingEnabled  bool
	TracingEndpoint string

	// SMS notifications
	SMSEnabled     bool
	TextbeltURL    string
	TextbeltAPIKey string
}

// LoadConfig reads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	port, err := strconv.Atoi(getEnvOrDefault("API_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_PORT: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	jwtTTL, err := time.ParseDuration(getEnvOrDefault("JWT_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}

	bcryptCost, err := strconv.Atoi(getEnvOrDefault("BCRYPT_COST", "12"))
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %d out of range", bcryptCost)
	}

	transactions, err := getBoolEnv("MONGO_TRANSACTIONS", false)
	if err != nil {
		return nil, err
	}
	tracing, err := getBoolEnv("TRACING_ENABLED", false)
	if err != nil {
		return nil, err
	}
	sms, err := getBoolEnv("SMS_ENABLED", false)
	if err != nil {
		return nil, err
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	return &Config{
		Port:        port,
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),
		CORSOrigins: splitList(getEnvOrDefault("CORS_ORIGINS", "http://localhost:3000")),

		MongoURI:          getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:     getEnvOrDefault("MONGO_DATABASE", "dental_clinic"),
		MongoTransactions: transactions,

		RedisURI:      os.Getenv("REDIS_URI"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		JWTSecret:  secret,
		JWTTTL:     jwtTTL,
		BcryptCost: bcryptCost,

		DefaultPhoneRegion: strings.ToUpper(getEnvOrDefault("DEFAULT_PHONE_REGION", "BR")),

		LogLevel:        getEnvOrDefault("LOG_LEVEL", "info"),
		TracingEnabled:  tracing,
		TracingEndpoint: getEnvOrDefault("TRACING_ENDPOINT", "localhost:4317"),

		SMSEnabled:     sms,
		TextbeltURL:    getEnvOrDefault("TEXTBELT_URL", "https://textbelt.com/text"),
		TextbeltAPIKey: os.Getenv("TEXTBELT_API_KEY"),
	}, nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
