package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/benvon/gtm-copilot/internal/validation"
)

// DefaultAllowedOrigin is used when ALLOWED_ORIGINS yields no usable origin
const DefaultAllowedOrigin = "http://localhost:3000"

// Config holds application configuration
type Config struct {
	ServerPort      string   `validate:"required,tcp_port"`
	AllowedOrigins  []string `validate:"min=1,dive,required"`
	CORSMaxAge      int      `validate:"gte=0"`
	EnableHSTS      bool
	ServerDebugMode bool
	RequestTimeout  time.Duration `validate:"gt=0"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
	OTELEnabled     bool
	OTELEndpoint    string
	OTELInsecure    bool
	ServiceName     string `validate:"required"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		AllowedOrigins:  ParseAllowedOrigins(getEnv("ALLOWED_ORIGINS", DefaultAllowedOrigin)),
		CORSMaxAge:      getEnvInt("CORS_MAX_AGE", 600),
		EnableHSTS:      getEnvBool("ENABLE_HSTS", false),
		ServerDebugMode: getEnvBool("SERVER_DEBUG_MODE", false),
		RequestTimeout:  getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
		OTELEnabled:     getEnvBool("OTEL_ENABLED", false),
		OTELEndpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		OTELInsecure:    getEnvBool("OTEL_EXPORTER_OTLP_INSECURE", true),
		ServiceName:     getEnv("OTEL_SERVICE_NAME", "gtm-copilot-api"),
	}

	if err := validation.Validate.Struct(cfg); err != nil {
		return nil, validation.FormatErrors(err)
	}

	return cfg, nil
}

// ParseAllowedOrigins splits a comma-separated origin list, trimming each entry
// and dropping empty ones. Order and duplicates are preserved. An input that
// yields nothing falls back to DefaultAllowedOrigin.
func ParseAllowedOrigins(raw string) []string {
	var origins []string
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			origins = append(origins, s)
		}
	}
	if len(origins) == 0 {
		return []string{DefaultAllowedOrigin}
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration accepts Go duration strings ("45s") or a bare number of seconds
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
