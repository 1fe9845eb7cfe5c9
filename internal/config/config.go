package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"certidao-widget/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort      string
	ReportServerURL string
	MaxFileSize     int64
	LogLevel        string
	RequestTimeout  time.Duration
	AllowedOrigins  []string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// PORT wins over SERVER_PORT, as on most PaaS hosts.
		ServerPort:      getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8081")),
		ReportServerURL: strings.TrimRight(getEnvOrDefault("REPORT_SERVER_URL", "http://localhost:5000"), "/"),
		MaxFileSize:     getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "info"),
		RequestTimeout:  getEnvDurationOrDefault("REQUEST_TIMEOUT", 0),
		AllowedOrigins: getEnvListOrDefault("ALLOWED_ORIGINS", []string{
			"http://localhost:5000",
			"http://localhost:5173",
			"http://localhost:3000",
		}),
	}
}

// GetServerPort returns the bridge listening port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetReportServerURL returns the report server base URL
func (c *AppConfig) GetReportServerURL() string {
	return c.ReportServerURL
}

// GetMaxFileSize returns the maximum allowed file size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetRequestTimeout returns the upload timeout; zero means none
func (c *AppConfig) GetRequestTimeout() time.Duration {
	return c.RequestTimeout
}

// GetAllowedOrigins returns the CORS origins allowed on the bridge
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d >= 0 {
			return d
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
