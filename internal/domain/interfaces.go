package domain

import (
	"context"
	"time"
)

// Uploader submits a staged file to the report server.
type Uploader interface {
	Upload(ctx context.Context, file *SelectedFile) (*UploadResult, error)
}

// Notifier raises blocking user notifications.
type Notifier interface {
	Alert(message string)
}

// Clipboard is write-only access to a clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetReportServerURL() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetRequestTimeout() time.Duration
	GetAllowedOrigins() []string
}
