// Package domain defines uploaded log files and their closed set of types.
package domain

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/septer/septer/internal/errors"
)

// LogType is the declared format of an uploaded log.
type LogType string

// Supported log types.
const (
	LogTypeTxt   LogType = "txt"
	LogTypeLog   LogType = "log"
	LogTypeJSON  LogType = "json"
	LogTypeSARIF LogType = "sarif"
)

// Valid reports whether t is a supported log type.
func (t LogType) Valid() bool {
	switch t {
	case LogTypeTxt, LogTypeLog, LogTypeJSON, LogTypeSARIF:
		return true
	default:
		return false
	}
}

// String returns the wire form of the log type.
func (t LogType) String() string {
	return string(t)
}

// ParseLogType converts a submitted value into a LogType.
func ParseLogType(s string) (LogType, error) {
	t := LogType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLogType, s)
	}
	return t, nil
}

// LogFile is the record of an uploaded log. Path is the storage key of its content.
type LogFile struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Type       LogType
	Path       string
	UploadedAt time.Time
}

// UploadInput contains an upload as received from the client.
type UploadInput struct {
	UserID   uuid.UUID
	Type     string
	Filename string
	Content  io.Reader
}

// Domain-specific errors for log file operations.
var (
	// ErrUnsupportedLogType indicates a log type outside txt, log, json and sarif.
	ErrUnsupportedLogType = errors.Wrap(errors.ErrInvalidInput, "Unsupported log type")

	// ErrFileTooLarge indicates the upload exceeds the configured size limit.
	ErrFileTooLarge = errors.Wrap(errors.ErrPayloadTooLarge, "File too large")

	// ErrLogNotFound indicates the log does not exist or belongs to someone else.
	ErrLogNotFound = errors.Wrap(errors.ErrNotFound, "Log not found or not authorized")

	// ErrLogContentMissing indicates the record exists but its content is gone from storage.
	ErrLogContentMissing = errors.Wrap(errors.ErrNotFound, "Log file not found on disk")
)
