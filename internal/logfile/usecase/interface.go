// Package usecase implements log uploads and owner-scoped access to their content.
package usecase

import (
	"context"

	"github.com/google/uuid"

	logFileDomain "github.com/septer/septer/internal/logfile/domain"
)

// LogFileRepository defines the interface for LogFile persistence operations.
type LogFileRepository interface {
	// Create stores a new LogFile record.
	Create(ctx context.Context, logFile *logFileDomain.LogFile) error

	// GetByIDForUser retrieves a LogFile owned by userID. Returns ErrLogNotFound
	// for missing and foreign logs alike.
	GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*logFileDomain.LogFile, error)
}

// LogFileUseCase defines the interface for log file operations.
type LogFileUseCase interface {
	// Upload validates and stores a log for its owner.
	Upload(ctx context.Context, input *logFileDomain.UploadInput) (*logFileDomain.LogFile, error)

	// Get returns a log owned by userID. Foreign and missing logs both fail
	// with ErrLogNotFound.
	Get(ctx context.Context, userID, logID uuid.UUID) (*logFileDomain.LogFile, error)

	// Content returns the stored bytes of a log, or ErrLogContentMissing.
	Content(ctx context.Context, logFile *logFileDomain.LogFile) ([]byte, error)
}
