package usecase

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/septer/septer/internal/database"
	apperrors "github.com/septer/septer/internal/errors"
	logFileDomain "github.com/septer/septer/internal/logfile/domain"
	"github.com/septer/septer/internal/logfile/storage"
)

const maxExtensionLength = 16

// logFileUseCase implements LogFileUseCase.
type logFileUseCase struct {
	txManager   database.TxManager
	logFileRepo LogFileRepository
	storage     storage.Storage
	maxBytes    int64
	logger      *slog.Logger
}

// Upload reads at most maxBytes of content, stores it as "<uuid>.<ext>" and
// records the log. The record is inserted first and only committed once the
// content is stored; content left behind by a failed commit is removed.
func (l *logFileUseCase) Upload(
	ctx context.Context,
	input *logFileDomain.UploadInput,
) (*logFileDomain.LogFile, error) {
	logType, err := logFileDomain.ParseLogType(input.Type)
	if err != nil {
		return nil, err
	}

	content, err := io.ReadAll(io.LimitReader(input.Content, l.maxBytes+1))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to read upload")
	}
	if int64(len(content)) > l.maxBytes {
		return nil, logFileDomain.ErrFileTooLarge
	}

	id := uuid.Must(uuid.NewV7())
	logFile := &logFileDomain.LogFile{
		ID:         id,
		UserID:     input.UserID,
		Type:       logType,
		Path:       id.String() + "." + storageExtension(input.Filename, logType),
		UploadedAt: time.Now().UTC(),
	}

	stored := false
	err = l.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := l.logFileRepo.Create(ctx, logFile); err != nil {
			return err
		}
		if err := l.storage.Put(ctx, logFile.Path, content); err != nil {
			return err
		}
		stored = true
		return nil
	})
	if err != nil {
		if !stored {
			return nil, err
		}
		if delErr := l.storage.Delete(ctx, logFile.Path); delErr != nil {
			l.logger.Warn("failed to remove orphaned log content",
				slog.String("path", logFile.Path),
				slog.Any("error", delErr))
		}
		return nil, err
	}

	return logFile, nil
}

// Get loads a log record owned by userID.
func (l *logFileUseCase) Get(ctx context.Context, userID, logID uuid.UUID) (*logFileDomain.LogFile, error) {
	return l.logFileRepo.GetByIDForUser(ctx, logID, userID)
}

// Content loads the stored bytes of a log record.
func (l *logFileUseCase) Content(ctx context.Context, logFile *logFileDomain.LogFile) ([]byte, error) {
	content, err := l.storage.Get(ctx, logFile.Path)
	if err != nil {
		if apperrors.Is(err, storage.ErrObjectNotFound) {
			return nil, logFileDomain.ErrLogContentMissing
		}
		return nil, err
	}
	return content, nil
}

// storageExtension takes the extension from the client filename. Anything
// that is not a short alphanumeric suffix falls back to the log type.
func storageExtension(filename string, logType logFileDomain.LogType) string {
	ext := strings.TrimPrefix(filepath.Ext(filepath.Base(filename)), ".")
	if ext == "" || len(ext) > maxExtensionLength {
		return logType.String()
	}
	for _, r := range ext {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return logType.String()
		}
	}
	return strings.ToLower(ext)
}

// NewLogFileUseCase creates a new LogFileUseCase. maxBytes bounds every upload.
func NewLogFileUseCase(
	txManager database.TxManager,
	logFileRepo LogFileRepository,
	store storage.Storage,
	maxBytes int64,
	logger *slog.Logger,
) LogFileUseCase {
	return &logFileUseCase{
		txManager:   txManager,
		logFileRepo: logFileRepo,
		storage:     store,
		maxBytes:    maxBytes,
		logger:      logger,
	}
}
