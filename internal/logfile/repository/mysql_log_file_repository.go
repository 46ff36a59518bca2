package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/septer/septer/internal/database"
	apperrors "github.com/septer/septer/internal/errors"
	logFileDomain "github.com/septer/septer/internal/logfile/domain"
)

// MySQLLogFileRepository implements LogFile persistence for MySQL.
// Uses BINARY(16) for UUID storage with transaction support via database.GetTx().
type MySQLLogFileRepository struct {
	db *sql.DB
}

// Create inserts a new LogFile.
func (m *MySQLLogFileRepository) Create(ctx context.Context, logFile *logFileDomain.LogFile) error {
	querier := database.GetTx(ctx, m.db)

	id, err := logFile.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal log file id")
	}
	userID, err := logFile.UserID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	query := `INSERT INTO log_files (id, user_id, type, file_path, uploaded_at)
			  VALUES (?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(ctx, query, id, userID, logFile.Type.String(), logFile.Path, logFile.UploadedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create log file")
	}
	return nil
}

// GetByIDForUser retrieves a LogFile owned by userID.
func (m *MySQLLogFileRepository) GetByIDForUser(
	ctx context.Context,
	id, userID uuid.UUID,
) (*logFileDomain.LogFile, error) {
	querier := database.GetTx(ctx, m.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal log file id")
	}
	userIDBytes, err := userID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal user id")
	}

	query := `SELECT id, user_id, type, file_path, uploaded_at
			  FROM log_files WHERE id = ? AND user_id = ?`

	var logFile logFileDomain.LogFile
	var rawID, rawUserID []byte
	var logType string

	err = querier.QueryRowContext(ctx, query, idBytes, userIDBytes).Scan(
		&rawID,
		&rawUserID,
		&logType,
		&logFile.Path,
		&logFile.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, logFileDomain.ErrLogNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get log file")
	}

	if err := logFile.ID.UnmarshalBinary(rawID); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal log file id")
	}
	if err := logFile.UserID.UnmarshalBinary(rawUserID); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal user id")
	}
	logFile.Type = logFileDomain.LogType(logType)

	return &logFile, nil
}

// NewMySQLLogFileRepository creates a new MySQL LogFile repository.
func NewMySQLLogFileRepository(db *sql.DB) *MySQLLogFileRepository {
	return &MySQLLogFileRepository{db: db}
}
