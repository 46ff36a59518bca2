// Package repository implements data persistence for uploaded log files.
//
// Provides PostgreSQL and MySQL implementations with transaction support via database.GetTx().
// PostgreSQL uses native UUID types, MySQL uses BINARY(16) types.
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

// PostgreSQLLogFileRepository implements LogFile persistence for PostgreSQL.
type PostgreSQLLogFileRepository struct {
	db *sql.DB
}

// Create inserts a new LogFile.
func (p *PostgreSQLLogFileRepository) Create(ctx context.Context, logFile *logFileDomain.LogFile) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO log_files (id, user_id, type, file_path, uploaded_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(
		ctx,
		query,
		logFile.ID,
		logFile.UserID,
		logFile.Type.String(),
		logFile.Path,
		logFile.UploadedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create log file")
	}
	return nil
}

// GetByIDForUser retrieves a LogFile owned by userID. A log owned by someone
// else is reported exactly like a missing one.
func (p *PostgreSQLLogFileRepository) GetByIDForUser(
	ctx context.Context,
	id, userID uuid.UUID,
) (*logFileDomain.LogFile, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, user_id, type, file_path, uploaded_at
			  FROM log_files WHERE id = $1 AND user_id = $2`

	var logFile logFileDomain.LogFile
	var logType string

	err := querier.QueryRowContext(ctx, query, id, userID).Scan(
		&logFile.ID,
		&logFile.UserID,
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

	logFile.Type = logFileDomain.LogType(logType)
	return &logFile, nil
}

// NewPostgreSQLLogFileRepository creates a new PostgreSQL LogFile repository.
func NewPostgreSQLLogFileRepository(db *sql.DB) *PostgreSQLLogFileRepository {
	return &PostgreSQLLogFileRepository{db: db}
}
