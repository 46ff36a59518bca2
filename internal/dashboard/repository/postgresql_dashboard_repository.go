// Package repository implements the read queries behind the Guardian dashboard.
//
// Provides PostgreSQL and MySQL implementations with transaction support via database.GetTx().
package repository

import (
	"context"
	"database/sql"

	dashboardDomain "github.com/septer/septer/internal/dashboard/domain"
	"github.com/septer/septer/internal/database"
	apperrors "github.com/septer/septer/internal/errors"
)

// PostgreSQLDashboardRepository implements dashboard queries for PostgreSQL.
type PostgreSQLDashboardRepository struct {
	db *sql.DB
}

// CountConversations returns the number of questions ever answered.
func (p *PostgreSQLDashboardRepository) CountConversations(ctx context.Context) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	var total int64
	if err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM conversations`).Scan(&total); err != nil {
		return 0, apperrors.Wrap(err, "failed to count conversations")
	}
	return total, nil
}

// ListQuestions returns questions with the asking user's email, newest first.
func (p *PostgreSQLDashboardRepository) ListQuestions(
	ctx context.Context,
	offset, limit int,
) ([]*dashboardDomain.QuestionEntry, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT u.email, c.question, c.created_at
			  FROM conversations c
			  JOIN users u ON u.id = c.user_id
			  ORDER BY c.created_at DESC, c.id DESC
			  LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list questions")
	}
	return scanQuestions(rows)
}

// NewPostgreSQLDashboardRepository creates a new PostgreSQL dashboard repository.
func NewPostgreSQLDashboardRepository(db *sql.DB) *PostgreSQLDashboardRepository {
	return &PostgreSQLDashboardRepository{db: db}
}

func scanQuestions(rows *sql.Rows) ([]*dashboardDomain.QuestionEntry, error) {
	defer func() {
		_ = rows.Close()
	}()

	questions := make([]*dashboardDomain.QuestionEntry, 0)
	for rows.Next() {
		var entry dashboardDomain.QuestionEntry
		if err := rows.Scan(&entry.UserEmail, &entry.Question, &entry.AskedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan question")
		}
		questions = append(questions, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate questions")
	}
	return questions, nil
}
