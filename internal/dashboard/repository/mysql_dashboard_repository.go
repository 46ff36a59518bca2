package repository

import (
	"context"
	"database/sql"

	dashboardDomain "github.com/septer/septer/internal/dashboard/domain"
	"github.com/septer/septer/internal/database"
	apperrors "github.com/septer/septer/internal/errors"
)

// MySQLDashboardRepository implements dashboard queries for MySQL.
type MySQLDashboardRepository struct {
	db *sql.DB
}

// CountConversations returns the number of questions ever answered.
func (m *MySQLDashboardRepository) CountConversations(ctx context.Context) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	var total int64
	if err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM conversations`).Scan(&total); err != nil {
		return 0, apperrors.Wrap(err, "failed to count conversations")
	}
	return total, nil
}

// ListQuestions returns questions with the asking user's email, newest first.
func (m *MySQLDashboardRepository) ListQuestions(
	ctx context.Context,
	offset, limit int,
) ([]*dashboardDomain.QuestionEntry, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT u.email, c.question, c.created_at
			  FROM conversations c
			  JOIN users u ON u.id = c.user_id
			  ORDER BY c.created_at DESC, c.id DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list questions")
	}
	return scanQuestions(rows)
}

// NewMySQLDashboardRepository creates a new MySQL dashboard repository.
func NewMySQLDashboardRepository(db *sql.DB) *MySQLDashboardRepository {
	return &MySQLDashboardRepository{db: db}
}
