// Package repository implements persistence of questions asked about logs.
//
// Provides PostgreSQL and MySQL implementations with transaction support via database.GetTx().
package repository

import (
	"context"
	"database/sql"

	analysisDomain "github.com/septer/septer/internal/analysis/domain"
	"github.com/septer/septer/internal/database"
	apperrors "github.com/septer/septer/internal/errors"
)

// PostgreSQLConversationRepository implements Conversation persistence for PostgreSQL.
type PostgreSQLConversationRepository struct {
	db *sql.DB
}

// Create inserts a new Conversation.
func (p *PostgreSQLConversationRepository) Create(
	ctx context.Context,
	conversation *analysisDomain.Conversation,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO conversations (id, user_id, log_id, question, answer_insights,
			  answer_reasoning, answer_supporting_logs, answer_fixes, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := querier.ExecContext(
		ctx,
		query,
		conversation.ID,
		conversation.UserID,
		conversation.LogID,
		conversation.Question,
		conversation.Answer.Insights,
		conversation.Answer.Reasoning,
		conversation.Answer.SupportingLogs,
		conversation.Answer.Fixes,
		conversation.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create conversation")
	}
	return nil
}

// NewPostgreSQLConversationRepository creates a new PostgreSQL Conversation repository.
func NewPostgreSQLConversationRepository(db *sql.DB) *PostgreSQLConversationRepository {
	return &PostgreSQLConversationRepository{db: db}
}
