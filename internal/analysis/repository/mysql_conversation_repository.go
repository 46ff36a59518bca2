package repository

import (
	"context"
	"database/sql"

	analysisDomain "github.com/septer/septer/internal/analysis/domain"
	"github.com/septer/septer/internal/database"
	apperrors "github.com/septer/septer/internal/errors"
)

// MySQLConversationRepository implements Conversation persistence for MySQL.
// Uses BINARY(16) for UUID storage.
type MySQLConversationRepository struct {
	db *sql.DB
}

// Create inserts a new Conversation.
func (m *MySQLConversationRepository) Create(
	ctx context.Context,
	conversation *analysisDomain.Conversation,
) error {
	querier := database.GetTx(ctx, m.db)

	id, err := conversation.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal conversation id")
	}
	userID, err := conversation.UserID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}
	logID, err := conversation.LogID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal log id")
	}

	query := `INSERT INTO conversations (id, user_id, log_id, question, answer_insights,
			  answer_reasoning, answer_supporting_logs, answer_fixes, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		userID,
		logID,
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

// NewMySQLConversationRepository creates a new MySQL Conversation repository.
func NewMySQLConversationRepository(db *sql.DB) *MySQLConversationRepository {
	return &MySQLConversationRepository{db: db}
}
