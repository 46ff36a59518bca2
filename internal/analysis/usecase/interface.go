// Package usecase answers questions about uploaded logs with a language model
// and records every answered question.
package usecase

import (
	"context"

	analysisDomain "github.com/septer/septer/internal/analysis/domain"
)

// ConversationRepository defines the interface for Conversation persistence operations.
type ConversationRepository interface {
	// Create stores an answered question.
	Create(ctx context.Context, conversation *analysisDomain.Conversation) error
}

// AnalysisUseCase defines the interface for log analysis operations.
type AnalysisUseCase interface {
	// Ask answers a question about one of the caller's logs. Failures, in the
	// order they are checked: ErrLogNotFound, ErrAPIKeyNotSet,
	// ErrLogContentMissing, ErrLLMRequestFailed.
	Ask(ctx context.Context, input *analysisDomain.AskInput) (*analysisDomain.Answer, error)
}
