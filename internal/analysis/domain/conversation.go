// Package domain defines questions asked about uploaded logs and the
// structured answers returned by the language model.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/septer/septer/internal/errors"
)

// Answer is a model response split into its four sections.
type Answer struct {
	Insights       string
	Reasoning      string
	SupportingLogs string
	Fixes          string
}

// Conversation is a persisted question and its answer.
type Conversation struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	LogID     uuid.UUID
	Question  string
	Answer    Answer
	CreatedAt time.Time
}

// AskInput contains a question about one of the caller's logs.
type AskInput struct {
	UserID   uuid.UUID
	LogID    uuid.UUID
	Question string
}

// Domain-specific errors for analysis operations.
var (
	// ErrLLMRequestFailed indicates the language model call failed or returned no text.
	ErrLLMRequestFailed = errors.Wrap(errors.ErrUpstream, "LLM request failed")
)
