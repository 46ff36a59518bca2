// Package domain defines the Guardian dashboard view.
package domain

import (
	"time"

	"github.com/google/uuid"

	authDomain "github.com/septer/septer/internal/auth/domain"
)

// QuestionEntry is a question asked by a user, as listed on the dashboard.
type QuestionEntry struct {
	UserEmail string
	Question  string
	AskedAt   time.Time
}

// UserEntry is an account as listed on the dashboard. Password is the
// recovered plaintext, or empty when recovery failed.
type UserEntry struct {
	ID       uuid.UUID
	Email    string
	Role     authDomain.Role
	Password string
}

// Dashboard is the administrative overview of accounts and questions.
type Dashboard struct {
	TotalQuestions int64
	Questions      []*QuestionEntry
	Users          []*UserEntry
}

// Page selects a window of the question and user listings.
type Page struct {
	Offset int
	Limit  int
}
