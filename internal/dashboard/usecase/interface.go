// Package usecase assembles the Guardian dashboard.
package usecase

import (
	"context"

	dashboardDomain "github.com/septer/septer/internal/dashboard/domain"
)

// DashboardRepository defines the read queries behind the dashboard.
type DashboardRepository interface {
	// CountConversations returns the number of answered questions.
	CountConversations(ctx context.Context) (int64, error)

	// ListQuestions returns questions with the asker's email, newest first.
	ListQuestions(ctx context.Context, offset, limit int) ([]*dashboardDomain.QuestionEntry, error)
}

// DashboardUseCase defines the interface for dashboard operations.
type DashboardUseCase interface {
	// Get returns the question total and one page of questions and users.
	// User passwords are recovered to plaintext.
	Get(ctx context.Context, page dashboardDomain.Page) (*dashboardDomain.Dashboard, error)
}
