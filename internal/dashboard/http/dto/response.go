// Package dto provides data transfer objects for the Guardian dashboard.
package dto

import (
	"time"

	dashboardDomain "github.com/septer/septer/internal/dashboard/domain"
)

// QuestionResponse is one listed question.
type QuestionResponse struct {
	UserEmail string    `json:"user_email"`
	Question  string    `json:"question"`
	AskedAt   time.Time `json:"asked_at"`
}

// UserResponse is one listed account with its recovered password.
type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// DashboardResponse is the body of the dashboard endpoint.
type DashboardResponse struct {
	TotalQuestions   int64              `json:"total_questions"`
	QuestionsByUsers []QuestionResponse `json:"questions_by_users"`
	Users            []UserResponse     `json:"users"`
	Offset           int                `json:"offset"`
	Limit            int                `json:"limit"`
}

// MapDashboardToResponse converts the dashboard to its API response.
func MapDashboardToResponse(dashboard *dashboardDomain.Dashboard, page dashboardDomain.Page) DashboardResponse {
	questions := make([]QuestionResponse, 0, len(dashboard.Questions))
	for _, q := range dashboard.Questions {
		questions = append(questions, QuestionResponse{
			UserEmail: q.UserEmail,
			Question:  q.Question,
			AskedAt:   q.AskedAt,
		})
	}

	users := make([]UserResponse, 0, len(dashboard.Users))
	for _, u := range dashboard.Users {
		users = append(users, UserResponse{
			ID:       u.ID.String(),
			Email:    u.Email,
			Role:     u.Role.String(),
			Password: u.Password,
		})
	}

	return DashboardResponse{
		TotalQuestions:   dashboard.TotalQuestions,
		QuestionsByUsers: questions,
		Users:            users,
		Offset:           page.Offset,
		Limit:            page.Limit,
	}
}
