// Package mocks provides mock implementations of the dashboard use case and
// its repository for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	dashboardDomain "github.com/septer/septer/internal/dashboard/domain"
)

// MockDashboardRepository is a mock implementation of DashboardRepository for testing.
type MockDashboardRepository struct {
	mock.Mock
}

// CountConversations mocks the CountConversations method of DashboardRepository.
func (m *MockDashboardRepository) CountConversations(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// ListQuestions mocks the ListQuestions method of DashboardRepository.
func (m *MockDashboardRepository) ListQuestions(
	ctx context.Context,
	offset, limit int,
) ([]*dashboardDomain.QuestionEntry, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dashboardDomain.QuestionEntry), args.Error(1)
}

// MockDashboardUseCase is a mock implementation of DashboardUseCase for testing.
type MockDashboardUseCase struct {
	mock.Mock
}

// Get mocks the Get method of DashboardUseCase.
func (m *MockDashboardUseCase) Get(
	ctx context.Context,
	page dashboardDomain.Page,
) (*dashboardDomain.Dashboard, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dashboardDomain.Dashboard), args.Error(1)
}
