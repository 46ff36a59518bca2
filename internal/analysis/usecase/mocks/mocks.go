// Package mocks provides mock implementations of the analysis use case, its
// repository and the language model client for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	analysisDomain "github.com/septer/septer/internal/analysis/domain"
)

// MockConversationRepository is a mock implementation of ConversationRepository for testing.
type MockConversationRepository struct {
	mock.Mock
}

// Create mocks the Create method of ConversationRepository.
func (m *MockConversationRepository) Create(ctx context.Context, conversation *analysisDomain.Conversation) error {
	args := m.Called(ctx, conversation)
	return args.Error(0)
}

// MockLLMClient is a mock implementation of LLMClient for testing.
type MockLLMClient struct {
	mock.Mock
}

// Generate mocks the Generate method of LLMClient.
func (m *MockLLMClient) Generate(ctx context.Context, apiKey, prompt string) (string, error) {
	args := m.Called(ctx, apiKey, prompt)
	return args.String(0), args.Error(1)
}

// MockAnalysisUseCase is a mock implementation of AnalysisUseCase for testing.
type MockAnalysisUseCase struct {
	mock.Mock
}

// Ask mocks the Ask method of AnalysisUseCase.
func (m *MockAnalysisUseCase) Ask(
	ctx context.Context,
	input *analysisDomain.AskInput,
) (*analysisDomain.Answer, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analysisDomain.Answer), args.Error(1)
}
