package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	analysisDomain "github.com/septer/septer/internal/analysis/domain"
	analysisService "github.com/septer/septer/internal/analysis/service"
	logFileUseCase "github.com/septer/septer/internal/logfile/usecase"
	userUseCase "github.com/septer/septer/internal/user/usecase"
)

// analysisUseCase implements AnalysisUseCase.
type analysisUseCase struct {
	conversationRepo ConversationRepository
	logFileUseCase   logFileUseCase.LogFileUseCase
	userUseCase      userUseCase.UserUseCase
	llmClient        analysisService.LLMClient
}

// Ask resolves the log, the caller's API key and the log content, asks the
// model and stores the sectioned answer.
func (a *analysisUseCase) Ask(
	ctx context.Context,
	input *analysisDomain.AskInput,
) (*analysisDomain.Answer, error) {
	logFile, err := a.logFileUseCase.Get(ctx, input.UserID, input.LogID)
	if err != nil {
		return nil, err
	}

	user, err := a.userUseCase.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	apiKey, err := a.userUseCase.APIKey(ctx, user)
	if err != nil {
		return nil, err
	}

	content, err := a.logFileUseCase.Content(ctx, logFile)
	if err != nil {
		return nil, err
	}

	text, err := a.llmClient.Generate(ctx, apiKey, analysisService.BuildPrompt(input.Question, string(content)))
	if err != nil {
		return nil, err
	}
	answer := analysisService.ExtractSections(text)

	conversation := &analysisDomain.Conversation{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    input.UserID,
		LogID:     logFile.ID,
		Question:  input.Question,
		Answer:    answer,
		CreatedAt: time.Now().UTC(),
	}
	if err := a.conversationRepo.Create(ctx, conversation); err != nil {
		return nil, err
	}

	return &answer, nil
}

// NewAnalysisUseCase creates a new AnalysisUseCase.
func NewAnalysisUseCase(
	conversationRepo ConversationRepository,
	logFileUseCase logFileUseCase.LogFileUseCase,
	userUseCase userUseCase.UserUseCase,
	llmClient analysisService.LLMClient,
) AnalysisUseCase {
	return &analysisUseCase{
		conversationRepo: conversationRepo,
		logFileUseCase:   logFileUseCase,
		userUseCase:      userUseCase,
		llmClient:        llmClient,
	}
}
