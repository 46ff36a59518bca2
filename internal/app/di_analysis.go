package app

import (
	"fmt"

	analysisHTTP "github.com/septer/septer/internal/analysis/http"
	analysisRepository "github.com/septer/septer/internal/analysis/repository"
	analysisService "github.com/septer/septer/internal/analysis/service"
	analysisUseCase "github.com/septer/septer/internal/analysis/usecase"
)

// LLMClient returns the Gemini client.
func (c *Container) LLMClient() analysisService.LLMClient {
	c.llmClientInit.Do(func() {
		c.llmClient = analysisService.NewGeminiClient(analysisService.GeminiOptions{
			BaseURL:    c.config.LLMAPIBase,
			Model:      c.config.LLMModel,
			Timeout:    c.config.LLMTimeout,
			MaxRetries: c.config.LLMMaxRetries,
		}, c.Logger())
	})
	return c.llmClient
}

// ConversationRepository returns the conversation repository based on database driver.
func (c *Container) ConversationRepository() (analysisUseCase.ConversationRepository, error) {
	var err error
	c.conversationRepositoryInit.Do(func() {
		c.conversationRepository, err = c.initConversationRepository()
		if err != nil {
			c.setInitError("conversationRepository", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("conversationRepository"); storedErr != nil {
		return nil, storedErr
	}
	return c.conversationRepository, nil
}

// AnalysisUseCase returns the ask-the-LLM use case.
func (c *Container) AnalysisUseCase() (analysisUseCase.AnalysisUseCase, error) {
	var err error
	c.analysisUseCaseInit.Do(func() {
		c.analysisUseCase, err = c.initAnalysisUseCase()
		if err != nil {
			c.setInitError("analysisUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("analysisUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.analysisUseCase, nil
}

// AnalysisHandler returns the ask handler.
func (c *Container) AnalysisHandler() (*analysisHTTP.AnalysisHandler, error) {
	var err error
	c.analysisHandlerInit.Do(func() {
		var useCase analysisUseCase.AnalysisUseCase
		useCase, err = c.AnalysisUseCase()
		if err != nil {
			err = fmt.Errorf("failed to get analysis use case for analysis handler: %w", err)
			c.setInitError("analysisHandler", err)
			return
		}
		c.analysisHandler = analysisHTTP.NewAnalysisHandler(useCase, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("analysisHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.analysisHandler, nil
}

func (c *Container) initConversationRepository() (analysisUseCase.ConversationRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for conversation repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return analysisRepository.NewMySQLConversationRepository(db), nil
	case "postgres":
		return analysisRepository.NewPostgreSQLConversationRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initAnalysisUseCase() (analysisUseCase.AnalysisUseCase, error) {
	repository, err := c.ConversationRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation repository for analysis use case: %w", err)
	}

	logFiles, err := c.LogFileUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get log file use case for analysis use case: %w", err)
	}

	users, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for analysis use case: %w", err)
	}

	baseUseCase := analysisUseCase.NewAnalysisUseCase(repository, logFiles, users, c.LLMClient())

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for analysis use case: %w", err)
		}
		return analysisUseCase.NewAnalysisUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
