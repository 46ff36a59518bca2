// Package http provides the HTTP handler of the log analysis endpoint.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	analysisDomain "github.com/septer/septer/internal/analysis/domain"
	"github.com/septer/septer/internal/analysis/http/dto"
	analysisUseCase "github.com/septer/septer/internal/analysis/usecase"
	authDomain "github.com/septer/septer/internal/auth/domain"
	authHTTP "github.com/septer/septer/internal/auth/http"
	"github.com/septer/septer/internal/httputil"
	customValidation "github.com/septer/septer/internal/validation"
)

// AnalysisHandler handles HTTP requests for questions about uploaded logs.
type AnalysisHandler struct {
	analysisUseCase analysisUseCase.AnalysisUseCase
	logger          *slog.Logger
}

// NewAnalysisHandler creates a new analysis handler with required dependencies.
func NewAnalysisHandler(analysisUseCase analysisUseCase.AnalysisUseCase, logger *slog.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analysisUseCase: analysisUseCase,
		logger:          logger,
	}
}

// AskHandler answers a question about one of the caller's logs.
// POST /api/logs/ask - Requires authentication.
func (h *AnalysisHandler) AskHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, authDomain.ErrAuthenticationFailed, h.logger)
		return
	}

	var req dto.AskRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	answer, err := h.analysisUseCase.Ask(c.Request.Context(), &analysisDomain.AskInput{
		UserID:   identity.UserID,
		LogID:    uuid.MustParse(req.LogID),
		Question: req.Question,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAnswerToResponse(answer))
}
