// Package http provides the HTTP handlers of the account endpoints.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/septer/septer/internal/auth/domain"
	authHTTP "github.com/septer/septer/internal/auth/http"
	"github.com/septer/septer/internal/httputil"
	userDomain "github.com/septer/septer/internal/user/domain"
	"github.com/septer/septer/internal/user/http/dto"
	userUseCase "github.com/septer/septer/internal/user/usecase"
	customValidation "github.com/septer/septer/internal/validation"
)

// UserHandler handles HTTP requests for account management.
type UserHandler struct {
	userUseCase userUseCase.UserUseCase
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler with required dependencies.
func NewUserHandler(userUseCase userUseCase.UserUseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// SignupHandler registers a Hunter account.
// POST /api/hunter/signup - No authentication required.
func (h *UserHandler) SignupHandler(c *gin.Context) {
	var req dto.SignupRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	user, err := h.userUseCase.Signup(c.Request.Context(), &userDomain.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("account registered",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()))

	c.JSON(http.StatusCreated, httputil.MessageResponse{Message: dto.MessageSignedUp})
}

// AddAPIKeyHandler stores the caller's LLM API key.
// PUT /api/hunter/add-api-key - Requires authentication.
func (h *UserHandler) AddAPIKeyHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, authDomain.ErrAuthenticationFailed, h.logger)
		return
	}

	var req dto.AddAPIKeyRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	user, err := h.userUseCase.SetAPIKey(c.Request.Context(), identity.UserID, req.APIKey)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToAddAPIKeyResponse(user))
}
