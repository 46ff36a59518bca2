package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/septer/septer/internal/auth/domain"
	"github.com/septer/septer/internal/auth/http/dto"
	authUseCase "github.com/septer/septer/internal/auth/usecase"
	"github.com/septer/septer/internal/httputil"
	customValidation "github.com/septer/septer/internal/validation"
)

// TokenHandler handles HTTP requests for session login.
type TokenHandler struct {
	tokenUseCase authUseCase.TokenUseCase
	logger       *slog.Logger
}

// NewTokenHandler creates a new token handler with required dependencies.
func NewTokenHandler(
	tokenUseCase authUseCase.TokenUseCase,
	logger *slog.Logger,
) *TokenHandler {
	return &TokenHandler{
		tokenUseCase: tokenUseCase,
		logger:       logger,
	}
}

// LoginHandler logs in an account of any role.
// POST /api/auth/login - No authentication required.
func (h *TokenHandler) LoginHandler(c *gin.Context) {
	h.login(c, nil)
}

// GuardianLoginHandler logs in Guardian accounts only. Other accounts get the
// same 401 as a wrong password.
// POST {GUARDIAN_LOGIN_PATH}/login - No authentication required.
func (h *TokenHandler) GuardianLoginHandler(c *gin.Context) {
	role := authDomain.RoleGuardian
	h.login(c, &role)
}

func (h *TokenHandler) login(c *gin.Context, requiredRole *authDomain.Role) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	output, err := h.tokenUseCase.Login(c.Request.Context(), &authDomain.LoginInput{
		Email:        req.Email,
		Password:     req.Password,
		RequiredRole: requiredRole,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapLoginOutputToResponse(output))
}
