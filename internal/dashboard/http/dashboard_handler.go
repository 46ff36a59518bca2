// Package http provides the HTTP handler of the Guardian dashboard.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/septer/septer/internal/auth/http"
	dashboardDomain "github.com/septer/septer/internal/dashboard/domain"
	"github.com/septer/septer/internal/dashboard/http/dto"
	dashboardUseCase "github.com/septer/septer/internal/dashboard/usecase"
	"github.com/septer/septer/internal/httputil"
)

// DashboardHandler handles HTTP requests for the Guardian dashboard.
type DashboardHandler struct {
	dashboardUseCase dashboardUseCase.DashboardUseCase
	logger           *slog.Logger
}

// NewDashboardHandler creates a new dashboard handler with required dependencies.
func NewDashboardHandler(dashboardUseCase dashboardUseCase.DashboardUseCase, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
		logger:           logger,
	}
}

// GetHandler returns the dashboard.
// GET /api/guardian/dashboard?offset=0&limit=50 - Requires the Guardian role.
func (h *DashboardHandler) GetHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	page := dashboardDomain.Page{Offset: offset, Limit: limit}

	dashboard, err := h.dashboardUseCase.Get(c.Request.Context(), page)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if identity, ok := authHTTP.GetIdentity(c.Request.Context()); ok {
		h.logger.Info("dashboard viewed",
			slog.String("user_id", identity.UserID.String()),
			slog.Int("users_listed", len(dashboard.Users)))
	}

	c.JSON(http.StatusOK, dto.MapDashboardToResponse(dashboard, page))
}
