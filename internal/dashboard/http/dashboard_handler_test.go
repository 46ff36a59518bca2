package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/septer/septer/internal/auth/domain"
	dashboardDomain "github.com/septer/septer/internal/dashboard/domain"
	"github.com/septer/septer/internal/dashboard/http/dto"
	"github.com/septer/septer/internal/dashboard/usecase/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupRouter(uc *mocks.MockDashboardUseCase) *gin.Engine {
	handler := NewDashboardHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	router := gin.New()
	router.GET("/api/guardian/dashboard", handler.GetHandler)
	return router
}

func get(router *gin.Engine, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestDashboardHandler_GetHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mocks.MockDashboardUseCase{}
		askedAt := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
		userID := uuid.Must(uuid.NewV7())

		uc.On("Get", mock.Anything, dashboardDomain.Page{Offset: 0, Limit: 50}).Return(&dashboardDomain.Dashboard{
			TotalQuestions: 1,
			Questions: []*dashboardDomain.QuestionEntry{
				{UserEmail: "hunter@septer.io", Question: "Any brute force?", AskedAt: askedAt},
			},
			Users: []*dashboardDomain.UserEntry{
				{ID: userID, Email: "hunter@septer.io", Role: authDomain.RoleHunter, Password: "Asdf2580@"},
			},
		}, nil).Once()

		w := get(setupRouter(uc), "/api/guardian/dashboard")

		assert.Equal(t, http.StatusOK, w.Code)
		var resp dto.DashboardResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.TotalQuestions)
		require.Len(t, resp.QuestionsByUsers, 1)
		assert.Equal(t, "hunter@septer.io", resp.QuestionsByUsers[0].UserEmail)
		assert.True(t, askedAt.Equal(resp.QuestionsByUsers[0].AskedAt))
		require.Len(t, resp.Users, 1)
		assert.Equal(t, dto.UserResponse{
			ID:       userID.String(),
			Email:    "hunter@septer.io",
			Role:     "Hunter",
			Password: "Asdf2580@",
		}, resp.Users[0])
		assert.Equal(t, 50, resp.Limit)
	})

	t.Run("Success_CustomPage", func(t *testing.T) {
		uc := &mocks.MockDashboardUseCase{}
		uc.On("Get", mock.Anything, dashboardDomain.Page{Offset: 20, Limit: 10}).
			Return(&dashboardDomain.Dashboard{}, nil).Once()

		w := get(setupRouter(uc), "/api/guardian/dashboard?offset=20&limit=10")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"total_questions":0,"questions_by_users":[],"users":[],"offset":20,"limit":10}`,
			w.Body.String())
	})

	t.Run("Error_InvalidLimit", func(t *testing.T) {
		uc := &mocks.MockDashboardUseCase{}

		w := get(setupRouter(uc), "/api/guardian/dashboard?limit=1000")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		uc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("Error_UseCase", func(t *testing.T) {
		uc := &mocks.MockDashboardUseCase{}
		uc.On("Get", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

		w := get(setupRouter(uc), "/api/guardian/dashboard")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
