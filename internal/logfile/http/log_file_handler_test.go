package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/septer/septer/internal/auth/domain"
	authHTTP "github.com/septer/septer/internal/auth/http"
	logFileDomain "github.com/septer/septer/internal/logfile/domain"
	"github.com/septer/septer/internal/logfile/http/dto"
	"github.com/septer/septer/internal/logfile/usecase/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupRouter(uc *mocks.MockLogFileUseCase, identity *authDomain.Identity, maxBytes int64) *gin.Engine {
	handler := NewLogFileHandler(uc, maxBytes, slog.New(slog.NewTextHandler(io.Discard, nil)))
	router := gin.New()
	router.POST("/api/logs/upload", func(c *gin.Context) {
		if identity != nil {
			c.Request = c.Request.WithContext(authHTTP.WithIdentity(c.Request.Context(), identity))
		}
		c.Next()
	}, handler.UploadHandler)
	return router
}

func multipartBody(t *testing.T, logType, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if logType != "" {
		require.NoError(t, writer.WriteField("log_type", logType))
	}
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func upload(router *gin.Engine, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/logs/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLogFileHandler_UploadHandler(t *testing.T) {
	identity := &authDomain.Identity{UserID: uuid.Must(uuid.NewV7()), Role: authDomain.RoleHunter}

	t.Run("Success", func(t *testing.T) {
		uc := &mocks.MockLogFileUseCase{}
		logID := uuid.Must(uuid.NewV7())

		uc.On("Upload", mock.Anything, mock.MatchedBy(func(in *logFileDomain.UploadInput) bool {
			content, _ := io.ReadAll(in.Content)
			return in.UserID == identity.UserID && in.Type == "log" &&
				in.Filename == "auth.log" && string(content) == "sshd: Failed password"
		})).Return(&logFileDomain.LogFile{ID: logID, Type: logFileDomain.LogTypeLog}, nil).Once()

		body, contentType := multipartBody(t, "log", "auth.log", "sshd: Failed password")
		w := upload(setupRouter(uc, identity, 1024), body, contentType)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp dto.UploadResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Log uploaded", resp.Message)
		assert.Equal(t, logID.String(), resp.LogID)
	})

	t.Run("Error_UnsupportedType", func(t *testing.T) {
		uc := &mocks.MockLogFileUseCase{}

		body, contentType := multipartBody(t, "exe", "a.exe", "MZ")
		w := upload(setupRouter(uc, identity, 1024), body, contentType)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Unsupported log type")
		uc.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
	})

	t.Run("Error_MissingFields", func(t *testing.T) {
		uc := &mocks.MockLogFileUseCase{}

		body, contentType := multipartBody(t, "", "", "")
		w := upload(setupRouter(uc, identity, 1024), body, contentType)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "log_type")
		assert.Contains(t, w.Body.String(), "file")
	})

	t.Run("Error_TooLargeForUseCase", func(t *testing.T) {
		uc := &mocks.MockLogFileUseCase{}
		uc.On("Upload", mock.Anything, mock.Anything).Return(nil, logFileDomain.ErrFileTooLarge).Once()

		body, contentType := multipartBody(t, "txt", "a.txt", strings.Repeat("x", 2048))
		w := upload(setupRouter(uc, identity, 1024), body, contentType)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Contains(t, w.Body.String(), "File too large")
	})

	t.Run("Error_BodyBeyondLimit", func(t *testing.T) {
		uc := &mocks.MockLogFileUseCase{}

		body, contentType := multipartBody(t, "txt", "a.txt", strings.Repeat("x", multipartOverhead+10))
		w := upload(setupRouter(uc, identity, 1), body, contentType)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		uc.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
	})

	t.Run("Error_NoIdentity", func(t *testing.T) {
		uc := &mocks.MockLogFileUseCase{}

		body, contentType := multipartBody(t, "txt", "a.txt", "x")
		w := upload(setupRouter(uc, nil, 1024), body, contentType)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
