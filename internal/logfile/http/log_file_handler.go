// Package http provides the HTTP handler of the log upload endpoint.
package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/jellydator/validation"

	authDomain "github.com/septer/septer/internal/auth/domain"
	authHTTP "github.com/septer/septer/internal/auth/http"
	"github.com/septer/septer/internal/httputil"
	logFileDomain "github.com/septer/septer/internal/logfile/domain"
	"github.com/septer/septer/internal/logfile/http/dto"
	logFileUseCase "github.com/septer/septer/internal/logfile/usecase"
	customValidation "github.com/septer/septer/internal/validation"
)

// multipartOverhead is the allowance for form boundaries and headers on top
// of the file size limit.
const multipartOverhead = 1 << 20

// LogFileHandler handles HTTP requests for log uploads.
type LogFileHandler struct {
	logFileUseCase logFileUseCase.LogFileUseCase
	maxBytes       int64
	logger         *slog.Logger
}

// NewLogFileHandler creates a new log file handler. maxBytes is the upload limit.
func NewLogFileHandler(
	logFileUseCase logFileUseCase.LogFileUseCase,
	maxBytes int64,
	logger *slog.Logger,
) *LogFileHandler {
	return &LogFileHandler{
		logFileUseCase: logFileUseCase,
		maxBytes:       maxBytes,
		logger:         logger,
	}
}

// UploadHandler stores a log for the caller.
// POST /api/logs/upload - Requires authentication. Multipart fields: log_type, file.
func (h *LogFileHandler) UploadHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, authDomain.ErrAuthenticationFailed, h.logger)
		return
	}

	limit := h.maxBytes + multipartOverhead
	if c.Request.ContentLength > limit {
		httputil.HandleErrorGin(c, logFileDomain.ErrFileTooLarge, h.logger)
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

	// FormFile parses the whole multipart body, so it runs before PostForm.
	fileHeader, fileErr := c.FormFile("file")
	var maxBytesErr *http.MaxBytesError
	if errors.As(fileErr, &maxBytesErr) {
		httputil.HandleErrorGin(c, logFileDomain.ErrFileTooLarge, h.logger)
		return
	}
	logType := c.PostForm("log_type")

	errs := validation.Errors{
		"log_type": validation.Validate(logType, validation.Required),
	}
	if fileErr != nil {
		errs["file"] = validation.ErrRequired
	}
	if err := errs.Filter(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Unknown types answer 400, not 422.
	if _, err := logFileDomain.ParseLogType(logType); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	defer func() {
		_ = file.Close()
	}()

	logFile, err := h.logFileUseCase.Upload(c.Request.Context(), &logFileDomain.UploadInput{
		UserID:   identity.UserID,
		Type:     logType,
		Filename: fileHeader.Filename,
		Content:  file,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("log uploaded",
		slog.String("user_id", identity.UserID.String()),
		slog.String("log_id", logFile.ID.String()),
		slog.String("log_type", logFile.Type.String()))

	c.JSON(http.StatusCreated, dto.MapLogFileToUploadResponse(logFile))
}
