// Package dto provides data transfer objects for the log file endpoints.
package dto

import logFileDomain "github.com/septer/septer/internal/logfile/domain"

// MessageLogUploaded acknowledges a stored upload.
const MessageLogUploaded = "Log uploaded"

// UploadResponse is returned after a log has been stored.
type UploadResponse struct {
	Message string `json:"message"`
	LogID   string `json:"log_id"`
}

// MapLogFileToUploadResponse converts a stored log to the response body.
func MapLogFileToUploadResponse(logFile *logFileDomain.LogFile) UploadResponse {
	return UploadResponse{
		Message: MessageLogUploaded,
		LogID:   logFile.ID.String(),
	}
}
