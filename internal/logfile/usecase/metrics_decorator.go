package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	logFileDomain "github.com/septer/septer/internal/logfile/domain"
	"github.com/septer/septer/internal/metrics"
)

// logFileUseCaseWithMetrics decorates LogFileUseCase with metrics instrumentation.
type logFileUseCaseWithMetrics struct {
	next    LogFileUseCase
	metrics metrics.BusinessMetrics
}

// NewLogFileUseCaseWithMetrics wraps a LogFileUseCase with metrics recording.
func NewLogFileUseCaseWithMetrics(useCase LogFileUseCase, m metrics.BusinessMetrics) LogFileUseCase {
	return &logFileUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Upload records metrics for log uploads.
func (l *logFileUseCaseWithMetrics) Upload(
	ctx context.Context,
	input *logFileDomain.UploadInput,
) (*logFileDomain.LogFile, error) {
	start := time.Now()
	logFile, err := l.next.Upload(ctx, input)
	l.record(ctx, "log_upload", start, err)
	return logFile, err
}

// Get delegates without recording; lookups are part of log_read.
func (l *logFileUseCaseWithMetrics) Get(
	ctx context.Context,
	userID, logID uuid.UUID,
) (*logFileDomain.LogFile, error) {
	return l.next.Get(ctx, userID, logID)
}

// Content records metrics for log content reads.
func (l *logFileUseCaseWithMetrics) Content(
	ctx context.Context,
	logFile *logFileDomain.LogFile,
) ([]byte, error) {
	start := time.Now()
	content, err := l.next.Content(ctx, logFile)
	l.record(ctx, "log_read", start, err)
	return content, err
}

func (l *logFileUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusFor(err)

	l.metrics.RecordOperation(ctx, metrics.DomainLogs, operation, status)
	l.metrics.RecordDuration(ctx, metrics.DomainLogs, operation, time.Since(start), status)
}
