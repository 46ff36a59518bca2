package usecase

import (
	"context"
	"time"

	analysisDomain "github.com/septer/septer/internal/analysis/domain"
	"github.com/septer/septer/internal/metrics"
)

// analysisUseCaseWithMetrics decorates AnalysisUseCase with metrics instrumentation.
type analysisUseCaseWithMetrics struct {
	next    AnalysisUseCase
	metrics metrics.BusinessMetrics
}

// NewAnalysisUseCaseWithMetrics wraps an AnalysisUseCase with metrics recording.
func NewAnalysisUseCaseWithMetrics(useCase AnalysisUseCase, m metrics.BusinessMetrics) AnalysisUseCase {
	return &analysisUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Ask records metrics for answered questions.
func (a *analysisUseCaseWithMetrics) Ask(
	ctx context.Context,
	input *analysisDomain.AskInput,
) (*analysisDomain.Answer, error) {
	start := time.Now()
	answer, err := a.next.Ask(ctx, input)

	status := metrics.StatusFor(err)
	a.metrics.RecordOperation(ctx, metrics.DomainAnalysis, "log_ask", status)
	a.metrics.RecordDuration(ctx, metrics.DomainAnalysis, "log_ask", time.Since(start), status)

	return answer, err
}
