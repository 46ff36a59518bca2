package usecase

import (
	"context"
	"time"

	authDomain "github.com/septer/septer/internal/auth/domain"
	"github.com/septer/septer/internal/metrics"
)

// tokenUseCaseWithMetrics decorates TokenUseCase with metrics instrumentation.
type tokenUseCaseWithMetrics struct {
	next    TokenUseCase
	metrics metrics.BusinessMetrics
}

// NewTokenUseCaseWithMetrics wraps a TokenUseCase with metrics recording.
func NewTokenUseCaseWithMetrics(useCase TokenUseCase, m metrics.BusinessMetrics) TokenUseCase {
	return &tokenUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Login records metrics for login attempts.
func (t *tokenUseCaseWithMetrics) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.LoginOutput, error) {
	start := time.Now()
	output, err := t.next.Login(ctx, input)
	t.record(ctx, "login", start, err)
	return output, err
}

// Authenticate records metrics for token authentication operations.
func (t *tokenUseCaseWithMetrics) Authenticate(
	ctx context.Context,
	token string,
) (*authDomain.Identity, error) {
	start := time.Now()
	identity, err := t.next.Authenticate(ctx, token)
	t.record(ctx, "token_authenticate", start, err)
	return identity, err
}

func (t *tokenUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusFor(err)

	t.metrics.RecordOperation(ctx, metrics.DomainAuth, operation, status)
	t.metrics.RecordDuration(ctx, metrics.DomainAuth, operation, time.Since(start), status)
}
