package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/septer/septer/internal/metrics"
	userDomain "github.com/septer/septer/internal/user/domain"
)

// userUseCaseWithMetrics decorates UserUseCase with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UserUseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a UserUseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UserUseCase, m metrics.BusinessMetrics) UserUseCase {
	return &userUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Signup records metrics for account registration.
func (u *userUseCaseWithMetrics) Signup(
	ctx context.Context,
	input *userDomain.SignupInput,
) (*userDomain.User, error) {
	start := time.Now()
	user, err := u.next.Signup(ctx, input)
	u.record(ctx, "user_signup", start, err)
	return user, err
}

// CreateGuardian records metrics for the Guardian seed.
func (u *userUseCaseWithMetrics) CreateGuardian(
	ctx context.Context,
	email, password string,
) (*userDomain.User, error) {
	start := time.Now()
	user, err := u.next.CreateGuardian(ctx, email, password)
	u.record(ctx, "guardian_create", start, err)
	return user, err
}

// SetAPIKey records metrics for API key updates.
func (u *userUseCaseWithMetrics) SetAPIKey(
	ctx context.Context,
	userID uuid.UUID,
	apiKey string,
) (*userDomain.User, error) {
	start := time.Now()
	user, err := u.next.SetAPIKey(ctx, userID, apiKey)
	u.record(ctx, "api_key_set", start, err)
	return user, err
}

// APIKey records metrics for API key reads.
func (u *userUseCaseWithMetrics) APIKey(ctx context.Context, user *userDomain.User) (string, error) {
	start := time.Now()
	apiKey, err := u.next.APIKey(ctx, user)
	u.record(ctx, "api_key_open", start, err)
	return apiKey, err
}

// GetByID delegates without recording; it runs on every authenticated request path.
func (u *userUseCaseWithMetrics) GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error) {
	return u.next.GetByID(ctx, id)
}

// GetByEmail delegates without recording.
func (u *userUseCaseWithMetrics) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	return u.next.GetByEmail(ctx, email)
}

// RecoverPassword records metrics for administrative password recovery.
func (u *userUseCaseWithMetrics) RecoverPassword(ctx context.Context, email string) (string, error) {
	start := time.Now()
	plaintext, err := u.next.RecoverPassword(ctx, email)
	u.record(ctx, "password_recover", start, err)
	return plaintext, err
}

func (u *userUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusFor(err)

	u.metrics.RecordOperation(ctx, metrics.DomainUsers, operation, status)
	u.metrics.RecordDuration(ctx, metrics.DomainUsers, operation, time.Since(start), status)
}
