// Package usecase implements account management: self-registration of
// Hunters, the Guardian seed, LLM API keys and administrative password recovery.
package usecase

import (
	"context"

	"github.com/google/uuid"

	userDomain "github.com/septer/septer/internal/user/domain"
)

// UserRepository defines the interface for User persistence operations.
type UserRepository interface {
	// Create stores a new User. A duplicate email returns ErrUserAlreadyExists.
	Create(ctx context.Context, user *userDomain.User) error

	// GetByID retrieves a User by ID. Returns ErrUserNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error)

	// GetByEmail retrieves a User by email. Returns ErrUserNotFound if absent.
	GetByEmail(ctx context.Context, email string) (*userDomain.User, error)

	// UpdateAPIKey replaces the stored LLM API key of a User.
	UpdateAPIKey(ctx context.Context, id uuid.UUID, apiKey string) error

	// List retrieves users with pagination support.
	List(ctx context.Context, offset, limit int) ([]*userDomain.User, error)
}

// UserUseCase defines the interface for account operations.
type UserUseCase interface {
	// Signup registers a Hunter account. Any other requested role fails with
	// ErrSignupRoleNotAllowed.
	Signup(ctx context.Context, input *userDomain.SignupInput) (*userDomain.User, error)

	// CreateGuardian seeds an administrator account. An existing email returns
	// ErrUserAlreadyExists and leaves the stored account untouched.
	CreateGuardian(ctx context.Context, email, password string) (*userDomain.User, error)

	// SetAPIKey stores the LLM API key of a user and returns the updated user.
	SetAPIKey(ctx context.Context, userID uuid.UUID, apiKey string) (*userDomain.User, error)

	// APIKey returns the plaintext LLM API key of a user. Users without a key
	// get ErrAPIKeyNotSet.
	APIKey(ctx context.Context, user *userDomain.User) (string, error)

	// GetByID retrieves a user by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error)

	// GetByEmail retrieves a user by email (case-insensitive).
	GetByEmail(ctx context.Context, email string) (*userDomain.User, error)

	// RecoverPassword returns the plaintext password of the account with email.
	RecoverPassword(ctx context.Context, email string) (string, error)
}
