// Package domain defines the core user domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	authDomain "github.com/septer/septer/internal/auth/domain"
	"github.com/septer/septer/internal/errors"
)

// User represents a Hunter or Guardian account.
//
// Password holds the output of the credential cipher, never the plaintext.
// APIKey holds the stored (possibly KMS-sealed) LLM API key, or nil when unset.
type User struct {
	ID        uuid.UUID
	Email     string
	Role      authDomain.Role
	Password  string
	APIKey    *string
	CreatedAt time.Time
}

// HasAPIKey reports whether an LLM API key is stored for the user.
func (u *User) HasAPIKey() bool {
	return u.APIKey != nil && *u.APIKey != ""
}

// Identity returns the authenticated view of the user.
func (u *User) Identity() *authDomain.Identity {
	return &authDomain.Identity{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
	}
}

// SignupInput contains the data submitted by a self-registering account.
type SignupInput struct {
	Email    string
	Password string
	Role     string
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same email already exists.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")

	// ErrSignupRoleNotAllowed indicates a self-registration asked for a role other than Hunter.
	ErrSignupRoleNotAllowed = errors.Wrap(errors.ErrInvalidInput, "only Hunter accounts can sign up")

	// ErrAPIKeyNotSet indicates the user has not stored an LLM API key yet.
	ErrAPIKeyNotSet = errors.Wrap(errors.ErrPreconditionFailed, "LLM API key not set for this user")
)
