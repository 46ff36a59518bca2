// Package usecase defines business logic interfaces for authentication operations.
package usecase

import (
	"context"

	"github.com/google/uuid"

	authDomain "github.com/septer/septer/internal/auth/domain"
	userDomain "github.com/septer/septer/internal/user/domain"
)

// UserRepository is the read side of user persistence needed for authentication.
type UserRepository interface {
	// GetByID returns ErrUserNotFound when no user has the id.
	GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error)

	// GetByEmail returns ErrUserNotFound when no user has the email.
	GetByEmail(ctx context.Context, email string) (*userDomain.User, error)
}

// TokenUseCase logs users in and resolves session tokens to identities.
type TokenUseCase interface {
	// Login verifies email and password and issues a session token.
	// Unknown email, wrong password and a missing required role all return
	// ErrInvalidCredentials.
	Login(ctx context.Context, input *authDomain.LoginInput) (*authDomain.LoginOutput, error)

	// Authenticate resolves a bearer token to the identity of an existing user.
	// Every failure is reported as ErrAuthenticationFailed, except storage
	// errors, which are returned as-is.
	Authenticate(ctx context.Context, token string) (*authDomain.Identity, error)
}
