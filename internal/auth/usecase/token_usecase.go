// Package usecase implements business logic orchestration for authentication operations.
package usecase

import (
	"context"
	"errors"
	"strings"

	authDomain "github.com/septer/septer/internal/auth/domain"
	authService "github.com/septer/septer/internal/auth/service"
	"github.com/septer/septer/internal/config"
	cryptoService "github.com/septer/septer/internal/crypto/service"
	userDomain "github.com/septer/septer/internal/user/domain"
)

// tokenUseCase implements TokenUseCase.
type tokenUseCase struct {
	config       *config.Config
	userRepo     UserRepository
	cipher       cryptoService.CredentialCipher
	tokenService authService.TokenService
}

// Login authenticates an account by email and password and issues a session token.
//
// The email is matched case-insensitively. The submitted password is checked
// with the credential cipher, which fails closed on undecryptable records.
// When RequiredRole is set, accounts with another role are rejected with the
// same error as a wrong password so the endpoint does not reveal which
// emails belong to which role.
func (t *tokenUseCase) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := t.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userDomain.ErrUserNotFound) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !t.cipher.Verify(input.Password, user.Password) {
		return nil, authDomain.ErrInvalidCredentials
	}

	if input.RequiredRole != nil && user.Role != *input.RequiredRole {
		return nil, authDomain.ErrInvalidCredentials
	}

	token, expiresAt, err := t.tokenService.Issue(user.ID, user.Role, t.config.AuthTokenExpiration)
	if err != nil {
		return nil, err
	}

	return &authDomain.LoginOutput{
		AccessToken: token,
		TokenType:   authDomain.TokenTypeBearer,
		ExpiresAt:   expiresAt,
		Identity:    user.Identity(),
	}, nil
}

// Authenticate validates a session token and loads the user it names.
//
// The role in the returned identity comes from the stored user, so a role
// change takes effect on the next request. A deleted user fails even while
// the token has not expired.
func (t *tokenUseCase) Authenticate(ctx context.Context, token string) (*authDomain.Identity, error) {
	claims, err := t.tokenService.Parse(token)
	if err != nil {
		return nil, authDomain.ErrAuthenticationFailed
	}

	user, err := t.userRepo.GetByID(ctx, claims.SubjectID)
	if err != nil {
		if errors.Is(err, userDomain.ErrUserNotFound) {
			return nil, authDomain.ErrAuthenticationFailed
		}
		return nil, err
	}

	return user.Identity(), nil
}

// NewTokenUseCase creates a new TokenUseCase with the provided dependencies.
func NewTokenUseCase(
	config *config.Config,
	userRepo UserRepository,
	cipher cryptoService.CredentialCipher,
	tokenService authService.TokenService,
) TokenUseCase {
	return &tokenUseCase{
		config:       config,
		userRepo:     userRepo,
		cipher:       cipher,
		tokenService: tokenService,
	}
}
