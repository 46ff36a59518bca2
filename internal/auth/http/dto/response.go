package dto

import (
	"time"

	authDomain "github.com/septer/septer/internal/auth/domain"
)

// UserResponse is the public view of an account.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

// MapIdentityToUserResponse converts an identity to its public view.
func MapIdentityToUserResponse(identity *authDomain.Identity) UserResponse {
	return UserResponse{
		ID:    identity.UserID.String(),
		Email: identity.Email,
		Role:  identity.Role.String(),
	}
}

// MapLoginOutputToResponse converts a login result to the response body.
func MapLoginOutputToResponse(output *authDomain.LoginOutput) LoginResponse {
	return LoginResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
		ExpiresAt:   output.ExpiresAt,
		User:        MapIdentityToUserResponse(output.Identity),
	}
}
