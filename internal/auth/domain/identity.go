package domain

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the authenticated caller resolved from a session token.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}

// LoginInput contains the credentials submitted to a login endpoint.
// RequiredRole restricts the login to accounts holding that role.
type LoginInput struct {
	Email        string
	Password     string
	RequiredRole *Role
}

// LoginOutput is returned by a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
	Identity    *Identity
}

// TokenTypeBearer is the token type reported to clients.
const TokenTypeBearer = "bearer"
