// Package service provides the session token service: issuing and parsing
// HMAC-SHA256 signed JWTs that carry the user id and role.
package service

import (
	"time"

	"github.com/google/uuid"

	authDomain "github.com/septer/septer/internal/auth/domain"
)

// DefaultTokenTTL is the session lifetime used when none is configured.
const DefaultTokenTTL = 60 * time.Minute

// TokenClaims are the verified contents of a session token.
type TokenClaims struct {
	SubjectID uuid.UUID
	Role      authDomain.Role
	ExpiresAt time.Time
}

// TokenService issues and parses session tokens.
type TokenService interface {
	// Issue signs a token for the subject that expires ttl after now.
	// A zero ttl yields a token that is already expired.
	Issue(subjectID uuid.UUID, role authDomain.Role, ttl time.Duration) (token string, expiresAt time.Time, err error)

	// Parse verifies the signature, algorithm and expiry of a token and returns
	// its claims. Every failure is reported as ErrAuthenticationFailed.
	Parse(token string) (*TokenClaims, error)
}
