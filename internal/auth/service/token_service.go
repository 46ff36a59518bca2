package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/septer/septer/internal/auth/domain"
)

// claims is the JWT payload: sub, role, exp and iat.
type claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// tokenService implements TokenService with HS256.
type tokenService struct {
	secret []byte
	now    func() time.Time
}

// NewTokenService creates a TokenService signing with secret.
// now is the clock used for issuing and expiry checks; nil means time.Now.
func NewTokenService(secret []byte, now func() time.Time) TokenService {
	if now == nil {
		now = time.Now
	}
	return &tokenService{secret: secret, now: now}
}

// Issue signs a new token for the subject.
func (s *tokenService) Issue(
	subjectID uuid.UUID,
	role authDomain.Role,
	ttl time.Duration,
) (string, time.Time, error) {
	issuedAt := s.now().UTC()
	expiresAt := issuedAt.Add(ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
		Role: role.String(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse verifies a token and extracts its claims.
func (s *tokenService) Parse(tokenString string) (*TokenClaims, error) {
	parsed := &claims{}

	token, err := jwt.ParseWithClaims(
		tokenString,
		parsed,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", authDomain.ErrAuthenticationFailed, err)
	}
	if !token.Valid {
		return nil, authDomain.ErrAuthenticationFailed
	}

	if parsed.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", authDomain.ErrAuthenticationFailed)
	}
	subjectID, err := uuid.Parse(parsed.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed subject", authDomain.ErrAuthenticationFailed)
	}

	role, err := authDomain.ParseRole(parsed.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", authDomain.ErrAuthenticationFailed, err)
	}

	return &TokenClaims{
		SubjectID: subjectID,
		Role:      role,
		ExpiresAt: parsed.ExpiresAt.Time,
	}, nil
}
