package service

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/septer/septer/internal/auth/domain"
	apperrors "github.com/septer/septer/internal/errors"
)

var testSecret = []byte("test-jwt-secret")

// fakeClock is a movable clock for expiry tests.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func TestTokenService_Lifecycle(t *testing.T) {
	clock := newFakeClock()
	svc := NewTokenService(testSecret, clock.Now)
	userID := uuid.Must(uuid.NewV7())

	token, expiresAt, err := svc.Issue(userID, authDomain.RoleHunter, DefaultTokenTTL)
	require.NoError(t, err)
	assert.Equal(t, clock.now.Add(time.Hour), expiresAt)

	t.Run("valid right after issue", func(t *testing.T) {
		claims, err := svc.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.SubjectID)
		assert.Equal(t, authDomain.RoleHunter, claims.Role)
		assert.True(t, claims.ExpiresAt.Equal(expiresAt))
	})

	t.Run("valid one minute before expiry", func(t *testing.T) {
		clock.Advance(59 * time.Minute)
		_, err := svc.Parse(token)
		assert.NoError(t, err)
	})

	t.Run("rejected past sixty minutes", func(t *testing.T) {
		clock.Advance(2 * time.Minute)
		claims, err := svc.Parse(token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, authDomain.ErrAuthenticationFailed)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

func TestTokenService_ZeroTTLIsExpired(t *testing.T) {
	clock := newFakeClock()
	svc := NewTokenService(testSecret, clock.Now)

	token, _, err := svc.Issue(uuid.New(), authDomain.RoleGuardian, 0)
	require.NoError(t, err)

	_, err = svc.Parse(token)
	assert.ErrorIs(t, err, authDomain.ErrAuthenticationFailed)
}

func TestTokenService_DefaultClock(t *testing.T) {
	svc := NewTokenService(testSecret, nil)

	token, _, err := svc.Issue(uuid.New(), authDomain.RoleGuardian, time.Minute)
	require.NoError(t, err)

	claims, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, authDomain.RoleGuardian, claims.Role)
}

func TestTokenService_Tampering(t *testing.T) {
	clock := newFakeClock()
	svc := NewTokenService(testSecret, clock.Now)

	token, _, err := svc.Issue(uuid.New(), authDomain.RoleHunter, time.Hour)
	require.NoError(t, err)

	t.Run("flipping any byte fails", func(t *testing.T) {
		for i := range token {
			b := []byte(token)
			if b[i] == 'A' {
				b[i] = 'B'
			} else {
				b[i] = 'A'
			}
			_, err := svc.Parse(string(b))
			assert.ErrorIs(t, err, authDomain.ErrAuthenticationFailed, "byte %d", i)
		}
	})

	t.Run("escalating the role in the payload fails", func(t *testing.T) {
		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)

		payload, err := base64.RawURLEncoding.DecodeString(parts[1])
		require.NoError(t, err)
		forged := strings.Replace(string(payload), `"Hunter"`, `"Guardian"`, 1)
		parts[1] = base64.RawURLEncoding.EncodeToString([]byte(forged))

		_, err = svc.Parse(strings.Join(parts, "."))
		assert.ErrorIs(t, err, authDomain.ErrAuthenticationFailed)
	})

	t.Run("other secret fails", func(t *testing.T) {
		other := NewTokenService([]byte("another-secret"), clock.Now)
		_, err := other.Parse(token)
		assert.ErrorIs(t, err, authDomain.ErrAuthenticationFailed)
	})
}

func TestTokenService_Malformed(t *testing.T) {
	clock := newFakeClock()
	svc := NewTokenService(testSecret, clock.Now)
	exp := jwt.NewNumericDate(clock.now.Add(time.Hour))

	sign := func(t *testing.T, method jwt.SigningMethod, key any, c jwt.Claims) string {
		t.Helper()
		s, err := jwt.NewWithClaims(method, c).SignedString(key)
		require.NoError(t, err)
		return s
	}

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{name: "empty", token: func(*testing.T) string { return "" }},
		{name: "garbage", token: func(*testing.T) string { return "not.a.jwt" }},
		{
			name: "alg none",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, jwt.MapClaims{
					"sub": uuid.NewString(), "role": "Guardian", "exp": exp.Unix(),
				})
			},
		},
		{
			name: "HS384",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS384, testSecret, jwt.MapClaims{
					"sub": uuid.NewString(), "role": "Guardian", "exp": exp.Unix(),
				})
			},
		},
		{
			name: "missing sub",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{
					"role": "Hunter", "exp": exp.Unix(),
				})
			},
		},
		{
			name: "sub not a uuid",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{
					"sub": "42", "role": "Hunter", "exp": exp.Unix(),
				})
			},
		},
		{
			name: "missing exp",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{
					"sub": uuid.NewString(), "role": "Hunter",
				})
			},
		},
		{
			name: "unknown role",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{
					"sub": uuid.NewString(), "role": "Admin", "exp": exp.Unix(),
				})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.Parse(tt.token(t))
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, authDomain.ErrAuthenticationFailed)
		})
	}
}
