package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/septer/septer/internal/errors"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input    string
		expected Role
		wantErr  bool
	}{
		{input: "Hunter", expected: RoleHunter},
		{input: "Guardian", expected: RoleGuardian},
		{input: "guardian", wantErr: true},
		{input: "Admin", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			role, err := ParseRole(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRole)
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
				assert.Empty(t, role)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, role)
			assert.Equal(t, tt.input, role.String())
		})
	}
}

func TestRequireRole(t *testing.T) {
	hunter := &Identity{UserID: uuid.New(), Email: "h@septer.io", Role: RoleHunter}
	guardian := &Identity{UserID: uuid.New(), Email: "g@septer.io", Role: RoleGuardian}

	t.Run("Success_GuardianForGuardian", func(t *testing.T) {
		identity, err := RequireRole(guardian, RoleGuardian)
		require.NoError(t, err)
		assert.Same(t, guardian, identity)
	})

	t.Run("Success_HunterForHunter", func(t *testing.T) {
		identity, err := RequireRole(hunter, RoleHunter)
		require.NoError(t, err)
		assert.Same(t, hunter, identity)
	})

	t.Run("Error_HunterForGuardian", func(t *testing.T) {
		identity, err := RequireRole(hunter, RoleGuardian)
		assert.Nil(t, identity)
		assert.ErrorIs(t, err, ErrAuthorizationFailed)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("Error_GuardianForHunter", func(t *testing.T) {
		_, err := RequireRole(guardian, RoleHunter)
		assert.ErrorIs(t, err, ErrAuthorizationFailed)
	})

	t.Run("Error_NilIdentity", func(t *testing.T) {
		_, err := RequireRole(nil, RoleHunter)
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	})
}
