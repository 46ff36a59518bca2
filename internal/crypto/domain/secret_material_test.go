package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/septer/septer/internal/errors"
)

const (
	testSaltHex = "746869735f69735f73616c74"
	testIVHex   = "69765f626173655f636861725f313233"
)

func TestLoadSecretMaterial(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		material, err := LoadSecretMaterial("passphrase", testSaltHex, testIVHex)

		require.NoError(t, err)
		assert.Equal(t, []byte("passphrase"), material.Passphrase)
		assert.Equal(t, []byte("this_is_salt"), material.Salt)
		assert.Equal(t, []byte("iv_base_char_123"), material.IV)
		assert.Len(t, material.IV, IVSize)
	})

	t.Run("Success_EmptySalt", func(t *testing.T) {
		material, err := LoadSecretMaterial("passphrase", "", testIVHex)

		require.NoError(t, err)
		assert.Empty(t, material.Salt)
	})

	tests := []struct {
		name       string
		passphrase string
		saltHex    string
		ivHex      string
		contains   string
	}{
		{name: "Error_EmptyPassphrase", saltHex: testSaltHex, ivHex: testIVHex, contains: "passphrase"},
		{name: "Error_SaltNotHex", passphrase: "p", saltHex: "zz", ivHex: testIVHex, contains: "salt"},
		{name: "Error_IVNotHex", passphrase: "p", saltHex: testSaltHex, ivHex: "not-hex", contains: "iv"},
		{name: "Error_IVTooShort", passphrase: "p", saltHex: testSaltHex, ivHex: "0011", contains: "16 bytes"},
		{
			name:       "Error_IVTooLong",
			passphrase: "p",
			saltHex:    testSaltHex,
			ivHex:      testIVHex + "00",
			contains:   "got 17",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			material, err := LoadSecretMaterial(tt.passphrase, tt.saltHex, tt.ivHex)

			assert.Nil(t, material)
			assert.ErrorIs(t, err, ErrConfiguration)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}
