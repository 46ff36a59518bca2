package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/septer/septer/internal/crypto/domain"
)

// generateLocalSecretsURI generates a base64key:// URI for testing.
func generateLocalSecretsURI(t *testing.T) string {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return "base64key://" + base64.URLEncoding.EncodeToString(key)
}

func openTestKeeper(t *testing.T) cryptoDomain.KMSKeeper {
	t.Helper()
	keeper, err := NewKMSService().OpenKeeper(context.Background(), generateLocalSecretsURI(t))
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, keeper.Close()) })
	return keeper
}

func TestKMSService_OpenKeeper(t *testing.T) {
	ctx := context.Background()
	kmsService := NewKMSService()

	t.Run("Success_LocalSecrets", func(t *testing.T) {
		keeper, err := kmsService.OpenKeeper(ctx, generateLocalSecretsURI(t))
		require.NoError(t, err)
		require.NotNil(t, keeper)
		assert.NoError(t, keeper.Close())
	})

	t.Run("Error_InvalidURI", func(t *testing.T) {
		keeper, err := kmsService.OpenKeeper(ctx, "invalid://uri")
		assert.Error(t, err)
		assert.Nil(t, keeper)
		assert.Contains(t, err.Error(), "failed to open KMS keeper")
	})

	t.Run("Error_EmptyURI", func(t *testing.T) {
		keeper, err := kmsService.OpenKeeper(ctx, "")
		assert.Error(t, err)
		assert.Nil(t, keeper)
	})
}

func TestSecretSealer(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_SealAndOpen", func(t *testing.T) {
		sealer := NewSecretSealer(openTestKeeper(t))

		stored, err := sealer.Seal(ctx, "AIza-test-key")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(stored, sealedPrefix))
		assert.NotContains(t, stored, "AIza-test-key")

		plain, err := sealer.Open(ctx, stored)
		require.NoError(t, err)
		assert.Equal(t, "AIza-test-key", plain)
	})

	t.Run("Success_NoKeeperStoresPlaintext", func(t *testing.T) {
		sealer := NewSecretSealer(nil)

		stored, err := sealer.Seal(ctx, "AIza-test-key")
		require.NoError(t, err)
		assert.Equal(t, "AIza-test-key", stored)

		plain, err := sealer.Open(ctx, stored)
		require.NoError(t, err)
		assert.Equal(t, "AIza-test-key", plain)
	})

	t.Run("Success_OpenLegacyPlaintextWithKeeper", func(t *testing.T) {
		sealer := NewSecretSealer(openTestKeeper(t))

		plain, err := sealer.Open(ctx, "stored-before-kms")
		require.NoError(t, err)
		assert.Equal(t, "stored-before-kms", plain)
	})

	t.Run("Error_SealedValueWithoutKeeper", func(t *testing.T) {
		sealed, err := NewSecretSealer(openTestKeeper(t)).Seal(ctx, "key")
		require.NoError(t, err)

		_, err = NewSecretSealer(nil).Open(ctx, sealed)
		assert.ErrorIs(t, err, cryptoDomain.ErrSealedValueWithoutKeeper)
	})

	t.Run("Error_DifferentKeeper", func(t *testing.T) {
		sealed, err := NewSecretSealer(openTestKeeper(t)).Seal(ctx, "key")
		require.NoError(t, err)

		_, err = NewSecretSealer(openTestKeeper(t)).Open(ctx, sealed)
		assert.Error(t, err)
	})

	t.Run("Error_MalformedSealedValue", func(t *testing.T) {
		_, err := NewSecretSealer(openTestKeeper(t)).Open(ctx, sealedPrefix+"%%%")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode sealed value")
	})

	t.Run("Error_KeeperEncryptFails", func(t *testing.T) {
		_, err := NewSecretSealer(&failingKeeper{}).Seal(ctx, "key")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to seal value")
	})
}

type failingKeeper struct{}

func (f *failingKeeper) Encrypt(context.Context, []byte) ([]byte, error) {
	return nil, errors.New("kms unavailable")
}

func (f *failingKeeper) Decrypt(context.Context, []byte) ([]byte, error) {
	return nil, errors.New("kms unavailable")
}

func (f *failingKeeper) Close() error { return nil }
