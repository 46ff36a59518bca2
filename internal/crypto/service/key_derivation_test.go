package service

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveKey(t *testing.T) {
	t.Run("known vector", func(t *testing.T) {
		key := DeriveKey([]byte("passphrase"), []byte("this_is_salt"))

		assert.Len(t, key, DerivedKeySize)
		assert.Equal(
			t,
			"241bb8e7fbb9a7adcb91ec7d9ced9e59c4818cc9bd037106dba8a7d8c4fa4002",
			hex.EncodeToString(key),
		)
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t,
			DeriveKey([]byte("passphrase"), []byte("salt")),
			DeriveKey([]byte("passphrase"), []byte("salt")),
		)
	})

	t.Run("salt changes the key", func(t *testing.T) {
		assert.NotEqual(t,
			DeriveKey([]byte("passphrase"), []byte("salt-a")),
			DeriveKey([]byte("passphrase"), []byte("salt-b")),
		)
	})

	t.Run("empty salt is accepted", func(t *testing.T) {
		assert.Len(t, DeriveKey([]byte("passphrase"), nil), DerivedKeySize)
	})
}
