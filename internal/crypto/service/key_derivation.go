package service

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeyDerivationIterations is the PBKDF2 iteration count.
	KeyDerivationIterations = 100000

	// DerivedKeySize is the size of the derived AES-256 key in bytes.
	DerivedKeySize = 32
)

// DeriveKey derives the 32-byte credential key from the passphrase and salt
// with PBKDF2-HMAC-SHA256. The result is deterministic for the same inputs.
func DeriveKey(passphrase, salt []byte) []byte {
	return pbkdf2.Key(passphrase, salt, KeyDerivationIterations, DerivedKeySize, sha256.New)
}
