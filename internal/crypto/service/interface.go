// Package service provides the credential cipher used to store login passwords
// and the KMS-backed sealer used for third-party API keys.
package service

import "context"

// CredentialCipher encrypts login passwords reversibly and verifies submitted
// passwords against stored ciphertexts.
type CredentialCipher interface {
	// Encrypt returns base64(IV || AES-256-CBC(PKCS7(plaintext))).
	Encrypt(plaintext string) (string, error)

	// Decrypt reverses Encrypt. Every failure is reported as ErrDecryption.
	Decrypt(encoded string) (string, error)

	// Verify reports whether submitted equals the decryption of stored.
	// It never returns an error; any decryption failure yields false.
	Verify(submitted, stored string) bool

	// Recover returns the plaintext password behind a stored value. It exists
	// only for the administrative recovery flows and is kept separate from
	// Decrypt so call sites are easy to audit.
	Recover(stored string) (string, error)
}

// SecretSealer protects small values at rest with an optional KMS keeper.
type SecretSealer interface {
	// Seal returns the stored representation of plaintext.
	Seal(ctx context.Context, plaintext string) (string, error)

	// Open returns the plaintext behind a stored representation.
	Open(ctx context.Context, stored string) (string, error)
}
