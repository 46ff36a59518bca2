package domain

import (
	"github.com/septer/septer/internal/errors"
)

// Credential cipher error definitions.
var (
	// ErrConfiguration indicates the secret material loaded at startup is unusable
	// (malformed hex, wrong IV length, empty passphrase). It is fatal: the server
	// must not start with a partially configured cipher.
	ErrConfiguration = errors.Wrap(errors.ErrInvalidInput, "invalid credential configuration")

	// ErrDecryption indicates a stored credential could not be decrypted.
	//
	// Causes include malformed base64, input shorter than one IV, a ciphertext that
	// is not a whole number of blocks, malformed padding (usually a wrong key) and
	// plaintext that is not valid UTF-8. The cause is never disclosed to clients.
	ErrDecryption = errors.Wrap(errors.ErrInvalidInput, "credential decryption failed")

	// ErrSealedValueWithoutKeeper indicates a sealed value was read while no KMS keeper is configured.
	ErrSealedValueWithoutKeeper = errors.New("sealed value requires a configured KMS keeper")
)
