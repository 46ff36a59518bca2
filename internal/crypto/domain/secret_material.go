package domain

import (
	"encoding/hex"
	"fmt"
)

// IVSize is the AES block size and the length of the shared initialization vector.
const IVSize = 16

// SecretMaterial holds the decoded configuration the credential cipher is built from.
//
// It is constructed once at startup and treated as read-only afterwards.
type SecretMaterial struct {
	Passphrase []byte
	Salt       []byte
	IV         []byte
}

// LoadSecretMaterial decodes the salt and IV from hex and validates the result.
//
// Any malformed value fails with ErrConfiguration. The salt may be any length,
// including zero, but the IV must be exactly IVSize bytes.
func LoadSecretMaterial(passphrase, saltHex, ivHex string) (*SecretMaterial, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("%w: passphrase is empty", ErrConfiguration)
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return nil, fmt.Errorf("%w: salt is not valid hex", ErrConfiguration)
	}

	iv, err := hex.DecodeString(ivHex)
	if err != nil {
		return nil, fmt.Errorf("%w: iv is not valid hex", ErrConfiguration)
	}
	if len(iv) != IVSize {
		return nil, fmt.Errorf("%w: iv must be %d bytes, got %d", ErrConfiguration, IVSize, len(iv))
	}

	return &SecretMaterial{
		Passphrase: []byte(passphrase),
		Salt:       salt,
		IV:         iv,
	}, nil
}
