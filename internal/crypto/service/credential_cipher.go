package service

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"
	"log/slog"
	"unicode/utf8"

	cryptoDomain "github.com/septer/septer/internal/crypto/domain"
)

// credentialCipher implements CredentialCipher with AES-256-CBC and PKCS7 padding.
//
// Encryption always uses the IV from configuration, so equal plaintexts produce
// equal ciphertexts. This is a known weakness of the storage format: it leaks
// password equality across accounts and enables dictionary matching against a
// leaked table. It is preserved so existing stored values keep verifying.
// Decryption honors the IV carried in the first block, which keeps values
// written with a per-record IV decryptable.
//
// Thread safety:
//
//	The block cipher and IV are built once and never mutated. A fresh CBC mode
//	is created for each call, so the cipher is safe for concurrent use.
type credentialCipher struct {
	block  cipher.Block
	iv     []byte
	logger *slog.Logger
}

// NewCredentialCipher derives the key from the secret material and builds the cipher.
//
// The derived key is wiped once the AES key schedule has been expanded.
func NewCredentialCipher(material *cryptoDomain.SecretMaterial, logger *slog.Logger) (CredentialCipher, error) {
	if material == nil || len(material.Passphrase) == 0 {
		return nil, fmt.Errorf("%w: missing secret material", cryptoDomain.ErrConfiguration)
	}
	if len(material.IV) != cryptoDomain.IVSize {
		return nil, fmt.Errorf("%w: iv must be %d bytes", cryptoDomain.ErrConfiguration, cryptoDomain.IVSize)
	}

	key := DeriveKey(material.Passphrase, material.Salt)
	defer cryptoDomain.Zero(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrConfiguration, err)
	}

	iv := make([]byte, cryptoDomain.IVSize)
	copy(iv, material.IV)

	return &credentialCipher{block: block, iv: iv, logger: logger}, nil
}

// Encrypt pads the UTF-8 plaintext to a whole number of blocks, encrypts it with
// the configured IV and returns base64(IV || ciphertext). The empty string
// encrypts to one block of padding.
func (c *credentialCipher) Encrypt(plaintext string) (string, error) {
	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)

	out := make([]byte, cryptoDomain.IVSize+len(padded))
	copy(out, c.iv)
	cipher.NewCBCEncrypter(c.block, c.iv).CryptBlocks(out[cryptoDomain.IVSize:], padded)

	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt decodes the base64 value, splits off the IV and decrypts the remainder.
func (c *credentialCipher) Decrypt(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: malformed base64", cryptoDomain.ErrDecryption)
	}
	if len(raw) < cryptoDomain.IVSize+aes.BlockSize {
		return "", fmt.Errorf("%w: input too short", cryptoDomain.ErrDecryption)
	}

	iv, ciphertext := raw[:cryptoDomain.IVSize], raw[cryptoDomain.IVSize:]
	if len(ciphertext)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: ciphertext is not a multiple of the block size", cryptoDomain.ErrDecryption)
	}

	plain := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(c.block, iv).CryptBlocks(plain, ciphertext)

	unpadded, err := pkcs7Unpad(plain, aes.BlockSize)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(unpadded) {
		return "", fmt.Errorf("%w: plaintext is not valid utf-8", cryptoDomain.ErrDecryption)
	}

	return string(unpadded), nil
}

// Verify decrypts stored and compares it with submitted.
//
// The comparison is plain string equality and is not constant time.
func (c *credentialCipher) Verify(submitted, stored string) bool {
	plain, err := c.Decrypt(stored)
	if err != nil {
		if c.logger != nil {
			c.logger.Debug("credential verification failed", slog.Any("error", err))
		}
		return false
	}
	return plain == submitted
}

// Recover returns the plaintext behind stored.
func (c *credentialCipher) Recover(stored string) (string, error) {
	return c.Decrypt(stored)
}

// pkcs7Pad appends between 1 and blockSize bytes, each equal to the pad length.
func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(append(make([]byte, 0, len(data)+n), data...), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: invalid padding", cryptoDomain.ErrDecryption)
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, fmt.Errorf("%w: invalid padding", cryptoDomain.ErrDecryption)
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("%w: invalid padding", cryptoDomain.ErrDecryption)
		}
	}
	return data[:len(data)-n], nil
}
