package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"gocloud.dev/secrets"

	cryptoDomain "github.com/septer/septer/internal/crypto/domain"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// sealedPrefix marks values that went through a KMS keeper.
const sealedPrefix = "kms:"

// KMSService opens KMS keepers from provider URIs.
type KMSService interface {
	// OpenKeeper opens a keeper for gcpkms://, awskms://, azurekeyvault://,
	// hashivault:// or base64key:// URIs.
	OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error)
}

type kmsService struct{}

// NewKMSService creates a new KMS service instance.
func NewKMSService() KMSService {
	return &kmsService{}
}

// OpenKeeper opens a secrets.Keeper for the configured KMS provider using the keyURI.
func (k *kmsService) OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	return keeper, nil
}

// secretSealer implements SecretSealer. A nil keeper stores values unchanged.
type secretSealer struct {
	keeper cryptoDomain.KMSKeeper
}

// NewSecretSealer creates a sealer. Pass a nil keeper to store values as-is.
func NewSecretSealer(keeper cryptoDomain.KMSKeeper) SecretSealer {
	return &secretSealer{keeper: keeper}
}

// Seal encrypts plaintext with the keeper and returns "kms:" + base64(ciphertext).
func (s *secretSealer) Seal(ctx context.Context, plaintext string) (string, error) {
	if s.keeper == nil {
		return plaintext, nil
	}

	ciphertext, err := s.keeper.Encrypt(ctx, []byte(plaintext))
	if err != nil {
		return "", fmt.Errorf("failed to seal value: %w", err)
	}
	return sealedPrefix + base64.StdEncoding.EncodeToString(ciphertext), nil
}

// Open reverses Seal. Values without the prefix were stored before a keeper was
// configured and are returned unchanged.
func (s *secretSealer) Open(ctx context.Context, stored string) (string, error) {
	encoded, sealed := strings.CutPrefix(stored, sealedPrefix)
	if !sealed {
		return stored, nil
	}
	if s.keeper == nil {
		return "", cryptoDomain.ErrSealedValueWithoutKeeper
	}

	ciphertext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("failed to decode sealed value: %w", err)
	}
	plaintext, err := s.keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return "", fmt.Errorf("failed to open sealed value: %w", err)
	}
	return string(plaintext), nil
}
