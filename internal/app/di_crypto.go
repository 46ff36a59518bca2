package app

import (
	"fmt"

	cryptoDomain "github.com/septer/septer/internal/crypto/domain"
	cryptoService "github.com/septer/septer/internal/crypto/service"
)

// SecretMaterial returns the decoded passphrase, salt and IV.
// Malformed values fail with cryptoDomain.ErrConfiguration.
func (c *Container) SecretMaterial() (*cryptoDomain.SecretMaterial, error) {
	var err error
	c.secretMaterialInit.Do(func() {
		c.secretMaterial, err = cryptoDomain.LoadSecretMaterial(
			c.config.CredentialPassphrase,
			c.config.CredentialSaltHex,
			c.config.CredentialIVHex,
		)
		if err != nil {
			c.setInitError("secretMaterial", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("secretMaterial"); storedErr != nil {
		return nil, storedErr
	}
	return c.secretMaterial, nil
}

// CredentialCipher returns the password cipher.
func (c *Container) CredentialCipher() (cryptoService.CredentialCipher, error) {
	var err error
	c.credentialCipherInit.Do(func() {
		c.credentialCipher, err = c.initCredentialCipher()
		if err != nil {
			c.setInitError("credentialCipher", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("credentialCipher"); storedErr != nil {
		return nil, storedErr
	}
	return c.credentialCipher, nil
}

// KMSKeeper returns the keeper used to seal API keys, or nil when API_KEY_KMS_URI is empty.
func (c *Container) KMSKeeper() (cryptoDomain.KMSKeeper, error) {
	var err error
	c.kmsKeeperInit.Do(func() {
		c.kmsKeeper, err = c.initKMSKeeper()
		if err != nil {
			c.setInitError("kmsKeeper", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("kmsKeeper"); storedErr != nil {
		return nil, storedErr
	}
	return c.kmsKeeper, nil
}

// SecretSealer returns the API key sealer.
func (c *Container) SecretSealer() (cryptoService.SecretSealer, error) {
	var err error
	c.secretSealerInit.Do(func() {
		var keeper cryptoDomain.KMSKeeper
		keeper, err = c.KMSKeeper()
		if err != nil {
			err = fmt.Errorf("failed to get kms keeper for secret sealer: %w", err)
			c.setInitError("secretSealer", err)
			return
		}
		c.secretSealer = cryptoService.NewSecretSealer(keeper)
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("secretSealer"); storedErr != nil {
		return nil, storedErr
	}
	return c.secretSealer, nil
}

func (c *Container) initCredentialCipher() (cryptoService.CredentialCipher, error) {
	material, err := c.SecretMaterial()
	if err != nil {
		return nil, fmt.Errorf("failed to load secret material: %w", err)
	}
	return cryptoService.NewCredentialCipher(material, c.Logger())
}

func (c *Container) initKMSKeeper() (cryptoDomain.KMSKeeper, error) {
	if c.config.APIKeyKMSURI == "" {
		return nil, nil
	}
	keeper, err := cryptoService.NewKMSService().OpenKeeper(c.ctx, c.config.APIKeyKMSURI)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrConfiguration, err)
	}
	return keeper, nil
}
