package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	authDomain "github.com/septer/septer/internal/auth/domain"
	cryptoService "github.com/septer/septer/internal/crypto/service"
	apperrors "github.com/septer/septer/internal/errors"
	userDomain "github.com/septer/septer/internal/user/domain"
	customValidation "github.com/septer/septer/internal/validation"
)

// userUseCase implements UserUseCase.
type userUseCase struct {
	userRepo UserRepository
	cipher   cryptoService.CredentialCipher
	sealer   cryptoService.SecretSealer
}

// NormalizeEmail lower-cases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateCredentials(email, password string) error {
	err := validation.Errors{
		"email": validation.Validate(email,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Email,
			validation.Length(3, 255),
		),
		"password": validation.Validate(password,
			validation.Required,
			validation.Length(1, 128),
			customValidation.StrongPassword,
		),
	}.Filter()
	return customValidation.WrapValidationError(err)
}

// Signup registers a Hunter account with an encrypted password.
// An empty role defaults to Hunter.
func (u *userUseCase) Signup(ctx context.Context, input *userDomain.SignupInput) (*userDomain.User, error) {
	if input.Role != "" && input.Role != authDomain.RoleHunter.String() {
		return nil, userDomain.ErrSignupRoleNotAllowed
	}

	return u.create(ctx, input.Email, input.Password, authDomain.RoleHunter)
}

// CreateGuardian seeds a Guardian account with an encrypted password.
func (u *userUseCase) CreateGuardian(ctx context.Context, email, password string) (*userDomain.User, error) {
	return u.create(ctx, email, password, authDomain.RoleGuardian)
}

func (u *userUseCase) create(
	ctx context.Context,
	email, password string,
	role authDomain.Role,
) (*userDomain.User, error) {
	email = NormalizeEmail(email)
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	if _, err := u.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, userDomain.ErrUserAlreadyExists
	} else if !apperrors.Is(err, userDomain.ErrUserNotFound) {
		return nil, err
	}

	encrypted, err := u.cipher.Encrypt(password)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to encrypt password")
	}

	user := &userDomain.User{
		ID:        uuid.Must(uuid.NewV7()),
		Email:     email,
		Role:      role,
		Password:  encrypted,
		CreatedAt: time.Now().UTC(),
	}

	// The unique index still guards concurrent signups for the same email.
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetAPIKey seals and stores the LLM API key of a user.
func (u *userUseCase) SetAPIKey(ctx context.Context, userID uuid.UUID, apiKey string) (*userDomain.User, error) {
	apiKey = strings.TrimSpace(apiKey)
	if err := validation.Validate(apiKey, validation.Required, validation.Length(1, 512)); err != nil {
		return nil, customValidation.WrapValidationError(validation.Errors{"api_key": err})
	}

	sealed, err := u.sealer.Seal(ctx, apiKey)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to seal api key")
	}

	if err := u.userRepo.UpdateAPIKey(ctx, userID, sealed); err != nil {
		return nil, err
	}

	return u.userRepo.GetByID(ctx, userID)
}

// APIKey unseals the stored LLM API key of user.
func (u *userUseCase) APIKey(ctx context.Context, user *userDomain.User) (string, error) {
	if !user.HasAPIKey() {
		return "", userDomain.ErrAPIKeyNotSet
	}

	apiKey, err := u.sealer.Open(ctx, *user.APIKey)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to open api key")
	}
	return apiKey, nil
}

// GetByID retrieves a user by ID.
func (u *userUseCase) GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// GetByEmail retrieves a user by email.
func (u *userUseCase) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	return u.userRepo.GetByEmail(ctx, NormalizeEmail(email))
}

// RecoverPassword decrypts the stored password of the account with email.
func (u *userUseCase) RecoverPassword(ctx context.Context, email string) (string, error) {
	user, err := u.userRepo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return "", err
	}

	plaintext, err := u.cipher.Recover(user.Password)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to recover password")
	}
	return plaintext, nil
}

// NewUserUseCase creates a new UserUseCase with the provided dependencies.
func NewUserUseCase(
	userRepo UserRepository,
	cipher cryptoService.CredentialCipher,
	sealer cryptoService.SecretSealer,
) UserUseCase {
	return &userUseCase{
		userRepo: userRepo,
		cipher:   cipher,
		sealer:   sealer,
	}
}
