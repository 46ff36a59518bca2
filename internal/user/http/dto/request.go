// Package dto provides data transfer objects for the account endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/septer/septer/internal/validation"
)

// SignupRequest contains the data submitted by a self-registering Hunter.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Validate checks the shape of the request. Password strength and the role
// restriction are enforced by the use case.
func (r *SignupRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Email,
		),
		validation.Field(&r.Password, validation.Required, validation.Length(1, 128)),
	)
}

// AddAPIKeyRequest stores the caller's LLM API key.
type AddAPIKeyRequest struct {
	APIKey string `json:"api_key"`
}

// Validate checks if the request is valid.
func (r *AddAPIKeyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.APIKey,
			validation.Required,
			customValidation.NotBlank,
			customValidation.NoWhitespace,
			validation.Length(1, 512),
		),
	)
}
