// Package dto provides data transfer objects for the log analysis endpoint.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/septer/septer/internal/validation"
)

// AskRequest is a question about one of the caller's logs.
type AskRequest struct {
	LogID    string `json:"log_id"`
	Question string `json:"question"`
}

// Validate checks if the request is valid.
func (r *AskRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.LogID, validation.Required, customValidation.UUID),
		validation.Field(&r.Question,
			validation.Required,
			customValidation.NotBlank,
			validation.RuneLength(1, 4000),
		),
	)
}
