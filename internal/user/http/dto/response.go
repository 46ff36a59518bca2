package dto

import (
	authDto "github.com/septer/septer/internal/auth/http/dto"
	userDomain "github.com/septer/septer/internal/user/domain"
)

// Acknowledgement messages returned by the account endpoints.
const (
	MessageSignedUp = "Email Registered!"
	MessageKeyAdded = "Key Added!"
)

// AddAPIKeyResponse is returned after the API key has been stored.
type AddAPIKeyResponse struct {
	Message string               `json:"message"`
	User    authDto.UserResponse `json:"user"`
}

// MapUserToAddAPIKeyResponse converts the updated user to the response body.
func MapUserToAddAPIKeyResponse(user *userDomain.User) AddAPIKeyResponse {
	return AddAPIKeyResponse{
		Message: MessageKeyAdded,
		User:    authDto.MapIdentityToUserResponse(user.Identity()),
	}
}
