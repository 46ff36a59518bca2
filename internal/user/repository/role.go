package repository

import (
	"fmt"

	authDomain "github.com/septer/septer/internal/auth/domain"
	apperrors "github.com/septer/septer/internal/errors"
)

// parseStoredRole converts the role column into the closed Role enum.
// An unknown value means the row was written outside the application and is
// reported as an internal error rather than invalid input.
func parseStoredRole(value string) (authDomain.Role, error) {
	role := authDomain.Role(value)
	if !role.Valid() {
		return "", apperrors.New(fmt.Sprintf("unknown role %q stored for user", value))
	}
	return role, nil
}
