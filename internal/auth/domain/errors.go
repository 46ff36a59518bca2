package domain

import (
	"github.com/septer/septer/internal/errors"
)

// Authentication and authorization errors.
var (
	// ErrAuthenticationFailed covers every reason a session token is rejected:
	// malformed, bad signature, wrong algorithm, missing subject, expired or
	// referring to an unknown user. Callers cannot tell the causes apart.
	ErrAuthenticationFailed = errors.Wrap(errors.ErrUnauthorized, "authentication failed")

	// ErrInvalidCredentials indicates a login with an unknown email, a wrong
	// password or an account lacking the role the endpoint requires.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrAuthorizationFailed indicates an authenticated caller lacks the required role.
	ErrAuthorizationFailed = errors.Wrap(errors.ErrForbidden, "insufficient role")

	// ErrInvalidRole indicates a value outside the closed role set.
	ErrInvalidRole = errors.Wrap(errors.ErrInvalidInput, "invalid role")
)
