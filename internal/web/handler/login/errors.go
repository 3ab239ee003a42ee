package login

import "github.com/pkg/errors"

var (
	// ErrInvalidFormData is returned when the login form cannot be parsed.
	ErrInvalidFormData = errors.New("invalid form data")

	// ErrInvalidCredentials is returned when email or password do not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountInactive is returned when the account is disabled.
	ErrAccountInactive = errors.New("account is inactive")

	// ErrInternalServerError is returned on unexpected server failures.
	ErrInternalServerError = errors.New("internal server error")
)
