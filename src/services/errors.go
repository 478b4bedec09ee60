package services

import "errors"

// Sentinel errors for explicit error handling at the handler boundary.
// Store-level sentinels (not found, conflict) live in the repositories
// package; these cover the authentication and update rules.
var (
	// ErrInvalidCredentials indicates sign-in failed. It deliberately does
	// not distinguish an unknown username from a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrPasswordImmutable indicates a password change was attempted through
	// the update path
	ErrPasswordImmutable = errors.New("password cannot be updated through this endpoint")

	// ErrAccountInactive indicates the caller's account is missing or
	// deactivated, even when the presented token is still valid
	ErrAccountInactive = errors.New("account missing or inactive")
)
