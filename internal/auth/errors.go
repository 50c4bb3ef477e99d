package auth

import "errors"

var (
	// ErrTokenExchange is returned when the provider token endpoint is
	// unreachable or its response carries no access token
	ErrTokenExchange = errors.New("token exchange failed")

	// ErrProfileFetch is returned when the provider user-info endpoint is
	// unreachable or returns no usable body
	ErrProfileFetch = errors.New("profile fetch failed")

	// ErrInvalidCredentials is returned on a wrong email/password pair
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned when registering an already-known email
	ErrEmailTaken = errors.New("email already registered")

	// ErrSessionNotFound is returned for missing or expired session tokens
	ErrSessionNotFound = errors.New("session not found")
)
