package domain

import "errors"

// Common domain errors
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserErrors
var (
	ErrUserNotFound = errors.New("user not found")
)

// SessionErrors
var (
	ErrSessionNotFound = errors.New("session not found")
)
