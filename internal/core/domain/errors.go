package domain

import "errors"

var (
	// ErrUserExists is returned when registration hits the unique username index.
	ErrUserExists = errors.New("username already taken")
	// ErrUserNotFound is returned by user lookups that match nothing.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials covers both unknown username and wrong password;
	// callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned when a bearer token is malformed, carries a
	// bad signature, has expired, or has been revoked.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrInvalidAPIKey is returned when the shared-secret header is missing or wrong.
	ErrInvalidAPIKey = errors.New("invalid api key")
	// ErrTaskNotFound is returned when a task does not exist or is owned by
	// someone else; ownership mismatches are indistinguishable from absence.
	ErrTaskNotFound = errors.New("task not found")
)
