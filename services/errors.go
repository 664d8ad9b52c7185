// Package services holds the business rules behind the HTTP handlers.
// File: services/errors.go
package services

import "errors"

// Error kinds. Every service error wraps exactly one of these so the
// HTTP layer can pick a status code with errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is a service failure with a message safe to show to the user.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

var (
	ErrInvalidSubmission = newError(ErrInvalidInput, "Invalid data")

	ErrInvalidGame  = newError(ErrInvalidInput, "Invalid game data")
	ErrGameNotFound = newError(ErrNotFound, "Game not found")

	ErrInvalidTeam     = newError(ErrInvalidInput, "Name and league are required")
	ErrInvalidPlayer   = newError(ErrInvalidInput, "Invalid request data")
	ErrDuplicateTeam   = newError(ErrConflict, "Team already exists")
	ErrDuplicatePlayer = newError(ErrInvalidInput, "Player already exists")
	ErrTeamNotFound    = newError(ErrNotFound, "Team not found")
	ErrPlayerNotFound  = newError(ErrNotFound, "Player not found")

	ErrInvalidRegistration = newError(ErrInvalidInput, "All fields are required.")
	ErrInvalidLogin        = newError(ErrInvalidInput, "Email and password are required")
	ErrDuplicateUser       = newError(ErrConflict, "Email is already registered.")
	ErrUsernameTaken       = newError(ErrConflict, "Username is already taken.")
	ErrInvalidCredentials  = newError(ErrUnauthorized, "Invalid email or password")
	ErrUserNotFound        = newError(ErrNotFound, "User not found")
)

// Message returns the user-facing message of a service error, or fallback
// for anything else (storage failures and other unexpected errors).
func Message(err error, fallback string) string {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Msg
	}
	return fallback
}
