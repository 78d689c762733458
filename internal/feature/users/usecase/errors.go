// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that is already in use.
	ErrEmailAlreadyExists = errors.New("email already in use")
)
