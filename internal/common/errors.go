// Package common defines sentinel errors shared across the application
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// ErrorValidation marks a record rejected before any persistence attempt.
	ErrorValidation = errors.New("validation error")

	// ErrorInvalidCredentials is deliberately generic: it never reveals
	// whether the username or the password was wrong.
	ErrorInvalidCredentials = errors.New("invalid username or password")

	// ErrorDuplicateUser — the username is already taken (case-insensitive).
	ErrorDuplicateUser = errors.New("username already taken")

	// ErrorNothingToExport — export requested on an empty collection.
	ErrorNothingToExport = errors.New("nothing to export")
)
