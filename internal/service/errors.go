// Package service defines the error taxonomy shared by the domain services.
// Handlers match on the three base sentinels to pick a status code and on the
// wrapped errors to report which entity was involved.
package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
)

var (
	ErrUserNotFound   = fmt.Errorf("user %w", ErrNotFound)
	ErrMovieNotFound  = fmt.Errorf("movie %w", ErrNotFound)
	ErrRatingNotFound = fmt.Errorf("rating %w", ErrNotFound)

	ErrEmailTaken      = fmt.Errorf("email already registered: %w", ErrConflict)
	ErrDuplicateRating = fmt.Errorf("rating already exists for this user and movie: %w", ErrConflict)

	ErrScoreOutOfRange = fmt.Errorf("score must be between 0 and 10: %w", ErrValidation)
	ErrUnknownListKind = fmt.Errorf("unknown list kind: %w", ErrValidation)
)

// ErrInvalidCredentials is deliberately the same for an unknown email and a
// wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")
