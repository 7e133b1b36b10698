package service

import "errors"

var (
	// ErrNotFound reports a lookup for an id that has no row.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is returned uniformly for an unknown username or
	// a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidRating reports a rating outside the accepted 1..5 range.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)
