package domain

import "errors"

var (
	// ErrNotFound is returned by repositories when a lookup matches no record.
	ErrNotFound = errors.New("record not found")

	// ErrEmailTaken is returned when a signup collides with an existing email.
	ErrEmailTaken = errors.New("email already registered")
)
