package identity

import "errors"

var (
	// ErrNotRegistered indicates the phone number is absent from the directory.
	ErrNotRegistered = errors.New("phone number not registered")

	// ErrMissingRole marks a record whose role is absent or outside the closed
	// set. Such a record is treated as corrupt, never rendered.
	ErrMissingRole = errors.New("identity record missing role")

	// ErrMissingPhone marks a record without its unique key.
	ErrMissingPhone = errors.New("identity record missing phone")
)
