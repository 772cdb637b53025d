package session

import "errors"

var (
	// ErrUnknownUser indicates the phone presented at verification is not in
	// the identity directory.
	ErrUnknownUser = errors.New("unknown user")

	// ErrInvalidCode indicates the one-time code does not match, has expired,
	// or was never issued for this phone.
	ErrInvalidCode = errors.New("invalid OTP")

	// ErrDevLoginDisabled indicates the OTP-skipping login path was called in
	// a build where it is not enabled.
	ErrDevLoginDisabled = errors.New("dev login is disabled")
)
