// Package common defines shared constants and sentinel errors used across
// the MarketPlac client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrAuth covers rejected credentials and failed registrations.
	ErrAuth = errors.New("authentication failed")

	// ErrNetwork covers an unreachable remote source and non-2xx responses
	// that are not classified otherwise.
	ErrNetwork = errors.New("remote source unavailable")

	// ErrValidation covers malformed local input: an incomplete listing
	// draft or a display price that cannot be converted to an amount.
	ErrValidation = errors.New("validation failed")

	// ErrChannel covers live-channel misuse, e.g. sending without an identity.
	ErrChannel = errors.New("live channel error")

	// ErrNotFound is returned when the remote source reports a missing resource.
	ErrNotFound = errors.New("not found")
)
