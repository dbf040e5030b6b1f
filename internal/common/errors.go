// Package common defines shared sentinel errors used across the store and
// service layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors.
	ErrUserExists     = errors.New("user name already in use")
	ErrBadCredentials = errors.New("incorrect credentials")
	ErrWeakPassword   = errors.New("password does not meet the policy")
	ErrMissingFields  = errors.New("all fields are required")
	ErrInvalidPlate   = errors.New("plate must match AAA###")
	ErrInvalidRate    = errors.New("daily rate must be a decimal number")
	ErrSyncInProgress = errors.New("synchronization already in progress")
)
