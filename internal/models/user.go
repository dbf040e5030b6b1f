// Package models defines the records persisted by the local store and
// mirrored to the remote tables.
package models

// User is a local credential record. Name is the authentication lookup key;
// uniqueness is enforced by an application-level pre-check at registration,
// not by a storage constraint.
type User struct {
	// ID is assigned by the local store on insert.
	ID int64

	// Name is the case-sensitive login name.
	Name string

	// PasswordHash is the hex-encoded SHA-256 digest of the password.
	PasswordHash string

	// IsAdmin marks seeded administrator accounts.
	IsAdmin bool
}
