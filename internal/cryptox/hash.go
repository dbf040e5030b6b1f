// Package cryptox holds the credential hashing used by the local user store.
package cryptox

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashSHA256Hex returns the lowercase hex encoding of the SHA-256 digest of
// text. The digest is deliberately unsalted: the same password must hash to
// the same string on every device so rows mirrored through the remote Users
// table stay comparable.
func HashSHA256Hex(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
