package analyzer

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns the hex-encoded BLAKE2b-256 digest of a password.
//
// The fingerprint is what the audit history stores instead of the
// plaintext: it lets repeated audits of the same password be linked
// while keeping the password unrecoverable from the database. BLAKE2b
// is preferred over SHA-256 here for speed on short inputs and because
// its output is not directly comparable against the SHA-based rainbow
// tables circulating for leaked password corpora.
func Fingerprint(password string) string {
	sum := blake2b.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
