// Package token generates API key secrets and their storage digests.
//
// Secrets carry 256 bits of entropy and are base64url-encoded, so they are
// safe in an Authorization header without escaping. Storage uses a plain
// SHA-256 digest rather than a password hash: the input space is machine
// generated and high entropy, so guessing is infeasible regardless of hash
// speed, and every authenticated request pays for exactly one digest plus
// one indexed lookup.
package token

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

const secretBytes = 32

// SecretLength is the length of every generated secret in characters.
const SecretLength = 43 // base64url of 32 bytes, unpadded

// DigestLength is the length of every digest in characters.
const DigestLength = 64 // SHA-256 as lowercase hex

// Generate returns a new high-entropy secret. An RNG failure is fatal for
// the calling operation and is not retried here.
func Generate() (string, error) {
	raw := make([]byte, secretBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// Digest returns the deterministic one-way storage form of a secret:
// SHA-256 rendered as lowercase hex.
func Digest(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// Verify reports whether a secret matches a stored digest.
func Verify(secret, digest string) bool {
	return Digest(secret) == digest
}
