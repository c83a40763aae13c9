// Package domain contains the core business entities for penmark.
package domain

import (
	"time"
)

// Site is an isolated content owner. The name is unique and appears in URLs.
type Site struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// APIKey is one issued credential for a site. Only the SHA-256 digest of the
// plaintext is ever stored; the digest column carries a unique index so
// verification is a single equality lookup.
type APIKey struct {
	ID        string     `json:"id"`
	SiteID    string     `json:"site_id"`
	Name      string     `json:"name"` // label, e.g. "ci-publish-key"; not secret
	KeyDigest string     `json:"-"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"` // nil = never expires
	CreatedAt time.Time  `json:"created_at"`
}

// Expired reports whether the key is past its expiry at the given instant.
// A key expires at the exact instant of ExpiresAt.
func (k *APIKey) Expired(now time.Time) bool {
	return k.ExpiresAt != nil && !now.Before(*k.ExpiresAt)
}

// IssuedKey is the one-time issuance result. ApiKey holds the plaintext and
// appears in exactly one response; it is never persisted or logged.
type IssuedKey struct {
	ID        string     `json:"id"`
	ApiKey    string     `json:"apiKey"`
	Name      string     `json:"name"`
	SiteID    string     `json:"siteId"`
	ExpiresAt *time.Time `json:"expiresAt"`
	CreatedAt time.Time  `json:"createdAt"`
}
