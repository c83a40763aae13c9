package domain

import (
	"errors"
	"fmt"
)

// ErrorKind enumerates every failure the core can produce. The HTTP layer
// maps kinds to statuses with an exhaustive switch; nothing inspects
// error strings.
type ErrorKind int

const (
	// KindMissingCredential means the Authorization header was absent or empty.
	KindMissingCredential ErrorKind = iota
	// KindMalformedCredential means the header did not match "Bearer <token>".
	KindMalformedCredential
	// KindInvalidCredential means a well-formed token matched no stored digest,
	// or the admin secret comparison failed.
	KindInvalidCredential
	// KindExpiredCredential means the credential's expiry has passed.
	KindExpiredCredential
	// KindAdminNotConfigured means no admin secret is set for this process.
	KindAdminNotConfigured
	// KindScopeMismatch means an authenticated site addressed another site's resources.
	KindScopeMismatch
	// KindSiteNotFound means the referenced site does not exist.
	KindSiteNotFound
	// KindSiteExists means a site with the same name already exists.
	KindSiteExists
	// KindArticleNotFound means no article matches (site, language, slug).
	KindArticleNotFound
	// KindArticleExists means an article with the same slug already exists
	// for the site and language.
	KindArticleExists
	// KindInvalidInput means request validation failed.
	KindInvalidInput
	// KindStoreFailure means the backing store returned an error. The cause is
	// kept for server logs and never sent to clients.
	KindStoreFailure
)

// Guard identifies which trust class raised an authentication error. The
// 401 family deliberately shares one machine-readable code per guard so
// callers cannot distinguish malformed from unknown tokens; the guard
// only selects between the tenant and admin code.
type Guard int

const (
	GuardTenant Guard = iota
	GuardAdmin
)

// Error is the closed error type crossing the service and API boundaries.
type Error struct {
	Kind    ErrorKind
	Guard   Guard
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// E builds a core error for the tenant guard (the default for non-auth kinds).
func E(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Guard: GuardTenant, Message: message}
}

// EAdmin builds a core error raised by the admin guard.
func EAdmin(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Guard: GuardAdmin, Message: message}
}

// StoreFailure wraps a storage error. The wrapped cause stays server-side.
func StoreFailure(op string, cause error) *Error {
	return &Error{Kind: KindStoreFailure, Message: op, cause: cause}
}

// AsError unwraps err into the core error type.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
