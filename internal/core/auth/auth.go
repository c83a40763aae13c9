// Package auth resolves Authorization headers into request identities and
// enforces site scope. Authentication is a pure function of the header, the
// injected configuration and one repository lookup; nothing here reads
// ambient process state.
package auth

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/emrekoca/penmark/internal/core/domain"
	"github.com/emrekoca/penmark/internal/core/ports"
	"github.com/emrekoca/penmark/internal/core/token"
)

// Identity is the request-scoped result of authentication: either the
// administrative identity or one site's identity. It is returned by the
// authenticators and threaded explicitly into handlers.
type Identity struct {
	Admin    bool
	SiteID   string
	SiteName string
}

// AdminIdentity is the identity produced by a successful admin check.
func AdminIdentity() Identity { return Identity{Admin: true} }

// SiteIdentity is the identity of an authenticated site credential.
func SiteIdentity(id, name string) Identity { return Identity{SiteID: id, SiteName: name} }

// bearerRegex matches "Bearer <token>". Whitespace around the token itself
// is tolerated and trimmed afterwards.
var bearerRegex = regexp.MustCompile(`^Bearer\s+(.+)$`)

// parseBearer extracts the token from an Authorization header value.
func parseBearer(header string, guard domain.Guard) (string, *domain.Error) {
	if header == "" {
		return "", &domain.Error{Kind: domain.KindMissingCredential, Guard: guard, Message: "missing Authorization header"}
	}
	m := bearerRegex.FindStringSubmatch(header)
	if m == nil {
		return "", &domain.Error{Kind: domain.KindMalformedCredential, Guard: guard, Message: "invalid Authorization header format, expected: Bearer <token>"}
	}
	tok := strings.TrimSpace(m[1])
	if tok == "" {
		return "", &domain.Error{Kind: domain.KindMalformedCredential, Guard: guard, Message: "missing token in Authorization header"}
	}
	return tok, nil
}

// TenantAuthenticator resolves bearer tokens to site identities via digest
// lookup. The clock is injectable so expiry can be tested deterministically.
type TenantAuthenticator struct {
	repo ports.Repository
	now  func() time.Time
}

// NewTenantAuthenticator creates a TenantAuthenticator backed by repo.
func NewTenantAuthenticator(repo ports.Repository) *TenantAuthenticator {
	return &TenantAuthenticator{repo: repo, now: time.Now}
}

// WithClock overrides the authenticator's clock. Test use only.
func (a *TenantAuthenticator) WithClock(now func() time.Time) *TenantAuthenticator {
	a.now = now
	return a
}

// Authenticate turns an Authorization header value into a site identity.
// A failed digest lookup is indistinguishable from a malformed-but-plausible
// token; repository failures surface as StoreFailure, never as an invalid
// credential.
func (a *TenantAuthenticator) Authenticate(ctx context.Context, header string) (Identity, error) {
	tok, perr := parseBearer(header, domain.GuardTenant)
	if perr != nil {
		return Identity{}, perr
	}

	key, err := a.repo.GetAPIKeyByDigest(ctx, token.Digest(tok))
	if err != nil {
		return Identity{}, domain.StoreFailure("look up api key", err)
	}
	if key == nil {
		return Identity{}, domain.E(domain.KindInvalidCredential, "invalid API key")
	}
	if key.Expired(a.now()) {
		return Identity{}, domain.E(domain.KindExpiredCredential, "API key has expired")
	}

	site, err := a.repo.GetSiteByID(ctx, key.SiteID)
	if err != nil {
		return Identity{}, domain.StoreFailure("look up site for api key", err)
	}
	if site == nil {
		// Credential references a site that no longer exists.
		return Identity{}, domain.E(domain.KindInvalidCredential, "invalid API key")
	}

	return SiteIdentity(site.ID, site.Name), nil
}

// AdminAuthenticator validates the single shared administrative secret.
// The secret is injected at construction; no digesting or storage lookup
// is involved.
type AdminAuthenticator struct {
	secret string
}

// NewAdminAuthenticator creates an AdminAuthenticator. An empty secret means
// the process has no admin surface; every admin request is then rejected
// with AdminNotConfigured.
func NewAdminAuthenticator(secret string) *AdminAuthenticator {
	return &AdminAuthenticator{secret: secret}
}

// Authenticate validates the header against the configured admin secret.
func (a *AdminAuthenticator) Authenticate(header string) (Identity, error) {
	tok, perr := parseBearer(header, domain.GuardAdmin)
	if perr != nil {
		return Identity{}, perr
	}
	if a.secret == "" {
		return Identity{}, domain.EAdmin(domain.KindAdminNotConfigured, "admin API key not configured")
	}
	if tok != a.secret {
		return Identity{}, domain.EAdmin(domain.KindInvalidCredential, "invalid admin API key")
	}
	return AdminIdentity(), nil
}

// EnforceScope checks an authenticated site identity against the site name
// asserted by the request path. It never runs before authentication and a
// mismatch is an authorization failure, reported as 403 rather than 401:
// the caller's credential is fine, it just belongs to another site.
func EnforceScope(id Identity, siteName string) error {
	if id.Admin || id.SiteName != siteName {
		return domain.E(domain.KindScopeMismatch, "access denied: insufficient permissions for this site")
	}
	return nil
}
